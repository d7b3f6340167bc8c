package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/spaceshooter/internal/application/system"
)

// ErrNoFrames is returned when saving or loading a replay without frames
var ErrNoFrames = errors.New("no frames")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: ReplayData{
			ID:        uuid.NewString(),
			Version:   FormatVersion,
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, newFrameInput(len(r.data.Frames), input))
}

// SetDigest stores the final state digest alongside the frames
func (r *Recorder) SetDigest(d uint64) {
	r.data.Digest = d
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Write(file)
}

// Write encodes the replay data as indented JSON
func (r *Recorder) Write(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
