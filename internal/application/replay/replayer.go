package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/spaceshooter/internal/application/system"
)

var _ system.InputSource = (*Replayer)(nil)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadReplay(file)
}

// ReadReplay decodes replay data from r
func ReadReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, ErrNoFrames
	}
	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// GetInput implements system.InputSource. Past the last frame it returns
// idle input.
func (r *Replayer) GetInput() system.InputState {
	in, _ := r.Next()
	return in
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Digest returns the recorded final state digest, 0 if none was saved
func (r *Replayer) Digest() uint64 {
	return r.data.Digest
}
