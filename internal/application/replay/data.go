// Package replay records and plays back per-tick input so a seeded game
// can be reproduced exactly.
package replay

import "github.com/younwookim/spaceshooter/internal/application/system"

// FormatVersion is written into every replay file
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	S bool `json:"s,omitempty"` // Fire (space)
	Q bool `json:"q,omitempty"` // Close
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	ID        string       `json:"id"`
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	// Digest is the state digest after the last frame, if known
	Digest uint64 `json:"digest,omitempty"`
}

func newFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F: frame,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		S: in.Fire,
		Q: in.Close,
	}
}

// Input converts the frame back to an input state
func (f FrameInput) Input() system.InputState {
	return system.InputState{
		Left:  f.L,
		Right: f.R,
		Up:    f.U,
		Down:  f.D,
		Fire:  f.S,
		Close: f.Q,
	}
}
