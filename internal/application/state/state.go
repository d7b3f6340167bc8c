// Package state defines the game loop states.
package state

// GameState represents the current state of the game loop
type GameState int

const (
	// StatePlaying runs the full simulation every tick
	StatePlaying GameState = iota
	// StateLostPending freezes the simulation and counts down before exit
	StateLostPending
	// StateTerminated ends the loop
	StateTerminated
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateLostPending:
		return "LostPending"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}
