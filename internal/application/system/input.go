package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the keys the game reads in one tick
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
	// Close asks the game to stop immediately
	Close bool
}

// InputSource yields one InputState per tick
type InputSource interface {
	GetInput() InputState
}

// InputSystem reads the keyboard and the window close button
type InputSystem struct{}

// NewInputSystem creates a new keyboard input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Close: ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// ScriptedInput plays back a fixed list of input states, one per call.
// After the list is exhausted it returns the zero InputState.
type ScriptedInput struct {
	states []InputState
	next   int
}

// NewScriptedInput creates an input source over states
func NewScriptedInput(states ...InputState) *ScriptedInput {
	return &ScriptedInput{states: states}
}

// GetInput returns the next scripted state
func (s *ScriptedInput) GetInput() InputState {
	if s.next >= len(s.states) {
		return InputState{}
	}
	in := s.states[s.next]
	s.next++
	return in
}

// HoldInput returns the same state every tick
type HoldInput InputState

// GetInput returns the held state
func (h HoldInput) GetInput() InputState {
	return InputState(h)
}
