package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptedInput(t *testing.T) {
	src := NewScriptedInput(
		InputState{Left: true},
		InputState{Fire: true},
	)

	assert.Equal(t, InputState{Left: true}, src.GetInput())
	assert.Equal(t, InputState{Fire: true}, src.GetInput())
	assert.Equal(t, InputState{}, src.GetInput(), "exhausted script is idle")
	assert.Equal(t, InputState{}, src.GetInput())
}

func TestHoldInput(t *testing.T) {
	src := HoldInput{Right: true, Fire: true}

	for range 3 {
		assert.Equal(t, InputState{Right: true, Fire: true}, src.GetInput())
	}
}

func TestInputSources(t *testing.T) {
	var _ InputSource = NewInputSystem()
	var _ InputSource = NewScriptedInput()
	var _ InputSource = HoldInput{}
}
