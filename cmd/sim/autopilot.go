package main

import "github.com/younwookim/spaceshooter/internal/application/system"

// autopilot holds fire and sweeps left and right
type autopilot struct {
	period int
	tick   int
}

func newAutopilot(period int) *autopilot {
	return &autopilot{period: max(1, period)}
}

func (a *autopilot) GetInput() system.InputState {
	left := (a.tick/a.period)%2 == 0
	a.tick++
	return system.InputState{
		Left:  left,
		Right: !left,
		Fire:  true,
	}
}
