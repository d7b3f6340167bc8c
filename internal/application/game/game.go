// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spaceshooter/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	logger  *log.Logger
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, logger *log.Logger) *Game {
	g := &Game{
		current: initialScene,
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene error ends the game; ebiten.Termination is passed through as is
// so RunGame returns nil.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.logger.Debug("scene finished", "scene", sceneName(g.current))
		} else {
			g.logger.Error("scene failed", "scene", sceneName(g.current), "err", err)
		}
		g.current.OnExit()
		return err
	}

	if next != nil {
		g.logger.Debug("scene transition", "from", sceneName(g.current), "to", sceneName(next))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// SetTPS sets the tick rate the scenes are stepped at.
func (g *Game) SetTPS(tps int) {
	g.dt = 1.0 / float64(tps)
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

func sceneName(s scene.Scene) string {
	return fmt.Sprintf("%T", s)
}
