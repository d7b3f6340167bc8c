// Package title provides the start screen.
package title

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/application/system"
	"github.com/younwookim/spaceshooter/internal/infrastructure/render"
)

// Prompt is shown until the player presses fire
const Prompt = "Press SPACE to begin"

const promptScale = 3

var colorPrompt = color.RGBA{255, 255, 255, 255}

var _ scene.Scene = (*Title)(nil)

// StartFunc builds the scene that follows the title
type StartFunc func() (scene.Scene, error)

// Title waits for the fire key, then hands over to the next scene
type Title struct {
	background image.Image
	input      system.InputSource
	start      StartFunc
	renderer   *render.Renderer
	screenW    int
	screenH    int

	// Fire must be released once before it can start the game, so a key
	// still held from a previous screen does not skip the title.
	armed bool
}

// New creates a title scene drawing through renderer
func New(renderer *render.Renderer, background image.Image, screenW, screenH int, input system.InputSource, start StartFunc) *Title {
	return &Title{
		background: background,
		input:      input,
		start:      start,
		renderer:   renderer,
		screenW:    screenW,
		screenH:    screenH,
	}
}

// Update waits for fire (implements scene.Scene)
func (t *Title) Update(_ float64) (scene.Scene, error) {
	in := t.input.GetInput()
	if in.Close {
		return nil, ebiten.Termination
	}
	if !in.Fire {
		t.armed = true
		return nil, nil
	}
	if !t.armed {
		return nil, nil
	}
	return t.start()
}

// Draw renders the title screen
func (t *Title) Draw(screen *ebiten.Image) {
	t.DrawTo(t.renderer.Target(screen))
}

// DrawTo renders the background and the centered prompt
func (t *Title) DrawTo(c scene.Canvas) {
	c.Blit(t.background, 0, 0)
	w, h := c.TextSize(Prompt, promptScale)
	x, y := scene.Centered(t.screenW, t.screenH, w, h)
	c.Text(Prompt, x, y, promptScale, colorPrompt)
}

// OnEnter re-arms the fire key
func (t *Title) OnEnter() {
	t.armed = false
}

// OnExit is called when the scene is left
func (t *Title) OnExit() {}
