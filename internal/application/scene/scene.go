// Package scene defines the screens the game moves between.
package scene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// Scene is one game screen (title, playing).
//
// The game loop delegates Update and Draw calls to the current scene and
// switches scenes when Update returns a non-nil next scene.
type Scene interface {
	// Update advances the scene by one tick of dt seconds.
	// Returns the next scene on a transition, nil to stay.
	// Returns ebiten.Termination for a clean exit, any other error to abort.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Canvas is a Surface that can also draw HUD text.
// Scenes draw onto a Canvas so their layout can be checked without a GPU.
type Canvas interface {
	entity.Surface

	// Text draws str with its top-left corner at (x, y)
	Text(str string, x, y, scale float64, c color.Color)
	// TextSize returns the size str would take at scale
	TextSize(str string, scale float64) (w, h float64)
}

// Centered returns the top-left corner that centers a w x h box on a
// screenW x screenH screen, rounded to whole pixels.
func Centered(screenW, screenH int, w, h float64) (float64, float64) {
	x := float64(screenW)/2 - w/2
	y := float64(screenH)/2 - h/2
	return math.Round(x), math.Round(y)
}
