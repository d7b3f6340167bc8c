package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidColorKind is returned when an enemy is requested with a color
// that has no entry in the appearance table.
var ErrInvalidColorKind = errors.New("invalid color kind")

// Color tags an enemy's appearance
type Color string

const (
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
	ColorGreen Color = "green"
)

// AllColors lists the built-in enemy colors in a stable order
var AllColors = []Color{ColorRed, ColorBlue, ColorGreen}

// ParseColor converts a config string into a built-in Color.
func ParseColor(s string) (Color, error) {
	for _, c := range AllColors {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColorKind, s)
}

// Appearance is the (ship, laser) sprite pair for one enemy color
type Appearance struct {
	Ship  *Sprite
	Laser *Sprite
}

// Appearances maps enemy colors to their sprites. It is built once at
// startup and shared read-only.
type Appearances map[Color]Appearance

// Lookup returns the appearance for c or ErrInvalidColorKind.
func (a Appearances) Lookup(c Color) (Appearance, error) {
	app, ok := a[c]
	if !ok || app.Ship == nil || app.Laser == nil {
		return Appearance{}, fmt.Errorf("%w: %q", ErrInvalidColorKind, c)
	}
	return app, nil
}
