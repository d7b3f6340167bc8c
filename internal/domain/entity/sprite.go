package entity

import (
	"image"
	"image/color"

	"github.com/younwookim/spaceshooter/internal/domain/collision"
)

// Sprite pairs a drawable image with the hit mask derived from it.
// Both are immutable once created and may be shared between entities.
type Sprite struct {
	Image image.Image
	Mask  *collision.Mask
}

// NewSprite derives the hit mask from img.
func NewSprite(img image.Image) *Sprite {
	return &Sprite{
		Image: img,
		Mask:  collision.FromImage(img),
	}
}

// Width returns the image width in pixels
func (s *Sprite) Width() int {
	return s.Image.Bounds().Dx()
}

// Height returns the image height in pixels
func (s *Sprite) Height() int {
	return s.Image.Bounds().Dy()
}

// Surface is the display target entities draw themselves onto.
type Surface interface {
	// Blit draws img with its top-left corner at (x, y).
	Blit(img image.Image, x, y float64)

	// FillRect draws a solid rectangle. A non-positive width or height draws nothing.
	FillRect(x, y, w, h float64, c color.Color)
}
