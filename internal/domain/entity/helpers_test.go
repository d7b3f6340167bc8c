package entity

import (
	"image"
	"image/color"
)

// solidSprite returns a fully opaque w x h sprite
func solidSprite(w, h int) *Sprite {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.Opaque)
		}
	}
	return NewSprite(img)
}

type drawOp struct {
	kind string // "blit" or "rect"
	img  image.Image
	x, y float64
	w, h float64
	c    color.Color
}

// fakeSurface records draw calls in order
type fakeSurface struct {
	ops []drawOp
}

func (f *fakeSurface) Blit(img image.Image, x, y float64) {
	f.ops = append(f.ops, drawOp{kind: "blit", img: img, x: x, y: y})
}

func (f *fakeSurface) FillRect(x, y, w, h float64, c color.Color) {
	f.ops = append(f.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, c: c})
}

func testAppearances() Appearances {
	return Appearances{
		ColorRed:   {Ship: solidSprite(20, 20), Laser: solidSprite(4, 4)},
		ColorBlue:  {Ship: solidSprite(20, 20), Laser: solidSprite(4, 4)},
		ColorGreen: {Ship: solidSprite(20, 20), Laser: solidSprite(4, 4)},
	}
}
