// Package render draws game entities onto ebiten images.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

var _ entity.Surface = (*Screen)(nil)

// Renderer owns the GPU copies of sprite images and the HUD font.
// Keep one Renderer for the lifetime of the game.
type Renderer struct {
	images map[image.Image]*ebiten.Image
	face   text.Face
}

// NewRenderer creates a renderer with an empty image cache
func NewRenderer() *Renderer {
	return &Renderer{
		images: make(map[image.Image]*ebiten.Image),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Target returns a Surface that draws onto dst
func (r *Renderer) Target(dst *ebiten.Image) *Screen {
	return &Screen{r: r, dst: dst}
}

// image returns the ebiten copy of img, uploading it on first use
func (r *Renderer) image(img image.Image) *ebiten.Image {
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	eimg, ok := r.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		r.images[img] = eimg
	}
	return eimg
}

// TextSize returns the width and height of str drawn at scale
func (r *Renderer) TextSize(str string, scale float64) (float64, float64) {
	m := r.face.Metrics()
	w, h := text.Measure(str, r.face, m.HAscent+m.HDescent+m.HLineGap)
	return w * scale, h * scale
}

// Screen is an entity.Surface backed by an ebiten image
type Screen struct {
	r   *Renderer
	dst *ebiten.Image
}

// Blit draws img with its top-left corner at (x, y)
func (s *Screen) Blit(img image.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(s.r.image(img), op)
}

// FillRect draws a solid rectangle. Non-positive sizes draw nothing.
func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	ebitenutil.DrawRect(s.dst, x, y, w, h, c)
}

// Text draws str with its top-left corner at (x, y), scaled by scale
func (s *Screen) Text(str string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.r.face, op)
}

// TextSize is a shortcut for Renderer.TextSize
func (s *Screen) TextSize(str string, scale float64) (float64, float64) {
	return s.r.TextSize(str, scale)
}
