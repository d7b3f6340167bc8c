// Package collision provides pixel-accurate hit detection between sprites.
//
// A Mask is a per-pixel opacity map derived once from an image. Two masks
// collide when at least one opaque pixel of each lands on the same screen
// position. Bounding boxes are only used to narrow the scan.
package collision

import "image"

// AlphaThreshold is the alpha value a pixel must exceed to count as opaque.
// Alpha is compared in 8-bit range (0-255).
const AlphaThreshold = 127

// Mask is an immutable per-pixel opacity map.
type Mask struct {
	w, h int
	bits []bool // row-major, len = w*h
}

// NewMask creates an empty mask of the given size.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// FromImage derives a mask from an image's alpha channel.
// The mask origin is the image's Bounds().Min.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA returns 16-bit alpha
			if a>>8 > AlphaThreshold {
				m.bits[y*m.w+x] = true
			}
		}
	}
	return m
}

// FromRows builds a mask from strings where any non-space, non-'.' rune is
// opaque. Rows shorter than the longest one are padded with transparency.
func FromRows(rows ...string) *Mask {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	m := NewMask(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] != ' ' && r[x] != '.' {
				m.bits[y*w+x] = true
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Get reports whether the pixel at (x, y) is opaque. Out of range is transparent.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether any opaque pixel of m coincides with an opaque
// pixel of other when other's top-left corner is placed at (dx, dy)
// relative to m's top-left corner.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	_, _, ok := m.OverlapAt(other, dx, dy)
	return ok
}

// OverlapAt is Overlap that also returns the first overlapping pixel in m's
// coordinates, scanning rows top to bottom.
func (m *Mask) OverlapAt(other *Mask, dx, dy int) (x, y int, ok bool) {
	if m == nil || other == nil {
		return 0, 0, false
	}

	// Intersection of both rectangles in m's space
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, dx+other.w)
	y1 := min(m.h, dy+other.h)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, false
	}

	for py := y0; py < y1; py++ {
		row := py * m.w
		orow := (py - dy) * other.w
		for px := x0; px < x1; px++ {
			if m.bits[row+px] && other.bits[orow+px-dx] {
				return px, py, true
			}
		}
	}
	return 0, 0, false
}
