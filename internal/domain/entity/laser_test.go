package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaser_Move(t *testing.T) {
	l := NewLaser(10, 100, solidSprite(4, 4))

	l.Move(-5)
	assert.Equal(t, 95, l.Y)
	l.Move(5)
	l.Move(5)
	assert.Equal(t, 105, l.Y)
	assert.Equal(t, 10, l.X)
}

func TestLaser_OffScreen(t *testing.T) {
	tests := []struct {
		y    int
		want bool
	}{
		{-1, true},
		{0, false},
		{375, false},
		{750, false},
		{751, true},
	}

	for _, tt := range tests {
		l := NewLaser(0, tt.y, solidSprite(1, 1))
		assert.Equal(t, tt.want, l.OffScreen(750), "y=%d", tt.y)
	}
}

func TestLaser_Collides(t *testing.T) {
	l := NewLaser(10, 10, solidSprite(4, 4))
	near := NewLaser(12, 12, solidSprite(4, 4))
	far := NewLaser(14, 10, solidSprite(4, 4))

	assert.True(t, l.Collides(near))
	assert.True(t, near.Collides(l))
	assert.False(t, l.Collides(far), "touching edges do not overlap")
}

func TestLaser_Draw(t *testing.T) {
	sprite := solidSprite(4, 4)
	l := NewLaser(7, 9, sprite)
	surf := &fakeSurface{}

	l.Draw(surf)

	assert.Equal(t, []drawOp{{kind: "blit", img: sprite.Image, x: 7, y: 9}}, surf.ops)
}
