package entity

import "github.com/younwookim/spaceshooter/internal/domain/collision"

// Laser is a projectile fired by a ship. It only travels vertically.
type Laser struct {
	X, Y   int
	sprite *Sprite
}

// NewLaser creates a laser with its top-left corner at (x, y)
func NewLaser(x, y int, sprite *Sprite) *Laser {
	return &Laser{X: x, Y: y, sprite: sprite}
}

// Move adds vel to Y. Negative vel moves up, positive moves down.
func (l *Laser) Move(vel int) {
	l.Y += vel
}

// OffScreen reports whether the laser has left the vertical range [0, height].
func (l *Laser) OffScreen(height int) bool {
	return l.Y < 0 || l.Y > height
}

// Collides reports whether the laser's pixels overlap obj's pixels.
func (l *Laser) Collides(obj collision.Collidable) bool {
	return collision.Collide(l, obj)
}

// Position implements collision.Collidable
func (l *Laser) Position() (int, int) {
	return l.X, l.Y
}

// HitMask implements collision.Collidable
func (l *Laser) HitMask() *collision.Mask {
	return l.sprite.Mask
}

// Draw blits the laser image at its position
func (l *Laser) Draw(s Surface) {
	s.Blit(l.sprite.Image, float64(l.X), float64(l.Y))
}
