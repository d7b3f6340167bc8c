package entity

import "github.com/younwookim/spaceshooter/internal/domain/collision"

const (
	// CooldownTicks is the number of ticks a ship must wait between shots.
	// 30 ticks is half a second at 60 FPS.
	CooldownTicks = 30

	// LaserDamage is the health a ship loses per laser hit.
	LaserDamage = 10

	// DefaultHealth is the starting health of every ship.
	DefaultHealth = 100
)

// Target is what a ship's lasers can hit: a positioned, masked body that
// takes damage.
type Target interface {
	collision.Collidable
	TakeDamage(amount int)
}

// Shooter is the capability set shared by Player and Enemy.
type Shooter interface {
	collision.Collidable
	Fire() bool
	Draw(s Surface)
	Width() int
	Height() int
}

var (
	_ Shooter = (*Player)(nil)
	_ Shooter = (*Enemy)(nil)
	_ Target  = (*Player)(nil)
)

// Ship holds the state common to every ship: position, health, sprites,
// owned lasers and the fire cooldown.
type Ship struct {
	X, Y   int
	Health int

	// Lasers are kept in fire order
	Lasers []*Laser

	sprite   *Sprite
	laser    *Sprite
	cooldown int // ticks since last shot, 0 = ready
}

func newShip(x, y, health int, sprite, laser *Sprite) Ship {
	return Ship{
		X:      x,
		Y:      y,
		Health: health,
		sprite: sprite,
		laser:  laser,
	}
}

// Cooldown returns the current cooldown counter (0 = ready to fire)
func (s *Ship) Cooldown() int {
	return s.cooldown
}

// AdvanceCooldown ages the cooldown counter by one tick. Once the counter
// reaches CooldownTicks it resets to 0 and the ship may fire again.
// A ready ship (counter 0) stays ready.
func (s *Ship) AdvanceCooldown() {
	if s.cooldown >= CooldownTicks {
		s.cooldown = 0
	} else if s.cooldown > 0 {
		s.cooldown++
	}
}

// Fire spawns a laser at the ship's position if the cooldown allows it.
// Returns true if a laser was created.
func (s *Ship) Fire() bool {
	return s.fireAt(s.X, s.Y)
}

func (s *Ship) fireAt(x, y int) bool {
	if s.cooldown != 0 {
		return false
	}
	s.Lasers = append(s.Lasers, NewLaser(x, y, s.laser))
	s.cooldown = 1
	return true
}

// MoveLasers advances the cooldown, moves every laser by vel and resolves
// hits against target. Lasers that leave [0, screenH] are dropped; a laser
// that hits the target deals LaserDamage and is dropped.
// Returns the number of hits.
func (s *Ship) MoveLasers(vel, screenH int, target Target) int {
	s.AdvanceCooldown()

	hits := 0
	kept := s.Lasers[:0]
	for _, l := range s.Lasers {
		l.Move(vel)
		if l.OffScreen(screenH) {
			continue
		}
		if l.Collides(target) {
			target.TakeDamage(LaserDamage)
			hits++
			continue
		}
		kept = append(kept, l)
	}
	clear(s.Lasers[len(kept):])
	s.Lasers = kept

	return hits
}

// TakeDamage subtracts amount from Health. Health may go negative.
func (s *Ship) TakeDamage(amount int) {
	s.Health -= amount
}

// Draw blits the ship, then each of its lasers on top.
func (s *Ship) Draw(surface Surface) {
	surface.Blit(s.sprite.Image, float64(s.X), float64(s.Y))
	for _, l := range s.Lasers {
		l.Draw(surface)
	}
}

// Width returns the ship image width
func (s *Ship) Width() int {
	return s.sprite.Width()
}

// Height returns the ship image height
func (s *Ship) Height() int {
	return s.sprite.Height()
}

// Position implements collision.Collidable
func (s *Ship) Position() (int, int) {
	return s.X, s.Y
}

// HitMask implements collision.Collidable
func (s *Ship) HitMask() *collision.Mask {
	return s.sprite.Mask
}
