package entity

import (
	"image/color"
	"slices"
)

// Health bar layout, in pixels below the ship image
const (
	HealthBarGap    = 10
	HealthBarHeight = 10
)

var (
	colorHealthBG = color.RGBA{255, 0, 0, 255}
	colorHealthFG = color.RGBA{0, 255, 0, 255}
)

// Player is the ship controlled by the user.
type Player struct {
	Ship

	// MaxHealth is fixed at construction and scales the health bar.
	// It is independent of later Health changes and of the initial Health.
	MaxHealth int
}

// NewPlayer creates a player at pixel position (x, y).
// health is the starting health and maxHealth the full-bar value; they are
// separate so a configuration can start the player damaged or overhealed.
func NewPlayer(x, y, health, maxHealth int, sprite, laser *Sprite) *Player {
	return &Player{
		Ship:      newShip(x, y, health, sprite, laser),
		MaxHealth: maxHealth,
	}
}

// MoveLasers advances the cooldown, moves every laser by vel and resolves
// hits against enemies. Lasers that leave [0, screenH] are dropped. A laser
// that overlaps an enemy removes that enemy outright (enemy health is not
// touched) and is dropped itself; it removes at most one enemy, the first
// in collection order.
// Returns the remaining enemies and the number removed.
func (p *Player) MoveLasers(vel, screenH int, enemies []*Enemy) ([]*Enemy, int) {
	p.AdvanceCooldown()

	killed := 0
	kept := p.Lasers[:0]
	for _, l := range p.Lasers {
		l.Move(vel)
		if l.OffScreen(screenH) {
			continue
		}
		i := slices.IndexFunc(enemies, func(e *Enemy) bool { return l.Collides(e) })
		if i >= 0 {
			enemies = slices.Delete(enemies, i, i+1)
			killed++
			continue
		}
		kept = append(kept, l)
	}
	clear(p.Lasers[len(kept):])
	p.Lasers = kept

	return enemies, killed
}

// HealthRatio returns Health/MaxHealth, floored at 0. It may exceed 1 when
// Health is above MaxHealth, in which case the bar overdraws.
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return max(0, float64(p.Health)/float64(p.MaxHealth))
}

// Draw draws the ship, its lasers and the health bar below the ship.
func (p *Player) Draw(s Surface) {
	p.Ship.Draw(s)
	p.drawHealthBar(s)
}

func (p *Player) drawHealthBar(s Surface) {
	w := float64(p.Width())
	x := float64(p.X)
	y := float64(p.Y + p.Height() + HealthBarGap)

	s.FillRect(x, y, w, HealthBarHeight, colorHealthBG)
	s.FillRect(x, y, float64(int(w*p.HealthRatio())), HealthBarHeight, colorHealthFG)
}
