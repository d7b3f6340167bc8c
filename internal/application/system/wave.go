package system

import (
	"fmt"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// WaveSystem spawns a new, larger wave whenever the enemy set is empty.
type WaveSystem struct {
	spawn       config.SpawnConfig
	increment   int
	screenW     int
	colors      []entity.Color
	appearances entity.Appearances
	rng         Random

	// Level counts cleared waves
	Level int
	// Length is the size of the most recent wave
	Length int
}

// NewWaveSystem creates a wave system. colors is the set new enemies are
// drawn from; every color must be present in appearances or spawning fails.
func NewWaveSystem(cfg *config.GameConfig, colors []entity.Color, appearances entity.Appearances, rng Random) *WaveSystem {
	return &WaveSystem{
		spawn:       cfg.Wave.Spawn,
		increment:   cfg.Wave.Increment,
		screenW:     cfg.Display.ScreenWidth,
		colors:      colors,
		appearances: appearances,
		rng:         rng,
		Level:       cfg.Wave.StartLevel,
		Length:      cfg.Wave.InitialLength,
	}
}

// Update starts the next wave if enemies is empty. It returns the enemy
// set to use for this tick and whether a new wave was spawned.
func (s *WaveSystem) Update(enemies []*entity.Enemy) ([]*entity.Enemy, bool, error) {
	if len(enemies) > 0 {
		return enemies, false, nil
	}

	// Level and Length only move once the wave exists
	level, length := s.Level+1, s.Length+s.increment

	wave, err := s.Spawn(length)
	if err != nil {
		return enemies, false, fmt.Errorf("failed to spawn wave %d: %w", level, err)
	}
	s.Level, s.Length = level, length
	return wave, true, nil
}

// Spawn creates n enemies above the visible area at random x positions
// within the side margins, each with a random color.
func (s *WaveSystem) Spawn(n int) ([]*entity.Enemy, error) {
	minX := s.spawn.MarginLeft
	maxX := s.screenW - s.spawn.MarginRight

	wave := make([]*entity.Enemy, 0, n)
	for range n {
		x := minX + s.rng.Intn(maxX-minX)
		y := s.spawn.MinY + s.rng.Intn(s.spawn.MaxY-s.spawn.MinY)
		c := s.colors[s.rng.Intn(len(s.colors))]

		e, err := entity.NewEnemy(x, y, c, s.appearances)
		if err != nil {
			return nil, err
		}
		wave = append(wave, e)
	}
	return wave, nil
}
