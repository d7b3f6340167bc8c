package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// DefaultGameConfig returns the built-in game tuning
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Title:        "Space Shooter",
			ScreenWidth:  750,
			ScreenHeight: 750,
			Scale:        1,
			Framerate:    60,
		},
		Player: PlayerConfig{
			StartX:        325,
			StartY:        630,
			Health:        100,
			MaxHealth:     100,
			Velocity:      4,
			LaserVelocity: 5,
			BottomMargin:  13,
		},
		Enemy: EnemyConfig{
			Velocity:         1,
			LaserVelocity:    5,
			FireEverySeconds: 3,
			Colors:           []string{"red", "blue", "green"},
		},
		Wave: WaveConfig{
			StartLevel:    0,
			InitialLength: 3,
			Increment:     5,
			Spawn: SpawnConfig{
				MarginLeft:  50,
				MarginRight: 100,
				MinY:        -1000,
				MaxY:        -100,
			},
		},
		Rules: RulesConfig{
			Lives:            10,
			CollisionDamage:  10,
			LostDelaySeconds: 3,
		},
		Sprites: SpritesConfig{
			Player: SpriteConfig{Width: 94, Height: 80},
			Enemy:  SpriteConfig{Width: 44, Height: 40},
			Laser:  SpriteConfig{Width: 94, Height: 80},
		},
	}
}

// Validate checks that the config describes a playable game
func (c *GameConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, d.Framerate)
	}
	if c.Enemy.FireEverySeconds <= 0 {
		return fmt.Errorf("%w: enemy fireEverySeconds %d", ErrInvalidConfig, c.Enemy.FireEverySeconds)
	}

	if len(c.Enemy.Colors) == 0 {
		return fmt.Errorf("%w: no enemy colors", ErrInvalidConfig)
	}
	for _, name := range c.Enemy.Colors {
		if _, err := entity.ParseColor(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	s := c.Wave.Spawn
	if s.MarginLeft >= d.ScreenWidth-s.MarginRight {
		return fmt.Errorf("%w: empty spawn x range [%d, %d)", ErrInvalidConfig, s.MarginLeft, d.ScreenWidth-s.MarginRight)
	}
	if s.MinY >= s.MaxY {
		return fmt.Errorf("%w: empty spawn y range [%d, %d)", ErrInvalidConfig, s.MinY, s.MaxY)
	}
	if c.Wave.InitialLength < 0 || c.Wave.Increment < 0 {
		return fmt.Errorf("%w: wave length must not shrink", ErrInvalidConfig)
	}
	if c.Wave.InitialLength+c.Wave.Increment <= 0 {
		return fmt.Errorf("%w: first wave is empty", ErrInvalidConfig)
	}

	if c.Rules.Lives <= 0 {
		return fmt.Errorf("%w: lives %d", ErrInvalidConfig, c.Rules.Lives)
	}
	if c.Rules.LostDelaySeconds < 0 {
		return fmt.Errorf("%w: lostDelaySeconds %d", ErrInvalidConfig, c.Rules.LostDelaySeconds)
	}

	for name, sp := range map[string]SpriteConfig{
		"player": c.Sprites.Player,
		"enemy":  c.Sprites.Enemy,
		"laser":  c.Sprites.Laser,
	} {
		if sp.Width <= 0 || sp.Height <= 0 {
			return fmt.Errorf("%w: %s sprite size %dx%d", ErrInvalidConfig, name, sp.Width, sp.Height)
		}
	}

	return nil
}

// EnemyColors returns the configured colors as entity colors.
// Call Validate first; unknown names are reported as ErrInvalidColorKind.
func (c *GameConfig) EnemyColors() ([]entity.Color, error) {
	colors := make([]entity.Color, 0, len(c.Enemy.Colors))
	for _, name := range c.Enemy.Colors {
		col, err := entity.ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors = append(colors, col)
	}
	return colors, nil
}
