package system

import (
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// MovementSystem moves the player inside the playfield.
// A step that would leave the playfield is ignored, not clamped partway.
type MovementSystem struct {
	screenW      int
	screenH      int
	velocity     int
	bottomMargin int
}

// NewMovementSystem creates a movement system from config
func NewMovementSystem(cfg *config.GameConfig) *MovementSystem {
	return &MovementSystem{
		screenW:      cfg.Display.ScreenWidth,
		screenH:      cfg.Display.ScreenHeight,
		velocity:     cfg.Player.Velocity,
		bottomMargin: cfg.Player.BottomMargin,
	}
}

// UpdatePlayer applies one tick of directional input to player.
// Each direction is checked on its own, so diagonal moves are allowed.
// Returns the number of steps that were rejected at the playfield edge.
func (s *MovementSystem) UpdatePlayer(player *entity.Player, input InputState) int {
	v := s.velocity
	rejected := 0

	if input.Left {
		if player.X-v > 0 {
			player.X -= v
		} else {
			rejected++
		}
	}
	if input.Right {
		if player.X+v+player.Width() < s.screenW {
			player.X += v
		} else {
			rejected++
		}
	}
	if input.Up {
		if player.Y-v > 0 {
			player.Y -= v
		} else {
			rejected++
		}
	}
	if input.Down {
		// Leave room for the health bar under the ship
		if player.Y+v+player.Height()+s.bottomMargin < s.screenH {
			player.Y += v
		} else {
			rejected++
		}
	}

	return rejected
}
