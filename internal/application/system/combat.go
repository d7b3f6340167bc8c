package system

import (
	"github.com/younwookim/spaceshooter/internal/domain/collision"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// CombatResult summarizes one enemy pass
type CombatResult struct {
	// LaserHits is the number of enemy lasers that struck the player
	LaserHits int
	// Rammed is the number of enemies that crashed into the player
	Rammed int
	// Escaped is the number of enemies that crossed the bottom edge
	Escaped int
	// Fired is the number of enemy shots taken
	Fired int
}

// CombatSystem advances enemies and resolves every hit in the playfield
type CombatSystem struct {
	screenH         int
	enemyVel        int
	enemyLaserVel   int
	playerLaserVel  int
	collisionDamage int
	fireOdds        int
	rng             Random
}

// NewCombatSystem creates a combat system from config
func NewCombatSystem(cfg *config.GameConfig, rng Random) *CombatSystem {
	return &CombatSystem{
		screenH:         cfg.Display.ScreenHeight,
		enemyVel:        cfg.Enemy.Velocity,
		enemyLaserVel:   cfg.Enemy.LaserVelocity,
		playerLaserVel:  cfg.Player.LaserVelocity,
		collisionDamage: cfg.Rules.CollisionDamage,
		fireOdds:        cfg.EnemyFireOdds(),
		rng:             rng,
	}
}

// UpdateEnemies runs one tick for every enemy, in order: move down, move
// its lasers against the player, maybe fire, then either ram the player
// or escape past the bottom edge. Rammed and escaped enemies are removed.
// The caller owns lives; it should subtract result.Escaped.
func (s *CombatSystem) UpdateEnemies(enemies []*entity.Enemy, player *entity.Player) ([]*entity.Enemy, CombatResult) {
	var result CombatResult

	kept := enemies[:0]
	for _, e := range enemies {
		e.Move(s.enemyVel)
		result.LaserHits += e.MoveLasers(s.enemyLaserVel, s.screenH, player)

		if s.rng.Intn(s.fireOdds) == 1 && e.Fire() {
			result.Fired++
		}

		switch {
		case collision.Collide(e, player):
			player.TakeDamage(s.collisionDamage)
			result.Rammed++
		case e.Bottom() > s.screenH:
			result.Escaped++
		default:
			kept = append(kept, e)
		}
	}
	clear(enemies[len(kept):])

	return kept, result
}

// UpdatePlayerLasers moves the player's lasers up and removes every enemy
// they hit. Returns the remaining enemies and the number removed.
func (s *CombatSystem) UpdatePlayerLasers(player *entity.Player, enemies []*entity.Enemy) ([]*entity.Enemy, int) {
	return player.MoveLasers(-s.playerLaserVel, s.screenH, enemies)
}
