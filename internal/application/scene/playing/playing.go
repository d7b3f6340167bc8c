// Package playing provides the main gameplay scene.
package playing

import (
	"encoding/binary"
	"fmt"
	"image/color"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/system"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/assets"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
	"github.com/younwookim/spaceshooter/internal/infrastructure/render"
)

// HUD layout
const (
	hudMargin     = 10
	hudScale      = 2
	lostScale     = 4
	lostBannerMsg = "You Lost!!"
)

var colorText = color.RGBA{255, 255, 255, 255}

var (
	_ scene.Scene  = (*Playing)(nil)
	_ scene.Canvas = (*render.Screen)(nil)
)

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	atlas  *assets.Atlas
	logger *log.Logger

	state     state.GameState
	player    *entity.Player
	enemies   []*entity.Enemy
	lives     int
	lostTicks int
	tick      int
	kills     int

	input          system.InputSource
	movementSystem *system.MovementSystem
	waveSystem     *system.WaveSystem
	combatSystem   *system.CombatSystem

	renderer *render.Renderer
	screenW  int
	screenH  int
}

// New creates a new Playing scene. All randomness is drawn from rng, so a
// seeded rng with the same input gives the same game.
func New(cfg *config.GameConfig, atlas *assets.Atlas, renderer *render.Renderer, rng system.Random, input system.InputSource, logger *log.Logger) (*Playing, error) {
	colors, err := cfg.EnemyColors()
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy colors: %w", err)
	}

	pc := cfg.Player
	player := entity.NewPlayer(pc.StartX, pc.StartY, pc.Health, pc.MaxHealth, atlas.Player, atlas.PlayerLaser)

	return &Playing{
		config:         cfg,
		atlas:          atlas,
		logger:         logger,
		state:          state.StatePlaying,
		player:         player,
		lives:          cfg.Rules.Lives,
		input:          input,
		movementSystem: system.NewMovementSystem(cfg),
		waveSystem:     system.NewWaveSystem(cfg, colors, atlas.Enemies, rng),
		combatSystem:   system.NewCombatSystem(cfg, rng),
		renderer:       renderer,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
	}, nil
}

// Update reads one tick of input and steps the game (implements scene.Scene).
// Returns ebiten.Termination once the game is over.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	st, err := p.Step(p.input.GetInput())
	if err != nil {
		return nil, err
	}
	if st == state.StateTerminated {
		return nil, ebiten.Termination
	}
	return nil, nil // nil = stay on this scene
}

// Step advances the game by exactly one tick with the given input and
// returns the resulting state. It is the whole simulation; Update and the
// headless simulator both drive the game through it.
func (p *Playing) Step(input system.InputState) (state.GameState, error) {
	switch p.state {
	case state.StateTerminated:
		return p.state, nil
	case state.StateLostPending:
		p.tick++
		p.stepLost()
		return p.state, nil
	}

	p.tick++
	if err := p.stepPlaying(input); err != nil {
		return p.state, err
	}
	return p.state, nil
}

func (p *Playing) stepPlaying(input system.InputState) error {
	enemies, spawned, err := p.waveSystem.Update(p.enemies)
	if err != nil {
		return err
	}
	p.enemies = enemies
	if spawned {
		p.logger.Info("level up", "level", p.waveSystem.Level, "wave", len(p.enemies))
	}

	if input.Close {
		p.state = state.StateTerminated
		p.logger.Info("closed", "tick", p.tick)
		return nil
	}

	p.movementSystem.UpdatePlayer(p.player, input)
	if input.Fire {
		p.player.Fire()
	}

	var result system.CombatResult
	p.enemies, result = p.combatSystem.UpdateEnemies(p.enemies, p.player)
	p.lives -= result.Escaped
	if result.Escaped > 0 {
		p.logger.Debug("enemy escaped", "lives", p.lives)
	}

	var killed int
	p.enemies, killed = p.combatSystem.UpdatePlayerLasers(p.player, p.enemies)
	p.kills += killed

	if p.lives <= 0 || p.player.Health <= 0 {
		p.state = state.StateLostPending
		p.lostTicks = 0
		p.logger.Info("game over",
			"level", p.waveSystem.Level,
			"lives", p.lives,
			"health", p.player.Health,
			"kills", p.kills,
		)
	}
	return nil
}

// stepLost counts down the lost banner delay
func (p *Playing) stepLost() {
	p.lostTicks++
	if p.lostTicks > p.config.LostDelayTicks() {
		p.state = state.StateTerminated
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.DrawTo(p.renderer.Target(screen))
}

// DrawTo renders the background, HUD, enemies, player and, after a loss,
// the lost banner.
func (p *Playing) DrawTo(c scene.Canvas) {
	c.Blit(p.atlas.Background, 0, 0)

	livesLabel := fmt.Sprintf("Lives: %d", p.lives)
	levelLabel := fmt.Sprintf("Level: %d", p.waveSystem.Level)
	c.Text(livesLabel, hudMargin, hudMargin, hudScale, colorText)
	levelW, _ := c.TextSize(levelLabel, hudScale)
	c.Text(levelLabel, float64(p.screenW)-levelW-hudMargin, hudMargin, hudScale, colorText)

	for _, e := range p.enemies {
		e.Draw(c)
	}
	p.player.Draw(c)

	if p.Lost() {
		w, h := c.TextSize(lostBannerMsg, lostScale)
		x, y := scene.Centered(p.screenW, p.screenH, w, h)
		c.Text(lostBannerMsg, x, y, lostScale, colorText)
	}
}

// OnEnter is called when the scene becomes active
func (p *Playing) OnEnter() {
	p.logger.Debug("playing", "lives", p.lives, "health", p.player.Health)
}

// OnExit is called when the scene is left
func (p *Playing) OnExit() {}

// State returns the current loop state
func (p *Playing) State() state.GameState {
	return p.state
}

// Lost reports whether the player has lost. It stays true after the lost
// delay ends.
func (p *Playing) Lost() bool {
	return p.state == state.StateLostPending ||
		(p.state == state.StateTerminated && (p.lives <= 0 || p.player.Health <= 0))
}

// Player returns the player ship
func (p *Playing) Player() *entity.Player {
	return p.player
}

// Lives returns the remaining lives
func (p *Playing) Lives() int {
	return p.lives
}

// Level returns the current level
func (p *Playing) Level() int {
	return p.waveSystem.Level
}

// Tick returns the number of ticks stepped so far
func (p *Playing) Tick() int {
	return p.tick
}

// Kills returns the number of enemies shot down by the player
func (p *Playing) Kills() int {
	return p.kills
}

// Digest hashes the full simulation state. Two runs with the same seed and
// input have equal digests after every tick.
func (p *Playing) Digest() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 256)

	put := func(vals ...int) {
		for _, v := range vals {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
		}
	}
	putLasers := func(lasers []*entity.Laser) {
		put(len(lasers))
		for _, l := range lasers {
			put(l.X, l.Y)
		}
	}

	put(p.tick, int(p.state), p.lives, p.lostTicks, p.kills, p.waveSystem.Level, p.waveSystem.Length)
	put(p.player.X, p.player.Y, p.player.Health, p.player.Cooldown())
	putLasers(p.player.Lasers)

	put(len(p.enemies))
	for _, e := range p.enemies {
		put(e.X, e.Y, e.Health, e.Cooldown())
		buf = append(buf, string(e.Color)...)
		putLasers(e.Lasers)

		// Flush per enemy to keep the buffer small
		_, _ = d.Write(buf)
		buf = buf[:0]
	}
	_, _ = d.Write(buf)

	return d.Sum64()
}
