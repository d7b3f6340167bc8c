package playing

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/system"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/assets"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
	"github.com/younwookim/spaceshooter/internal/infrastructure/render"
)

func solidSprite(w, h int) *entity.Sprite {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return entity.NewSprite(img)
}

// createTestAtlas uses 20x20 solid ships and 4x4 solid lasers so overlaps
// are easy to set up
func createTestAtlas() *assets.Atlas {
	table := entity.Appearances{}
	for _, c := range entity.AllColors {
		table[c] = entity.Appearance{Ship: solidSprite(20, 20), Laser: solidSprite(4, 4)}
	}
	return &assets.Atlas{
		Player:      solidSprite(20, 20),
		PlayerLaser: solidSprite(4, 4),
		Enemies:     table,
		Background:  image.NewRGBA(image.Rect(0, 0, 750, 750)),
	}
}

func createTestPlaying(t *testing.T, cfg *config.GameConfig) *Playing {
	t.Helper()
	p, err := New(cfg, createTestAtlas(), render.NewRenderer(), rand.New(rand.NewSource(1)), system.HoldInput{}, log.New(io.Discard))
	require.NoError(t, err)
	return p
}

func TestNew_SharesRenderer(t *testing.T) {
	r := render.NewRenderer()

	p, err := New(config.DefaultGameConfig(), createTestAtlas(), r, rand.New(rand.NewSource(1)), system.HoldInput{}, log.New(io.Discard))

	require.NoError(t, err)
	assert.Same(t, r, p.renderer)
}

func (p *Playing) addEnemy(t *testing.T, x, y int) *entity.Enemy {
	t.Helper()
	e, err := entity.NewEnemy(x, y, entity.ColorRed, p.atlas.Enemies)
	require.NoError(t, err)
	p.enemies = append(p.enemies, e)
	return e
}

type drawOp struct {
	kind  string
	str   string
	x, y  float64
	scale float64
}

// fakeCanvas measures every glyph as 7x13 pixels
type fakeCanvas struct {
	ops []drawOp
}

func (c *fakeCanvas) Blit(_ image.Image, x, y float64) {
	c.ops = append(c.ops, drawOp{kind: "blit", x: x, y: y})
}

func (c *fakeCanvas) FillRect(x, y, _, _ float64, _ color.Color) {
	c.ops = append(c.ops, drawOp{kind: "rect", x: x, y: y})
}

func (c *fakeCanvas) Text(str string, x, y, scale float64, _ color.Color) {
	c.ops = append(c.ops, drawOp{kind: "text", str: str, x: x, y: y, scale: scale})
}

func (c *fakeCanvas) TextSize(str string, scale float64) (float64, float64) {
	return float64(len(str)) * 7 * scale, 13 * scale
}

func (c *fakeCanvas) text(str string) (drawOp, bool) {
	for _, op := range c.ops {
		if op.kind == "text" && op.str == str {
			return op, true
		}
	}
	return drawOp{}, false
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestPlaying(t, config.DefaultGameConfig())

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 10, p.Lives())
	assert.Equal(t, 0, p.Level())
	assert.Empty(t, p.enemies)
	assert.Equal(t, 325, p.Player().X)
	assert.Equal(t, 630, p.Player().Y)
	assert.Equal(t, 100, p.Player().Health)
	assert.Equal(t, 100, p.Player().MaxHealth)
}

func TestNewPlaying_SeparateMaxHealth(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Player.Health = 60
	cfg.Player.MaxHealth = 120

	p := createTestPlaying(t, cfg)

	assert.Equal(t, 60, p.Player().Health)
	assert.Equal(t, 120, p.Player().MaxHealth)
}

func TestNewPlaying_InvalidColor(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Enemy.Colors = []string{"purple"}

	_, err := New(cfg, createTestAtlas(), render.NewRenderer(), rand.New(rand.NewSource(1)), system.HoldInput{}, log.New(io.Discard))

	assert.ErrorIs(t, err, entity.ErrInvalidColorKind)
}

func TestStep_FirstTickSpawnsWave(t *testing.T) {
	p := createTestPlaying(t, config.DefaultGameConfig())

	st, err := p.Step(system.InputState{})

	require.NoError(t, err)
	assert.Equal(t, state.StatePlaying, st)
	assert.Equal(t, 1, p.Level())
	assert.Equal(t, 8, p.waveSystem.Length)
	assert.Len(t, p.enemies, 8)
	for _, e := range p.enemies {
		assert.Less(t, e.Y, 0, "waves start above the screen")
	}
}

func TestStep_LoseScenario(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Rules.Lives = 1
	p := createTestPlaying(t, cfg)
	// Bottom edge passes 750 after one step
	p.addEnemy(t, 50, 730)

	st, err := p.Step(system.InputState{})
	require.NoError(t, err)

	assert.Equal(t, 0, p.Lives())
	assert.Equal(t, state.StateLostPending, st, "lost on the same tick")
	assert.True(t, p.Lost())

	x, y := p.Player().X, p.Player().Y
	delay := cfg.Display.Framerate * 3
	for i := 1; i <= delay; i++ {
		st, err = p.Step(system.InputState{Left: true, Up: true, Fire: true})
		require.NoError(t, err)
		require.Equal(t, state.StateLostPending, st, "tick %d", i)
	}
	assert.Equal(t, x, p.Player().X, "input ignored while lost")
	assert.Equal(t, y, p.Player().Y)
	assert.Empty(t, p.Player().Lasers)

	st, err = p.Step(system.InputState{})
	require.NoError(t, err)
	assert.Equal(t, state.StateTerminated, st, "terminates after FPS*3+1 lost ticks")
	assert.True(t, p.Lost())

	tick := p.Tick()
	st, _ = p.Step(system.InputState{})
	assert.Equal(t, state.StateTerminated, st)
	assert.Equal(t, tick, p.Tick(), "terminated game does not advance")
}

func TestStep_HealthLoss(t *testing.T) {
	p := createTestPlaying(t, config.DefaultGameConfig())
	p.Player().Health = 10
	p.addEnemy(t, 325, 615)

	st, err := p.Step(system.InputState{})

	require.NoError(t, err)
	assert.Equal(t, state.StateLostPending, st)
	assert.Equal(t, 0, p.Player().Health)
	assert.Equal(t, 10, p.Lives())
}

func TestStep_ClampScenario(t *testing.T) {
	p := createTestPlaying(t, config.DefaultGameConfig())
	p.Player().X = 0

	for range 100 {
		_, err := p.Step(system.InputState{Left: true})
		require.NoError(t, err)
		assert.Equal(t, 0, p.Player().X)
	}
}

func TestStep_EnemyPlayerCollision(t *testing.T) {
	p := createTestPlaying(t, config.DefaultGameConfig())
	other := p.addEnemy(t, 50, 100)
	rammer := p.addEnemy(t, 330, 615)

	st, err := p.Step(system.InputState{})

	require.NoError(t, err)
	assert.Equal(t, state.StatePlaying, st)
	assert.Equal(t, 90, p.Player().Health)
	assert.Equal(t, []*entity.Enemy{other}, p.enemies)
	assert.NotContains(t, p.enemies, rammer)
	assert.Equal(t, 10, p.Lives(), "a rammed enemy does not cost a life")
}

func TestStep_PlayerLaserKillsEnemy(t *testing.T) {
	p := createTestPlaying(t, config.DefaultGameConfig())
	target := p.addEnemy(t, 325, 500)

	for range 30 {
		_, err := p.Step(system.InputState{Fire: true})
		require.NoError(t, err)
		if p.Kills() > 0 {
			break
		}
	}

	assert.Equal(t, 1, p.Kills())
	assert.Empty(t, p.enemies)
	assert.Empty(t, p.Player().Lasers, "the laser is spent on the hit")
	assert.Equal(t, entity.DefaultHealth, target.Health, "enemy health is not touched")
	assert.Equal(t, 100, p.Player().Health)
}

func TestStep_Close(t *testing.T) {
	p := createTestPlaying(t, config.DefaultGameConfig())

	st, err := p.Step(system.InputState{Close: true, Fire: true})

	require.NoError(t, err)
	assert.Equal(t, state.StateTerminated, st)
	assert.False(t, p.Lost())
	assert.Empty(t, p.Player().Lasers, "close wins over the rest of the tick")
}

func TestUpdate_Termination(t *testing.T) {
	cfg := config.DefaultGameConfig()
	p, err := New(cfg, createTestAtlas(), render.NewRenderer(), rand.New(rand.NewSource(1)), system.HoldInput{Close: true}, log.New(io.Discard))
	require.NoError(t, err)

	next, err := p.Update(1.0 / 60.0)

	assert.Nil(t, next)
	assert.True(t, errors.Is(err, ebiten.Termination))
}

func TestUpdate_ReturnsNilWhenPlaying(t *testing.T) {
	p := createTestPlaying(t, config.DefaultGameConfig())

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
}

func TestUpdate_SpawnError(t *testing.T) {
	atlas := createTestAtlas()
	delete(atlas.Enemies, entity.ColorGreen)
	cfg := config.DefaultGameConfig()
	cfg.Enemy.Colors = []string{"green"}

	p, err := New(cfg, atlas, render.NewRenderer(), rand.New(rand.NewSource(1)), system.HoldInput{}, log.New(io.Discard))
	require.NoError(t, err)

	_, err = p.Update(1.0 / 60.0)

	assert.ErrorIs(t, err, entity.ErrInvalidColorKind)
}

func TestDigest_Deterministic(t *testing.T) {
	cfg := config.DefaultGameConfig()
	atlas := assets.NewAtlas(cfg)

	run := func(seed int64) []uint64 {
		p, err := New(cfg, atlas, render.NewRenderer(), rand.New(rand.NewSource(seed)), system.HoldInput{}, log.New(io.Discard))
		require.NoError(t, err)

		var digests []uint64
		for i := range 900 {
			in := system.InputState{Fire: true, Left: i%200 < 100, Right: i%200 >= 100}
			_, err := p.Step(in)
			require.NoError(t, err)
			if i%100 == 0 {
				digests = append(digests, p.Digest())
			}
		}
		return digests
	}

	a := run(7)
	b := run(7)
	c := run(8)

	assert.Equal(t, a, b, "same seed and input give the same game")
	assert.NotEqual(t, a, c)
}

func TestDrawTo_HUD(t *testing.T) {
	p := createTestPlaying(t, config.DefaultGameConfig())
	_, err := p.Step(system.InputState{})
	require.NoError(t, err)

	c := &fakeCanvas{}
	p.DrawTo(c)

	require.NotEmpty(t, c.ops)
	assert.Equal(t, drawOp{kind: "blit"}, c.ops[0], "background first")

	lives, ok := c.text("Lives: 10")
	require.True(t, ok)
	assert.Equal(t, 10.0, lives.x)
	assert.Equal(t, 10.0, lives.y)

	// "Level: 1" is 8 glyphs at scale 2
	level, ok := c.text("Level: 1")
	require.True(t, ok)
	assert.Equal(t, 750.0-8*7*2-10, level.x)

	_, ok = c.text(lostBannerMsg)
	assert.False(t, ok)

	// Player and health bar are drawn last
	last := c.ops[len(c.ops)-1]
	assert.Equal(t, "rect", last.kind)
}

func TestDrawTo_LostBanner(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Rules.Lives = 1
	p := createTestPlaying(t, cfg)
	p.addEnemy(t, 50, 730)
	_, err := p.Step(system.InputState{})
	require.NoError(t, err)

	c := &fakeCanvas{}
	p.DrawTo(c)

	banner, ok := c.text(lostBannerMsg)
	require.True(t, ok)
	// 10 glyphs at scale 4: 280x52, centered on 750x750
	assert.Equal(t, 235.0, banner.x)
	assert.Equal(t, 349.0, banner.y)
	assert.Equal(t, 0.0+lostScale, banner.scale)
}
