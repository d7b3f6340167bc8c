package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

func TestWaveSystem_Growth(t *testing.T) {
	cfg := testConfig()
	sys := NewWaveSystem(cfg, entity.AllColors, testAppearances(), rand.New(rand.NewSource(1)))

	assert.Equal(t, 0, sys.Level)
	assert.Equal(t, 3, sys.Length)

	enemies, spawned, err := sys.Update(nil)
	require.NoError(t, err)
	assert.True(t, spawned)
	assert.Len(t, enemies, 8)
	assert.Equal(t, 1, sys.Level)
	assert.Equal(t, 8, sys.Length)

	enemies, spawned, err = sys.Update(enemies[:0])
	require.NoError(t, err)
	assert.True(t, spawned)
	assert.Len(t, enemies, 13)
	assert.Equal(t, 2, sys.Level)
}

func TestWaveSystem_ActiveWaveUntouched(t *testing.T) {
	sys := NewWaveSystem(testConfig(), entity.AllColors, testAppearances(), fixedRandom(0))
	active := []*entity.Enemy{newTestEnemy(10, 10)}

	enemies, spawned, err := sys.Update(active)

	require.NoError(t, err)
	assert.False(t, spawned)
	assert.Equal(t, active, enemies)
	assert.Equal(t, 0, sys.Level)
	assert.Equal(t, 3, sys.Length)
}

func TestWaveSystem_SpawnRanges(t *testing.T) {
	cfg := testConfig()
	sys := NewWaveSystem(cfg, entity.AllColors, testAppearances(), rand.New(rand.NewSource(42)))

	wave, err := sys.Spawn(500)
	require.NoError(t, err)

	seen := map[entity.Color]bool{}
	for _, e := range wave {
		assert.GreaterOrEqual(t, e.X, 10)
		assert.Less(t, e.X, 170)
		assert.GreaterOrEqual(t, e.Y, -100)
		assert.Less(t, e.Y, -20)
		assert.Equal(t, entity.DefaultHealth, e.Health)
		seen[e.Color] = true
	}
	assert.Len(t, seen, len(entity.AllColors), "every color is drawn")
}

func TestWaveSystem_SpawnDrawOrder(t *testing.T) {
	rng := &seqRandom{vals: []int{5, 7, 2}}
	sys := NewWaveSystem(testConfig(), entity.AllColors, testAppearances(), rng)

	wave, err := sys.Spawn(1)
	require.NoError(t, err)
	require.Len(t, wave, 1)

	// x, then y, then color
	assert.Equal(t, []int{160, 80, 3}, rng.n)
	assert.Equal(t, 15, wave[0].X)
	assert.Equal(t, -93, wave[0].Y)
	assert.Equal(t, entity.ColorGreen, wave[0].Color)
}

func TestWaveSystem_InvalidColor(t *testing.T) {
	table := testAppearances()
	delete(table, entity.ColorBlue)
	sys := NewWaveSystem(testConfig(), []entity.Color{entity.ColorBlue}, table, fixedRandom(0))

	enemies, spawned, err := sys.Update(nil)

	assert.ErrorIs(t, err, entity.ErrInvalidColorKind)
	assert.False(t, spawned)
	assert.Empty(t, enemies)
	assert.Equal(t, 0, sys.Level, "failed spawn leaves the level unchanged")
	assert.Equal(t, 3, sys.Length)
}

func TestWaveSystem_RetryAfterFailedSpawn(t *testing.T) {
	table := testAppearances()
	sys := NewWaveSystem(testConfig(), entity.AllColors, entity.Appearances{}, fixedRandom(0))

	_, _, err := sys.Update(nil)
	require.Error(t, err)

	sys.appearances = table
	enemies, spawned, err := sys.Update(nil)

	require.NoError(t, err)
	assert.True(t, spawned)
	assert.Len(t, enemies, 8, "the retry spawns the first wave, not the second")
	assert.Equal(t, 1, sys.Level)
	assert.Equal(t, 8, sys.Length)
}
