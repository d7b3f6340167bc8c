package system

import (
	"image"
	"image/color"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// fixedRandom always draws the same value, capped to the range
type fixedRandom int

func (f fixedRandom) Intn(n int) int {
	return min(int(f), n-1)
}

// seqRandom returns values in order, cycling, each capped to the range
type seqRandom struct {
	vals []int
	i    int
	n    []int // bounds seen, for assertions
}

func (s *seqRandom) Intn(n int) int {
	s.n = append(s.n, n)
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return min(v, n-1)
}

func solidSprite(w, h int) *entity.Sprite {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return entity.NewSprite(img)
}

func testAppearances() entity.Appearances {
	table := entity.Appearances{}
	for _, c := range entity.AllColors {
		table[c] = entity.Appearance{Ship: solidSprite(20, 20), Laser: solidSprite(4, 4)}
	}
	return table
}

func testConfig() *config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Display.ScreenWidth = 200
	cfg.Display.ScreenHeight = 200
	cfg.Wave.Spawn = config.SpawnConfig{MarginLeft: 10, MarginRight: 30, MinY: -100, MaxY: -20}
	return cfg
}

func newTestPlayer(x, y int) *entity.Player {
	return entity.NewPlayer(x, y, 100, 100, solidSprite(20, 20), solidSprite(4, 4))
}

func newTestEnemy(x, y int) *entity.Enemy {
	e, err := entity.NewEnemy(x, y, entity.ColorRed, testAppearances())
	if err != nil {
		panic(err)
	}
	return e
}
