// Package assets builds the game's sprites.
//
// Sprites are generated as pixel art at startup instead of being decoded
// from files, so the game and its tests need no asset directory. Each
// sprite's hit mask is derived from the generated alpha channel.
package assets

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// Palette for generated sprites
var (
	ColorYellow = color.RGBA{250, 210, 40, 255}
	ColorRed    = color.RGBA{220, 50, 50, 255}
	ColorBlue   = color.RGBA{60, 110, 235, 255}
	ColorGreen  = color.RGBA{60, 200, 80, 255}

	colorCockpit = color.RGBA{200, 235, 255, 255}
	colorSpace   = color.RGBA{5, 5, 15, 255}
	colorStar    = color.RGBA{200, 200, 220, 255}
)

var enemyPalette = map[entity.Color]color.RGBA{
	entity.ColorRed:   ColorRed,
	entity.ColorBlue:  ColorBlue,
	entity.ColorGreen: ColorGreen,
}

// Atlas holds every sprite the game draws
type Atlas struct {
	Player      *entity.Sprite
	PlayerLaser *entity.Sprite
	Enemies     entity.Appearances
	Background  image.Image
}

// NewAtlas generates all sprites at the sizes given in cfg
func NewAtlas(cfg *config.GameConfig) *Atlas {
	sp := cfg.Sprites

	enemies := make(entity.Appearances, len(enemyPalette))
	for c, rgba := range enemyPalette {
		enemies[c] = entity.Appearance{
			Ship:  entity.NewSprite(ShipImage(sp.Enemy.Width, sp.Enemy.Height, rgba, false)),
			Laser: entity.NewSprite(LaserImage(sp.Laser.Width, sp.Laser.Height, rgba)),
		}
	}

	return &Atlas{
		Player:      entity.NewSprite(ShipImage(sp.Player.Width, sp.Player.Height, ColorYellow, true)),
		PlayerLaser: entity.NewSprite(LaserImage(sp.Laser.Width, sp.Laser.Height, ColorYellow)),
		Enemies:     enemies,
		Background:  Background(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, 1),
	}
}

// ShipImage draws a symmetric arrowhead hull. The nose points up when
// noseUp is true, down otherwise.
func ShipImage(w, h int, body color.RGBA, noseUp bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx := float64(w-1) / 2

	for row := 0; row < h; row++ {
		// Distance from the nose, 0..1
		t := float64(row+1) / float64(h)
		y := row
		if !noseUp {
			y = h - 1 - row
		}

		half := cx * t
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			if dx < -half || dx > half {
				continue
			}
			img.SetRGBA(x, y, body)
		}
	}

	// Cockpit window in the upper middle of the hull
	cw, ch := max(1, w/8), max(1, h/5)
	cy := h / 2
	if !noseUp {
		cy = h/2 - ch
	}
	for y := cy; y < cy+ch && y < h; y++ {
		for x := int(cx) - cw/2; x <= int(cx)+cw/2; x++ {
			if img.RGBAAt(x, y).A != 0 {
				img.SetRGBA(x, y, colorCockpit)
			}
		}
	}

	return img
}

// LaserImage draws a vertical bolt centered in a transparent w x h frame.
func LaserImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	bw := max(2, w/16)
	bh := max(2, h/3)
	x0 := (w - bw) / 2
	y0 := (h - bh) / 2
	core := color.RGBA{255, 255, 255, 255}

	for y := y0; y < y0+bh; y++ {
		for x := x0; x < x0+bw; x++ {
			if x == x0 || x == x0+bw-1 {
				img.SetRGBA(x, y, c)
			} else {
				img.SetRGBA(x, y, core)
			}
		}
	}
	return img
}

// Background draws a starfield. The same seed always gives the same sky.
func Background(w, h int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, colorSpace)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	stars := w * h / 900
	for i := 0; i < stars; i++ {
		img.SetRGBA(rng.Intn(w), rng.Intn(h), colorStar)
	}
	return img
}
