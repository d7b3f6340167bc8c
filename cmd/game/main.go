package main

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spaceshooter/internal/application/game"
	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/application/scene/playing"
	"github.com/younwookim/spaceshooter/internal/application/scene/title"
	"github.com/younwookim/spaceshooter/internal/application/system"
	"github.com/younwookim/spaceshooter/internal/infrastructure/assets"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
	"github.com/younwookim/spaceshooter/internal/infrastructure/render"
)

//go:embed configs
var configFS embed.FS

// newGame loads the config from fsys and builds the title -> playing scene chain
func newGame(fsys fs.FS, seed int64, logger *log.Logger) (*game.Game, *config.GameConfig, error) {
	cfg, err := config.NewFSLoader(fsys, "configs").Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	atlas := assets.NewAtlas(cfg)
	renderer := render.NewRenderer()
	input := system.NewInputSystem()
	w, h := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight

	start := func() (scene.Scene, error) {
		logger.Info("new game", "seed", seed)
		p, err := playing.New(cfg, atlas, renderer, rand.New(rand.NewSource(seed)), input, logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	g := game.New(title.New(renderer, atlas.Background, w, h, input, start), w, h, logger)
	g.SetTPS(cfg.Display.Framerate)
	return g, cfg, nil
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceshooter",
	})

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		logger.Fatal("failed to get config subfs", "err", err)
	}

	g, cfg, err := newGame(fsys, time.Now().UnixNano(), logger)
	if err != nil {
		logger.Fatal("failed to start", "err", err)
	}

	// Set up ebiten
	d := cfg.Display
	ebiten.SetWindowSize(int(float64(d.ScreenWidth)*d.Scale), int(float64(d.ScreenHeight)*d.Scale))
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)
	ebiten.SetWindowClosingHandled(true)

	// Run game; ebiten.Termination comes back as nil
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game stopped", "err", err)
	}
}
