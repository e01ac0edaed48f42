package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sharkie/internal/application/game"
	"github.com/younwookim/sharkie/internal/application/scene"
	"github.com/younwookim/sharkie/internal/application/scene/playing"
	"github.com/younwookim/sharkie/internal/application/scene/title"
	"github.com/younwookim/sharkie/internal/infrastructure/assets"
	"github.com/younwookim/sharkie/internal/infrastructure/config"
	"github.com/younwookim/sharkie/internal/infrastructure/screen"
	"github.com/younwookim/sharkie/internal/infrastructure/settings"
)

func main() {
	configsFlag := flag.String("configs", "", "Config directory (default: embedded configs)")
	levelFlag := flag.String("level", "level1", "Level to load")
	difficultyFlag := flag.String("difficulty", "", "Start directly with this difficulty, skipping the title screen")
	assetsFlag := flag.String("assets", "", "Asset directory (default: render.assetRoot from game.yaml)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.msgpack)")
	replayFlag := flag.String("replay", "", "Run a recording headless and print the result")
	watchFlag := flag.Bool("watch", false, "Reload configs on change (needs -configs)")
	seedFlag := flag.Int64("seed", 0, "Random seed (default: current time)")
	flag.Parse()

	cfg, loader, err := loadConfig(*configsFlag, *levelFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		res, err := runReplay(*replayFlag, cfg)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(res)
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	assetRoot := *assetsFlag
	if assetRoot == "" {
		assetRoot = cfg.Game.Render.AssetRoot
	}
	cache := assets.NewCache(os.DirFS(assetRoot))
	cache.Preload(cfg.SpritePaths()...)

	surface := screen.New(cache)
	store := settings.Open()

	start := func(difficulty string) (scene.Scene, error) {
		opts := playing.Options{
			Config:     cfg,
			Difficulty: difficulty,
			Seed:       seed,
			RecordPath: *recordFlag,
			Surface:    surface,
			Settings:   store,
		}
		if *watchFlag && *configsFlag != "" {
			opts.Loader = loader
			opts.Watch = true
		}
		return playing.New(opts)
	}

	var first scene.Scene
	if *difficultyFlag != "" {
		first, err = start(*difficultyFlag)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
	} else {
		first = title.New(cfg.Level.DifficultyNames(), cfg.Level.DefaultDifficulty, store, surface, start)
	}

	display := cfg.Game.Display
	g := game.New(first, display.ScreenWidth, display.ScreenHeight)
	g.SetTPS(display.TPS)

	scale := max(1, display.Scale)
	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle("Sharkie")
	if display.TPS > 0 {
		ebiten.SetTPS(display.TPS)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads game.yaml and the level from dir, or from the embedded
// configs when dir is empty.
func loadConfig(dir, level string) (*config.Config, *config.Loader, error) {
	var loader *config.Loader
	if dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadAll(level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, loader, nil
}
