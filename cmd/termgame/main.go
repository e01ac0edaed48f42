package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/sharkie/internal/application/world"
	"github.com/younwookim/sharkie/internal/infrastructure/config"
	"github.com/younwookim/sharkie/internal/infrastructure/terminal"
)

func main() {
	configsFlag := flag.String("configs", "cmd/game/configs", "Config directory")
	levelFlag := flag.String("level", "level1", "Level to load")
	difficultyFlag := flag.String("difficulty", "", "Difficulty (default: the level's default)")
	seedFlag := flag.Int64("seed", 0, "Random seed (default: current time)")
	logFlag := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	cfg, err := config.NewLoader(*configsFlag).LoadAll(*levelFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Game.Render.Placeholders = true

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := world.NewSession(cfg, *difficultyFlag, seed)
	if err != nil {
		log.Fatalf("Failed to start level: %v", err)
	}
	defer session.Close()

	// the screen owns the terminal, log lines would tear it
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := terminal.NewRunner(screen, session, terminal.Options{TPS: cfg.Game.Display.TPS})
	if err := r.Run(ctx); err != nil {
		screen.Fini()
		log.Fatalf("Terminal session failed: %v", err)
	}
	log.Printf("Terminal session ended after %d frames", r.Frames())
}
