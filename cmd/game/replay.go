package main

import (
	"log"

	"github.com/younwookim/sharkie/internal/application/replay"
	"github.com/younwookim/sharkie/internal/infrastructure/config"
)

// runReplay loads a recording and runs it headless against cfg
func runReplay(path string, cfg *config.Config) (replay.Result, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Result{}, err
	}
	log.Printf("Replaying %s: %d frames (seed: %d, level: %s, difficulty: %s)",
		path, len(data.Frames), data.Seed, data.Level, data.Difficulty)
	return replay.Play(*data, cfg)
}
