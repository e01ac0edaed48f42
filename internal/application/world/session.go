package world

import (
	"log"

	"github.com/younwookim/sharkie/internal/application/system"
	"github.com/younwookim/sharkie/internal/infrastructure/config"
)

// Session owns the current world and rebuilds it on restart. Every
// frontend drives its world through a session.
type Session struct {
	cfg        *config.Config
	difficulty string
	seed       int64

	world    *World
	restarts int
	nowMs    float64
}

// NewSession builds the first world. Restart n uses seed+n so a recorded
// session replays identically.
func NewSession(cfg *config.Config, difficulty string, seed int64) (*Session, error) {
	w, err := Load(cfg, difficulty, seed)
	if err != nil {
		return nil, err
	}
	return &Session{cfg: cfg, difficulty: difficulty, seed: seed, world: w}, nil
}

// World returns the running world
func (s *Session) World() *World { return s.world }

// Seed returns the seed of the first world
func (s *Session) Seed() int64 { return s.seed }

// Difficulty returns the difficulty name the session was started with
func (s *Session) Difficulty() string { return s.difficulty }

// Restarts returns how many times the world was rebuilt
func (s *Session) Restarts() int { return s.restarts }

// Apply feeds one frame of input: held directions go to the player,
// edge-triggered actions become intents. Returns true when the frame
// restarted the world.
func (s *Session) Apply(in system.InputState) (bool, error) {
	s.world.SetInput(in.Move)
	ended := s.world.State().Ended()
	for _, intent := range in.Intents(ended) {
		if !s.world.HandleIntent(intent) {
			continue
		}
		if err := s.Restart(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Advance moves the session clock by dtMs and updates the world.
func (s *Session) Advance(dtMs float64) {
	s.nowMs += dtMs
	s.world.Update(s.nowMs)
}

// Restart tears the world down and builds a fresh one.
func (s *Session) Restart() error {
	next, err := Load(s.cfg, s.difficulty, s.seed+int64(s.restarts+1))
	if err != nil {
		return err
	}
	s.world.Destroy()
	s.world = next
	s.restarts++
	log.Printf("World restarted (%d)", s.restarts)
	return nil
}

// Reload swaps the config used by the next restart.
func (s *Session) Reload(cfg *config.Config) {
	s.cfg = cfg
}

// Close destroys the running world
func (s *Session) Close() {
	s.world.Destroy()
}
