package replay

import (
	"fmt"

	"github.com/younwookim/sharkie/internal/application/hud"
	"github.com/younwookim/sharkie/internal/application/state"
	"github.com/younwookim/sharkie/internal/application/world"
	"github.com/younwookim/sharkie/internal/infrastructure/config"
)

// Result summarises a headless run
type Result struct {
	Frames   int
	Restarts int
	State    state.GameState
	End      hud.EndState
	PlayerHP int
	BossHP   int
	Coins    int
	Poison   int
	Enemies  int
	SimMs    float64
}

func (r Result) String() string {
	return fmt.Sprintf("%s after %d frames (%.0f ms, %d restarts): player hp %d, boss hp %d, coins %d, poison %d, enemies left %d",
		r.State, r.Frames, r.SimMs, r.Restarts, r.PlayerHP, r.BossHP, r.Coins, r.Poison, r.Enemies)
}

// Play runs a recording against cfg without rendering. cfg must hold the
// level the recording was made on.
func Play(data ReplayData, cfg *config.Config) (Result, error) {
	if data.Level != "" && cfg.Level.Name != data.Level {
		return Result{}, fmt.Errorf("replay was recorded on level %q, config has %q", data.Level, cfg.Level.Name)
	}
	session, err := world.NewSession(cfg, data.Difficulty, data.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("failed to start replay: %w", err)
	}
	defer session.Close()

	r := NewReplayer(data)
	var res Result
	session.Advance(0)
	for {
		in, dt, ok := r.Next()
		if !ok {
			break
		}
		if _, err := session.Apply(in); err != nil {
			return res, fmt.Errorf("failed to restart at frame %d: %w", r.CurrentFrame(), err)
		}
		session.Advance(dt)
		res.SimMs += dt
	}

	w := session.World()
	p := w.Player()
	res.Frames = r.TotalFrames()
	res.Restarts = session.Restarts()
	res.State = w.State()
	res.End = w.EndState()
	res.PlayerHP = p.HP
	res.BossHP = w.Boss().HP
	res.Coins = p.Coins
	res.Poison = p.PoisonBottles
	res.Enemies = len(w.Enemies())
	return res, nil
}
