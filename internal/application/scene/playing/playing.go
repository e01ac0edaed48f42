// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sharkie/internal/application/render"
	"github.com/younwookim/sharkie/internal/application/replay"
	"github.com/younwookim/sharkie/internal/application/scene"
	"github.com/younwookim/sharkie/internal/application/state"
	"github.com/younwookim/sharkie/internal/application/system"
	"github.com/younwookim/sharkie/internal/application/world"
	"github.com/younwookim/sharkie/internal/infrastructure/config"
	"github.com/younwookim/sharkie/internal/infrastructure/screen"
	"github.com/younwookim/sharkie/internal/infrastructure/settings"
)

// ControlsHint is shown at the bottom of the screen
const ControlsHint = "WASD: Swim | Space: Slap | Q/E: Bubble | ESC: Pause | Tab: Hitboxes"

// Options configures a Playing scene
type Options struct {
	Config     *config.Config
	Difficulty string
	Seed       int64

	// Loader rereads the config when Watch is set. Changes apply on the
	// next restart.
	Loader *config.Loader
	Watch  bool

	// RecordPath enables input recording when not empty
	RecordPath string

	Surface  *screen.Surface
	Settings *settings.Store
}

// Playing is the main gameplay scene
type Playing struct {
	cfg      *config.Config
	loader   *config.Loader
	session  *world.Session
	input    *system.InputSystem
	surface  *screen.Surface
	settings *settings.Store
	watcher  *config.Watcher

	recorder       *replay.Recorder
	recordFilename string

	lastState state.GameState
}

// New creates a new Playing scene
func New(opts Options) (*Playing, error) {
	session, err := world.NewSession(opts.Config, opts.Difficulty, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to start level: %w", err)
	}

	p := &Playing{
		cfg:            opts.Config,
		loader:         opts.Loader,
		session:        session,
		input:          system.NewInputSystem(),
		surface:        opts.Surface,
		settings:       opts.Settings,
		recordFilename: opts.RecordPath,
		lastState:      session.World().State(),
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(opts.Seed, opts.Config.Level.Name, opts.Difficulty)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, opts.Seed)
	}

	if opts.Watch && opts.Loader != nil {
		base := opts.Loader.BasePath()
		w, err := config.NewWatcher(base, filepath.Join(base, "levels"))
		if err != nil {
			log.Printf("Config watching disabled: %v", err)
		} else {
			p.watcher = w
			log.Printf("Watching %s for config changes", base)
		}
	}

	return p, nil
}

// Session returns the running session
func (p *Playing) Session() *world.Session { return p.session }

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dtMs float64) (scene.Scene, error) {
	p.pollConfig()
	return p.step(dtMs, p.input.GetInput())
}

func (p *Playing) step(dtMs float64, in system.InputState) (scene.Scene, error) {
	if p.recorder != nil {
		p.recorder.RecordFrame(dtMs, in)
	}

	if _, err := p.session.Apply(in); err != nil {
		return nil, err
	}
	p.session.Advance(dtMs)

	st := p.session.World().State()
	if st.Ended() && !p.lastState.Ended() {
		// Auto-save recording on game over
		p.saveRecording()
	}
	p.lastState = st

	return nil, nil
}

// pollConfig drains pending config change events without blocking.
func (p *Playing) pollConfig() {
	if p.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-p.watcher.Events:
			if !ok {
				p.watcher = nil
				return
			}
			p.reload(path)
		case err, ok := <-p.watcher.Errors:
			if ok {
				log.Printf("Config watcher error: %v", err)
			}
		default:
			return
		}
	}
}

func (p *Playing) reload(changed string) {
	cfg, err := p.loader.LoadAll(p.cfg.Level.Name)
	if err != nil {
		log.Printf("Failed to reload config after %s changed: %v", filepath.Base(changed), err)
		return
	}
	p.cfg = cfg
	p.session.Reload(cfg)
	log.Printf("Config reloaded (%s), applies on restart", filepath.Base(changed))
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.surface.Begin(screen)
	p.Render(p.surface)
}

// Render draws the world, the pause overlay and the status line.
func (p *Playing) Render(s render.Surface) {
	w := p.session.World()
	w.Render(s)
	if w.IsPaused() {
		drawPauseOverlay(s)
	}

	_, h := s.Size()
	status := ControlsHint
	if p.recorder != nil {
		status = "REC | " + status
	}
	if p.settings != nil && !p.settings.SoundEnabled() {
		status += " | muted"
	}
	s.DrawText(status, 8, h-20, render.Text)
}

func drawPauseOverlay(s render.Surface) {
	w, h := s.Size()
	s.FillRect(0, 0, w, h, render.Overlay)
	render.DrawTextCentered(s, "PAUSED", w/2, h/2-12, render.Text)
	render.DrawTextCentered(s, "Press ESC to resume", w/2, h/2+12, render.Text)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Level %s started (difficulty %q, seed %d)", p.cfg.Level.Name, p.session.Difficulty(), p.session.Seed())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.watcher != nil {
		_ = p.watcher.Close()
		p.watcher = nil
	}
	p.session.Close()
}
