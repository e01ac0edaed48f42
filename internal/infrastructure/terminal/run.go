package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/sharkie/internal/application/render"
	"github.com/younwookim/sharkie/internal/application/world"
)

// ControlsHint is printed on the bottom row
const ControlsHint = "WASD/arrows swim | space slap | q/e bubble | p pause | tab hitboxes | ctrl-q quit"

// Options configures a Runner
type Options struct {
	// TPS is the simulation rate, 60 when <= 0
	TPS int
	// HoldMs is forwarded to the keyboard
	HoldMs float64
}

// Runner drives a world session on a tcell screen with a fixed step.
type Runner struct {
	screen  tcell.Screen
	session *world.Session
	surface *Surface
	keys    *Keyboard
	stepMs  float64
	nowMs   float64
	frames  int
}

// NewRunner creates a runner. The screen must already be initialised.
func NewRunner(screen tcell.Screen, session *world.Session, opts Options) *Runner {
	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}
	s := session.World().Settings()
	return &Runner{
		screen:  screen,
		session: session,
		surface: NewSurface(screen, s.CanvasWidth, s.CanvasHeight),
		keys:    NewKeyboard(opts.HoldMs),
		stepMs:  1000 / float64(tps),
	}
}

// Keyboard exposes the key state
func (r *Runner) Keyboard() *Keyboard { return r.keys }

// Frames returns how many frames ran
func (r *Runner) Frames() int { return r.frames }

// HandleEvent processes one tcell event. Returns false once the player
// asked to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		r.keys.HandleKey(ev, r.nowMs)
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return !r.keys.Quit()
}

// Frame runs one simulation step and redraws the screen.
func (r *Runner) Frame(dtMs float64) error {
	r.nowMs += dtMs
	if _, err := r.session.Apply(r.keys.State(r.nowMs)); err != nil {
		return fmt.Errorf("failed to apply input: %w", err)
	}
	r.session.Advance(dtMs)
	r.frames++

	r.surface.Begin()
	w := r.session.World()
	w.Render(r.surface)
	r.drawStatus(w)
	r.screen.Show()
	return nil
}

func (r *Runner) drawStatus(w *world.World) {
	_, rows := r.surface.Grid()
	if rows < 2 {
		return
	}
	p := w.Player()
	status := fmt.Sprintf("%s | HP %d | coins %d | poison %d", w.State(), p.HP, p.Coins, p.PoisonBottles)
	r.printRow(rows-2, status)
	r.printRow(rows-1, ControlsHint)
}

func (r *Runner) printRow(row int, text string) {
	_, ch := r.surface.cellSize()
	r.surface.DrawText(text, 0, float64(row)*ch, render.Text)
}

// Run loops until ctx is cancelled or a quit key is pressed.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go r.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Duration(r.stepMs * float64(time.Millisecond)))
	defer ticker.Stop()

	log.Printf("Terminal session started (%.1f ms step)", r.stepMs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !r.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if err := r.Frame(r.stepMs); err != nil {
				return err
			}
		}
	}
}
