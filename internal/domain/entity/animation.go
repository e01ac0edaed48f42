package entity

import "math"

const (
	// MinFrameDelayMs is the floor for combatant animation delays
	MinFrameDelayMs = 16
	// MinPickupFrameDelayMs is the floor for collectibles and HUD counters
	MinPickupFrameDelayMs = 40
)

// FrameDelay converts frames per second to a per-frame delay in ms.
func FrameDelay(fps, minDelayMs float64) float64 {
	f := math.Max(1, math.Floor(fps))
	return math.Max(minDelayMs, math.Floor(1000/f))
}

// Animator cycles a cached frame list from accumulated simulation time.
// A looping run wraps; a one-shot run holds the last frame and fires its
// completion callback exactly once.
type Animator struct {
	frames   []string
	delayMs  float64
	minDelay float64

	index   int // frames shown since the run started
	accMs   float64
	current string

	loop       bool
	running    bool
	frozen     bool
	onComplete func()
}

// NewAnimator creates an idle animator with the given delay floor.
func NewAnimator(minDelayMs float64) *Animator {
	return &Animator{minDelay: minDelayMs}
}

// Play swaps the frame list and starts a new run from frame 0.
// The previous run is cancelled without firing its callback.
func (a *Animator) Play(frames []string, fps float64, loop bool, onComplete func()) {
	a.frames = frames
	a.delayMs = FrameDelay(fps, a.minDelay)
	a.index = 0
	a.accMs = 0
	a.loop = loop
	a.onComplete = onComplete
	a.running = len(frames) > 0
	if len(frames) > 0 {
		a.current = frames[0]
	}
}

// Stop cancels the current run.
func (a *Animator) Stop() {
	a.running = false
	a.onComplete = nil
}

// Advance moves the animation forward by dtMs.
func (a *Animator) Advance(dtMs float64) {
	if a.frozen || !a.running || dtMs <= 0 {
		return
	}
	a.accMs += dtMs
	for a.running && a.accMs >= a.delayMs {
		a.accMs -= a.delayMs
		a.step()
	}
}

func (a *Animator) step() {
	n := len(a.frames)
	if n == 0 {
		a.running = false
		return
	}
	a.current = a.frames[a.index%n]
	a.index++
	if a.loop || a.index < n {
		return
	}

	a.current = a.frames[n-1]
	a.running = false
	a.accMs = 0
	cb := a.onComplete
	a.onComplete = nil
	if cb != nil {
		cb()
	}
}

// Freeze suspends the run, remembering its position.
func (a *Animator) Freeze() { a.frozen = true }

// Unfreeze resumes a run that was active at freeze time.
func (a *Animator) Unfreeze() { a.frozen = false }

// Frozen reports whether the animator is suspended
func (a *Animator) Frozen() bool { return a.frozen }

// Running reports whether a run is in progress
func (a *Animator) Running() bool { return a.running }

// Index returns how many frames the current run has shown
func (a *Animator) Index() int { return a.index }

// Current returns the current frame reference
func (a *Animator) Current() string { return a.current }

// DelayMs returns the per-frame delay of the current run
func (a *Animator) DelayMs() float64 { return a.delayMs }
