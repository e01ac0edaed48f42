package entity

// TickMs is the nominal movement tick period (60 Hz).
const TickMs = 1000.0 / 60.0

// maxTicksPerAdvance caps catch-up after a long stall.
const maxTicksPerAdvance = 10

// Ticker turns accumulated simulation time into fixed movement ticks.
type Ticker struct {
	accMs   float64
	running bool
	frozen  bool
}

// Start enables ticking
func (t *Ticker) Start() { t.running = true }

// Stop disables ticking and drops any partial tick.
func (t *Ticker) Stop() {
	t.running = false
	t.accMs = 0
}

// Freeze suspends ticking; the partial tick is kept.
func (t *Ticker) Freeze() { t.frozen = true }

// Unfreeze resumes ticking
func (t *Ticker) Unfreeze() { t.frozen = false }

// Running reports whether the ticker is started and not frozen
func (t *Ticker) Running() bool { return t.running && !t.frozen }

// Advance accumulates dtMs and returns how many whole ticks elapsed.
func (t *Ticker) Advance(dtMs float64) int {
	if !t.Running() || dtMs <= 0 {
		return 0
	}
	t.accMs += dtMs
	n := 0
	for t.accMs >= TickMs {
		t.accMs -= TickMs
		n++
	}
	if n > maxTicksPerAdvance {
		n = maxTicksPerAdvance
	}
	return n
}
