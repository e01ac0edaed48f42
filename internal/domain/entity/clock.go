package entity

// Clock is the single simulation clock, in milliseconds.
// Cooldowns and grace windows are measured against it.
type Clock interface {
	NowMs() float64
}

// SimClock is advanced by the render loop timestamp.
type SimClock struct {
	now float64
}

// NowMs implements Clock
func (c *SimClock) NowMs() float64 { return c.now }

// Set moves the clock to now. Time never runs backwards.
func (c *SimClock) Set(now float64) {
	if now > c.now {
		c.now = now
	}
}

// Add advances the clock by dtMs
func (c *SimClock) Add(dtMs float64) {
	if dtMs > 0 {
		c.now += dtMs
	}
}

// cooldown tracks the last time an action succeeded.
type cooldown struct {
	periodMs float64
	last     float64
	used     bool
}

func (c *cooldown) ready(now float64) bool {
	return !c.used || now-c.last >= c.periodMs
}

func (c *cooldown) mark(now float64) {
	c.last = now
	c.used = true
}
