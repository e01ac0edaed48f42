package entity

// CollectibleType selects the pickup effect
type CollectibleType string

const (
	CollectibleCoin   CollectibleType = "coin"
	CollectiblePoison CollectibleType = "poison"
)

// Collectible is a one-shot pickup.
type Collectible struct {
	Body
	Type        CollectibleType
	Value       int
	IsCollected bool

	anim *Animator
}

// NewCollectible creates an animated pickup. Value defaults to 1.
func NewCollectible(typ CollectibleType, x, y, width float64, value int, frames FrameSet) *Collectible {
	if value <= 0 {
		value = 1
	}
	c := &Collectible{
		Body:  NewBody(KindCollectible, x, y, width),
		Type:  typ,
		Value: value,
		anim:  NewAnimator(MinPickupFrameDelayMs),
	}
	c.AspectRatio = 1
	c.NoMirror = true
	c.anim.Play(frames.Frames, frames.FPS, true, nil)
	c.SetSprite(c.anim.Current())
	return c
}

// Update advances the animation
func (c *Collectible) Update(dtMs float64) {
	c.anim.Advance(dtMs)
	c.SetSprite(c.anim.Current())
}

// Freeze suspends the animation
func (c *Collectible) Freeze() { c.anim.Freeze() }

// Unfreeze resumes the animation
func (c *Collectible) Unfreeze() { c.anim.Unfreeze() }

// Destroy stops the animation
func (c *Collectible) Destroy() { c.anim.Stop() }

// Collector receives pickup effects
type Collector interface {
	AddCoins(amount int)
	AddPoisonBottles(amount int)
}

// CollectFor applies the effect once. Returns false when already collected.
func (c *Collectible) CollectFor(p Collector) bool {
	if c.IsCollected {
		return false
	}
	c.IsCollected = true
	c.anim.Stop()
	switch c.Type {
	case CollectibleCoin:
		p.AddCoins(c.Value)
	case CollectiblePoison:
		p.AddPoisonBottles(c.Value)
	}
	return true
}
