package entity

// Decoration is a background or light layer. Only its extent matters to
// the simulation.
type Decoration struct {
	Body
}

// NewDecoration creates a layer with an explicit size
func NewDecoration(sprite string, x, y, width, height float64) *Decoration {
	d := &Decoration{Body: NewBody(KindDecoration, x, y, width)}
	d.SetHeight(height)
	d.SetSprite(sprite)
	return d
}
