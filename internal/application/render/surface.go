package render

import (
	"image/color"

	"github.com/younwookim/sharkie/internal/domain/entity"
)

// Surface is a 2D drawing target in screen coordinates. The desktop build
// draws with ebiten, the terminal build into a cell grid.
type Surface interface {
	Size() (w, h float64)
	// DrawImage draws the sprite at path. Returns false when the image is
	// not loaded yet; the caller skips it for this frame.
	DrawImage(path string, x, y, w, h float64, flipX bool) bool
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, thickness float64, c color.Color)
	DrawText(text string, x, y float64, c color.Color)
	TextSize(text string) (w, h float64)
}

// Options controls debug rendering
type Options struct {
	// Placeholders draws coloured rectangles for sprites that are not loaded
	Placeholders bool
	// Hitboxes outlines every hitbox
	Hitboxes bool
}

// DrawEntity draws r shifted by the camera offset. A missing sprite is
// skipped, or drawn as a placeholder rectangle when enabled.
func DrawEntity(s Surface, r entity.Renderable, offsetX float64, opts Options) {
	x, y := r.Position()
	w, h := r.Size()
	x += offsetX
	if w <= 0 || h <= 0 {
		return
	}
	if r.Sprite() != "" && s.DrawImage(r.Sprite(), x, y, w, h, r.Mirrored()) {
		return
	}
	if opts.Placeholders {
		s.FillRect(x, y, w, h, KindColor(r.Kind()))
	}
}

// DrawHitbox outlines a world-space hitbox. Colliding boxes are red.
func DrawHitbox(s Surface, hb entity.Rect, offsetX float64, colliding bool) {
	c := HitboxIdle
	if colliding {
		c = HitboxColliding
	}
	s.StrokeRect(hb.X+offsetX, hb.Y, hb.Width, hb.Height, 2, c)
}

// DrawTextCentered draws text centered on (cx, cy).
func DrawTextCentered(s Surface, text string, cx, cy float64, c color.Color) {
	w, h := s.TextSize(text)
	s.DrawText(text, cx-w/2, cy-h/2, c)
}

// Discard is a Surface that draws nothing. Headless runs use it.
type Discard struct {
	Width, Height float64
}

func (d Discard) Size() (float64, float64) { return d.Width, d.Height }

func (Discard) DrawImage(string, float64, float64, float64, float64, bool) bool { return true }

func (Discard) FillRect(float64, float64, float64, float64, color.Color) {}

func (Discard) StrokeRect(float64, float64, float64, float64, float64, color.Color) {}

func (Discard) DrawText(string, float64, float64, color.Color) {}

func (Discard) TextSize(text string) (float64, float64) {
	return float64(len(text)) * GlyphWidth, GlyphHeight
}
