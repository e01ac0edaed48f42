// Package screen implements render.Surface on top of an ebiten image.
package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/sharkie/internal/application/render"
	"github.com/younwookim/sharkie/internal/infrastructure/assets"
)

// maxTextImages bounds the rendered label cache
const maxTextImages = 128

// Surface draws into the ebiten screen image for one frame.
type Surface struct {
	dst   *ebiten.Image
	cache *assets.Cache
	text  map[string]*ebiten.Image
}

var _ render.Surface = (*Surface)(nil)

// New creates a surface. Call Begin with the screen image every frame.
func New(cache *assets.Cache) *Surface {
	return &Surface{cache: cache, text: make(map[string]*ebiten.Image)}
}

// Begin targets dst for the following draw calls
func (s *Surface) Begin(dst *ebiten.Image) { s.dst = dst }

func (s *Surface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) DrawImage(path string, x, y, w, h float64, flipX bool) bool {
	img := s.cache.Image(path)
	if img == nil {
		return false
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(iw), h/float64(ih))
	if flipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
	return true
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) StrokeRect(x, y, w, h, thickness float64, c color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(thickness), c, false)
}

// DrawText prints with the debug font. The glyphs are white, so the
// label is rendered once and tinted with c.
func (s *Surface) DrawText(text string, x, y float64, c color.Color) {
	if text == "" {
		return
	}
	img := s.label(text)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(img, op)
}

func (s *Surface) TextSize(text string) (float64, float64) {
	return float64(len(text)) * render.GlyphWidth, render.GlyphHeight
}

func (s *Surface) label(text string) *ebiten.Image {
	if img, ok := s.text[text]; ok {
		return img
	}
	if len(s.text) >= maxTextImages {
		for k, img := range s.text {
			img.Deallocate()
			delete(s.text, k)
		}
	}
	img := ebiten.NewImage(len(text)*render.GlyphWidth+1, render.GlyphHeight)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	s.text[text] = img
	return img
}
