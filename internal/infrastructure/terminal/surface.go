// Package terminal runs the game in a text terminal with tcell. The canvas
// is scaled onto the cell grid and sprites are drawn as placeholder blocks.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/sharkie/internal/application/render"
)

// Fills fainter than this are skipped. Light rays would otherwise cover
// the whole grid.
const minFillAlpha = 96

// Surface implements render.Surface on a tcell screen.
type Surface struct {
	screen           tcell.Screen
	canvasW, canvasH float64
	cols, rows       int
}

var _ render.Surface = (*Surface)(nil)

// NewSurface maps a canvasW x canvasH canvas onto the screen
func NewSurface(screen tcell.Screen, canvasW, canvasH float64) *Surface {
	s := &Surface{screen: screen, canvasW: canvasW, canvasH: canvasH}
	s.Begin()
	return s
}

// Begin picks up the current terminal size and clears the grid. Call it
// once per frame before drawing.
func (s *Surface) Begin() {
	s.cols, s.rows = s.screen.Size()
	s.screen.Clear()
}

// Grid returns the cell grid size of the last Begin
func (s *Surface) Grid() (cols, rows int) { return s.cols, s.rows }

func (s *Surface) Size() (float64, float64) { return s.canvasW, s.canvasH }

func (s *Surface) cellSize() (float64, float64) {
	if s.cols <= 0 || s.rows <= 0 {
		return 1, 1
	}
	return s.canvasW / float64(s.cols), s.canvasH / float64(s.rows)
}

// cell converts a canvas point to the cell containing it
func (s *Surface) cell(x, y float64) (int, int) {
	cw, ch := s.cellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// span returns the cells covered by a canvas rectangle. Anything with a
// positive size covers at least one cell.
func (s *Surface) span(x, y, w, h float64) (x0, y0, x1, y1 int) {
	cw, ch := s.cellSize()
	x0, y0 = s.cell(x, y)
	x1 = max(x0, int(math.Ceil((x+w)/cw))-1)
	y1 = max(y0, int(math.Ceil((y+h)/ch))-1)
	return max(0, x0), max(0, y0), min(s.cols-1, x1), min(s.rows-1, y1)
}

// DrawImage always reports the sprite as missing so callers fall back to
// placeholders.
func (s *Surface) DrawImage(string, float64, float64, float64, float64, bool) bool {
	return false
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	tc, a := toColor(c)
	if a < minFillAlpha {
		return
	}
	x0, y0, x1, y1 := s.span(x, y, w, h)
	st := tcell.StyleDefault.Background(tc)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, st)
		}
	}
}

func (s *Surface) StrokeRect(x, y, w, h, _ float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	tc, _ := toColor(c)
	x0, y0, x1, y1 := s.span(x, y, w, h)
	if x0 > x1 || y0 > y1 {
		return
	}
	for cx := x0; cx <= x1; cx++ {
		s.put(cx, y0, tcell.RuneHLine, tc)
		s.put(cx, y1, tcell.RuneHLine, tc)
	}
	for cy := y0; cy <= y1; cy++ {
		s.put(x0, cy, tcell.RuneVLine, tc)
		s.put(x1, cy, tcell.RuneVLine, tc)
	}
	s.put(x0, y0, tcell.RuneULCorner, tc)
	s.put(x1, y0, tcell.RuneURCorner, tc)
	s.put(x0, y1, tcell.RuneLLCorner, tc)
	s.put(x1, y1, tcell.RuneLRCorner, tc)
}

// DrawText writes one rune per cell starting at the cell containing (x, y).
// The existing background is kept.
func (s *Surface) DrawText(text string, x, y float64, c color.Color) {
	tc, a := toColor(c)
	if text == "" || a < minFillAlpha {
		return
	}
	cx, cy := s.cell(x, y)
	for _, r := range text {
		s.put(cx, cy, r, tc)
		cx++
	}
}

func (s *Surface) TextSize(text string) (float64, float64) {
	cw, ch := s.cellSize()
	return float64(len([]rune(text))) * cw, ch
}

func (s *Surface) put(cx, cy int, r rune, fg tcell.Color) {
	if cx < 0 || cy < 0 || cx >= s.cols || cy >= s.rows {
		return
	}
	_, _, old, _ := s.screen.GetContent(cx, cy)
	_, bg, _ := old.Decompose()
	s.screen.SetContent(cx, cy, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

// toColor converts to a true-colour tcell colour and returns the alpha
func toColor(c color.Color) (tcell.Color, uint8) {
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)), rgba.A
}
