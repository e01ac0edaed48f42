// Package rendertest provides a Surface that records draw calls.
package rendertest

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/younwookim/sharkie/internal/application/render"
)

// Op is one recorded draw call
type Op struct {
	Kind       string // image, fill, stroke, text
	Path       string
	Text       string
	X, Y, W, H float64
	Flip       bool
	Color      color.Color
}

// Recorder records draw calls. Images listed in Missing report as not loaded.
type Recorder struct {
	Width, Height float64
	Missing       map[string]bool
	Ops           []Op
}

var _ render.Surface = (*Recorder)(nil)

// NewRecorder creates a recorder for a w x h canvas
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Width: w, Height: h, Missing: map[string]bool{}}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) DrawImage(path string, x, y, w, h float64, flipX bool) bool {
	if r.Missing[path] {
		return false
	}
	r.Ops = append(r.Ops, Op{Kind: "image", Path: path, X: x, Y: y, W: w, H: h, Flip: flipX})
	return true
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, _ float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawText(text string, x, y float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", Text: text, X: x, Y: y, Color: c})
}

func (r *Recorder) TextSize(text string) (float64, float64) {
	return float64(len(text)) * render.GlyphWidth, render.GlyphHeight
}

// Reset drops recorded ops
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Images returns the paths drawn, in order
func (r *Recorder) Images() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "image" {
			out = append(out, op.Path)
		}
	}
	return out
}

// Texts returns the strings drawn, in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether any drawn string contains s
func (r *Recorder) HasText(s string) bool {
	for _, t := range r.Texts() {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}

// Count returns how many ops of kind were recorded
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%s%s @%.0f,%.0f %.0fx%.0f)", o.Kind, o.Path, o.Text, o.X, o.Y, o.W, o.H)
}
