package sketches

import (
	"image/color"

	"github.com/san-kum/sketchdeck/internal/sketch"
)

type textCall struct {
	s     string
	x, y  float64
	align sketch.Align
	fill  color.Color
	size  float64
}

// recorder counts draw calls and keeps every text run.
type recorder struct {
	sketch.Pen
	backgrounds int
	gradients   int
	lines       int
	rects       int
	ellipses    []point
	texts       []textCall
}

func newRecorder() *recorder {
	return &recorder{Pen: sketch.DefaultPen()}
}

func (r *recorder) Background(color.Color)    { r.backgrounds++ }
func (r *recorder) Gradient(_, _ color.Color) { r.gradients++ }
func (r *recorder) Line(_, _, _, _ float64)   { r.lines++ }
func (r *recorder) Point(_, _ float64)        {}
func (r *recorder) Rect(_, _, _, _ float64)   { r.rects++ }

func (r *recorder) Ellipse(cx, cy, _, _ float64) {
	r.ellipses = append(r.ellipses, point{cx, cy})
}

func (r *recorder) Text(s string, x, y float64, align sketch.Align) {
	r.texts = append(r.texts, textCall{s: s, x: x, y: y, align: align, fill: r.FillColor, size: r.FontSize})
}

func (r *recorder) TextWidth(s string) float64 { return float64(len(s)) * 6 }

func (r *recorder) text(s string) (textCall, bool) {
	for _, t := range r.texts {
		if t.s == s {
			return t, true
		}
	}
	return textCall{}, false
}
