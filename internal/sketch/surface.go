package sketch

import "image/color"

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the drawing context a host hands to renderers.
//
// Coordinates are logical pixels with the origin at the top-left corner of
// the canvas. Text is anchored on its baseline at y.
type Surface interface {
	Background(c color.Color)
	Gradient(top, bottom color.Color)

	Stroke(c color.Color)
	NoStroke()
	StrokeWeight(w float64)
	Fill(c color.Color)
	NoFill()

	Line(x1, y1, x2, y2 float64)
	Point(x, y float64)
	Rect(x, y, w, h float64)
	Ellipse(cx, cy, w, h float64)

	TextSize(px float64)
	Text(s string, x, y float64, align Align)
	TextWidth(s string) float64
}

// Pen holds the stroke and fill settings most surfaces share. Embed it and
// the style half of [Surface] comes for free.
type Pen struct {
	StrokeColor color.Color
	FillColor   color.Color
	Weight      float64
	FontSize    float64
}

// DefaultPen mirrors the initial drawing state of a fresh canvas.
func DefaultPen() Pen {
	return Pen{
		StrokeColor: color.Black,
		FillColor:   color.White,
		Weight:      1,
		FontSize:    12,
	}
}

func (p *Pen) Stroke(c color.Color)   { p.StrokeColor = c }
func (p *Pen) NoStroke()              { p.StrokeColor = nil }
func (p *Pen) StrokeWeight(w float64) { p.Weight = w }
func (p *Pen) Fill(c color.Color)     { p.FillColor = c }
func (p *Pen) NoFill()                { p.FillColor = nil }
func (p *Pen) TextSize(px float64)    { p.FontSize = px }
func (p *Pen) Stroking() bool         { return p.StrokeColor != nil }
func (p *Pen) Filling() bool          { return p.FillColor != nil }
func (p *Pen) Reset()                 { *p = DefaultPen() }

// Discard is a Surface that draws nothing. Use it to step renderers headless.
type Discard struct {
	Pen
}

func (d *Discard) Background(color.Color)               {}
func (d *Discard) Gradient(_, _ color.Color)            {}
func (d *Discard) Line(_, _, _, _ float64)              {}
func (d *Discard) Point(_, _ float64)                   {}
func (d *Discard) Rect(_, _, _, _ float64)              {}
func (d *Discard) Ellipse(_, _, _, _ float64)           {}
func (d *Discard) Text(_ string, _, _ float64, _ Align) {}
func (d *Discard) TextWidth(s string) float64           { return float64(len(s)) * d.FontSize * 0.6 }

func NewDiscard() *Discard {
	return &Discard{Pen: DefaultPen()}
}
