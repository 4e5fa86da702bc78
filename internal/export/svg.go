package export

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/sketchdeck/internal/sketch"
	"github.com/san-kum/sketchdeck/internal/viz"
)

// SVG is a vector sketch.Surface. Every primitive is appended as an SVG
// element; Bytes wraps them in a document of the canvas size.
type SVG struct {
	sketch.Pen

	width, height float64
	sb            strings.Builder
	gradients     int
	frames        int
}

func NewSVG() *SVG {
	return &SVG{Pen: sketch.DefaultPen()}
}

// Begin starts a fresh document; an SVG holds a single frame.
func (s *SVG) Begin(width, height float64) sketch.Surface {
	s.width, s.height = width, height
	s.sb.Reset()
	s.gradients = 0
	s.Pen.Reset()
	return s
}

func (s *SVG) End() { s.frames++ }

// Frames returns how many frames were presented.
func (s *SVG) Frames() int { return s.frames }

// paint renders a colour attribute pair, e.g. fill="#rrggbb" fill-opacity="0.5".
func paint(attr string, c color.Color) string {
	if c == nil {
		return fmt.Sprintf(`%s="none"`, attr)
	}
	cc, a := sketch.Split(c)
	if a >= 1 {
		return fmt.Sprintf(`%s="%s"`, attr, cc.Hex())
	}
	return fmt.Sprintf(`%s="%s" %s-opacity="%.3g"`, attr, cc.Hex(), attr, a)
}

func (s *SVG) style() string {
	return fmt.Sprintf(`%s %s stroke-width="%.3g"`, paint("fill", s.FillColor), paint("stroke", s.StrokeColor), s.Weight)
}

func (s *SVG) Background(c color.Color) {
	s.sb.Reset()
	fmt.Fprintf(&s.sb, `<rect width="100%%" height="100%%" %s/>`+"\n", paint("fill", c))
}

func (s *SVG) Gradient(top, bottom color.Color) {
	s.sb.Reset()
	s.gradients++
	id := fmt.Sprintf("bg%d", s.gradients)
	t, ta := sketch.Split(top)
	b, ba := sketch.Split(bottom)
	fmt.Fprintf(&s.sb, `<defs><linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`+
		`<stop offset="0" stop-color="%s" stop-opacity="%.3g"/>`+
		`<stop offset="1" stop-color="%s" stop-opacity="%.3g"/>`+
		`</linearGradient></defs>`+"\n", id, t.Hex(), ta, b.Hex(), ba)
	fmt.Fprintf(&s.sb, `<rect width="100%%" height="100%%" fill="url(#%s)"/>`+"\n", id)
}

func (s *SVG) Line(x1, y1, x2, y2 float64) {
	if !s.Stroking() {
		return
	}
	fmt.Fprintf(&s.sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s stroke-width="%.3g"/>`+"\n",
		x1, y1, x2, y2, paint("stroke", s.StrokeColor), s.Weight)
}

func (s *SVG) Point(x, y float64) {
	if !s.Stroking() {
		return
	}
	fmt.Fprintf(&s.sb, `<circle cx="%.1f" cy="%.1f" r="%.3g" %s/>`+"\n", x, y, max(s.Weight/2, 0.5), paint("fill", s.StrokeColor))
}

func (s *SVG) Rect(x, y, w, h float64) {
	if !s.Stroking() && !s.Filling() {
		return
	}
	fmt.Fprintf(&s.sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>`+"\n", x, y, w, h, s.style())
}

func (s *SVG) Ellipse(cx, cy, w, h float64) {
	if !s.Stroking() && !s.Filling() {
		return
	}
	fmt.Fprintf(&s.sb, `<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" %s/>`+"\n", cx, cy, w/2, h/2, s.style())
}

var anchors = map[sketch.Align]string{
	sketch.AlignLeft:   "start",
	sketch.AlignCenter: "middle",
	sketch.AlignRight:  "end",
}

func (s *SVG) Text(str string, x, y float64, align sketch.Align) {
	if !s.Filling() {
		return
	}
	fmt.Fprintf(&s.sb, `<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.3g" text-anchor="%s" %s>%s</text>`+"\n",
		x, y, s.FontSize, anchors[align], paint("fill", s.FillColor), html.EscapeString(str))
}

// TextWidth estimates monospace advance at 0.6em per rune.
func (s *SVG) TextWidth(str string) float64 {
	return float64(len([]rune(str))) * s.FontSize * 0.6
}

// Bytes returns the current frame as a complete SVG document.
func (s *SVG) Bytes() []byte {
	var out strings.Builder
	fmt.Fprintf(&out, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.width, s.height, s.width, s.height)
	out.WriteString(s.sb.String())
	out.WriteString("</svg>\n")
	return []byte(out.String())
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// CanvasToSVG converts a Braille canvas to SVG format, one circle per lit
// dot in the colour of its cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, width, height, width, height)

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			fg, bg := canvas.Colors(col, row)
			fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				baseX, baseY, scale*2, scale*4, bg.Hex())

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if canvas.Lit(col*2+dx, row*4+dy) {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", cx, cy, dotRadius, fg.Hex())
					}
				}
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
