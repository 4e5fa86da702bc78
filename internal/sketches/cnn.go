package sketches

import (
	"math"

	"github.com/san-kum/sketchdeck/internal/sketch"
)

// Layout space of the schematic; it is scaled to fit the canvas.
const (
	cnnWidth  = 1300
	cnnHeight = 900
)

// CNN draws a schematic convolutional network: input image, convolution,
// pooling, flatten, fully connected and output stages, with signal pulses
// running along the connections.
type CNN struct {
	// PulseSpeed is the number of connection traversals per second.
	PulseSpeed float64
}

func NewCNN() *CNN {
	return &CNN{PulseSpeed: 0.6}
}

type cnnState struct {
	t float64
}

func (c *CNN) Init() sketch.State { return &cnnState{} }

type edge struct{ x1, y1, x2, y2 float64 }

var (
	flattenNodes   = []float64{100, 300, 500, 700}
	connectedNodes = []float64{200, 400, 600}
)

func cnnEdges() []edge {
	edges := []edge{
		{100, 400, 300, 400},
		{300, 400, 500, 400},
	}
	for _, y := range flattenNodes {
		edges = append(edges, edge{500, 400, 800, y})
	}
	for _, y1 := range flattenNodes {
		for _, y2 := range connectedNodes {
			edges = append(edges, edge{800, y1, 1000, y2})
		}
	}
	for _, y := range connectedNodes {
		edges = append(edges, edge{1000, y, 1200, 400})
	}
	return edges
}

// layout maps schematic coordinates onto the canvas, centred and scaled.
type layout struct {
	scale, ox, oy float64
}

func fit(w, h float64) layout {
	s := math.Min(w/cnnWidth, h/cnnHeight)
	if s <= 0 {
		s = 0
	}
	return layout{
		scale: s,
		ox:    (w - cnnWidth*s) / 2,
		oy:    (h - cnnHeight*s) / 2,
	}
}

func (l layout) pt(x, y float64) (float64, float64) {
	return l.ox + x*l.scale, l.oy + y*l.scale
}

func (l layout) line(s sketch.Surface, x1, y1, x2, y2 float64) {
	ax, ay := l.pt(x1, y1)
	bx, by := l.pt(x2, y2)
	s.Line(ax, ay, bx, by)
}

// square draws a 100-unit square centred on (x, y).
func (l layout) square(s sketch.Surface, x, y float64) {
	cx, cy := l.pt(x, y)
	side := 100 * l.scale
	s.Rect(cx-side/2, cy-side/2, side, side)
}

func (l layout) node(s sketch.Surface, x, y float64) {
	cx, cy := l.pt(x, y)
	s.Ellipse(cx, cy, 100*l.scale, 100*l.scale)
}

func (l layout) label(s sketch.Surface, text string, x, y float64) {
	s.Fill(sketch.White)
	tx, ty := l.pt(x, y)
	s.Text(text, tx, ty, sketch.AlignLeft)
}

func (c *CNN) Render(s sketch.Surface, st sketch.State, f sketch.Frame) {
	cs := st.(*cnnState)
	cs.t += f.Seconds() * c.PulseSpeed

	Backdrop(s, f)
	l := fit(f.Width, f.Height)

	s.StrokeWeight(1)
	s.Stroke(sketch.BrightCyan)
	s.TextSize(math.Max(12*l.scale, 8))

	// Input image.
	s.Fill(sketch.BrightCyan)
	l.line(s, 100, 400, 300, 400)
	l.square(s, 100, 400)
	l.label(s, "Input Image", 50, 500)

	// Convolution + activation: a stack of feature maps.
	s.Fill(sketch.DeepPurple)
	l.line(s, 300, 400, 500, 400)
	for _, d := range []float64{-10, 0, 10} {
		l.square(s, 300+d, 400+d)
	}
	l.label(s, "Convolution", 250, 500)
	l.label(s, "+ Activation", 250, 520)

	// Pooling fans out to the flattened vector.
	s.Fill(sketch.BrightBlue)
	for _, y := range flattenNodes {
		l.line(s, 500, 400, 800, y)
	}
	for _, d := range []float64{-10, 0, 10} {
		l.square(s, 500+d, 400+d)
	}
	l.label(s, "Pooling", 450, 500)

	// Flatten, fully connected to the hidden layer.
	s.Fill(sketch.LightGray)
	for _, y1 := range flattenNodes {
		for _, y2 := range connectedNodes {
			l.line(s, 800, y1, 1000, y2)
		}
	}
	for _, y := range flattenNodes {
		l.node(s, 800, y)
	}
	l.label(s, "Flatten", 800, 800)

	s.Fill(sketch.LimeGreen)
	for _, y := range connectedNodes {
		l.line(s, 1000, y, 1200, 400)
	}
	for _, y := range connectedNodes {
		l.node(s, 1000, y)
	}
	l.label(s, "Fully Connected", 1000, 700)

	s.Fill(sketch.LightGray)
	l.node(s, 1200, 400)
	l.label(s, "Output", 1200, 500)

	c.pulses(s, l, cs.t)
}

// pulses draws one travelling dot per connection.
func (c *CNN) pulses(s sketch.Surface, l layout, t float64) {
	s.NoStroke()
	s.Fill(sketch.WarmYellow)
	r := math.Max(8*l.scale, 2)
	for i, e := range cnnEdges() {
		_, u := math.Modf(t + float64(i)*0.13)
		x := e.x1 + (e.x2-e.x1)*u
		y := e.y1 + (e.y2-e.y1)*u
		px, py := l.pt(x, y)
		s.Ellipse(px, py, r, r)
	}
}
