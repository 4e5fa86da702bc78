package sketches

import "github.com/san-kum/sketchdeck/internal/sketch"

// Grid draws evenly spaced rules over a flat background. It has no state
// and no motion.
type Grid struct {
	Size float64
}

func NewGrid() *Grid {
	return &Grid{Size: 40}
}

func (g *Grid) Init() sketch.State { return nil }

func (g *Grid) Render(s sketch.Surface, _ sketch.State, f sketch.Frame) {
	s.Background(baseColor(f.Dark))
	if f.Dark {
		s.Stroke(sketch.HSB(210, 30, 60, 0.4))
	} else {
		s.Stroke(sketch.HSB(210, 30, 70, 0.3))
	}
	s.StrokeWeight(0.5)
	size := g.Size
	if size <= 0 {
		size = 40
	}
	lines(s, f.Width, f.Height, size)
}
