package sketches

import (
	"image/color"

	"github.com/san-kum/sketchdeck/internal/sketch"
)

// Theme backgrounds.
var (
	darkBase  = sketch.HSB(230, 15, 10, 1)
	lightBase = sketch.HSB(0, 0, 100, 1)

	darkTop     = sketch.HSB(230, 10, 15, 1)
	darkBottom  = sketch.HSB(250, 20, 10, 1)
	lightTop    = sketch.HSB(210, 10, 100, 1)
	lightBottom = sketch.HSB(190, 5, 98, 1)
)

// Backdrop paints the gradient background with a faint 50px grid.
func Backdrop(s sketch.Surface, f sketch.Frame) {
	if f.Dark {
		s.Gradient(darkTop, darkBottom)
		s.Stroke(sketch.HSB(0, 0, 60, 0.05))
	} else {
		s.Gradient(lightTop, lightBottom)
		s.Stroke(sketch.HSB(0, 0, 40, 0.05))
	}
	s.StrokeWeight(0.5)
	lines(s, f.Width, f.Height, 50)
}

func baseColor(dark bool) color.Color {
	if dark {
		return darkBase
	}
	return lightBase
}

// lines draws vertical and horizontal rules every size pixels.
func lines(s sketch.Surface, w, h, size float64) {
	for x := 0.0; x < w; x += size {
		s.Line(x, 0, x, h)
	}
	for y := 0.0; y < h; y += size {
		s.Line(0, y, w, y)
	}
}
