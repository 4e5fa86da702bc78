package sketches

import (
	"fmt"

	"github.com/san-kum/sketchdeck/internal/sketch"
)

// WithReadout wraps r so every frame ends with the FPS counter and pointer
// coordinates in the bottom-right corner.
func WithReadout(r sketch.Renderer) sketch.Renderer {
	if _, ok := r.(readout); ok {
		return r
	}
	return readout{inner: r}
}

type readout struct {
	inner sketch.Renderer
}

func (r readout) Init() sketch.State { return r.inner.Init() }

func (r readout) Render(s sketch.Surface, st sketch.State, f sketch.Frame) {
	r.inner.Render(s, st, f)
	DrawReadout(s, f)
}

// DrawReadout draws "<fps> FPS" and "(x, y)" anchored 10px from the
// bottom-right corner.
func DrawReadout(s sketch.Surface, f sketch.Frame) {
	level := 50.0
	if f.Dark {
		level = 200
	}
	s.NoStroke()
	s.Fill(sketch.Gray(level, 150.0/255))
	s.TextSize(10)

	fps := fmt.Sprintf("%.1f FPS", f.FPS)
	coords := fmt.Sprintf("(%d, %d)", int(f.Pointer.X), int(f.Pointer.Y))

	s.Text(fps, f.Width-10, f.Height-10, sketch.AlignRight)
	s.Text(coords, f.Width-20-s.TextWidth(fps), f.Height-10, sketch.AlignRight)
}
