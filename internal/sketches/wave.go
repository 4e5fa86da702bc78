package sketches

import (
	"math"

	"github.com/san-kum/sketchdeck/internal/sketch"
)

// Wave draws three layered sine waves travelling across the canvas.
type Wave struct {
	// Speed is the phase velocity in radians per second.
	Speed float64
	// Step is the horizontal sampling distance in pixels.
	Step float64
}

func NewWave() *Wave {
	return &Wave{Speed: 2.4, Step: 4}
}

type waveState struct {
	phase float64
}

func (w *Wave) Init() sketch.State { return &waveState{} }

var waveLayers = []struct {
	hue        float64
	amplitude  float64 // fraction of the canvas height
	wavelength float64 // fraction of the canvas width
	speed      float64
}{
	{220, 0.18, 0.9, 1.0},
	{330, 0.12, 0.55, 1.6},
	{180, 0.07, 0.3, 2.3},
}

func (w *Wave) Render(s sketch.Surface, st sketch.State, f sketch.Frame) {
	ws := st.(*waveState)
	ws.phase = math.Mod(ws.phase+w.Speed*f.Seconds(), 2*math.Pi*1000)

	Backdrop(s, f)

	mid := f.Height / 2
	step := w.Step
	if step <= 0 {
		step = 4
	}

	s.StrokeWeight(1)
	s.Stroke(sketch.Gray(128, 0.25))
	s.Line(0, mid, f.Width, mid)

	s.StrokeWeight(2)
	for i, l := range waveLayers {
		s.Stroke(sketch.HSB(l.hue, 70, 100, 0.9-0.2*float64(i)))
		lambda := math.Max(l.wavelength*f.Width, 1)
		amp := l.amplitude * f.Height
		px, py := 0.0, mid+amp*math.Sin(ws.phase*l.speed+float64(i))
		for x := step; x <= f.Width+step; x += step {
			y := mid + amp*math.Sin(2*math.Pi*x/lambda+ws.phase*l.speed+float64(i))
			s.Line(px, py, x, y)
			px, py = x, y
		}
	}
}

// Phase returns the current phase of a wave state.
func (w *Wave) Phase(st sketch.State) float64 {
	return st.(*waveState).phase
}
