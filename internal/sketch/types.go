package sketch

import "time"

// Descriptor identifies and describes one animation kind.
type Descriptor struct {
	ID           string
	Title        string
	Description  string
	RequiresLoop bool
}

// State is renderer-local mutable state. Only the renderer that created it
// looks inside.
type State any

// Pointer is the last known pointer position in canvas coordinates.
type Pointer struct {
	X, Y    float64
	Pressed bool
	Inside  bool
}

// Frame carries everything a renderer may consult for one paint.
type Frame struct {
	Dark    bool
	Elapsed time.Duration
	Width   float64
	Height  float64
	Pointer Pointer
	FPS     float64
}

// Seconds returns the elapsed time of the frame in seconds.
func (f Frame) Seconds() float64 {
	return f.Elapsed.Seconds()
}

// Renderer draws one animation kind.
//
// Render may be called once per scheduler tick or exactly once per forced
// static render; implementations must not assume a fixed cadence.
type Renderer interface {
	Init() State
	Render(s Surface, st State, f Frame)
}

// RendererFunc adapts a stateless drawing function to [Renderer].
type RendererFunc func(s Surface, f Frame)

func (fn RendererFunc) Init() State { return nil }

func (fn RendererFunc) Render(s Surface, _ State, f Frame) { fn(s, f) }
