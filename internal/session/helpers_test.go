package session_test

import (
	"time"

	"github.com/san-kum/sketchdeck/internal/sketch"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

// countingDisplay counts frames and remembers the last canvas size.
type countingDisplay struct {
	frames        int
	width, height float64
	open          bool
	surface       *sketch.Discard
}

func newCountingDisplay() *countingDisplay {
	return &countingDisplay{surface: sketch.NewDiscard()}
}

func (d *countingDisplay) Begin(w, h float64) sketch.Surface {
	d.open = true
	d.width, d.height = w, h
	return d.surface
}

func (d *countingDisplay) End() {
	d.open = false
	d.frames++
}

// recordingRenderer keeps every frame it was asked to paint.
type recordingRenderer struct {
	inits  int
	frames []sketch.Frame
}

type recordingState struct {
	paints int
}

func (r *recordingRenderer) Init() sketch.State {
	r.inits++
	return &recordingState{}
}

func (r *recordingRenderer) Render(s sketch.Surface, st sketch.State, f sketch.Frame) {
	st.(*recordingState).paints++
	r.frames = append(r.frames, f)
}

func (r *recordingRenderer) last() sketch.Frame {
	return r.frames[len(r.frames)-1]
}

// countingWrapper counts paints that go through a decorator.
type countingWrapper struct {
	inner  sketch.Renderer
	paints *int
}

func (w *countingWrapper) Init() sketch.State { return w.inner.Init() }

func (w *countingWrapper) Render(s sketch.Surface, st sketch.State, f sketch.Frame) {
	*w.paints++
	w.inner.Render(s, st, f)
}

type fixture struct {
	registry  *sketch.Registry
	renderers map[string]*recordingRenderer
}

func newFixture() *fixture {
	f := &fixture{
		registry:  sketch.NewRegistry(),
		renderers: make(map[string]*recordingRenderer),
	}
	for _, d := range []sketch.Descriptor{
		{ID: "grid", Title: "Grid", Description: "static grid"},
		{ID: "ball", Title: "Ball", Description: "bouncing ball", RequiresLoop: true},
		{ID: "wave", Title: "Wave", Description: "sine wave", RequiresLoop: true},
		{ID: "cnn", Title: "CNN", Description: "Convolutional Neural Network", RequiresLoop: true},
	} {
		r := &recordingRenderer{}
		f.renderers[d.ID] = r
		if err := f.registry.Register(d, r); err != nil {
			panic(err)
		}
	}
	return f
}
