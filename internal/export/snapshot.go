package export

import (
	"fmt"
	"time"

	"github.com/san-kum/sketchdeck/internal/session"
	"github.com/san-kum/sketchdeck/internal/sketch"
	"github.com/san-kum/sketchdeck/internal/viz"
)

// Options controls an offline snapshot.
type Options struct {
	Width, Height int
	Light         bool
	// Ticks advances a looping animation this many 60 Hz frames before the
	// captured one.
	Ticks int
	// Decorate wraps the renderer, e.g. with the FPS readout.
	Decorate func(sketch.Renderer) sketch.Renderer
}

func (o *Options) defaults() {
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 800
	}
}

// drive starts a headless session on display and runs it to the captured
// frame with a synthetic clock.
func drive(reg *sketch.Registry, id string, display session.Display, opts Options) error {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }
	ctrl, err := session.New(reg, display, session.Options{
		Animation:  id,
		Light:      opts.Light,
		HideTopbar: true,
		Now:        clock,
		Decorate:   opts.Decorate,
	})
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", id, err)
	}
	ctrl.Start(opts.Width, opts.Height)
	if ctrl.Looping() {
		for i := 0; i <= opts.Ticks; i++ {
			ctrl.Tick(now)
			now = now.Add(time.Second / 60)
		}
	}
	return nil
}

// Snapshot renders animation id as a vector SVG document.
func Snapshot(reg *sketch.Registry, id string, opts Options) ([]byte, error) {
	opts.defaults()
	svg := NewSVG()
	if err := drive(reg, id, svg, opts); err != nil {
		return nil, err
	}
	return svg.Bytes(), nil
}

// BrailleSnapshot renders animation id on a terminal canvas and exports its
// dots as SVG.
func BrailleSnapshot(reg *sketch.Registry, id string, opts Options, scale float64) (string, error) {
	opts.defaults()
	canvas := viz.NewCanvas(0, 0)
	if err := drive(reg, id, canvas, opts); err != nil {
		return "", err
	}
	return CanvasToSVG(canvas, scale), nil
}
