package session

import (
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/sketchdeck/internal/sketch"
)

// DefaultAnimation is the animation a session opens with.
const DefaultAnimation = "cnn"

// Display is the host surface a controller paints into. Begin starts a
// frame of the given canvas size; End presents it.
type Display interface {
	Begin(width, height float64) sketch.Surface
	End()
}

// Options configures a Controller. Zero values pick the defaults noted on
// each field.
type Options struct {
	// Animation is the start-up animation id (DefaultAnimation).
	Animation string
	// Light starts the session in the light theme.
	Light bool
	// HideTopbar starts the session with the topbar hidden.
	HideTopbar bool
	// InfoPanelDelay is the info panel lifetime (DefaultInfoPanelDelay).
	InfoPanelDelay time.Duration
	// Now is the clock used for event timestamps (time.Now).
	Now func() time.Time
	// Logger receives transition logs; nil discards them.
	Logger *slog.Logger
	// Decorate wraps every renderer at paint time, e.g. with a readout.
	Decorate func(sketch.Renderer) sketch.Renderer
}

// Controller is the session core. See the package documentation.
type Controller struct {
	registry *sketch.Registry
	display  Display
	decorate func(sketch.Renderer) sketch.Renderer
	now      func() time.Time
	log      *slog.Logger

	state SessionState
	mode  Mode

	windowW, windowH int
	canvasW, canvasH int

	locals   map[string]sketch.State
	painters map[string]sketch.Renderer
	pointer  sketch.Pointer
	lastTick time.Time
	fps      fpsMeter
	renders  int

	timers *Timers
	panel  *InfoPanel
}

// New validates the start-up animation and builds a controller. Nothing is
// rendered until Start.
func New(reg *sketch.Registry, display Display, opts Options) (*Controller, error) {
	if opts.Animation == "" {
		opts.Animation = DefaultAnimation
	}
	if _, _, err := reg.Lookup(opts.Animation); err != nil {
		return nil, err
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	timers := NewTimers()
	c := &Controller{
		registry: reg,
		display:  display,
		decorate: opts.Decorate,
		now:      opts.Now,
		log:      opts.Logger,
		state: SessionState{
			Animation:     opts.Animation,
			Dark:          !opts.Light,
			TopbarVisible: !opts.HideTopbar,
		},
		locals:   make(map[string]sketch.State),
		painters: make(map[string]sketch.Renderer),
		timers:   timers,
		panel:    NewInfoPanel(timers, opts.InfoPanelDelay),
	}
	c.panel.OnDismiss = func(d sketch.Descriptor) {
		c.log.Debug("info panel dismissed", "animation", d.ID)
	}
	return c, nil
}

// Start sets the initial window size, enters the mode of the start-up
// animation and shows its info panel.
func (c *Controller) Start(windowWidth, windowHeight int) {
	now := c.now()
	c.windowW, c.windowH = windowWidth, windowHeight
	c.relayout()
	c.fps.restart(now)
	c.state.LastFPSSample = now

	desc, _, _ := c.registry.Lookup(c.state.Animation)
	c.enter(desc)
	c.panel.Show(desc, now)
	c.log.Info("session started", "animation", desc.ID, "mode", c.mode, "canvas_w", c.canvasW, "canvas_h", c.canvasH)
}

// SelectAnimation switches to id. An unknown id fails with
// sketch.ErrNotFound and leaves the session untouched.
func (c *Controller) SelectAnimation(id string) error {
	desc, _, err := c.registry.Lookup(id)
	if err != nil {
		c.log.Warn("rejected animation selection", "animation", id, "err", err)
		return err
	}
	c.state.Animation = id
	c.enter(desc)
	c.panel.Show(desc, c.now())
	c.log.Debug("animation selected", "animation", id, "mode", c.mode)
	return nil
}

// Next selects the animation after the current one, wrapping around.
func (c *Controller) Next() {
	c.step(1)
}

// Previous selects the animation before the current one, wrapping around.
func (c *Controller) Previous() {
	c.step(-1)
}

func (c *Controller) step(dir int) {
	n := c.registry.Len()
	if n == 0 {
		return
	}
	i := (c.registry.Index(c.state.Animation) + dir + n) % n
	desc, _ := c.registry.At(i)
	_ = c.SelectAnimation(desc.ID)
}

// enter switches the scheduling mode for desc. Static animations are
// painted once here; looping ones wait for the next tick.
func (c *Controller) enter(desc sketch.Descriptor) {
	if desc.RequiresLoop {
		if c.mode != Looping {
			now := c.now()
			c.lastTick = time.Time{}
			c.fps.restart(now)
			c.state.LastFPSSample = now
		}
		c.mode = Looping
		return
	}
	c.mode = Static
	c.render(0)
}

// ToggleTheme flips between dark and light.
func (c *Controller) ToggleTheme() {
	c.state.Dark = !c.state.Dark
	c.log.Debug("theme toggled", "dark", c.state.Dark)
	if c.mode == Static {
		c.render(0)
	}
}

func (c *Controller) HideTopbar() {
	c.setTopbar(false)
}

func (c *Controller) ShowTopbar() {
	c.setTopbar(true)
}

func (c *Controller) ToggleTopbar() {
	c.setTopbar(!c.state.TopbarVisible)
}

func (c *Controller) setTopbar(visible bool) {
	c.state.TopbarVisible = visible
	c.relayout()
	c.log.Debug("topbar changed", "visible", visible, "canvas_h", c.canvasH)
	c.render(0)
}

// Resize records a new window size and repaints.
func (c *Controller) Resize(windowWidth, windowHeight int) {
	c.windowW, c.windowH = windowWidth, windowHeight
	c.relayout()
	c.render(0)
}

func (c *Controller) relayout() {
	c.canvasW, c.canvasH = ComputeCanvasSize(c.windowW, c.windowH, c.state.TopbarVisible)
}

// Reset discards the current animation's local state so it restarts from
// Init.
func (c *Controller) Reset() {
	delete(c.locals, c.state.Animation)
	c.lastTick = time.Time{}
	if c.mode == Static {
		c.render(0)
	}
}

// MovePointer records the pointer in canvas coordinates for renderers to
// read on their next paint.
func (c *Controller) MovePointer(x, y float64, pressed bool) {
	c.pointer = sketch.Pointer{
		X:       x,
		Y:       y,
		Pressed: pressed,
		Inside:  x >= 0 && y >= 0 && x < float64(c.canvasW) && y < float64(c.canvasH),
	}
}

// DismissPanel hides the info panel right away.
func (c *Controller) DismissPanel() {
	c.panel.Dismiss()
}

// Tick advances a looping animation by one frame. It does nothing in
// Static mode.
func (c *Controller) Tick(now time.Time) {
	if c.mode != Looping {
		return
	}
	c.timers.Advance(now)

	var elapsed time.Duration
	if !c.lastTick.IsZero() {
		elapsed = now.Sub(c.lastTick)
	}
	c.lastTick = now

	if c.fps.frame(now) {
		c.state.FPS = c.fps.value
		c.state.LastFPSSample = now
	}
	c.render(elapsed)
}

// Advance fires timers due at now. Hosts call it while no loop is running.
func (c *Controller) Advance(now time.Time) int {
	return c.timers.Advance(now)
}

// NextDeadline returns the earliest pending timer.
func (c *Controller) NextDeadline() (time.Time, bool) {
	return c.timers.Next()
}

func (c *Controller) render(elapsed time.Duration) {
	if c.display == nil {
		return
	}
	r, ok := c.painters[c.state.Animation]
	if !ok {
		_, base, err := c.registry.Lookup(c.state.Animation)
		if err != nil {
			return
		}
		r = base
		if c.decorate != nil {
			r = c.decorate(base)
		}
		c.painters[c.state.Animation] = r
	}
	st, ok := c.locals[c.state.Animation]
	if !ok {
		st = r.Init()
		c.locals[c.state.Animation] = st
	}

	frame := sketch.Frame{
		Dark:    c.state.Dark,
		Elapsed: elapsed,
		Width:   float64(c.canvasW),
		Height:  float64(c.canvasH),
		Pointer: c.pointer,
		FPS:     c.state.FPS,
	}
	surface := c.display.Begin(frame.Width, frame.Height)
	r.Render(surface, st, frame)
	c.display.End()
	c.renders++
}

func (c *Controller) State() SessionState { return c.state }

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) Looping() bool { return c.mode == Looping }

// Current returns the active descriptor.
func (c *Controller) Current() sketch.Descriptor {
	d, _, _ := c.registry.Lookup(c.state.Animation)
	return d
}

func (c *Controller) Registry() *sketch.Registry { return c.registry }

// Canvas returns the current canvas size.
func (c *Controller) Canvas() (int, int) { return c.canvasW, c.canvasH }

// Window returns the last window size.
func (c *Controller) Window() (int, int) { return c.windowW, c.windowH }

func (c *Controller) Pointer() sketch.Pointer { return c.pointer }

func (c *Controller) Panel() *InfoPanel { return c.panel }

// Renders returns how many frames have been painted.
func (c *Controller) Renders() int { return c.renders }
