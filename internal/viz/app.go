package viz

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/sketchdeck/internal/session"
	"github.com/san-kum/sketchdeck/internal/sketch"
)

// DefaultFrameRate is the tick rate of the frame chain.
const DefaultFrameRate = 60

type (
	frameMsg time.Time
	pumpMsg  time.Time
	slideMsg time.Time
)

// Options configures the terminal host.
type Options struct {
	Session   session.Options
	FrameRate int
	// GIFPath is where a recording is written when it stops.
	GIFPath string
	Logger  *slog.Logger
}

// App is the Bubble Tea model hosting one session.
type App struct {
	ctrl   *session.Controller
	canvas *Canvas
	log    *slog.Logger

	interval time.Duration
	gifPath  string

	cols, rows int
	started    bool

	// ticking is set while a frameMsg is in flight so only one chain runs.
	ticking bool
	sliding bool
	pumpAt  time.Time

	rec    *Recorder
	status string
}

// NewApp builds the controller over reg with a Braille canvas as its
// display.
func NewApp(reg *sketch.Registry, opts Options) (*App, error) {
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultFrameRate
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "sketchdeck.gif"
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Session.Logger == nil {
		opts.Session.Logger = opts.Logger
	}

	canvas := NewCanvas(0, 0)
	ctrl, err := session.New(reg, canvas, opts.Session)
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	return &App{
		ctrl:     ctrl,
		canvas:   canvas,
		log:      opts.Logger,
		interval: time.Second / time.Duration(opts.FrameRate),
		gifPath:  opts.GIFPath,
	}, nil
}

// Controller exposes the session for hosts that drive it directly.
func (m *App) Controller() *session.Controller { return m.ctrl }

func (m *App) Canvas() *Canvas { return m.canvas }

func (m *App) Init() tea.Cmd {
	return tea.SetWindowTitle("sketchdeck")
}

// Update routes input to the controller and keeps the schedulers alive.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if cmd := m.key(msg); cmd != nil {
			return m, cmd
		}

	case tea.MouseMsg:
		m.mouse(msg)

	case frameMsg:
		m.ticking = false
		if m.ctrl.Looping() {
			m.ctrl.Tick(time.Time(msg))
			m.capture()
		}

	case pumpMsg:
		if time.Time(msg).Equal(m.pumpAt) {
			m.pumpAt = time.Time{}
		}
		m.ctrl.Advance(time.Now())

	case slideMsg:
		m.sliding = false
		m.ctrl.Advance(time.Time(msg))
	}

	cmds = append(cmds, m.schedule())
	return m, tea.Batch(cmds...)
}

func (m *App) resize(cols, rows int) {
	m.cols, m.rows = cols, rows
	w, h := cols*CellWidth, rows*CellHeight
	if !m.started {
		m.started = true
		m.ctrl.Start(w, h)
		m.capture()
		return
	}
	m.ctrl.Resize(w, h)
	m.capture()
}

func (m *App) key(msg tea.KeyMsg) tea.Cmd {
	if !m.started {
		if s := msg.String(); s == "q" || s == "ctrl+c" {
			return tea.Quit
		}
		return nil
	}
	switch s := msg.String(); s {
	case "q", "ctrl+c":
		if m.rec != nil {
			m.stopRecording()
		}
		return tea.Quit
	case "tab", "l", "right":
		m.ctrl.Next()
	case "shift+tab", "h", "left":
		m.ctrl.Previous()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(s[0] - '1')
		if d, ok := m.ctrl.Registry().At(i); ok {
			_ = m.ctrl.SelectAnimation(d.ID)
		}
	case "d":
		m.ctrl.ToggleTheme()
	case "t":
		m.ctrl.ToggleTopbar()
	case "esc":
		m.ctrl.DismissPanel()
	case "r":
		m.ctrl.Reset()
	case "g":
		if m.rec != nil {
			m.stopRecording()
		} else {
			m.rec = NewRecorder(int(time.Second / m.interval))
			m.rec.seen = -1
			m.status = ""
			m.log.Info("recording started")
		}
	}
	m.capture()
	return nil
}

func (m *App) stopRecording() {
	n := m.rec.Len()
	if err := m.rec.Save(m.gifPath); err != nil {
		m.status = err.Error()
		m.log.Error("saving recording", "err", err)
	} else {
		m.status = fmt.Sprintf("saved %d frames to %s", n, m.gifPath)
		m.log.Info("recording saved", "path", m.gifPath, "frames", n)
	}
	m.rec = nil
}

// capture adds the canvas to a running recording whenever a new frame was
// painted.
func (m *App) capture() {
	if m.rec == nil || m.canvas.Frames() == m.rec.seen {
		return
	}
	m.rec.seen = m.canvas.Frames()
	m.rec.Capture(m.canvas)
}

func (m *App) mouse(msg tea.MouseMsg) {
	if !m.started {
		return
	}
	row := msg.Y
	if m.ctrl.State().TopbarVisible {
		row -= TopbarRows
	}
	x := float64(msg.X*CellWidth + CellWidth/2)
	y := float64(row*CellHeight + CellHeight/2)

	pressed := m.ctrl.Pointer().Pressed
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			pressed = true
		}
	case tea.MouseActionRelease:
		pressed = false
	}
	m.ctrl.MovePointer(x, y, pressed)
}

// schedule keeps exactly one timing source alive: the frame chain while
// looping, otherwise a one-shot pump for the next timer deadline. A short
// slide chain repaints the view while the info panel eases in.
func (m *App) schedule() tea.Cmd {
	if !m.started {
		return nil
	}
	var cmds []tea.Cmd
	if m.ctrl.Looping() {
		if !m.ticking {
			m.ticking = true
			cmds = append(cmds, tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) }))
		}
		return tea.Batch(cmds...)
	}

	panel := m.ctrl.Panel()
	if panel.Visible() && panel.Opacity(time.Now()) < 1 && !m.sliding {
		m.sliding = true
		cmds = append(cmds, tea.Tick(m.interval, func(t time.Time) tea.Msg { return slideMsg(t) }))
	}
	if at, ok := m.ctrl.NextDeadline(); ok && !at.Equal(m.pumpAt) {
		m.pumpAt = at
		cmds = append(cmds, tea.Tick(time.Until(at), func(time.Time) tea.Msg { return pumpMsg(at) }))
	}
	return tea.Batch(cmds...)
}

// View renders the topbar and the canvas with the panel or chip on top.
func (m *App) View() string {
	if !m.started {
		return "starting…"
	}
	st := m.ctrl.State()
	theme := ThemeFor(st.Dark)

	var overlays []Overlay
	panel := m.ctrl.Panel()
	if panel.Visible() {
		overlays = append(overlays, panelOverlays(theme, panel.Descriptor(), panel.Opacity(time.Now()), m.canvas.Width, m.canvas.Height)...)
	}
	if !st.TopbarVisible {
		overlays = append(overlays, chipOverlay(theme, m.canvas.Width)...)
	}
	if m.status != "" && m.canvas.Height > 0 {
		overlays = append(overlays, statusOverlay(theme, m.status, m.canvas.Width, m.canvas.Height)...)
	}

	lines := make([]string, 0, m.rows)
	if st.TopbarVisible {
		lines = append(lines, topbar(theme, m.cols, m.ctrl.Registry(), st.Animation, st.Dark, m.rec != nil)...)
	}
	for i := 0; i < m.canvas.Height && len(lines) < m.rows; i++ {
		lines = append(lines, m.canvas.Row(i, overlays...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// statusOverlay shows a one-line message in the bottom-right corner.
func statusOverlay(t Theme, text string, cols, rows int) []Overlay {
	r := []rune(" " + text + " ")
	if len(r) > cols {
		r = r[:cols]
	}
	bg, _ := colorful.Hex(string(t.Surface))
	fg, _ := colorful.Hex(string(t.Accent))
	return []Overlay{{Row: rows - 1, Col: cols - len(r), Text: string(r), FG: fg, BG: bg}}
}

// Run starts a full-screen program and blocks until the user quits.
func Run(reg *sketch.Registry, opts Options) error {
	app, err := NewApp(reg, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal session: %w", err)
	}
	return nil
}
