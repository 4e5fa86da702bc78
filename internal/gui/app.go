package gui

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sketchdeck/internal/session"
	"github.com/san-kum/sketchdeck/internal/sketch"
)

// Theme Colors
var (
	ColBarDark   = rl.NewColor(18, 19, 28, 240)
	ColBarLight  = rl.NewColor(245, 248, 255, 240)
	ColAccent    = rl.NewColor(0, 220, 255, 255)
	ColTextDark  = rl.NewColor(235, 235, 240, 255)
	ColTextLight = rl.NewColor(26, 28, 41, 255)
	ColTextDim   = rl.NewColor(122, 124, 153, 255)
)

// Options configures the window host.
type Options struct {
	Session   session.Options
	Width     int
	Height    int
	FrameRate int
	FontPath  string
	Logger    *slog.Logger
}

type App struct {
	ctrl    *session.Controller
	display *display
	font    rl.Font
	log     *slog.Logger
}

// initWindow opens a resizable window and caps the frame rate. Esc
// dismisses the info panel, so it must not close the window.
func initWindow(w, h, fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w), int32(h), "sketchdeck")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont loads the UI font with bilinear filtering, falling back to
// raylib's built-in font.
func loadFont(path string) rl.Font {
	if path == "" {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(path, 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// defaults fills unset sizes and loggers. An empty FontPath keeps raylib's
// built-in font.
func (o *Options) defaults() {
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.FrameRate <= 0 {
		o.FrameRate = 60
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Session.Logger == nil {
		o.Session.Logger = o.Logger
	}
}

// Run opens the window, starts a session over reg and blocks until the
// window is closed or q is pressed.
func Run(reg *sketch.Registry, opts Options) error {
	opts.defaults()

	initWindow(opts.Width, opts.Height, opts.FrameRate)
	defer rl.CloseWindow()

	font := loadFont(opts.FontPath)
	disp := newDisplay(font)
	defer disp.unload()

	ctrl, err := session.New(reg, disp, opts.Session)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	a := &App{ctrl: ctrl, display: disp, font: font, log: opts.Logger}
	ctrl.Start(rl.GetScreenWidth(), rl.GetScreenHeight())
	a.log.Info("window opened", "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight(), "fps", opts.FrameRate)

	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if quit := a.Update(time.Now()); quit {
			return
		}
		a.Draw(time.Now())
	}
}

// Update feeds window input to the controller, then advances it: a tick
// while looping, timer deadlines only while static.
func (a *App) Update(now time.Time) bool {
	if rl.IsWindowResized() {
		a.ctrl.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	for {
		key := rl.GetKeyPressed()
		if key == 0 {
			break
		}
		shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		if apply(a.ctrl, actionFor(key, shift)) {
			return true
		}
	}

	mouse := rl.GetMousePosition()
	y := float64(mouse.Y)
	if a.ctrl.State().TopbarVisible {
		y -= session.TopbarHeight
	}
	a.ctrl.MovePointer(float64(mouse.X), y, rl.IsMouseButtonDown(rl.MouseLeftButton))

	if a.ctrl.Looping() {
		a.ctrl.Tick(now)
	} else {
		a.ctrl.Advance(now)
	}
	return false
}

func (a *App) Draw(now time.Time) {
	st := a.ctrl.State()
	rl.BeginDrawing()
	if st.Dark {
		rl.ClearBackground(ColBarDark)
	} else {
		rl.ClearBackground(ColBarLight)
	}

	top := float32(0)
	if st.TopbarVisible {
		top = session.TopbarHeight
	}
	a.display.draw(0, top)

	if st.TopbarVisible {
		a.drawTopbar(st)
	} else {
		a.drawChip(st)
	}
	if p := a.ctrl.Panel(); p.Visible() {
		a.drawPanel(st, p.Descriptor(), p.Opacity(now), top)
	}

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) textWidth(text string, size int) int {
	return int(rl.MeasureTextEx(a.font, text, float32(size), 1).X)
}

func textColor(dark bool) rl.Color {
	if dark {
		return ColTextDark
	}
	return ColTextLight
}

func barColor(dark bool) rl.Color {
	if dark {
		return ColBarDark
	}
	return ColBarLight
}

// drawTopbar renders the selector tabs and toggles in the 64px band.
func (a *App) drawTopbar(st session.SessionState) {
	w := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, w, session.TopbarHeight, barColor(st.Dark))
	rl.DrawLine(0, session.TopbarHeight-1, w, session.TopbarHeight-1, ColTextDim)

	a.drawText("sketchdeck", 20, 22, 20, ColAccent)
	x := 160
	for i, tab := range tabs(a.ctrl.Registry(), st.Animation) {
		label := fmt.Sprintf("%d %s", i+1, tab.Title)
		tw := a.textWidth(label, 16)
		if tab.Active {
			rl.DrawRectangleRounded(rl.NewRectangle(float32(x-8), 18, float32(tw+16), 28), 0.4, 6, ColAccent)
			a.drawText(label, x, 24, 16, barColor(true))
		} else {
			a.drawText(label, x, 24, 16, textColor(st.Dark))
		}
		x += tw + 28
	}

	mode := "D: light"
	if !st.Dark {
		mode = "D: dark"
	}
	hint := mode + "   T: hide topbar"
	a.drawText(hint, int(w)-a.textWidth(hint, 14)-20, 26, 14, ColTextDim)
}

// drawChip is the top-right hint shown while the topbar is hidden.
func (a *App) drawChip(st session.SessionState) {
	const text = "T: show topbar"
	w := a.textWidth(text, 14)
	x := rl.GetScreenWidth() - w - 30
	bg := barColor(st.Dark)
	bg.A = 200
	rl.DrawRectangleRounded(rl.NewRectangle(float32(x-10), 10, float32(w+20), 26), 0.5, 6, bg)
	a.drawText(text, x, 16, 14, ColTextDim)
}

// drawPanel slides the info panel up from the bottom-left corner as it
// fades in.
func (a *App) drawPanel(st session.SessionState, d sketch.Descriptor, opacity float64, top float32) {
	if opacity <= 0 {
		return
	}
	titleW := a.textWidth(d.Title, 22)
	descW := a.textWidth(d.Description, 16)
	w := float32(max(titleW, descW) + 40)
	h := float32(78)
	x := float32(20)
	y := float32(rl.GetScreenHeight()) - h - 20 + float32(1-opacity)*30
	if y < top {
		y = top
	}

	bg := barColor(st.Dark)
	bg.A = uint8(float64(bg.A) * opacity)
	rl.DrawRectangleRounded(rl.NewRectangle(x, y, w, h), 0.2, 8, bg)
	rl.DrawRectangle(int32(x), int32(y)+12, 3, int32(h)-24, rl.Fade(ColAccent, float32(opacity)))

	a.drawText(d.Title, int(x)+20, int(y)+14, 22, rl.Fade(ColAccent, float32(opacity)))
	a.drawText(d.Description, int(x)+20, int(y)+46, 16, rl.Fade(textColor(st.Dark), float32(opacity)))
}
