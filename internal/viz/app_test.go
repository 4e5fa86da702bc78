package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sketchdeck/internal/session"
	"github.com/san-kum/sketchdeck/internal/sketches"
)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	app, err := NewApp(sketches.MustDefault(), opts)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppStartsOnFirstResize(t *testing.T) {
	app, err := NewApp(sketches.MustDefault(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := app.View(); got != "starting…" {
		t.Errorf("View before resize = %q", got)
	}

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if cmd == nil {
		t.Error("no frame chain scheduled for the looping default")
	}
	w, h := app.Controller().Canvas()
	if w != 800 || h != 640-session.TopbarHeight {
		t.Errorf("canvas = %dx%d", w, h)
	}
	// Looping animations are not painted until the first tick.
	if got := app.Controller().Renders(); got != 0 {
		t.Errorf("renders after start = %d, want 0", got)
	}
}

func TestAppKeysDriveController(t *testing.T) {
	app := newTestApp(t, Options{})
	ctrl := app.Controller()

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := ctrl.State().Animation; got != "grid" {
		t.Errorf("after tab: %q, want grid", got)
	}
	app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := ctrl.State().Animation; got != "cnn" {
		t.Errorf("after shift+tab: %q, want cnn", got)
	}
	app.Update(runes("3"))
	if got := ctrl.State().Animation; got != "particles" {
		t.Errorf("after 3: %q, want particles", got)
	}
	app.Update(runes("9"))
	if got := ctrl.State().Animation; got != "particles" {
		t.Errorf("unbound position changed the animation to %q", got)
	}

	app.Update(runes("d"))
	if ctrl.State().Dark {
		t.Error("d did not toggle the theme")
	}
	app.Update(runes("t"))
	if ctrl.State().TopbarVisible {
		t.Error("t did not hide the topbar")
	}
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if ctrl.Panel().Visible() {
		t.Error("esc did not dismiss the panel")
	}

	_, cmd := app.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestAppStaticSelectionPaintsOnce(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Update(runes("1"))
	renders := app.Controller().Renders()

	// Frames arriving after the switch must not repaint.
	for i := 0; i < 5; i++ {
		app.Update(frameMsg(time.Now()))
	}
	if got := app.Controller().Renders(); got != renders {
		t.Errorf("renders = %d, want %d", got, renders)
	}
	if !strings.Contains(app.View(), "Grid") {
		t.Error("topbar missing the grid tab")
	}
}

func TestAppFrameTicksWhileLooping(t *testing.T) {
	app := newTestApp(t, Options{})
	before := app.Controller().Renders()
	now := time.Now()
	for i := 0; i < 3; i++ {
		app.Update(frameMsg(now.Add(time.Duration(i) * 16 * time.Millisecond)))
	}
	if got := app.Controller().Renders() - before; got != 3 {
		t.Errorf("ticks painted %d frames, want 3", got)
	}
	if app.Canvas().Height != 40-TopbarRows {
		t.Errorf("canvas rows = %d", app.Canvas().Height)
	}
}

func TestAppMouseMapsCells(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Update(tea.MouseMsg{X: 10, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	p := app.Controller().Pointer()
	if p.X != 84 || p.Y != 40 || !p.Pressed {
		t.Errorf("pointer = %+v", p)
	}

	app.Update(tea.MouseMsg{X: 10, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if app.Controller().Pointer().Pressed {
		t.Error("release left the pointer pressed")
	}
}

func TestAppViewChrome(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Update(frameMsg(time.Now()))

	view := app.View()
	if !strings.Contains(view, "sketchdeck") {
		t.Error("topbar brand missing")
	}
	if got := strings.Count(view, "\n") + 1; got != 40 {
		t.Errorf("view has %d lines, want 40", got)
	}

	app.Update(runes("t"))
	view = app.View()
	if !strings.Contains(view, "t: show topbar") {
		t.Error("hidden-topbar chip missing")
	}
	if strings.Contains(view, "sketchdeck") {
		t.Error("topbar still drawn while hidden")
	}
}

func TestAppRecordsGIF(t *testing.T) {
	path := t.TempDir() + "/rec.gif"
	app := newTestApp(t, Options{GIFPath: path})
	app.Update(runes("g"))
	now := time.Now()
	for i := 0; i < 4; i++ {
		app.Update(frameMsg(now.Add(time.Duration(i) * 20 * time.Millisecond)))
	}
	if app.rec == nil || app.rec.Len() != 4 {
		t.Fatalf("recording did not capture every frame")
	}
	app.Update(runes("g"))
	if app.rec != nil {
		t.Error("recording still running")
	}
	if !strings.Contains(app.status, "saved 4 frames") {
		t.Errorf("status = %q", app.status)
	}
}
