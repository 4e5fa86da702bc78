package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sketchdeck/internal/session"
	"github.com/san-kum/sketchdeck/internal/sketch"
	"github.com/san-kum/sketchdeck/internal/sketches"
)

type nullDisplay struct{}

func (nullDisplay) Begin(float64, float64) sketch.Surface { return sketch.NewDiscard() }
func (nullDisplay) End()                                  {}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key   int32
		shift bool
		want  action
	}{
		{rl.KeyTab, false, actNext},
		{rl.KeyTab, true, actPrevious},
		{rl.KeyRight, false, actNext},
		{rl.KeyH, false, actPrevious},
		{rl.KeyD, false, actTheme},
		{rl.KeyT, false, actTopbar},
		{rl.KeyEscape, false, actDismiss},
		{rl.KeyR, false, actReset},
		{rl.KeyQ, false, actQuit},
		{rl.KeyOne, false, actSelect0},
		{rl.KeyFive, false, actSelect0 + 4},
		{rl.KeySpace, false, actNone},
	}
	for _, tt := range tests {
		if got := actionFor(tt.key, tt.shift); got != tt.want {
			t.Errorf("actionFor(%d, %v) = %d, want %d", tt.key, tt.shift, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	ctrl, err := session.New(sketches.MustDefault(), nullDisplay{}, session.Options{})
	if err != nil {
		t.Fatal(err)
	}
	ctrl.Start(1280, 800)

	apply(ctrl, actSelect0+1)
	if got := ctrl.State().Animation; got != "ball" {
		t.Errorf("animation = %q, want ball", got)
	}
	apply(ctrl, actSelect0+8)
	if got := ctrl.State().Animation; got != "ball" {
		t.Errorf("out of range selection switched to %q", got)
	}
	apply(ctrl, actTopbar)
	if _, h := ctrl.Canvas(); h != 800 {
		t.Errorf("canvas height = %d with topbar hidden", h)
	}
	if !apply(ctrl, actQuit) {
		t.Error("quit action did not request exit")
	}
}

func TestTabs(t *testing.T) {
	got := tabs(sketches.MustDefault(), "wave")
	if len(got) != 5 {
		t.Fatalf("tabs = %d", len(got))
	}
	for _, tb := range got {
		if tb.Active != (tb.ID == "wave") {
			t.Errorf("tab %s active = %v", tb.ID, tb.Active)
		}
	}
}

func TestToRL(t *testing.T) {
	c := toRL(sketch.Gray(200, 150.0/255))
	if c.R != 200 || c.G != 200 || c.B != 200 || c.A != 150 {
		t.Errorf("toRL = %+v", c)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	o.defaults()
	if o.Width != 1280 || o.Height != 800 || o.FrameRate != 60 {
		t.Errorf("defaults = %dx%d @ %d", o.Width, o.Height, o.FrameRate)
	}
	if o.FontPath != "" {
		t.Errorf("font path = %q, want built-in font", o.FontPath)
	}
	if o.Logger == nil || o.Session.Logger != o.Logger {
		t.Error("loggers not defaulted")
	}

	o = Options{Width: 640, FontPath: "mono.ttf"}
	o.defaults()
	if o.Width != 640 || o.FontPath != "mono.ttf" {
		t.Errorf("explicit values overwritten: %+v", o)
	}
}
