package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sketchdeck/internal/session"
	"github.com/san-kum/sketchdeck/internal/sketch"
)

type action int

const (
	actNone action = iota
	actNext
	actPrevious
	actTheme
	actTopbar
	actDismiss
	actReset
	actQuit
	// actSelect0 + i selects the animation at position i.
	actSelect0
)

// actionFor maps a pressed key to a session action, mirroring the terminal
// bindings.
func actionFor(key int32, shift bool) action {
	switch key {
	case rl.KeyTab:
		if shift {
			return actPrevious
		}
		return actNext
	case rl.KeyRight, rl.KeyL:
		return actNext
	case rl.KeyLeft, rl.KeyH:
		return actPrevious
	case rl.KeyD:
		return actTheme
	case rl.KeyT:
		return actTopbar
	case rl.KeyEscape:
		return actDismiss
	case rl.KeyR:
		return actReset
	case rl.KeyQ:
		return actQuit
	}
	if key >= rl.KeyOne && key <= rl.KeyNine {
		return actSelect0 + action(key-rl.KeyOne)
	}
	return actNone
}

// apply runs act against ctrl and reports whether the host should quit.
func apply(ctrl *session.Controller, act action) bool {
	switch {
	case act == actQuit:
		return true
	case act == actNext:
		ctrl.Next()
	case act == actPrevious:
		ctrl.Previous()
	case act == actTheme:
		ctrl.ToggleTheme()
	case act == actTopbar:
		ctrl.ToggleTopbar()
	case act == actDismiss:
		ctrl.DismissPanel()
	case act == actReset:
		ctrl.Reset()
	case act >= actSelect0:
		if d, ok := ctrl.Registry().At(int(act - actSelect0)); ok {
			_ = ctrl.SelectAnimation(d.ID)
		}
	}
	return false
}

type tab struct {
	ID, Title string
	Active    bool
}

func tabs(reg *sketch.Registry, active string) []tab {
	list := reg.List()
	out := make([]tab, len(list))
	for i, d := range list {
		out[i] = tab{ID: d.ID, Title: d.Title, Active: d.ID == active}
	}
	return out
}
