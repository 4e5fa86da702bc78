// Package session owns the lifecycle of one animation viewport.
//
// The [Controller] holds the only [SessionState] of a running viewport and
// mediates every user-triggered transition: animation selection, theme and
// topbar toggles, resizes and scheduler ticks. It has two coarse modes:
//
//   - [Looping]: the host calls [Controller.Tick] at its frame cadence and
//     every tick renders
//   - [Static]: the host never ticks; the controller renders exactly once per
//     state-affecting transition and leaves the canvas untouched otherwise
//
// # Hosts
//
// A host supplies a [Display] to paint into and drives the controller from a
// single goroutine:
//
//	ctrl, _ := session.New(reg, display, session.Options{})
//	ctrl.Start(width, height)
//	for each frame {
//	    if ctrl.Looping() {
//	        ctrl.Tick(now)
//	    } else {
//	        ctrl.Advance(now) // fire info-panel timers
//	    }
//	}
//
// Nothing in this package is safe for concurrent use. Timers are cooperative:
// they fire from [Controller.Advance] or [Controller.Tick] on the caller's
// goroutine.
package session
