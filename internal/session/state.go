package session

import (
	"fmt"
	"time"
)

// Mode is the controller's scheduling mode.
type Mode int

const (
	Static Mode = iota
	Looping
)

func (m Mode) String() string {
	switch m {
	case Static:
		return "static"
	case Looping:
		return "looping"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SessionState is the user-visible state of one viewport.
type SessionState struct {
	Animation     string
	Dark          bool
	TopbarVisible bool
	LastFPSSample time.Time
	FPS           float64
}
