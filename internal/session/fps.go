package session

import "time"

// FPSWindow is the minimum time between two frame-rate samples.
const FPSWindow = 500 * time.Millisecond

// fpsMeter counts frames and turns them into a rate once per window.
type fpsMeter struct {
	last   time.Time
	frames int
	value  float64
}

func (m *fpsMeter) restart(now time.Time) {
	m.last = now
	m.frames = 0
}

// frame records one rendered frame and reports whether the rate was
// recomputed.
func (m *fpsMeter) frame(now time.Time) bool {
	if m.last.IsZero() {
		m.restart(now)
	}
	m.frames++
	elapsed := now.Sub(m.last)
	if elapsed < FPSWindow {
		return false
	}
	m.value = float64(m.frames) / elapsed.Seconds()
	m.restart(now)
	return true
}
