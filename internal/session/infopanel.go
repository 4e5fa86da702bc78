package session

import (
	"time"

	"github.com/san-kum/sketchdeck/internal/sketch"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultInfoPanelDelay is how long the panel stays up after a show.
	DefaultInfoPanelDelay = 3000 * time.Millisecond

	// InfoPanelSlide is the duration of the slide-in.
	InfoPanelSlide = 300 * time.Millisecond
)

// InfoPanel presents the title and description of the selected animation
// for a short while. It has a single dismissal slot: showing again restarts
// the countdown instead of queueing a second one.
type InfoPanel struct {
	timers    *Timers
	delay     time.Duration
	desc      sketch.Descriptor
	visible   bool
	shownAt   time.Time
	dismissal *Timer
	slide     *gween.Tween

	// OnShow and OnDismiss are called after the panel changes visibility.
	OnShow    func(sketch.Descriptor)
	OnDismiss func(sketch.Descriptor)
}

func NewInfoPanel(timers *Timers, delay time.Duration) *InfoPanel {
	if delay <= 0 {
		delay = DefaultInfoPanelDelay
	}
	return &InfoPanel{
		timers: timers,
		delay:  delay,
		slide:  gween.New(0, 1, float32(InfoPanelSlide.Seconds()), ease.OutCubic),
	}
}

// Show displays d and (re)starts the dismissal countdown.
func (p *InfoPanel) Show(d sketch.Descriptor, now time.Time) {
	if p.dismissal != nil {
		p.dismissal.Stop()
	}
	p.desc = d
	p.visible = true
	p.shownAt = now
	p.dismissal = p.timers.AfterFunc(now, p.delay, p.expire)
	if p.OnShow != nil {
		p.OnShow(d)
	}
}

// Dismiss hides the panel immediately and cancels the pending countdown.
func (p *InfoPanel) Dismiss() {
	if p.dismissal != nil {
		p.dismissal.Stop()
		p.dismissal = nil
	}
	if !p.visible {
		return
	}
	p.hide()
}

func (p *InfoPanel) expire() {
	p.dismissal = nil
	p.hide()
}

func (p *InfoPanel) hide() {
	p.visible = false
	if p.OnDismiss != nil {
		p.OnDismiss(p.desc)
	}
}

func (p *InfoPanel) Visible() bool { return p.visible }

func (p *InfoPanel) Descriptor() sketch.Descriptor { return p.desc }

// Deadline returns when the panel will hide itself, if it is counting down.
func (p *InfoPanel) Deadline() (time.Time, bool) {
	if p.dismissal == nil {
		return time.Time{}, false
	}
	return p.dismissal.When(), true
}

// Opacity returns the slide-in progress in [0,1] at now; 0 while hidden.
func (p *InfoPanel) Opacity(now time.Time) float64 {
	if !p.visible {
		return 0
	}
	elapsed := now.Sub(p.shownAt)
	if elapsed <= 0 {
		return 0
	}
	v, _ := p.slide.Set(float32(elapsed.Seconds()))
	return float64(v)
}
