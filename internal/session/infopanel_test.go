package session

import (
	"testing"
	"time"

	"github.com/san-kum/sketchdeck/internal/sketch"
)

func TestInfoPanelSingleDismissal(t *testing.T) {
	q := NewTimers()
	p := NewInfoPanel(q, 0)

	var dismissed []string
	p.OnDismiss = func(d sketch.Descriptor) { dismissed = append(dismissed, d.ID) }

	a := sketch.Descriptor{ID: "a", Title: "A"}
	b := sketch.Descriptor{ID: "b", Title: "B"}

	p.Show(a, epoch)
	second := epoch.Add(1500 * time.Millisecond)
	p.Show(b, second)

	if q.Len() != 1 {
		t.Fatalf("expected a single pending dismissal, got %d", q.Len())
	}

	q.Advance(epoch.Add(3000 * time.Millisecond))
	if !p.Visible() || len(dismissed) != 0 {
		t.Fatal("panel dismissed on the first show's schedule")
	}

	q.Advance(second.Add(3000 * time.Millisecond))
	if p.Visible() {
		t.Error("panel still visible after the delay")
	}
	if len(dismissed) != 1 || dismissed[0] != "b" {
		t.Errorf("expected exactly one dismissal of b, got %v", dismissed)
	}
}

func TestInfoPanelDismiss(t *testing.T) {
	q := NewTimers()
	p := NewInfoPanel(q, time.Second)
	shown := 0
	dismissed := 0
	p.OnShow = func(sketch.Descriptor) { shown++ }
	p.OnDismiss = func(sketch.Descriptor) { dismissed++ }

	p.Dismiss()
	if dismissed != 0 {
		t.Error("dismissing a hidden panel should be silent")
	}

	p.Show(sketch.Descriptor{ID: "x"}, epoch)
	if _, ok := p.Deadline(); !ok {
		t.Error("expected a deadline after Show")
	}
	p.Dismiss()
	if p.Visible() || dismissed != 1 || shown != 1 {
		t.Errorf("unexpected state: visible=%v shown=%d dismissed=%d", p.Visible(), shown, dismissed)
	}
	if q.Len() != 0 {
		t.Error("dismiss left a pending timer")
	}
	if _, ok := p.Deadline(); ok {
		t.Error("expected no deadline after Dismiss")
	}
}

func TestInfoPanelOpacity(t *testing.T) {
	q := NewTimers()
	p := NewInfoPanel(q, 0)
	if p.Opacity(epoch) != 0 {
		t.Error("hidden panel should be transparent")
	}

	p.Show(sketch.Descriptor{ID: "x"}, epoch)
	if got := p.Opacity(epoch); got != 0 {
		t.Errorf("expected 0 at show time, got %f", got)
	}
	mid := p.Opacity(epoch.Add(InfoPanelSlide / 2))
	if mid <= 0 || mid >= 1 {
		t.Errorf("expected partial opacity mid-slide, got %f", mid)
	}
	if got := p.Opacity(epoch.Add(time.Second)); got != 1 {
		t.Errorf("expected full opacity after the slide, got %f", got)
	}
}
