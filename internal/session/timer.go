package session

import (
	"cmp"
	"slices"
	"time"
)

// Timer is a pending single-shot callback in a [Timers] queue.
type Timer struct {
	at    time.Time
	fn    func()
	queue *Timers
	seq   uint64
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t == nil || t.queue == nil {
		return false
	}
	return t.queue.remove(t)
}

// When returns the time the timer fires at.
func (t *Timer) When() time.Time { return t.at }

// Timers is a cooperative timer queue. Callbacks run only from Advance, on
// the caller's goroutine, in deadline order.
type Timers struct {
	pending []*Timer
	seq     uint64
}

func NewTimers() *Timers {
	return &Timers{}
}

// AfterFunc schedules fn to run once d has passed since now.
func (q *Timers) AfterFunc(now time.Time, d time.Duration, fn func()) *Timer {
	q.seq++
	t := &Timer{at: now.Add(d), fn: fn, queue: q, seq: q.seq}
	q.pending = append(q.pending, t)
	slices.SortStableFunc(q.pending, func(a, b *Timer) int {
		if c := a.at.Compare(b.at); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	return t
}

// Advance fires every timer due at or before now and returns how many fired.
// Callbacks may schedule or stop other timers.
func (q *Timers) Advance(now time.Time) int {
	fired := 0
	for len(q.pending) > 0 && !q.pending[0].at.After(now) {
		t := q.pending[0]
		q.pending = q.pending[1:]
		t.queue = nil
		fired++
		if t.fn != nil {
			t.fn()
		}
	}
	return fired
}

// Next returns the earliest pending deadline.
func (q *Timers) Next() (time.Time, bool) {
	if len(q.pending) == 0 {
		return time.Time{}, false
	}
	return q.pending[0].at, true
}

func (q *Timers) Len() int {
	return len(q.pending)
}

func (q *Timers) remove(t *Timer) bool {
	for i, p := range q.pending {
		if p == t {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			t.queue = nil
			return true
		}
	}
	return false
}
