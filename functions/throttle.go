package functions

import (
	"sync"
	"time"

	"github.com/hasbyte1/go-underscore/clock"
)

// ThrottleState is the phase of a [Throttled] function.
type ThrottleState int

const (
	// Ready means the next call invokes immediately.
	Ready ThrottleState = iota
	// Cooling means an invocation happened less than wait ago and no
	// trailing call is pending.
	Cooling
	// TrailingScheduled means a trailing invocation is armed.
	TrailingScheduled
)

func (s ThrottleState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Cooling:
		return "cooling"
	case TrailingScheduled:
		return "trailing-scheduled"
	}
	return "unknown"
}

// Throttled is a function invoked at most once per wait interval.
// Create one with [Throttle]. It is safe for concurrent use.
type Throttled struct {
	fn   Func
	wait time.Duration
	cfg  timing

	mu          sync.Mutex
	hasPrevious bool
	previous    time.Time
	timer       clock.Handle
	gen         uint64
	args        []any
	result      any
}

// Throttle wraps fn so that it runs at most once per wait.
//
// The first call of a burst invokes fn immediately (unless
// WithLeading(false)). Calls inside the cooldown record their arguments,
// and one trailing invocation with the latest arguments runs when the
// cooldown ends (unless WithTrailing(false)). A burst therefore produces
// at most one leading and one trailing invocation, spaced at least wait
// apart.
//
//	t, _ := functions.Throttle(updatePosition, 100*time.Millisecond)
//	for ev := range moves {
//	    t.Call(ev)
//	}
func Throttle(fn any, wait time.Duration, opts ...Option) (*Throttled, error) {
	f, err := toFunc(fn)
	if err != nil {
		return nil, err
	}
	if wait < 0 {
		wait = 0
	}
	return &Throttled{fn: f, wait: wait, cfg: newTiming(opts)}, nil
}

// Call records args and invokes fn if the cooldown has passed. It returns
// the result of the most recent invocation, which is nil until fn has run
// once.
func (t *Throttled) Call(args ...any) any {
	t.mu.Lock()
	now := t.cfg.clock.Now()
	if !t.hasPrevious && !t.cfg.leading {
		t.previous, t.hasPrevious = now, true
	}
	t.args = args

	if !t.hasPrevious || t.remaining(now) <= 0 || t.remaining(now) > t.wait {
		t.stopTimerLocked()
		t.previous, t.hasPrevious = now, true
		call := t.args
		t.args = nil
		t.mu.Unlock()
		return t.invoke(call)
	}
	if t.timer == nil && t.cfg.trailing {
		t.armLocked(t.remaining(now))
	}
	result := t.result
	t.mu.Unlock()
	return result
}

// remaining is the cooldown left at now. A value above wait means the
// clock went backwards since the previous invocation.
func (t *Throttled) remaining(now time.Time) time.Duration {
	return t.wait - now.Sub(t.previous)
}

func (t *Throttled) armLocked(d time.Duration) {
	t.gen++
	gen := t.gen
	t.timer = t.cfg.clock.Schedule(d, func() { t.trailingCall(gen) })
}

func (t *Throttled) trailingCall(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.timer == nil {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	if t.cfg.leading {
		t.previous, t.hasPrevious = t.cfg.clock.Now(), true
	} else {
		t.hasPrevious = false
	}
	call := t.args
	t.args = nil
	t.mu.Unlock()
	t.invoke(call)
}

func (t *Throttled) invoke(args []any) any {
	result := t.fn(args...)
	t.mu.Lock()
	t.result = result
	t.mu.Unlock()
	return result
}

func (t *Throttled) stopTimerLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}

// Cancel drops a pending trailing invocation and resets the cooldown, so
// the next call behaves like the first.
func (t *Throttled) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTimerLocked()
	t.hasPrevious = false
	t.args = nil
}

// State reports the current phase.
func (t *Throttled) State() ThrottleState {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case t.timer != nil:
		return TrailingScheduled
	case t.hasPrevious && t.remaining(t.cfg.clock.Now()) > 0:
		return Cooling
	}
	return Ready
}
