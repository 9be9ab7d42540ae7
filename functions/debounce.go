package functions

import (
	"sync"
	"time"

	"github.com/hasbyte1/go-underscore/clock"
)

// DebounceState is the phase of a [Debounced] function.
type DebounceState int

const (
	// Idle means no burst is in progress.
	Idle DebounceState = iota
	// Waiting means a burst is in progress and the quiet-period timer is
	// armed.
	Waiting
)

func (s DebounceState) String() string {
	if s == Waiting {
		return "waiting"
	}
	return "idle"
}

// Debounced is a function whose invocation is postponed until calls stop
// for wait. Create one with [Debounce]. It is safe for concurrent use.
type Debounced struct {
	fn   Func
	wait time.Duration
	cfg  timing

	mu     sync.Mutex
	timer  clock.Handle
	gen    uint64
	last   time.Time
	args   []any
	result any
}

// Debounce wraps fn so that a burst of calls produces one invocation, made
// with the latest arguments once wait has passed without a call.
//
// With [WithImmediate] the leading call of a burst invokes fn instead, and
// the rest of the burst is absorbed.
//
// A call during a burst does not reschedule the timer. When the timer fires
// early relative to the latest call it re-arms itself for the remainder, so
// at most one callback is pending at any time.
func Debounce(fn any, wait time.Duration, opts ...Option) (*Debounced, error) {
	f, err := toFunc(fn)
	if err != nil {
		return nil, err
	}
	if wait < 0 {
		wait = 0
	}
	return &Debounced{fn: f, wait: wait, cfg: newTiming(opts)}, nil
}

// Call records args and the call time. It returns the result of the most
// recent invocation; in immediate mode the leading call returns its own
// result.
func (d *Debounced) Call(args ...any) any {
	d.mu.Lock()
	d.args = args
	d.last = d.cfg.clock.Now()
	callNow := d.cfg.immediate && d.timer == nil
	if d.timer == nil {
		d.gen++
		d.armLocked(d.wait)
	}
	if !callNow {
		result := d.result
		d.mu.Unlock()
		return result
	}
	call := d.args
	d.args = nil
	d.mu.Unlock()
	return d.invoke(call)
}

func (d *Debounced) armLocked(wait time.Duration) {
	gen := d.gen
	d.timer = d.cfg.clock.Schedule(wait, func() { d.later(gen) })
}

func (d *Debounced) later(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.timer == nil {
		d.mu.Unlock()
		return
	}
	elapsed := d.cfg.clock.Now().Sub(d.last)
	if elapsed < d.wait && elapsed >= 0 {
		d.armLocked(d.wait - elapsed)
		d.mu.Unlock()
		return
	}
	d.timer = nil
	if d.cfg.immediate {
		d.mu.Unlock()
		return
	}
	call := d.args
	d.args = nil
	d.mu.Unlock()
	d.invoke(call)
}

func (d *Debounced) invoke(args []any) any {
	result := d.fn(args...)
	d.mu.Lock()
	d.result = result
	d.mu.Unlock()
	return result
}

// Cancel drops the pending invocation and returns to [Idle].
func (d *Debounced) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.args = nil
}

// State reports the current phase.
func (d *Debounced) State() DebounceState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		return Waiting
	}
	return Idle
}
