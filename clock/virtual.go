package clock

import (
	"sort"
	"sync"
	"time"
)

// Virtual is a manually advanced [Clock].
//
// Virtual never moves on its own. [Virtual.Advance] and [Virtual.Set] move
// the clock forward and run every callback that has come due, one at a
// time, in due-time order (callbacks due at the same instant run in the
// order they were scheduled). While a callback runs, [Virtual.Now] reports
// its due time, so callbacks observe the instant they were scheduled for.
// Callbacks scheduled from inside a callback are picked up by the same
// Advance call if they fall due before its target.
//
// Virtual is safe for concurrent use, but the callbacks themselves run on
// the goroutine that calls Advance or Set.
type Virtual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*virtualTimer
}

type virtualTimer struct {
	vc  *Virtual
	due time.Time
	seq uint64
	fn  func()
}

// NewVirtual creates a Virtual clock reading start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

// Now returns the virtual instant.
func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Schedule registers fn to run once the clock reaches Now()+d.
func (v *Virtual) Schedule(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	t := &virtualTimer{vc: v, due: v.now.Add(d), seq: v.seq, fn: fn}
	v.timers = append(v.timers, t)
	return t
}

// Stop removes the timer from its clock.
func (t *virtualTimer) Stop() bool {
	v := t.vc
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, other := range v.timers {
		if other == t {
			v.timers = append(v.timers[:i], v.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by d, running due callbacks.
// A negative d is treated as zero.
func (v *Virtual) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	v.Set(v.Now().Add(d))
}

// Set moves the clock to t, running due callbacks. Setting a time earlier
// than Now leaves the clock unchanged.
func (v *Virtual) Set(t time.Time) {
	for {
		v.mu.Lock()
		next := v.popDueLocked(t)
		if next == nil {
			if t.After(v.now) {
				v.now = t
			}
			v.mu.Unlock()
			return
		}
		if next.due.After(v.now) {
			v.now = next.due
		}
		v.mu.Unlock()
		next.fn()
	}
}

// Pending reports how many callbacks are scheduled and not yet run.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}

// NextDue returns the due time of the earliest pending callback.
func (v *Virtual) NextDue() (time.Time, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.timers) == 0 {
		return time.Time{}, false
	}
	v.sortLocked()
	return v.timers[0].due, true
}

func (v *Virtual) popDueLocked(limit time.Time) *virtualTimer {
	if len(v.timers) == 0 {
		return nil
	}
	v.sortLocked()
	first := v.timers[0]
	if first.due.After(limit) {
		return nil
	}
	v.timers = v.timers[1:]
	return first
}

func (v *Virtual) sortLocked() {
	sort.SliceStable(v.timers, func(i, j int) bool {
		a, b := v.timers[i], v.timers[j]
		if a.due.Equal(b.due) {
			return a.seq < b.seq
		}
		return a.due.Before(b.due)
	})
}
