// Package clock provides the logical clock and deferred-callback facility
// used by the rate-limiting combinators in package functions.
//
// # Overview
//
// A [Clock] answers two questions: "what time is it?" ([Clock.Now]) and
// "run this later" ([Clock.Schedule]). Two implementations ship with the
// package:
//
//   - [System] reads the wall clock and schedules with [time.AfterFunc].
//   - [Virtual] is a manual clock for tests. Time only moves when the test
//     calls [Virtual.Advance], and due callbacks run synchronously on the
//     caller's goroutine in due-time order.
//
//	vc := clock.NewVirtual(time.Unix(0, 0))
//	vc.Schedule(100*time.Millisecond, func() { fmt.Println("fired") })
//	vc.Advance(100 * time.Millisecond) // prints "fired"
//
// # Cancellation
//
// Every scheduled callback returns a [Handle]. A callback whose Stop call
// returned true never runs, on either implementation.
package clock

import (
	"sync/atomic"
	"time"
)

// Clock is the time source and scheduler consumed by throttle, debounce and
// delay.
//
// Implementations must be monotonic non-decreasing; consecutive Now calls
// may return the same instant.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// Schedule arranges for fn to run once, at or after d has elapsed.
	// A non-positive d schedules fn for the earliest opportunity.
	Schedule(d time.Duration, fn func()) Handle
}

// Handle is a pending scheduled callback.
type Handle interface {
	// Stop prevents the callback from running. It returns true if the call
	// stopped the callback and false if the callback already ran, is
	// running, or was stopped before.
	Stop() bool
}

// ─────────────────────────────────────────────────────────────────────────────
// System clock
// ─────────────────────────────────────────────────────────────────────────────

type systemClock struct{}

var system Clock = systemClock{}

// System returns the wall clock. Callbacks run on their own goroutine, as
// with [time.AfterFunc].
func System() Clock { return system }

// Now returns time.Now().
func (systemClock) Now() time.Time { return time.Now() }

// Schedule wraps time.AfterFunc.
func (systemClock) Schedule(d time.Duration, fn func()) Handle {
	h := &systemHandle{}
	h.timer = time.AfterFunc(d, func() {
		// Whoever flips the state first wins: a Stop that returned true
		// means this callback must not run.
		if h.state.CompareAndSwap(handlePending, handleFired) {
			fn()
		}
	})
	return h
}

const (
	handlePending int32 = iota
	handleFired
	handleStopped
)

type systemHandle struct {
	timer *time.Timer
	state atomic.Int32
}

func (h *systemHandle) Stop() bool {
	if !h.state.CompareAndSwap(handlePending, handleStopped) {
		return false
	}
	h.timer.Stop()
	return true
}

// Now is a convenience for System().Now().
func Now() time.Time { return system.Now() }
