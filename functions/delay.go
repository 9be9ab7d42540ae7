package functions

import (
	"time"

	"github.com/hasbyte1/go-underscore/clock"
)

// Delay calls fn with args once wait has elapsed on the system clock.
// Stop the returned handle to cancel the call.
func Delay(fn any, wait time.Duration, args ...any) (clock.Handle, error) {
	return DelayOn(clock.System(), fn, wait, args...)
}

// DelayOn is [Delay] on an explicit clock.
func DelayOn(c clock.Clock, fn any, wait time.Duration, args ...any) (clock.Handle, error) {
	f, err := toFunc(fn)
	if err != nil {
		return nil, err
	}
	captured := append([]any(nil), args...)
	return c.Schedule(wait, func() { f(captured...) }), nil
}

// Defer calls fn with args as soon as possible on the system clock's
// callback goroutine.
func Defer(fn any, args ...any) (clock.Handle, error) {
	return DelayOn(clock.System(), fn, 0, args...)
}
