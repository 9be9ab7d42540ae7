package functions

import "github.com/hasbyte1/go-underscore/clock"

// Option configures [Throttle] and [Debounce].
type Option func(*timing)

type timing struct {
	leading   bool
	trailing  bool
	immediate bool
	clock     clock.Clock
}

func newTiming(opts []Option) timing {
	t := timing{leading: true, trailing: true, clock: clock.System()}
	for _, opt := range opts {
		opt(&t)
	}
	if t.clock == nil {
		t.clock = clock.System()
	}
	return t
}

// WithLeading controls whether [Throttle] invokes on the first call of a
// burst. Default true.
func WithLeading(on bool) Option {
	return func(t *timing) { t.leading = on }
}

// WithTrailing controls whether [Throttle] invokes once more, with the
// latest arguments, at the end of a burst. Default true.
//
// Disabling both leading and trailing leaves a throttle that only invokes
// on calls arriving after a full quiet period.
func WithTrailing(on bool) Option {
	return func(t *timing) { t.trailing = on }
}

// WithImmediate makes [Debounce] invoke on the leading call of a burst
// instead of after it.
func WithImmediate() Option {
	return func(t *timing) { t.immediate = true }
}

// WithClock sets the clock used to read the time and schedule callbacks.
// Default [clock.System].
func WithClock(c clock.Clock) Option {
	return func(t *timing) { t.clock = c }
}
