// Package functions provides combinators that control how and when a
// function runs: binding and partial application, call counting, caching,
// and rate limiting.
//
// # Callables
//
// Every combinator accepts any Go function. Arguments are forwarded with
// the rules of [collections.AsFunc]: each one is converted to the declared
// parameter type, missing ones become zero values, and surplus ones are
// dropped. The combinators return a [Func], the variadic shape shared with
// package collections, so their results can be used anywhere a selector is
// accepted.
//
//	greet, _ := functions.Partial(func(greeting, name string) string {
//	    return greeting + ", " + name
//	}, "hi")
//	greet("moe") // → "hi, moe"
//
// # Caching
//
// [Memoize] keeps every computed result for the lifetime of the [Memo].
// The cache is never evicted, so memoize functions whose key space is
// bounded. [DigestHasher] builds keys from every argument instead of the
// first one.
//
// # Rate limiting
//
// [Throttle] and [Debounce] coordinate the wrapped function with a
// [clock.Clock]. Each wrapper owns an explicit state record with at most
// one pending callback, inspectable through State:
//
//	t, _ := functions.Throttle(save, time.Second)
//	t.Call(doc) // runs now
//	t.Call(doc) // coalesced into one trailing call a second later
//	t.State()   // → functions.TrailingScheduled
//
// Tests inject a [clock.Virtual] with [WithClock] and move time explicitly.
//
// # Errors
//
// Constructors return [ErrNotFunction] when handed a non-function. Panics
// raised by the wrapped function are not recovered; a panic inside a timer
// callback surfaces on whatever goroutine runs the clock's callbacks.
package functions
