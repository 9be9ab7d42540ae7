package functions

import "sync"

// Before returns a function that invokes fn on each of its first times-1
// calls. Later calls return the result of the last invocation without
// invoking fn again.
//
// Calls are serialised: a concurrent caller waits for a running invocation
// to finish, as with [sync.Once]. fn must therefore not call the returned
// function itself.
func Before(times int, fn any) (Func, error) {
	f, err := toFunc(fn)
	if err != nil {
		return nil, err
	}
	var (
		mu   sync.Mutex
		left = times
		memo any
	)
	return func(args ...any) any {
		mu.Lock()
		defer mu.Unlock()
		left--
		if left > 0 && f != nil {
			memo = f(args...)
		}
		if left <= 1 {
			// release fn so it can be collected
			f = nil
		}
		return memo
	}, nil
}

// Once returns a function that invokes fn on its first call only. Every
// later call returns the first call's result.
func Once(fn any) (Func, error) {
	return Before(2, fn)
}

// After returns a function that invokes fn only once it has been called
// times times; from then on every call invokes fn. Earlier calls return
// nil. A times of 0 or less invokes fn from the first call.
func After(times int, fn any) (Func, error) {
	f, err := toFunc(fn)
	if err != nil {
		return nil, err
	}
	var (
		mu   sync.Mutex
		left = times
	)
	return func(args ...any) any {
		mu.Lock()
		left--
		ready := left < 1
		mu.Unlock()
		if !ready {
			return nil
		}
		return f(args...)
	}, nil
}
