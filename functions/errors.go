package functions

import "errors"

// Sentinel errors returned by the combinator constructors.
//
//	_, err := functions.Once("not a function")
//	if errors.Is(err, functions.ErrNotFunction) {
//	    // reject the input
//	}
var (
	// ErrNotFunction is returned when a value that must be callable is not
	// a function.
	ErrNotFunction = errors.New("functions: value is not a function")

	// ErrNoMethodNames is returned by [BindAll] when no method names are
	// given.
	ErrNoMethodNames = errors.New("functions: BindAll requires at least one method name")
)
