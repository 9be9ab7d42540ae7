package collections

import "errors"

// Sentinel errors returned (or panicked with) by collections operations.
//
// Use [errors.Is] for comparisons:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, collections.ErrNotFunction) {
//	        // a non-function was passed where a callable is required
//	    }
//	}()
var (
	// ErrNotFunction is raised when a value that must be callable (a reducer,
	// an explicit [Fn] selector, an Invoke method) is not a function.
	ErrNotFunction = errors.New("collections: value is not a function")

	// ErrArgumentType is raised when a reflectively called function declares
	// a parameter type that a forwarded argument cannot be converted to.
	ErrArgumentType = errors.New("collections: argument cannot be converted to parameter type")

	// ErrMismatchedLengths is returned by [Object] when the key and value
	// sequences have different lengths.
	ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")

	// ErrMixinNotFound is returned when an unregistered mixin name is called.
	ErrMixinNotFound = errors.New("collections: mixin not found")

	// ErrNotSettable is returned by [SetPath] when an intermediate segment
	// exists but is not a map[string]any.
	ErrNotSettable = errors.New("collections: path segment is not a map[string]any")
)
