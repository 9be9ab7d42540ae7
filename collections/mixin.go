package collections

import (
	"fmt"
	"sync"
)

// MixinFunc is the function signature for a registered mixin.
//
// value is the wrapped value (not the *Wrapper), so a mixin can call any
// package-level operation on it directly.
type MixinFunc func(value any, args ...any) any

// mixinRegistry is the package-level, goroutine-safe mixin store.
var mixinRegistry struct {
	mu     sync.RWMutex
	mixins map[string]MixinFunc
}

func init() {
	mixinRegistry.mixins = make(map[string]MixinFunc)
}

// RegisterMixin adds a named operation to the global registry, making it
// callable on every [Wrapper] through [Wrapper.Mixin].
// If a mixin with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
// Example – register a mixin that keeps only even numbers:
//
//	collections.RegisterMixin("evens", func(v any, _ ...any) any {
//	    return collections.Filter(v, func(n int) bool { return n%2 == 0 })
//	})
//
//	res, _ := collections.Chain([]int{1, 2, 3, 4}).Mixin("evens")
//	res.Value() // []any{2, 4}
func RegisterMixin(name string, fn MixinFunc) {
	mixinRegistry.mu.Lock()
	defer mixinRegistry.mu.Unlock()
	mixinRegistry.mixins[name] = fn
}

// Mixin registers every function-valued property of funcs (a map or a
// struct of MixinFunc-shaped functions) under its key.
// Properties that are not MixinFunc-shaped are skipped.
func Mixin(funcs any) {
	for _, name := range Functions(funcs) {
		switch fn := Get(funcs, name).(type) {
		case MixinFunc:
			RegisterMixin(name, fn)
		case func(any, ...any) any:
			RegisterMixin(name, fn)
		}
	}
}

// HasMixin reports whether a mixin with the given name is registered.
func HasMixin(name string) bool {
	mixinRegistry.mu.RLock()
	defer mixinRegistry.mu.RUnlock()
	_, ok := mixinRegistry.mixins[name]
	return ok
}

// FlushMixins removes all registered mixins.
// Intended for use in tests.
func FlushMixins() {
	mixinRegistry.mu.Lock()
	defer mixinRegistry.mu.Unlock()
	mixinRegistry.mixins = make(map[string]MixinFunc)
}

// CallMixin calls the named mixin with value and args.
// Returns (nil, ErrMixinNotFound) if no mixin is registered under name.
func CallMixin(name string, value any, args ...any) (any, error) {
	mixinRegistry.mu.RLock()
	fn, ok := mixinRegistry.mixins[name]
	mixinRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMixinNotFound, name)
	}
	return fn(value, args...), nil
}

// Mixin calls the named registered mixin on the wrapped value and wraps the
// result.
func (w *Wrapper) Mixin(name string, args ...any) (*Wrapper, error) {
	v, err := CallMixin(name, w.value, args...)
	if err != nil {
		return nil, err
	}
	return &Wrapper{value: v}, nil
}
