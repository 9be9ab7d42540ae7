package functions

import (
	"fmt"

	"github.com/hasbyte1/go-underscore/collections"
)

// Func is the variadic callable every combinator returns.
type Func = collections.Func

// ContextFunc is a function that receives an explicit context as its
// first argument. [Bind] supplies it.
type ContextFunc = collections.ContextFunc

type placeholder struct{}

// Placeholder marks an argument position left open by [Partial]. Open
// positions are filled, in order, by the arguments of each call.
var Placeholder any = placeholder{}

func isPlaceholder(v any) bool {
	_, ok := v.(placeholder)
	return ok
}

// toFunc converts fn with the forwarding rules of [collections.AsFunc].
func toFunc(fn any, ctx ...any) (Func, error) {
	f, err := collections.AsFunc(fn, ctx...)
	if err != nil {
		return nil, fmt.Errorf("%w: %T", ErrNotFunction, fn)
	}
	return f, nil
}

// Bind returns fn with ctx bound as its context and args prepended to
// every call. ctx only reaches a [ContextFunc] (or a func(any, ...any) any);
// other functions just receive the prepended arguments.
//
//	hello := func(this any, args ...any) any { return fmt.Sprint(this, " ", args[0]) }
//	f, _ := functions.Bind(functions.ContextFunc(hello), "hi")
//	f("moe") // → "hi moe"
func Bind(fn any, ctx any, args ...any) (Func, error) {
	f, err := toFunc(fn, ctx)
	if err != nil {
		return nil, err
	}
	bound := append([]any(nil), args...)
	return func(rest ...any) any {
		return f(concat(bound, rest)...)
	}, nil
}

// Partial returns fn with args pre-filled. A [Placeholder] in args leaves
// its position open for the next call argument; call arguments left over
// after the open positions are filled are appended.
//
//	sub := func(a, b int) int { return a - b }
//	subFrom20, _ := functions.Partial(sub, 20)
//	subFrom20(5) // → 15
//	minus5, _ := functions.Partial(sub, functions.Placeholder, 5)
//	minus5(20) // → 15
func Partial(fn any, args ...any) (Func, error) {
	f, err := toFunc(fn)
	if err != nil {
		return nil, err
	}
	bound := append([]any(nil), args...)
	return func(fill ...any) any {
		return f(fillArgs(bound, fill)...)
	}, nil
}

func fillArgs(bound, fill []any) []any {
	out := make([]any, len(bound), len(bound)+len(fill))
	pos := 0
	for i, b := range bound {
		if isPlaceholder(b) {
			if pos < len(fill) {
				out[i] = fill[pos]
				pos++
			}
			continue
		}
		out[i] = b
	}
	return append(out, fill[pos:]...)
}

func concat(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// BindAll replaces each named function in obj with a [Func] bound to obj,
// so a [ContextFunc] stored in the map receives the map as its context
// wherever the function is later called from.
func BindAll(obj map[string]any, names ...string) error {
	if len(names) == 0 {
		return ErrNoMethodNames
	}
	bound := make(map[string]Func, len(names))
	for _, name := range names {
		f, err := Bind(obj[name], obj)
		if err != nil {
			return fmt.Errorf("%w: method %q", err, name)
		}
		bound[name] = f
	}
	for name, f := range bound {
		obj[name] = f
	}
	return nil
}

// Wrap returns a function that calls wrapper with fn as its first argument
// followed by the call arguments. fn is passed unchanged, so wrapper may
// declare its exact type.
//
//	hello := func(name string) string { return "hello: " + name }
//	f, _ := functions.Wrap(hello, func(inner func(string) string, name string) string {
//	    return "before, " + inner(name) + ", after"
//	})
func Wrap(fn any, wrapper any) (Func, error) {
	if _, err := toFunc(fn); err != nil {
		return nil, err
	}
	return Partial(wrapper, fn)
}

// Negate returns a function reporting the opposite truthiness of
// predicate's result. The result is always a bool.
func Negate(predicate any) (Func, error) {
	f, err := toFunc(predicate)
	if err != nil {
		return nil, err
	}
	return func(args ...any) any {
		return !collections.Truthy(f(args...))
	}, nil
}

// Compose returns the composition of fns: each function consumes the
// return value of the function after it, so Compose(f, g, h)(x) is
// f(g(h(x))). The last function receives every call argument. With no
// functions the composition returns its first argument.
func Compose(fns ...any) (Func, error) {
	chain := make([]Func, len(fns))
	for i, fn := range fns {
		f, err := toFunc(fn)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d", err, i)
		}
		chain[i] = f
	}
	return func(args ...any) any {
		if len(chain) == 0 {
			if len(args) == 0 {
				return nil
			}
			return args[0]
		}
		last := len(chain) - 1
		result := chain[last](args...)
		for i := last - 1; i >= 0; i-- {
			result = chain[i](result)
		}
		return result
	}, nil
}
