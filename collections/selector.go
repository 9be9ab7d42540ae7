package collections

import (
	"fmt"
	"reflect"
)

// IterateeFunc is the canonical callable every selector resolves to.
// value is the element, key its int offset or string key, and collection
// the value being traversed.
type IterateeFunc func(value, key, collection any) any

// ReducerFunc is the canonical callable for reductions.
type ReducerFunc func(memo, value, key, collection any) any

// Func is the variadic callable shape shared with package functions.
type Func func(args ...any) any

// ContextFunc is a callable that receives an explicit context (the value a
// method would be called on) ahead of its positional arguments. It is the
// only callable shape a bound context is delivered to; closures of other
// shapes already carry whatever state they need.
type ContextFunc func(this any, args ...any) any

// Unrestricted is the arity that forwards every positional argument.
const Unrestricted = -1

// ─────────────────────────────────────────────────────────────────────────────
// Selector sum type
// ─────────────────────────────────────────────────────────────────────────────

// SelectorKind names the variant of a [Selector].
type SelectorKind int

const (
	// SelectIdentity returns the element itself.
	SelectIdentity SelectorKind = iota
	// SelectFn calls a function.
	SelectFn
	// SelectMatch tests an element against a set of key/value pairs.
	SelectMatch
	// SelectKey reads a property (or a property path) of the element.
	SelectKey
)

// String returns the variant name.
func (k SelectorKind) String() string {
	switch k {
	case SelectIdentity:
		return "identity"
	case SelectFn:
		return "fn"
	case SelectMatch:
		return "match"
	case SelectKey:
		return "key"
	}
	return fmt.Sprintf("SelectorKind(%d)", int(k))
}

// Selector describes how to derive a per-element result. It is a closed sum
// type built by [IdentitySelector], [Fn], [Match], [Key], or [SelectorOf]. Resolve
// it with [Normalize] once per call, never per element.
type Selector interface {
	// Kind reports which variant this is.
	Kind() SelectorKind

	resolve(ctx any, hasCtx bool) IterateeFunc
}

type identitySelector struct{}

func (identitySelector) Kind() SelectorKind { return SelectIdentity }

func (identitySelector) resolve(any, bool) IterateeFunc {
	return func(value, _, _ any) any { return value }
}

type fnSelector struct {
	fn     any
	ctx    any
	hasCtx bool
	arity  int
}

func (fnSelector) Kind() SelectorKind { return SelectFn }

func (s fnSelector) resolve(ctx any, hasCtx bool) IterateeFunc {
	if !s.hasCtx && hasCtx {
		s.ctx, s.hasCtx = ctx, true
	}
	return bindIteratee(s.fn, s.ctx, s.arity)
}

type matchSelector struct{ attrs any }

func (matchSelector) Kind() SelectorKind { return SelectMatch }

func (s matchSelector) resolve(any, bool) IterateeFunc {
	match := Matcher(s.attrs)
	return func(value, _, _ any) any { return match(value) }
}

type keySelector struct{ key any }

func (keySelector) Kind() SelectorKind { return SelectKey }

func (s keySelector) resolve(any, bool) IterateeFunc {
	get := Property(s.key)
	return func(value, _, _ any) any { return get(value) }
}

// FnOption configures an [Fn] selector.
type FnOption func(*fnSelector)

// WithContext binds ctx as the context of a [ContextFunc].
func WithContext(ctx any) FnOption {
	return func(s *fnSelector) { s.ctx, s.hasCtx = ctx, true }
}

// WithArity limits how many positional arguments are forwarded
// (value; value, key; value, key, collection). [Unrestricted] forwards all
// of them. The default is 3.
func WithArity(n int) FnOption {
	return func(s *fnSelector) { s.arity = n }
}

var selectIdentity Selector = identitySelector{}

// IdentitySelector returns the identity selector.
func IdentitySelector() Selector { return selectIdentity }

// Fn returns a selector that calls f. f may be any function; see
// [Normalize] for how arguments are forwarded. Fn panics with
// [ErrNotFunction] when f is not a function.
func Fn(f any, opts ...FnOption) Selector {
	if !isFunc(f) {
		panic(fmt.Errorf("%w: %T", ErrNotFunction, f))
	}
	s := fnSelector{fn: f, arity: 3}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Match returns a selector reporting whether an element contains every
// key/value pair of attrs.
func Match(attrs any) Selector { return matchSelector{attrs: attrs} }

// Key returns a selector reading the property key of an element.
// A []string key is a property path, read one segment at a time.
func Key(key any) Selector { return keySelector{key: key} }

// SelectorOf resolves a loose selector value:
//
//   - nil or "" → identity
//   - a Selector → itself
//   - a function → [Fn]
//   - a []string → a property path [Key]
//   - a keyed mapping (map, struct, struct pointer, [KeyedMapping]) → [Match]
//   - anything else → a property [Key]
func SelectorOf(loose any) Selector {
	switch x := loose.(type) {
	case nil:
		return selectIdentity
	case Selector:
		return x
	case string:
		if x == "" {
			return selectIdentity
		}
		return keySelector{key: x}
	case []string:
		return keySelector{key: x}
	case KeyedMapping:
		return matchSelector{attrs: x}
	}
	if isFunc(loose) {
		return fnSelector{fn: loose, arity: 3}
	}
	rv := reflect.ValueOf(loose)
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return matchSelector{attrs: loose}
	case reflect.Pointer:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			return matchSelector{attrs: loose}
		}
	}
	return keySelector{key: loose}
}

// Normalize resolves a loose selector into an [IterateeFunc]. The optional
// ctx is delivered to [ContextFunc] selectors that have no context bound yet.
//
// Function selectors are forwarded (value, key, collection), truncated to
// the selector's arity. Known shapes are called directly:
//
//	func(any) any            func(any) bool
//	func(any, any) any       func(any, any) bool
//	func(any, any, any) any  func(any, any, any) bool
//	IterateeFunc  Func  ContextFunc
//
// Any other function is called through reflection with as many arguments
// as it declares, each converted to the parameter type (nil becomes the
// zero value). A function with no results yields nil; otherwise its first
// result is used.
func Normalize(selector any, ctx ...any) IterateeFunc {
	s := SelectorOf(selector)
	if len(ctx) > 0 {
		return s.resolve(ctx[0], true)
	}
	return s.resolve(nil, false)
}

// Iteratee is [Normalize] with unrestricted arity for bare functions.
func Iteratee(selector any, ctx ...any) IterateeFunc {
	if isFunc(selector) {
		selector = Fn(selector, WithArity(Unrestricted))
	}
	return Normalize(selector, ctx...)
}

// Property returns an accessor reading key (or, for a []string, the path
// key[0].key[1]…) from its argument. A nil argument, or a missing segment,
// yields nil.
func Property(key any) func(any) any {
	if path, ok := key.([]string); ok {
		return func(obj any) any {
			cur := obj
			for _, seg := range path {
				if cur == nil {
					return nil
				}
				cur = Get(cur, seg)
			}
			return cur
		}
	}
	return func(obj any) any {
		if obj == nil {
			return nil
		}
		return Get(obj, key)
	}
}

// Matcher returns a predicate reporting whether its argument contains every
// key/value pair of attrs, compared with [StrictEqual].
func Matcher(attrs any) func(any) bool {
	keys := ownKeys(attrs)
	vals := make([]any, len(keys))
	for i, k := range keys {
		vals[i] = Get(attrs, k)
	}
	return func(obj any) bool {
		return matchPairs(obj, keys, vals)
	}
}

// IsMatch reports whether obj contains every key/value pair of attrs.
// A nil obj matches only an empty attrs.
func IsMatch(obj, attrs any) bool {
	return Matcher(attrs)(obj)
}

func matchPairs(obj any, keys []string, vals []any) bool {
	if isNil(obj) {
		return len(keys) == 0
	}
	for i, key := range keys {
		got, ok := lookup(obj, key)
		if !ok || !StrictEqual(vals[i], got) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Function binding
// ─────────────────────────────────────────────────────────────────────────────

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// bindIteratee specialises fn for the (value, key, collection) call shape.
func bindIteratee(fn any, ctx any, arity int) IterateeFunc {
	n := forwardCount(arity, 3)
	switch f := fn.(type) {
	case IterateeFunc:
		return truncate3(f, n)
	case func(value, key, collection any) any:
		return truncate3(f, n)
	case func(any, any, any) bool:
		return truncate3(func(v, k, c any) any { return f(v, k, c) }, n)
	case func(any) any:
		return func(v, _, _ any) any { return f(v) }
	case func(any) bool:
		return func(v, _, _ any) any { return f(v) }
	case func(any, any) any:
		if n < 2 {
			return func(v, _, _ any) any { return f(v, nil) }
		}
		return func(v, k, _ any) any { return f(v, k) }
	case func(any, any) bool:
		if n < 2 {
			return func(v, _, _ any) any { return f(v, nil) }
		}
		return func(v, k, _ any) any { return f(v, k) }
	}
	call := invoker(fn, ctx)
	return func(v, k, c any) any {
		args := [3]any{v, k, c}
		return call(args[:n]...)
	}
}

func truncate3(f func(v, k, c any) any, n int) IterateeFunc {
	switch n {
	case 1:
		return func(v, _, _ any) any { return f(v, nil, nil) }
	case 2:
		return func(v, k, _ any) any { return f(v, k, nil) }
	}
	return f
}

// forwardCount caps an arity at the number of arguments available.
func forwardCount(arity, available int) int {
	if arity == Unrestricted || arity > available || arity == 0 {
		return available
	}
	if arity < 1 {
		return 1
	}
	return arity
}

// bindReducer specialises fn for the (memo, value, key, collection) shape.
func bindReducer(fn any, ctx any) ReducerFunc {
	switch f := fn.(type) {
	case ReducerFunc:
		return f
	case func(memo, value, key, collection any) any:
		return f
	case func(any, any) any:
		return func(m, v, _, _ any) any { return f(m, v) }
	case func(any, any, any) any:
		return func(m, v, k, _ any) any { return f(m, v, k) }
	}
	call := invoker(fn, ctx)
	return func(m, v, k, c any) any { return call(m, v, k, c) }
}

// toReducer accepts a function or an [Fn] selector.
func toReducer(r any) ReducerFunc {
	if s, ok := r.(fnSelector); ok {
		return bindReducer(s.fn, s.ctx)
	}
	if !isFunc(r) {
		panic(fmt.Errorf("%w: reducer is %T", ErrNotFunction, r))
	}
	return bindReducer(r, nil)
}

// AsFunc converts any function into a [Func] using the same forwarding
// rules as [Normalize]: each argument is converted to the declared
// parameter type and surplus arguments are dropped. A [ContextFunc]
// receives ctx (if given) as its context.
func AsFunc(fn any, ctx ...any) (Func, error) {
	if !isFunc(fn) {
		return nil, fmt.Errorf("%w: %T", ErrNotFunction, fn)
	}
	var c any
	if len(ctx) > 0 {
		c = ctx[0]
	}
	return invoker(fn, c), nil
}

// invoker turns any function into a variadic call.
func invoker(fn any, ctx any) Func {
	switch f := fn.(type) {
	case Func:
		return f
	case func(...any) any:
		return f
	case ContextFunc:
		return func(args ...any) any { return f(ctx, args...) }
	case func(any, ...any) any:
		return func(args ...any) any { return f(ctx, args...) }
	}
	return reflectInvoker(fn)
}

// reflectInvoker calls an arbitrary function value, forwarding as many
// arguments as it declares.
func reflectInvoker(fn any) Func {
	if !isFunc(fn) {
		panic(fmt.Errorf("%w: %T", ErrNotFunction, fn))
	}
	rv := reflect.ValueOf(fn)
	rt := rv.Type()
	numIn := rt.NumIn()
	variadic := rt.IsVariadic()
	return func(args ...any) any {
		var in []reflect.Value
		if variadic {
			fixed := numIn - 1
			in = make([]reflect.Value, 0, max(len(args), fixed))
			for i := 0; i < fixed; i++ {
				in = append(in, argValue(args, i, rt.In(i)))
			}
			elem := rt.In(fixed).Elem()
			for i := fixed; i < len(args); i++ {
				in = append(in, argValue(args, i, elem))
			}
		} else {
			in = make([]reflect.Value, numIn)
			for i := range in {
				in[i] = argValue(args, i, rt.In(i))
			}
		}
		out := rv.Call(in)
		if len(out) == 0 {
			return nil
		}
		return out[0].Interface()
	}
}

func argValue(args []any, i int, t reflect.Type) reflect.Value {
	if i >= len(args) || args[i] == nil {
		return reflect.Zero(t)
	}
	v := reflect.ValueOf(args[i])
	if v.Type().AssignableTo(t) {
		return v
	}
	switch {
	case t.Kind() == reflect.String && isNumberKind(v.Kind()):
		// Convert would yield the rune, not the digits.
		return reflect.ValueOf(fmt.Sprint(args[i])).Convert(t)
	case v.Kind() == reflect.Slice && t.Kind() == reflect.Array:
		if v.Len() >= t.Len() && v.Type().ConvertibleTo(t) {
			return v.Convert(t)
		}
	case v.Type().ConvertibleTo(t):
		return v.Convert(t)
	}
	panic(fmt.Errorf("%w: %s to %s", ErrArgumentType, v.Type(), t))
}
