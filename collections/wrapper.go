package collections

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Wrapper holds a value so that collection operations can be chained as
// methods.
//
// Every method that transforms the value returns a *new* Wrapper, leaving
// the receiver unchanged, and [Wrapper.Value] ends the chain:
//
//	top := collections.Chain(scores).
//	    SortBy(nil).
//	    Uniq().
//	    Rest(2).
//	    Value()
//
// A Wrapper compares [IsEqual] to the value it holds. Operations that have
// no method here are still reachable through [Wrapper.Then] or a
// registered mixin ([Wrapper.Mixin]).
type Wrapper struct {
	value any
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Chain wraps v. Wrapping a *Wrapper returns a new Wrapper around the
// same value.
func Chain(v any) *Wrapper {
	if w, ok := v.(*Wrapper); ok && w != nil {
		return &Wrapper{value: w.value}
	}
	return &Wrapper{value: v}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Value returns the wrapped value.
func (w *Wrapper) Value() any { return w.value }

// Size returns the number of elements a traversal of the value visits.
func (w *Wrapper) Size() int { return Size(w.value) }

// IsEmpty reports whether the value has nothing to traverse.
func (w *Wrapper) IsEmpty() bool { return IsEmpty(w.value) }

// ToJSON serialises the wrapped value.
func (w *Wrapper) ToJSON() ([]byte, error) {
	return json.Marshal(w.value)
}

// ToYAML serialises the wrapped value as a YAML document.
func (w *Wrapper) ToYAML() ([]byte, error) {
	return yaml.Marshal(w.value)
}

// String returns a JSON representation of the value, falling back to the
// %v form for values JSON cannot encode.
// It implements [fmt.Stringer].
func (w *Wrapper) String() string {
	b, err := w.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", w.value)
	}
	return string(b)
}

// Dump prints the value to stdout and returns w for chaining.
func (w *Wrapper) Dump() *Wrapper {
	fmt.Println(w.String())
	return w
}

// ─────────────────────────────────────────────────────────────────────────────
// Pipeline control
// ─────────────────────────────────────────────────────────────────────────────

// Tap calls fn with the wrapped value for side effects and returns w.
func (w *Wrapper) Tap(fn func(any)) *Wrapper {
	Tap(w.value, fn)
	return w
}

// Then replaces the value with fn(value).
//
//	collections.Chain(users).Then(func(v any) any { return collections.IndexBy(v, "ID") })
func (w *Wrapper) Then(fn func(any) any) *Wrapper {
	return &Wrapper{value: fn(w.value)}
}

// When calls fn(w) if condition is true and returns the result.
// Otherwise returns w unchanged.
func (w *Wrapper) When(condition bool, fn func(*Wrapper) *Wrapper) *Wrapper {
	if condition {
		return fn(w)
	}
	return w
}

// Unless calls fn(w) if condition is false; otherwise returns w.
func (w *Wrapper) Unless(condition bool, fn func(*Wrapper) *Wrapper) *Wrapper {
	return w.When(!condition, fn)
}

// WhenEmpty calls fn(w) if the value is empty; otherwise returns w.
func (w *Wrapper) WhenEmpty(fn func(*Wrapper) *Wrapper) *Wrapper {
	return w.When(w.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(w) if the value is not empty; otherwise returns w.
func (w *Wrapper) WhenNotEmpty(fn func(*Wrapper) *Wrapper) *Wrapper {
	return w.When(!w.IsEmpty(), fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Each calls iteratee for every element and returns w.
func (w *Wrapper) Each(iteratee any) *Wrapper {
	Each(w.value, iteratee)
	return w
}

// Map wraps the result of [Map].
func (w *Wrapper) Map(selector any) *Wrapper { return &Wrapper{value: Map(w.value, selector)} }

// MapObject wraps the result of [MapObject].
func (w *Wrapper) MapObject(selector any) *Wrapper {
	return &Wrapper{value: MapObject(w.value, selector)}
}

// Reduce wraps the result of [Reduce]. An empty collection without a seed
// wraps nil.
func (w *Wrapper) Reduce(reducer any, seed ...any) *Wrapper {
	v, _ := Reduce(w.value, reducer, seed...)
	return &Wrapper{value: v}
}

// ReduceRight wraps the result of [ReduceRight].
func (w *Wrapper) ReduceRight(reducer any, seed ...any) *Wrapper {
	v, _ := ReduceRight(w.value, reducer, seed...)
	return &Wrapper{value: v}
}

// Filter wraps the result of [Filter].
func (w *Wrapper) Filter(predicate any) *Wrapper {
	return &Wrapper{value: Filter(w.value, predicate)}
}

// Reject wraps the result of [Reject].
func (w *Wrapper) Reject(predicate any) *Wrapper {
	return &Wrapper{value: Reject(w.value, predicate)}
}

// Where wraps the result of [Where].
func (w *Wrapper) Where(attrs any) *Wrapper { return &Wrapper{value: Where(w.value, attrs)} }

// Pluck wraps the result of [Pluck].
func (w *Wrapper) Pluck(key any) *Wrapper { return &Wrapper{value: Pluck(w.value, key)} }

// Invoke wraps the result of [Invoke].
func (w *Wrapper) Invoke(method any, args ...any) *Wrapper {
	return &Wrapper{value: Invoke(w.value, method, args...)}
}

// SortBy wraps the result of [SortBy].
func (w *Wrapper) SortBy(selector any) *Wrapper { return &Wrapper{value: SortBy(w.value, selector)} }

// GroupBy wraps the result of [GroupBy].
func (w *Wrapper) GroupBy(selector any) *Wrapper {
	return &Wrapper{value: GroupBy(w.value, selector)}
}

// IndexBy wraps the result of [IndexBy].
func (w *Wrapper) IndexBy(selector any) *Wrapper {
	return &Wrapper{value: IndexBy(w.value, selector)}
}

// CountBy wraps the result of [CountBy].
func (w *Wrapper) CountBy(selector any) *Wrapper {
	return &Wrapper{value: CountBy(w.value, selector)}
}

// Shuffle wraps the result of [Shuffle].
func (w *Wrapper) Shuffle() *Wrapper { return &Wrapper{value: Shuffle(w.value)} }

// ToArray wraps the result of [ToArray].
func (w *Wrapper) ToArray() *Wrapper { return &Wrapper{value: ToArray(w.value)} }

// ─────────────────────────────────────────────────────────────────────────────
// Arrays
// ─────────────────────────────────────────────────────────────────────────────

// First wraps the first element, or the first n[0] elements.
func (w *Wrapper) First(n ...int) *Wrapper {
	if len(n) > 0 {
		return &Wrapper{value: FirstN(w.value, n[0])}
	}
	v, _ := First(w.value)
	return &Wrapper{value: v}
}

// Last wraps the last element, or the last n[0] elements.
func (w *Wrapper) Last(n ...int) *Wrapper {
	if len(n) > 0 {
		return &Wrapper{value: LastN(w.value, n[0])}
	}
	v, _ := Last(w.value)
	return &Wrapper{value: v}
}

// Initial wraps the result of [Initial].
func (w *Wrapper) Initial(n ...int) *Wrapper { return &Wrapper{value: Initial(w.value, n...)} }

// Rest wraps the result of [Rest].
func (w *Wrapper) Rest(n ...int) *Wrapper { return &Wrapper{value: Rest(w.value, n...)} }

// Compact wraps the result of [Compact].
func (w *Wrapper) Compact() *Wrapper { return &Wrapper{value: Compact(w.value)} }

// Flatten wraps the result of [Flatten].
func (w *Wrapper) Flatten(shallow bool) *Wrapper {
	return &Wrapper{value: Flatten(w.value, shallow)}
}

// Without wraps the result of [Without].
func (w *Wrapper) Without(values ...any) *Wrapper {
	return &Wrapper{value: Without(w.value, values...)}
}

// Uniq wraps the result of [Uniq].
func (w *Wrapper) Uniq(selector ...any) *Wrapper {
	return &Wrapper{value: Uniq(w.value, selector...)}
}

// Union wraps the union of the value and others.
func (w *Wrapper) Union(others ...any) *Wrapper {
	return &Wrapper{value: Union(append([]any{w.value}, others...)...)}
}

// Intersection wraps the result of [Intersection].
func (w *Wrapper) Intersection(others ...any) *Wrapper {
	return &Wrapper{value: Intersection(w.value, others...)}
}

// Difference wraps the result of [Difference].
func (w *Wrapper) Difference(others ...any) *Wrapper {
	return &Wrapper{value: Difference(w.value, others...)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Objects
// ─────────────────────────────────────────────────────────────────────────────

// Keys wraps the result of [Keys].
func (w *Wrapper) Keys() *Wrapper { return &Wrapper{value: Keys(w.value)} }

// Values wraps the result of [Values].
func (w *Wrapper) Values() *Wrapper { return &Wrapper{value: Values(w.value)} }

// Pairs wraps the result of [Pairs].
func (w *Wrapper) Pairs() *Wrapper { return &Wrapper{value: Pairs(w.value)} }

// Invert wraps the result of [Invert].
func (w *Wrapper) Invert() *Wrapper { return &Wrapper{value: Invert(w.value)} }

// Pick wraps the result of [Pick].
func (w *Wrapper) Pick(keys ...any) *Wrapper { return &Wrapper{value: Pick(w.value, keys...)} }

// Omit wraps the result of [Omit].
func (w *Wrapper) Omit(keys ...any) *Wrapper { return &Wrapper{value: Omit(w.value, keys...)} }

// Clone wraps the result of [Clone].
func (w *Wrapper) Clone() *Wrapper { return &Wrapper{value: Clone(w.value)} }
