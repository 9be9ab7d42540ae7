package collections

// This file contains the traversal entry points. Each one classifies its
// collection once ([Classify]), resolves its selector once ([Normalize]),
// and then walks the view in order: ascending offsets for indexed
// collections, key enumeration order for keyed ones.
//
//	doubled := collections.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
//	// → []any{2, 4, 6}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls iteratee(value, key, collection) for every element and returns
// collection unchanged so calls can be chained. There is no early exit; use
// [Find], [FindIndex], [Some] or [Every] to stop at the first hit.
func Each(collection any, iteratee any) any {
	fn := Normalize(iteratee)
	view := Classify(collection)
	for i, n := 0, view.Len(); i < n; i++ {
		fn(view.At(i), view.Key(i), collection)
	}
	return collection
}

// Map returns the selector's result for every element, in traversal order.
//
//	collections.Map(users, "Name") // → every user's Name field
func Map(collection any, selector any) []any {
	fn := Normalize(selector)
	view := Classify(collection)
	out := make([]any, view.Len())
	for i := range out {
		out[i] = fn(view.At(i), view.Key(i), collection)
	}
	return out
}

// MapObject returns a map holding the selector's result under each key of a
// keyed collection. Indexed collections are keyed by "0", "1", ….
func MapObject(collection any, selector any) map[string]any {
	fn := Normalize(selector)
	keys := ownKeys(collection)
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		out[k] = fn(Get(collection, k), k, collection)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the collection from the first element to the last with
// reducer(memo, value, key, collection).
//
// With a seed, the fold starts from seed[0]. Without one, the first element
// is the seed and the fold starts at the second. Reducing an empty
// collection without a seed has no value: Reduce returns (nil, false).
//
//	sum, _ := collections.Reduce([]int{1, 2, 3, 4}, func(acc, n int) int { return acc + n })
//	// → 10
//
// reducer may be any function (or an [Fn] selector); a non-function
// panics with [ErrNotFunction].
func Reduce(collection any, reducer any, seed ...any) (any, bool) {
	return reduce(collection, reducer, 1, seed)
}

// ReduceRight is [Reduce] from the last element to the first.
func ReduceRight(collection any, reducer any, seed ...any) (any, bool) {
	return reduce(collection, reducer, -1, seed)
}

func reduce(collection any, reducer any, dir int, seed []any) (any, bool) {
	fn := toReducer(reducer)
	view := Classify(collection)
	n := view.Len()
	index := 0
	if dir < 0 {
		index = n - 1
	}
	var memo any
	if len(seed) > 0 {
		memo = seed[0]
	} else {
		if n == 0 {
			return nil, false
		}
		memo = view.At(index)
		index += dir
	}
	for ; index >= 0 && index < n; index += dir {
		memo = fn(memo, view.At(index), view.Key(index), collection)
	}
	return memo, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element the predicate accepts. It stops scanning at
// the first hit. The second result is false when nothing matches.
func Find(collection any, predicate any) (any, bool) {
	pred := Normalize(predicate)
	view := Classify(collection)
	for i, n := 0, view.Len(); i < n; i++ {
		v := view.At(i)
		if Truthy(pred(v, view.Key(i), collection)) {
			return v, true
		}
	}
	return nil, false
}

// FindIndex returns the offset of the first element of an indexed
// collection the predicate accepts, or -1. Keyed collections yield -1.
func FindIndex(collection any, predicate any) int {
	return findIndex(collection, predicate, 1)
}

// FindLastIndex is [FindIndex] scanning from the end.
func FindLastIndex(collection any, predicate any) int {
	return findIndex(collection, predicate, -1)
}

func findIndex(collection any, predicate any, dir int) int {
	view, ok := indexedView(collection)
	if !ok {
		return -1
	}
	pred := Normalize(predicate)
	n := view.Len()
	index := 0
	if dir < 0 {
		index = n - 1
	}
	for ; index >= 0 && index < n; index += dir {
		if Truthy(pred(view.At(index), index, collection)) {
			return index
		}
	}
	return -1
}

// FindKey returns the first own key whose value the predicate accepts.
func FindKey(object any, predicate any) (string, bool) {
	pred := Normalize(predicate)
	for _, k := range ownKeys(object) {
		if Truthy(pred(Get(object, k), k, object)) {
			return k, true
		}
	}
	return "", false
}

// FindWhere returns the first element containing every key/value pair of
// attrs.
func FindWhere(collection any, attrs any) (any, bool) {
	return Find(collection, Match(attrs))
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the elements the predicate accepts, in traversal order.
// The result is never nil.
func Filter(collection any, predicate any) []any {
	pred := Normalize(predicate)
	view := Classify(collection)
	out := make([]any, 0, view.Len())
	for i, n := 0, view.Len(); i < n; i++ {
		v := view.At(i)
		if Truthy(pred(v, view.Key(i), collection)) {
			out = append(out, v)
		}
	}
	return out
}

// Reject is the complement of [Filter].
func Reject(collection any, predicate any) []any {
	pred := Normalize(predicate)
	return Filter(collection, IterateeFunc(func(v, k, c any) any {
		return !Truthy(pred(v, k, c))
	}))
}

// Where returns the elements containing every key/value pair of attrs.
//
//	collections.Where(books, map[string]any{"Author": "Shakespeare", "Year": 1611})
func Where(collection any, attrs any) []any {
	return Filter(collection, Match(attrs))
}

// Every reports whether the predicate accepts every element. It stops at
// the first rejection; an empty collection yields true.
func Every(collection any, predicate any) bool {
	pred := Normalize(predicate)
	view := Classify(collection)
	for i, n := 0, view.Len(); i < n; i++ {
		if !Truthy(pred(view.At(i), view.Key(i), collection)) {
			return false
		}
	}
	return true
}

// Some reports whether the predicate accepts at least one element.
func Some(collection any, predicate any) bool {
	pred := Normalize(predicate)
	view := Classify(collection)
	for i, n := 0, view.Len(); i < n; i++ {
		if Truthy(pred(view.At(i), view.Key(i), collection)) {
			return true
		}
	}
	return false
}

// Contains reports whether the collection holds a value [IsEqual] to item.
// Keyed collections are searched by value.
func Contains(collection any, item any) bool {
	return ContainsFrom(collection, item, 0)
}

// ContainsFrom is [Contains] starting at offset from; a negative from counts
// back from the end.
func ContainsFrom(collection any, item any, from int) bool {
	values := valuesOf(collection)
	if from < 0 {
		from = max(len(values)+from, 0)
	}
	nan := isNaNValue(item)
	for i := from; i < len(values); i++ {
		if IsEqual(values[i], item) || (nan && isNaNValue(values[i])) {
			return true
		}
	}
	return false
}

// Partition splits the elements into those the predicate accepts and the
// rest.
func Partition(collection any, predicate any) (pass, fail []any) {
	pred := Normalize(predicate)
	view := Classify(collection)
	pass, fail = make([]any, 0), make([]any, 0)
	for i, n := 0, view.Len(); i < n; i++ {
		v := view.At(i)
		if Truthy(pred(v, view.Key(i), collection)) {
			pass = append(pass, v)
		} else {
			fail = append(fail, v)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection
// ─────────────────────────────────────────────────────────────────────────────

// Pluck reads the property key of every element.
func Pluck(collection any, key any) []any {
	return Map(collection, Key(key))
}

// Invoke calls method on every element and returns the results.
//
// When method is a function it is called with the element as its first
// argument (or as the context of a [ContextFunc]) followed by args. When it
// is a name, the element's method or function-valued property of that name
// is called with args; elements without one yield nil.
func Invoke(collection any, method any, args ...any) []any {
	if isFunc(method) {
		return Map(collection, IterateeFunc(func(v, _, _ any) any {
			if cf, ok := method.(ContextFunc); ok {
				return cf(v, args...)
			}
			return invoker(method, nil)(append([]any{v}, args...)...)
		}))
	}
	name := keyString(method)
	return Map(collection, IterateeFunc(func(v, _, _ any) any {
		fn := Get(v, name)
		if !isFunc(fn) {
			return nil
		}
		if cf, ok := fn.(ContextFunc); ok {
			return cf(v, args...)
		}
		return invoker(fn, v)(args...)
	}))
}

// ToArray returns the elements of an indexed collection, or the values of a
// keyed one, as a new slice. nil yields an empty slice.
func ToArray(collection any) []any {
	return valuesOf(collection)
}

func valuesOf(collection any) []any {
	view := Classify(collection)
	out := make([]any, view.Len())
	for i := range out {
		out[i] = view.At(i)
	}
	return out
}
