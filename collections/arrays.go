package collections

import (
	"fmt"
	"math"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of an indexed collection.
// Returns nil and false when the collection is empty or not indexed.
func First(array any) (any, bool) {
	view, ok := indexedView(array)
	if !ok || view.Len() == 0 {
		return nil, false
	}
	return view.At(0), true
}

// FirstN returns the first n elements. n larger than the collection
// returns every element; n ≤ 0 returns none.
func FirstN(array any, n int) []any {
	values := indexedValues(array)
	return values[:clamp(n, len(values))]
}

// Last returns the last element of an indexed collection.
func Last(array any) (any, bool) {
	view, ok := indexedView(array)
	if !ok || view.Len() == 0 {
		return nil, false
	}
	return view.At(view.Len() - 1), true
}

// LastN returns the last n elements.
func LastN(array any, n int) []any {
	values := indexedValues(array)
	return values[len(values)-clamp(n, len(values)):]
}

// Initial returns every element but the last n (default 1).
func Initial(array any, n ...int) []any {
	values := indexedValues(array)
	drop := 1
	if len(n) > 0 && n[0] > 0 {
		drop = n[0]
	}
	return values[:len(values)-clamp(drop, len(values))]
}

// Rest returns every element but the first n (default 1).
func Rest(array any, n ...int) []any {
	values := indexedValues(array)
	skip := 1
	if len(n) > 0 && n[0] > 0 {
		skip = n[0]
	}
	return values[clamp(skip, len(values)):]
}

// Compact returns the truthy elements (see [Truthy]).
func Compact(array any) []any {
	return Filter(array, IdentitySelector())
}

func clamp(n, length int) int {
	return max(0, min(n, length))
}

// indexedValues copies the elements of an indexed collection. Anything else
// yields an empty slice.
func indexedValues(array any) []any {
	view, ok := indexedView(array)
	if !ok {
		return []any{}
	}
	out := make([]any, view.Len())
	for i := range out {
		out[i] = view.At(i)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Flattening & set operations
// ─────────────────────────────────────────────────────────────────────────────

// Flatten returns the elements of array with nested slices, arrays, and
// [Indexer] values spliced in. With shallow set only one level is removed.
// Strings are never flattened.
//
//	collections.Flatten([]any{1, []any{2, []any{3}}}, false) // → [1 2 3]
//	collections.Flatten([]any{1, []any{2, []any{3}}}, true)  // → [1 2 [3]]
func Flatten(array any, shallow bool) []any {
	return flatten(array, shallow, false, make([]any, 0))
}

// flatten appends the flattened input to out. With strict set, elements
// that are not themselves sequences are dropped.
func flatten(input any, shallow, strict bool, out []any) []any {
	for _, v := range indexedValues(input) {
		if !isSequence(v) {
			if !strict {
				out = append(out, v)
			}
			continue
		}
		if shallow {
			out = append(out, indexedValues(v)...)
		} else {
			out = flatten(v, false, false, out)
		}
	}
	return out
}

// isSequence reports whether v is spliced by [Flatten].
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Indexer); ok {
		return true
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Without returns the elements of array not [IsEqual] to any of values.
func Without(array any, values ...any) []any {
	return Difference(array, values)
}

// Uniq returns array without duplicates, keeping first occurrences. With a
// selector, uniqueness is decided on the selector's result.
func Uniq(array any, selector ...any) []any {
	var fn IterateeFunc
	if sel := optionalSelector(selector); sel != nil {
		fn = Normalize(sel)
	}
	result := make([]any, 0)
	var seen []any
	for i, v := range indexedValues(array) {
		computed := v
		if fn != nil {
			computed = fn(v, i, array)
		}
		if !containsValue(seen, computed) {
			seen = append(seen, computed)
			result = append(result, v)
		}
	}
	return result
}

// UniqSorted is [Uniq] for an array already sorted by the criterion: each
// element is only compared with its predecessor.
func UniqSorted(array any, selector ...any) []any {
	var fn IterateeFunc
	if sel := optionalSelector(selector); sel != nil {
		fn = Normalize(sel)
	}
	result := make([]any, 0)
	var last any
	for i, v := range indexedValues(array) {
		computed := v
		if fn != nil {
			computed = fn(v, i, array)
		}
		if i == 0 || !StrictEqual(last, computed) {
			result = append(result, v)
		}
		last = computed
	}
	return result
}

// Union returns the unique elements of all arrays, in first-seen order.
// Arguments that are not sequences are ignored.
func Union(arrays ...any) []any {
	return Uniq(flatten(arrays, true, true, make([]any, 0)))
}

// Intersection returns the unique elements of array present in every one
// of rest.
func Intersection(array any, rest ...any) []any {
	others := make([][]any, len(rest))
	for i, r := range rest {
		others[i] = valuesOf(r)
	}
	result := make([]any, 0)
	for _, item := range indexedValues(array) {
		if containsValue(result, item) {
			continue
		}
		inAll := true
		for _, o := range others {
			if !containsValue(o, item) {
				inAll = false
				break
			}
		}
		if inAll {
			result = append(result, item)
		}
	}
	return result
}

// Difference returns the elements of array present in none of others.
func Difference(array any, others ...any) []any {
	exclude := flatten(others, true, true, make([]any, 0))
	return Filter(array, func(v any) bool { return !containsValue(exclude, v) })
}

// containsValue is [Contains] over a plain slice.
func containsValue(values []any, item any) bool {
	nan := isNaNValue(item)
	for _, v := range values {
		if IsEqual(v, item) || (nan && isNaNValue(v)) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// Zip merges arrays position by position. The result is as long as the
// longest input; missing positions are nil.
//
//	collections.Zip([]string{"moe", "larry"}, []int{30, 40})
//	// → [[moe 30] [larry 40]]
func Zip(arrays ...any) [][]any {
	return Unzip(arrays)
}

// Unzip is the inverse of [Zip]: given an array of arrays it groups the
// elements at each position.
func Unzip(array any) [][]any {
	rows := indexedValues(array)
	length := 0
	for _, r := range rows {
		if n, ok := probeLength(r); ok {
			length = max(length, n)
		}
	}
	out := make([][]any, length)
	for i := range out {
		out[i] = Pluck(rows, i)
	}
	return out
}

// Object builds a map from a sequence of keys and a sequence of values
// aligned with it. It returns [ErrMismatchedLengths] when the lengths differ.
//
//	m, _ := collections.Object([]string{"a", "b"}, []int{1, 2})
//	// → map[a:1 b:2]
func Object(keys any, values any) (map[string]any, error) {
	ks, vs := indexedValues(keys), indexedValues(values)
	if len(ks) != len(vs) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrMismatchedLengths, len(ks), len(vs))
	}
	out := make(map[string]any, len(ks))
	for i, k := range ks {
		out[keyString(k)] = vs[i]
	}
	return out, nil
}

// ObjectFromPairs builds a map from [key, value] pairs. Each pair may be an
// indexed value or a [Pair]; later pairs overwrite earlier ones.
func ObjectFromPairs(pairs any) map[string]any {
	out := make(map[string]any)
	for _, p := range indexedValues(pairs) {
		if pair, ok := p.(Pair); ok {
			out[pair.Key] = pair.Value
			continue
		}
		kv := indexedValues(p)
		var k, v any
		if len(kv) > 0 {
			k = kv[0]
		}
		if len(kv) > 1 {
			v = kv[1]
		}
		out[keyString(k)] = v
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Position lookup
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the offset of the first element [StrictEqual] to item, or
// -1. Unlike plain equality, a NaN item finds the first NaN element.
func IndexOf(array any, item any) int {
	return IndexOfFrom(array, item, 0)
}

// IndexOfFrom is [IndexOf] starting at offset from; a negative from counts
// back from the end.
func IndexOfFrom(array any, item any, from int) int {
	values := indexedValues(array)
	if from < 0 {
		from = max(from+len(values), 0)
	}
	for i := from; i < len(values); i++ {
		if sameElement(values[i], item) {
			return i
		}
	}
	return -1
}

// IndexOfSorted finds item in an array sorted ascending with a binary
// search.
func IndexOfSorted(array any, item any) int {
	values := indexedValues(array)
	i := SortedIndex(values, item)
	if i < len(values) && sameElement(values[i], item) {
		return i
	}
	return -1
}

// LastIndexOf returns the offset of the last element [StrictEqual] to item,
// or -1.
func LastIndexOf(array any, item any) int {
	return LastIndexOfFrom(array, item, math.MaxInt)
}

// LastIndexOfFrom is [LastIndexOf] searching backwards from offset from; a
// negative from counts back from the end.
func LastIndexOfFrom(array any, item any, from int) int {
	values := indexedValues(array)
	end := len(values) - 1
	if from >= 0 {
		end = min(from, end)
	} else {
		end = from + len(values)
	}
	for i := end; i >= 0; i-- {
		if sameElement(values[i], item) {
			return i
		}
	}
	return -1
}

func sameElement(v, item any) bool {
	return StrictEqual(v, item) || (isNaNValue(item) && isNaNValue(v))
}

// SortedIndex returns the lowest offset at which obj could be inserted into
// the sorted array while keeping it sorted. With a selector, the order is
// that of the selector's results.
//
//	collections.SortedIndex([]int{10, 20, 30, 40, 50}, 35) // → 3
func SortedIndex(array any, obj any, selector ...any) int {
	fn := Normalize(optionalSelector(selector))
	values := indexedValues(array)
	target := fn(obj, nil, nil)
	low, high := 0, len(values)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if cmp, ok := order(fn(values[mid], mid, array), target); ok && cmp < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}

// Range returns the integers from start (inclusive) to stop (exclusive)
// advancing by step:
//
//	Range(5)         // [0 1 2 3 4]
//	Range(1, 5)      // [1 2 3 4]
//	Range(0, 10, 3)  // [0 3 6 9]
//	Range(0, -5, -1) // [0 -1 -2 -3 -4]
//
// A zero step is treated as 1. A range that never reaches stop is empty.
func Range(args ...int) []int {
	var start, stop, step int
	switch len(args) {
	case 0:
		return []int{}
	case 1:
		stop = args[0]
	default:
		start, stop = args[0], args[1]
	}
	step = 1
	if len(args) > 2 && args[2] != 0 {
		step = args[2]
	}
	length := max(int(math.Ceil(float64(stop-start)/float64(step))), 0)
	out := make([]int, length)
	for i := range out {
		out[i] = start
		start += step
	}
	return out
}
