package collections

import (
	"math/rand"
	"sort"
)

// This file contains operations that summarise, order, or bucket a whole
// collection. Criteria are produced by a selector, so any of the loose
// selector forms work:
//
//	oldest, _ := collections.Max(people, "Age")
//	byDept    := collections.GroupBy(staff, "Department")

// Max returns the element whose criterion is greatest. Elements whose
// criterion has no natural order (see [SortBy]) are skipped. The second
// result is false when no element qualifies, including for an empty
// collection.
func Max(collection any, selector ...any) (any, bool) {
	return extreme(collection, selector, 1)
}

// Min returns the element whose criterion is least.
func Min(collection any, selector ...any) (any, bool) {
	return extreme(collection, selector, -1)
}

func extreme(collection any, selector []any, want int) (any, bool) {
	fn := Normalize(optionalSelector(selector))
	view := Classify(collection)

	var result, best any
	found := false
	for i, n := 0, view.Len(); i < n; i++ {
		v := view.At(i)
		c := fn(v, view.Key(i), collection)
		if !orderable(c) {
			continue
		}
		if !found {
			result, best, found = v, c, true
			continue
		}
		if cmp, ok := order(c, best); ok && cmp == want {
			result, best = v, c
		}
	}
	return result, found
}

func optionalSelector(selector []any) any {
	if len(selector) == 0 {
		return nil
	}
	return selector[0]
}

// SortBy returns the elements ordered by the selector's criterion,
// ascending. The sort is stable. Numbers, strings, and dates have a
// natural order; nil criteria sort last, and criteria that cannot be
// compared keep their relative positions.
//
//	collections.SortBy([]any{3, 1, 2}, nil) // → [1 2 3]
func SortBy(collection any, selector any) []any {
	fn := Normalize(selector)
	view := Classify(collection)

	type criterion struct {
		value    any
		index    int
		criteria any
	}
	items := make([]criterion, view.Len())
	for i := range items {
		v := view.At(i)
		items[i] = criterion{value: v, index: i, criteria: fn(v, view.Key(i), collection)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].criteria, items[j].criteria
		if cmp, ok := order(a, b); ok {
			return cmp < 0
		}
		return !isNil(a) && isNil(b)
	})

	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it.value
	}
	return out
}

// GroupBy buckets the elements by the string form of the selector's result.
// Each bucket keeps traversal order.
func GroupBy(collection any, selector any) map[string][]any {
	groups := make(map[string][]any)
	group(collection, selector, func(key string, v any) {
		groups[key] = append(groups[key], v)
	})
	return groups
}

// IndexBy maps the string form of each element's criterion to the element.
// When several elements share a key, the last one wins.
func IndexBy(collection any, selector any) map[string]any {
	out := make(map[string]any)
	group(collection, selector, func(key string, v any) { out[key] = v })
	return out
}

// CountBy counts the elements per string form of the selector's result.
//
//	collections.CountBy([]int{1, 2, 3, 4, 5}, func(n int) string {
//	    if n%2 == 0 { return "even" }
//	    return "odd"
//	}) // → map[even:2 odd:3]
func CountBy(collection any, selector any) map[string]int {
	out := make(map[string]int)
	group(collection, selector, func(key string, _ any) { out[key]++ })
	return out
}

func group(collection any, selector any, behavior func(key string, v any)) {
	fn := Normalize(selector)
	view := Classify(collection)
	for i, n := 0, view.Len(); i < n; i++ {
		v := view.At(i)
		behavior(keyString(fn(v, view.Key(i), collection)), v)
	}
}

// Shuffle returns the elements (or the values of a keyed collection) in a
// random order.
func Shuffle(collection any) []any {
	out := valuesOf(collection)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns one random element. The second result is false for an
// empty collection.
func Sample(collection any) (any, bool) {
	values := valuesOf(collection)
	if len(values) == 0 {
		return nil, false
	}
	return values[rand.Intn(len(values))], true
}

// SampleN returns n distinct random elements, or all of them shuffled when n
// is at least the collection's size. A negative n yields an empty slice.
func SampleN(collection any, n int) []any {
	out := Shuffle(collection)
	n = max(0, min(n, len(out)))
	return out[:n]
}
