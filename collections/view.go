package collections

import (
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// MaxArrayIndex is the largest element count a value may report and still be
// treated as an indexed sequence: 2^53 − 1, the largest integer a float64
// represents exactly.
const MaxArrayIndex = 1<<53 - 1

// View is the result of classifying a collection. It is a closed union with
// exactly two variants, [IndexedView] and [KeyedView]:
//
//	switch v := collections.Classify(x).(type) {
//	case collections.IndexedView:
//	    // v.Key(i) is the int offset i
//	case collections.KeyedView:
//	    // v.Key(i) is the i-th string key
//	}
//
// Every traversal classifies its input exactly once and then walks the view
// from 0 to Len()-1.
type View interface {
	// Len returns the number of elements the traversal will visit.
	Len() int

	// Key returns the key passed to callbacks for position i: an int for
	// indexed views, a string for keyed views.
	Key(i int) any

	// At returns the element at position i.
	At(i int) any

	// Source returns the classified value.
	Source() any

	view()
}

// IndexedView walks offsets 0 … Len()-1 in ascending order.
type IndexedView struct {
	src any
	n   int
	at  func(i int) any
}

// Len returns the element count.
func (v IndexedView) Len() int { return v.n }

// Key returns i.
func (v IndexedView) Key(i int) any { return i }

// At returns the element at offset i.
func (v IndexedView) At(i int) any { return v.at(i) }

// Source returns the classified value.
func (v IndexedView) Source() any { return v.src }

func (IndexedView) view() {}

// KeyedView walks the own keys of a mapping in enumeration order.
type KeyedView struct {
	src  any
	keys []string
}

// Len returns the key count.
func (v KeyedView) Len() int { return len(v.keys) }

// Key returns the i-th key.
func (v KeyedView) Key(i int) any { return v.keys[i] }

// KeyAt returns the i-th key as a string.
func (v KeyedView) KeyAt(i int) string { return v.keys[i] }

// At returns the value stored under the i-th key.
func (v KeyedView) At(i int) any { return Get(v.src, v.keys[i]) }

// Source returns the classified value.
func (v KeyedView) Source() any { return v.src }

// Keys returns a copy of the enumerated keys.
func (v KeyedView) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

func (KeyedView) view() {}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

// IsIndexed reports whether v is traversed as an indexed sequence.
//
// The test is a shape heuristic, not a type tag: v is indexed when it
// exposes a length that is a number in [0, [MaxArrayIndex]]. Slices, arrays,
// strings, and [Indexer] values always qualify. A mapping whose "length"
// entry holds a conforming number qualifies too, and its elements are then
// read under the keys "0", "1", …:
//
//	collections.IsIndexed(map[string]any{"length": 2, "0": "a", "1": "b"}) // true
//
// Callers that pass such mappings get indexed behaviour whether they meant
// it or not.
func IsIndexed(v any) bool {
	_, ok := probeLength(v)
	return ok
}

// Classify decides once how v is traversed and returns the matching view.
func Classify(v any) View {
	if iv, ok := indexedView(v); ok {
		return iv
	}
	return KeyedView{src: v, keys: ownKeys(v)}
}

func indexedView(v any) (IndexedView, bool) {
	n, ok := probeLength(v)
	if !ok {
		return IndexedView{}, false
	}
	view := IndexedView{src: v, n: n}
	switch x := v.(type) {
	case []any:
		view.at = func(i int) any { return x[i] }
	case string:
		runes := []rune(x)
		view.at = func(i int) any { return string(runes[i]) }
	case Indexer:
		view.at = x.Index
	case KeyedMapping:
		view.at = func(i int) any {
			val, _ := x.Get(strconv.Itoa(i))
			return val
		}
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			view.at = func(i int) any { return rv.Index(i).Interface() }
		case reflect.String:
			runes := []rune(rv.String())
			view.at = func(i int) any { return string(runes[i]) }
		default:
			view.at = func(i int) any { return Get(v, strconv.Itoa(i)) }
		}
	}
	return view, true
}

// probeLength reads the length of v, reporting false when v has no
// conforming length.
func probeLength(v any) (int, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case []any:
		return len(x), true
	case string:
		return utf8.RuneCountInString(x), true
	case Indexer:
		return lengthOf(x.Len())
	case KeyedMapping:
		l, ok := x.Get("length")
		if !ok {
			return 0, false
		}
		return lengthOf(l)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Map:
		l, ok := mapLookup(rv, "length")
		if !ok {
			return 0, false
		}
		return lengthOf(l)
	}
	return 0, false
}

// lengthOf validates a length value. Fractional lengths round up, so
// a traversal visits every offset below the length.
func lengthOf(l any) (int, bool) {
	f, ok := toNumber(l)
	if !ok || math.IsNaN(f) || f < 0 || f > MaxArrayIndex {
		return 0, false
	}
	return int(math.Ceil(f)), true
}

// Size returns the number of elements a traversal of v visits.
// nil has size 0.
func Size(v any) int {
	return Classify(v).Len()
}
