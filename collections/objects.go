package collections

import (
	"reflect"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Keys & values
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the own enumerable keys of v, in enumeration order:
// sorted for maps, declaration order for struct fields, "0" … "n-1" for
// indexed values. The result is never nil.
func Keys(v any) []string {
	keys := ownKeys(v)
	if keys == nil {
		return []string{}
	}
	return keys
}

// AllKeys is [Keys] plus the fields promoted from embedded structs.
func AllKeys(v any) []string {
	keys := allKeys(v)
	if keys == nil {
		return []string{}
	}
	return keys
}

// Values returns the values stored under [Keys], in the same order.
func Values(v any) []any {
	keys := ownKeys(v)
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = Get(v, k)
	}
	return out
}

// Pairs returns the own key/value pairs of v.
//
//	collections.Pairs(map[string]int{"one": 1, "two": 2})
//	// → [(one, 1) (two, 2)]
func Pairs(v any) []Pair {
	keys := ownKeys(v)
	out := make([]Pair, len(keys))
	for i, k := range keys {
		out[i] = Pair{Key: k, Value: Get(v, k)}
	}
	return out
}

// Invert swaps keys and values: each value, in string form, maps to its key.
// When values repeat, the last key in enumeration order wins.
func Invert(v any) map[string]any {
	keys := ownKeys(v)
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		out[keyString(Get(v, k))] = k
	}
	return out
}

// Functions returns the sorted names of v's function-valued properties and
// exported methods.
func Functions(v any) []string {
	names := make([]string, 0)
	seen := make(map[string]struct{})
	add := func(name string) {
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	for _, k := range allKeys(v) {
		if isFunc(Get(v, k)) {
			add(k)
		}
	}
	if v != nil {
		t := reflect.TypeOf(v)
		for i := 0; i < t.NumMethod(); i++ {
			add(t.Method(i).Name)
		}
	}
	sort.Strings(names)
	return names
}

// ─────────────────────────────────────────────────────────────────────────────
// Assignment
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every property of each source, promoted struct fields
// included, into dst and returns dst. Later sources win. A nil dst is
// replaced by a new map.
//
//	collections.Extend(map[string]any{"name": "moe"}, map[string]any{"age": 50})
//	// → map[age:50 name:moe]
func Extend(dst map[string]any, sources ...any) map[string]any {
	return assign(dst, sources, allKeys, false)
}

// ExtendOwn is [Extend] restricted to own keys.
func ExtendOwn(dst map[string]any, sources ...any) map[string]any {
	return assign(dst, sources, ownKeys, false)
}

// Defaults fills the keys of dst that are missing or nil from the sources,
// first source first.
//
//	collections.Defaults(map[string]any{"flavor": "chocolate"},
//	    map[string]any{"flavor": "vanilla", "sprinkles": "lots"})
//	// → map[flavor:chocolate sprinkles:lots]
func Defaults(dst map[string]any, sources ...any) map[string]any {
	return assign(dst, sources, allKeys, true)
}

func assign(dst map[string]any, sources []any, keysOf func(any) []string, missingOnly bool) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for _, src := range sources {
		for _, k := range keysOf(src) {
			if missingOnly && dst[k] != nil {
				continue
			}
			dst[k] = Get(src, k)
		}
	}
	return dst
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a map holding only the listed keys of v. Keys may be given
// individually or as slices. Keys that v lacks are skipped.
//
//	collections.Pick(user, "Name", []string{"Age"})
func Pick(v any, keys ...any) map[string]any {
	out := make(map[string]any)
	if v == nil {
		return out
	}
	for _, k := range pickKeys(keys) {
		if val, ok := lookup(v, k); ok {
			out[k] = val
		}
	}
	return out
}

// PickBy returns a map holding the own properties of v the predicate
// accepts. The predicate receives (value, key, object).
func PickBy(v any, predicate any) map[string]any {
	pred := Normalize(predicate)
	out := make(map[string]any)
	for _, k := range allKeys(v) {
		val := Get(v, k)
		if Truthy(pred(val, k, v)) {
			out[k] = val
		}
	}
	return out
}

// Omit returns a map of v's properties without the listed keys.
func Omit(v any, keys ...any) map[string]any {
	drop := make(map[string]struct{})
	for _, k := range pickKeys(keys) {
		drop[k] = struct{}{}
	}
	return PickBy(v, func(_, key any) bool {
		_, skip := drop[key.(string)]
		return !skip
	})
}

// OmitBy returns a map of v's properties the predicate rejects.
func OmitBy(v any, predicate any) map[string]any {
	pred := Normalize(predicate)
	return PickBy(v, IterateeFunc(func(val, k, obj any) any {
		return !Truthy(pred(val, k, obj))
	}))
}

// pickKeys flattens the variadic key list of Pick and Omit.
func pickKeys(keys []any) []string {
	out := make([]string, 0, len(keys))
	for _, k := range flatten(keys, false, false, make([]any, 0)) {
		out = append(out, keyString(k))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Copying
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns a shallow copy of v with the same dynamic type: a new
// slice, map, or struct pointer holding the same elements. Other values are
// returned as they are.
func Clone(v any) any {
	if isNil(v) {
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	case reflect.Map:
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			out := reflect.New(rv.Elem().Type())
			out.Elem().Set(rv.Elem())
			return out.Interface()
		}
	}
	return v
}

// Tap calls interceptor with v and returns v. It lets a side effect sit in
// the middle of a chain.
func Tap(v any, interceptor func(any)) any {
	interceptor(v)
	return v
}
