package collections

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"unicode/utf8"
)

// Indexer is implemented by custom sequence types that want to be traversed
// as indexed collections.
//
// Len must report a count in [0, MaxArrayIndex]; Index is only called with
// offsets in [0, Len()).
type Indexer interface {
	Len() int
	Index(i int) any
}

// KeyedMapping is implemented by custom mapping types that own their key
// enumeration order (for example an insertion-ordered map).
//
// Keys is called once per traversal; Get reports whether key is present.
type KeyedMapping interface {
	Keys() []string
	Get(key string) (any, bool)
}

// ─────────────────────────────────────────────────────────────────────────────
// Own keys
// ─────────────────────────────────────────────────────────────────────────────

// ownKeys lists the own enumerable property names of v.
//
//   - maps: every key, stringified, ascending byte order
//   - structs and pointers to structs: exported fields in declaration order
//   - indexed sequences (slices, arrays, strings, Indexer): "0" … "n-1"
//   - KeyedMapping: whatever Keys returns
//   - anything else: no keys
func ownKeys(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	case KeyedMapping:
		src := x.Keys()
		keys := make([]string, len(src))
		copy(keys, src)
		return keys
	case Indexer:
		return indexKeys(x.Len())
	case string:
		return indexKeys(utf8.RuneCountInString(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, fmt.Sprint(iter.Key().Interface()))
		}
		sort.Strings(keys)
		return keys
	case reflect.Slice, reflect.Array:
		return indexKeys(rv.Len())
	case reflect.String:
		return indexKeys(utf8.RuneCountInString(rv.String()))
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil
		}
		return structKeys(rv.Elem().Type(), false)
	case reflect.Struct:
		return structKeys(rv.Type(), false)
	}
	return nil
}

// allKeys extends ownKeys with the promoted fields of embedded structs, the
// closest thing a Go value has to inherited properties.
func allKeys(v any) []string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		return structKeys(rv.Elem().Type(), true)
	}
	if rv.Kind() == reflect.Struct {
		return structKeys(rv.Type(), true)
	}
	return ownKeys(v)
}

func indexKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

func structKeys(t reflect.Type, promoted bool) []string {
	if !promoted {
		keys := make([]string, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				keys = append(keys, f.Name)
			}
		}
		return keys
	}
	fields := reflect.VisibleFields(t)
	keys := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if !f.IsExported() {
			continue
		}
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}
		keys = append(keys, f.Name)
	}
	return keys
}

// ─────────────────────────────────────────────────────────────────────────────
// Property access
// ─────────────────────────────────────────────────────────────────────────────

// Get reads the property key of v, the way an element accessor would:
//
//   - maps: the entry under key (converted to the map's key type)
//   - structs / struct pointers: the exported field, else the exported method
//   - indexed sequences: the element at an integer (or decimal string) key,
//     or the element count for "length"
//   - [KeyedMapping] / [Indexer]: delegated
//
// Get returns nil when v is nil or has no such property.
func Get(v any, key any) any {
	if val, ok := lookup(v, key); ok {
		return val
	}
	if name, ok := key.(string); ok {
		if m, ok := methodValue(v, name); ok {
			return m
		}
	}
	return nil
}

// Has reports whether key is an own property of v (a map entry, an exported
// struct field, or an in-range index). Methods do not count.
func Has(v any, key any) bool {
	_, ok := lookup(v, key)
	return ok
}

// lookup resolves an own property. Methods are not own properties.
func lookup(v any, key any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		val, ok := x[keyString(key)]
		return val, ok
	case KeyedMapping:
		return x.Get(keyString(key))
	case Indexer:
		if key == "length" {
			return x.Len(), true
		}
		if i, ok := indexKey(key); ok && i < x.Len() {
			return x.Index(i), true
		}
		return nil, false
	case string:
		return stringProperty(x, key)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return mapLookup(rv, key)
	case reflect.Slice, reflect.Array:
		if key == "length" {
			return rv.Len(), true
		}
		if i, ok := indexKey(key); ok && i < rv.Len() {
			return rv.Index(i).Interface(), true
		}
		return nil, false
	case reflect.String:
		return stringProperty(rv.String(), key)
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, false
		}
		return fieldLookup(rv.Elem(), key)
	case reflect.Struct:
		return fieldLookup(rv, key)
	}
	return nil, false
}

func stringProperty(s string, key any) (any, bool) {
	if key == "length" {
		return utf8.RuneCountInString(s), true
	}
	i, ok := indexKey(key)
	if !ok {
		return nil, false
	}
	for n, r := range []rune(s) {
		if n == i {
			return string(r), true
		}
	}
	return nil, false
}

func fieldLookup(rv reflect.Value, key any) (any, bool) {
	name, ok := key.(string)
	if !ok {
		return nil, false
	}
	f, ok := rv.Type().FieldByName(name)
	if !ok || !f.IsExported() {
		return nil, false
	}
	fv, err := rv.FieldByIndexErr(f.Index)
	if err != nil {
		// Promoted through a nil embedded pointer.
		return nil, false
	}
	return fv.Interface(), true
}

func methodValue(v any, name string) (any, bool) {
	if v == nil || name == "" {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}
	return m.Interface(), true
}

func mapLookup(rv reflect.Value, key any) (any, bool) {
	kt := rv.Type().Key()
	if key != nil {
		kv := reflect.ValueOf(key)
		if kv.Type().AssignableTo(kt) {
			if val := rv.MapIndex(kv); val.IsValid() {
				return val.Interface(), true
			}
		}
	}
	s := keyString(key)
	switch kt.Kind() {
	case reflect.String:
		val := rv.MapIndex(reflect.ValueOf(s).Convert(kt))
		if val.IsValid() {
			return val.Interface(), true
		}
		return nil, false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, kt.Bits())
		if err != nil {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(n).Convert(kt))
		if val.IsValid() {
			return val.Interface(), true
		}
		return nil, false
	}
	// Other key types: match on the stringified key.
	iter := rv.MapRange()
	for iter.Next() {
		if fmt.Sprint(iter.Key().Interface()) == s {
			return iter.Value().Interface(), true
		}
	}
	return nil, false
}

// keyString converts a property key to its string form.
func keyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case nil:
		return "<nil>"
	}
	return fmt.Sprint(key)
}

// indexKey converts an integer key, or a canonical decimal string, to an
// offset. Negative offsets are rejected.
func indexKey(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, k >= 0
	case string:
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 || strconv.Itoa(n) != k {
			return 0, false
		}
		return n, true
	}
	if f, ok := toNumber(key); ok && f >= 0 && f == math.Trunc(f) && f <= MaxArrayIndex {
		return int(f), true
	}
	return 0, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Scalars
// ─────────────────────────────────────────────────────────────────────────────

// toNumber returns the float64 value of any integer or float kind.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	case nil, string, bool:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isNumberKind(k reflect.Kind) bool {
	return isIntKind(k) || isUintKind(k) || k == reflect.Float32 || k == reflect.Float64
}

func isIntKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUintKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

// Truthy reports the truthiness of v: nil, false, numeric zero, NaN, the
// empty string, and nil pointers, maps, slices, funcs, and channels are
// falsy. Everything else, including empty slices and maps, is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	rv := reflect.ValueOf(v)
	switch k := rv.Kind(); {
	case k == reflect.Bool:
		return rv.Bool()
	case k == reflect.String:
		return rv.Len() > 0
	case isIntKind(k):
		return rv.Int() != 0
	case isUintKind(k):
		return rv.Uint() != 0
	case k == reflect.Float32 || k == reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case k == reflect.Pointer || k == reflect.Map || k == reflect.Slice ||
		k == reflect.Func || k == reflect.Chan || k == reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Identity returns v unchanged.
func Identity(v any) any { return v }

// StrictEqual is the non-recursive equality used by matchers and IndexOf:
//
//   - numbers of any kind compare by value (NaN is unequal to itself,
//     +0 equals −0)
//   - maps, slices, and funcs compare by reference
//   - other values compare with ==
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return isNil(a) && isNil(b)
	}
	if x, ok := toNumber(a); ok {
		y, ok := toNumber(b)
		return ok && sameNumber(a, b, x, y)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		if ta.Kind() == reflect.Slice && ra.Len() != rb.Len() {
			return false
		}
		return ra.Pointer() == rb.Pointer()
	}
	return safeEquals(a, b)
}

// sameNumber compares two numeric values, exactly when both are integers.
func sameNumber(a, b any, x, y float64) bool {
	ka, kb := reflect.TypeOf(a).Kind(), reflect.TypeOf(b).Kind()
	switch {
	case isIntKind(ka) && isIntKind(kb):
		return reflect.ValueOf(a).Int() == reflect.ValueOf(b).Int()
	case isUintKind(ka) && isUintKind(kb):
		return reflect.ValueOf(a).Uint() == reflect.ValueOf(b).Uint()
	case isIntKind(ka) && isUintKind(kb):
		i := reflect.ValueOf(a).Int()
		return i >= 0 && uint64(i) == reflect.ValueOf(b).Uint()
	case isUintKind(ka) && isIntKind(kb):
		i := reflect.ValueOf(b).Int()
		return i >= 0 && uint64(i) == reflect.ValueOf(a).Uint()
	}
	return x == y
}

// safeEquals is a == b, reporting false instead of panicking when the
// dynamic values are not comparable.
func safeEquals(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
