package collections

import (
	"math"
	"reflect"
	"regexp"
	"time"
)

// IsEqual reports whether a and b are deeply equal.
//
// The comparison runs in this order:
//
//  1. Raw scalars (bool, numbers, strings) compare by value. Every numeric
//     kind is a Number: int 1 equals float64 1.0. NaN is unequal to
//     itself and +0 is unequal to −0.
//  2. nil equals only nil.
//  3. A [*Wrapper] is compared by the value it wraps.
//  4. Values with different type tags (Number, String, Boolean, Date,
//     RegExp, Function, Array, Object) are unequal.
//  5. Boxed scalars, that is pointers to scalars, [time.Time] values and
//     [*regexp.Regexp] values, compare by the value they box. Here NaN
//     equals NaN, +0 is still unequal to −0, and regular expressions
//     compare by source text.
//  6. Functions are equal only when they share a code pointer.
//  7. Two containers of different named types are unequal. When at least
//     one of the types is unnamed, the structure decides.
//  8. Arrays (slices, arrays, [Indexer]) compare element by element.
//     Objects (maps, structs, struct pointers, [KeyedMapping]) compare by
//     their own keys: same key count, same keys, equal values. Struct
//     fields that are not exported are ignored.
//
// Cyclic structures are handled with a stack of the containers currently
// being compared. When a container reappears on the stack, the pair is
// equal only if its counterpart reappears at the same depth.
func IsEqual(a, b any) bool {
	var st witnessStack
	return deepEqual(a, b, &st)
}

type tag uint8

const (
	tagOther tag = iota
	tagNumber
	tagString
	tagBoolean
	tagDate
	tagRegExp
	tagFunction
	tagArray
	tagObject
)

var (
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf((*regexp.Regexp)(nil))
)

// identity locates a container for the witness stack. A slice is identified
// by its backing array and its length, since two slices of one array are
// different values.
type identity struct {
	ptr uintptr
	n   int
	t   reflect.Type
}

type witnessStack struct {
	a, b []identity
}

func (s *witnessStack) push(a, b identity) {
	s.a = append(s.a, a)
	s.b = append(s.b, b)
}

func (s *witnessStack) pop() {
	s.a = s.a[:len(s.a)-1]
	s.b = s.b[:len(s.b)-1]
}

// seen reports whether a or b is already on its side of the stack and, if
// so, whether both sit at the same depth. Checking both sides keeps the
// comparison symmetric.
func (s *witnessStack) seen(a, b identity) (found, equal bool) {
	for i := len(s.a) - 1; i >= 0; i-- {
		if s.a[i] == a || s.b[i] == b {
			return true, s.a[i] == a && s.b[i] == b
		}
	}
	return false, false
}

func deepEqual(a, b any, st *witnessStack) bool {
	a, b = unwrap(a), unwrap(b)

	if a == nil || b == nil {
		return isNil(a) && isNil(b)
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	ta, tb := typeTag(ra), typeTag(rb)

	// Raw scalars on both sides are decided immediately.
	if isRawScalar(ra) && isRawScalar(rb) {
		if ta != tb {
			return false
		}
		switch ta {
		case tagNumber:
			return rawNumberEqual(a, b)
		case tagString:
			return ra.String() == rb.String()
		}
		return ra.Bool() == rb.Bool()
	}

	if ta != tb {
		return false
	}

	switch ta {
	case tagNumber, tagString, tagBoolean:
		return boxedEqual(ta, unbox(ra), unbox(rb))
	case tagDate:
		return asTime(ra).Equal(asTime(rb))
	case tagRegExp:
		xa, xb := ra.Interface().(*regexp.Regexp), rb.Interface().(*regexp.Regexp)
		if xa == nil || xb == nil {
			return xa == xb
		}
		return xa.String() == xb.String()
	case tagFunction:
		return ra.Pointer() == rb.Pointer()
	case tagArray, tagObject:
		return containerEqual(ta, a, b, ra, rb, st)
	}
	return safeEquals(a, b)
}

func unwrap(v any) any {
	if w, ok := v.(*Wrapper); ok && w != nil {
		return w.value
	}
	return v
}

func typeTag(rv reflect.Value) tag {
	switch rv.Interface().(type) {
	case Indexer:
		return tagArray
	case KeyedMapping:
		return tagObject
	}
	t := rv.Type()
	switch {
	case t == timeType:
		return tagDate
	case t == regexpType:
		return tagRegExp
	}
	switch k := t.Kind(); {
	case isNumberKind(k):
		return tagNumber
	case k == reflect.String:
		return tagString
	case k == reflect.Bool:
		return tagBoolean
	case k == reflect.Func:
		return tagFunction
	case k == reflect.Slice || k == reflect.Array:
		return tagArray
	case k == reflect.Map || k == reflect.Struct:
		return tagObject
	case k == reflect.Pointer:
		if rv.IsNil() {
			return tagOther
		}
		switch e := t.Elem(); {
		case e == timeType:
			return tagDate
		case e.Kind() == reflect.Struct:
			return tagObject
		case isNumberKind(e.Kind()):
			return tagNumber
		case e.Kind() == reflect.String:
			return tagString
		case e.Kind() == reflect.Bool:
			return tagBoolean
		}
	}
	return tagOther
}

func isRawScalar(rv reflect.Value) bool {
	k := rv.Kind()
	return isNumberKind(k) || k == reflect.String || k == reflect.Bool
}

// rawNumberEqual is step 1 for numbers: NaN never equals, +0 ≠ −0.
func rawNumberEqual(a, b any) bool {
	x, _ := toNumber(a)
	y, _ := toNumber(b)
	if x == 0 && y == 0 {
		return math.Signbit(x) == math.Signbit(y)
	}
	return sameNumber(a, b, x, y)
}

func unbox(rv reflect.Value) any {
	if rv.Kind() == reflect.Pointer {
		return rv.Elem().Interface()
	}
	return rv.Interface()
}

// boxedEqual is step 5: NaN equals NaN, +0 ≠ −0.
func boxedEqual(t tag, a, b any) bool {
	switch t {
	case tagString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	case tagBoolean:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	}
	x, _ := toNumber(a)
	y, _ := toNumber(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	if x == 0 && y == 0 {
		return math.Signbit(x) == math.Signbit(y)
	}
	return sameNumber(a, b, x, y)
}

func asTime(rv reflect.Value) time.Time {
	if rv.Kind() == reflect.Pointer {
		return rv.Elem().Interface().(time.Time)
	}
	return rv.Interface().(time.Time)
}

func containerEqual(t tag, a, b any, ra, rb reflect.Value, st *witnessStack) bool {
	if !compatibleTypes(ra.Type(), rb.Type()) {
		return false
	}

	ia, okA := identify(ra)
	ib, okB := identify(rb)
	if okA && okB {
		if ia == ib {
			return true
		}
		if found, eq := st.seen(ia, ib); found {
			return eq
		}
		st.push(ia, ib)
		defer st.pop()
	}

	if t == tagArray {
		va, vb := Classify(a), Classify(b)
		n := va.Len()
		if n != vb.Len() {
			return false
		}
		for i := 0; i < n; i++ {
			if !deepEqual(va.At(i), vb.At(i), st) {
				return false
			}
		}
		return true
	}

	keys := ownKeys(a)
	if len(keys) != len(ownKeys(b)) {
		return false
	}
	for _, k := range keys {
		vb, ok := lookup(b, k)
		if !ok {
			return false
		}
		va, _ := lookup(a, k)
		if !deepEqual(va, vb, st) {
			return false
		}
	}
	return true
}

// compatibleTypes is the named-type rule: two different named types never
// compare equal, anything involving a type literal is left to structure.
func compatibleTypes(ta, tb reflect.Type) bool {
	if ta.Kind() == reflect.Pointer {
		ta = ta.Elem()
	}
	if tb.Kind() == reflect.Pointer {
		tb = tb.Elem()
	}
	if ta == tb || ta.Name() == "" || tb.Name() == "" {
		return true
	}
	return false
}

func identify(rv reflect.Value) (identity, bool) {
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{ptr: rv.Pointer(), t: rv.Type()}, true
	case reflect.Slice:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{ptr: rv.Pointer(), n: rv.Len(), t: rv.Type()}, true
	}
	return identity{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// order compares two values that have a natural order: numbers (NaN has
// none), strings, and dates. ok is false when a and b are not mutually
// ordered.
func order(a, b any) (cmp int, ok bool) {
	if x, okA := toNumber(a); okA {
		y, okB := toNumber(b)
		if !okB || math.IsNaN(x) || math.IsNaN(y) {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	}
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return x.Compare(y), true
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return order(ra.String(), rb.String())
	}
	return 0, false
}

// orderable reports whether v can take part in a comparison at all.
func orderable(v any) bool {
	_, ok := order(v, v)
	return ok
}

func isNaNValue(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		return math.IsNaN(rv.Float())
	}
	return false
}
