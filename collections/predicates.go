package collections

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// IsEmpty reports whether v has nothing to traverse: nil, an empty indexed
// value, or a keyed value without own keys. Scalars are empty.
func IsEmpty(v any) bool {
	if isNil(v) {
		return true
	}
	if n, ok := probeLength(v); ok {
		return n == 0
	}
	return len(ownKeys(v)) == 0
}

// IsArray reports whether v is a slice or an array.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsObject reports whether v is a reference-like value: a map, slice,
// array, struct, non-nil pointer, or function.
func IsObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Func:
		return true
	case reflect.Pointer:
		return !rv.IsNil()
	}
	return false
}

// IsFunction reports whether v is a function.
func IsFunction(v any) bool { return isFunc(v) }

// IsString reports whether v is a string or a pointer to one.
func IsString(v any) bool { return scalarKind(v) == reflect.String }

// IsNumber reports whether v is a number of any kind, or a pointer to one.
func IsNumber(v any) bool { return isNumberKind(scalarKind(v)) }

// IsBoolean reports whether v is a bool or a pointer to one.
func IsBoolean(v any) bool { return scalarKind(v) == reflect.Bool }

// IsDate reports whether v is a [time.Time] or a non-nil *time.Time.
func IsDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

// IsRegExp reports whether v is a compiled regular expression.
func IsRegExp(v any) bool {
	re, ok := v.(*regexp.Regexp)
	return ok && re != nil
}

// IsError reports whether v implements error.
func IsError(v any) bool {
	_, ok := v.(error)
	return ok && !isNil(v)
}

// IsNaN reports whether v is a floating-point NaN (boxed or not).
func IsNaN(v any) bool { return isNaNValue(v) }

// IsFinite reports whether v is a finite number or a string that parses as
// one.
//
//	collections.IsFinite(12)     // true
//	collections.IsFinite("1e3")  // true
//	collections.IsFinite(math.Inf(1)) // false
func IsFinite(v any) bool {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
	}
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	f, ok := toNumber(rv.Interface())
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// IsNil reports whether v is nil or a nil pointer, map, slice, function,
// channel, or interface.
func IsNil(v any) bool { return isNil(v) }

// scalarKind returns the kind of v, looking through one pointer.
func scalarKind(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Invalid
		}
		return rv.Elem().Kind()
	}
	return rv.Kind()
}
