package collections

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation paths
//
// These functions read and write values in nested structures using
// dot-separated key paths. Reads work on any value [Get] understands, so a
// path may cross maps, structs, and slices:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":  "Alice",
//	        "roles": []string{"admin", "ops"},
//	    },
//	}
//
//	GetPath(m, "user.roles.1")  → "ops"
//	HasPath(m, "user.email")    → false
//
// Writes only descend through map[string]any.
// ─────────────────────────────────────────────────────────────────────────────

// GetPath reads the value at a dot-notation path.
// Returns def[0] (or nil) when any segment is missing.
//
//	GetPath(m, "user.name")               // "Alice"
//	GetPath(m, "user.missing", "default") // "default"
func GetPath(v any, path string, def ...any) any {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		val, ok := lookup(cur, seg)
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		cur = val
	}
	return cur
}

// HasPath reports whether every segment of the dot-notation path exists.
func HasPath(v any, path string) bool {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		val, ok := lookup(cur, seg)
		if !ok {
			return false
		}
		cur = val
	}
	return true
}

// SetPath writes value into m at the dot-notation path, creating
// intermediate maps as needed. It returns [ErrNotSettable] when an
// intermediate segment holds something other than a map[string]any; m is
// left unchanged in that case.
//
//	SetPath(m, "user.address.postcode", "EC1")
func SetPath(m map[string]any, path string, value any) error {
	segments := strings.Split(path, ".")
	cur := m
	for i, seg := range segments[:len(segments)-1] {
		next, exists := cur[seg]
		if !exists || next == nil {
			// Build the missing branch off to the side and attach it last,
			// so a failure never leaves partial writes behind.
			branch := make(map[string]any)
			leaf := branch
			for _, s := range segments[i+1 : len(segments)-1] {
				child := make(map[string]any)
				leaf[s] = child
				leaf = child
			}
			leaf[segments[len(segments)-1]] = value
			cur[seg] = branch
			return nil
		}
		nested, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q holds %T", ErrNotSettable, strings.Join(segments[:i+1], "."), next)
		}
		cur = nested
	}
	cur[segments[len(segments)-1]] = value
	return nil
}

// ForgetPath removes the value at the dot-notation path from m.
// Intermediate maps are not cleaned up; a missing path is a no-op.
func ForgetPath(m map[string]any, path string) {
	segments := strings.Split(path, ".")
	cur := m
	for _, seg := range segments[:len(segments)-1] {
		nested, ok := cur[seg].(map[string]any)
		if !ok {
			return
		}
		cur = nested
	}
	delete(cur, segments[len(segments)-1])
}

// Dot flattens a nested map[string]any into a single-level map using dot
// notation for the keys.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dot-notation map into a nested map[string]any.
// Keys are applied in sorted order, so a conflict such as {"a": 1,
// "a.b": 2} always fails the same way, with [ErrNotSettable].
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Undot(m map[string]any) (map[string]any, error) {
	out := make(map[string]any)
	for _, key := range ownKeys(m) {
		if err := SetPath(out, key, m[key]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
