package functions

import (
	"encoding/hex"
	"fmt"
	"maps"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Hasher computes the cache key of a memoized call.
type Hasher func(args ...any) string

// MemoOption configures [Memoize].
type MemoOption func(*Memo)

// WithHasher sets the function that derives cache keys from call
// arguments. By default the key is the formatted first argument, so calls
// that differ only after the first argument share an entry.
func WithHasher(h Hasher) MemoOption {
	return func(m *Memo) {
		if h != nil {
			m.hasher = h
		}
	}
}

// DigestHasher keys a call by the BLAKE2b-256 digest of all its arguments,
// each formatted with %#v. Arguments that format identically share a key;
// pointers format as addresses, so they key by identity.
func DigestHasher(args ...any) string {
	h, _ := blake2b.New256(nil) // only fails for an oversized key
	for _, a := range args {
		fmt.Fprintf(h, "%#v\x00", a)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func firstArgKey(args ...any) string {
	if len(args) == 0 {
		return fmt.Sprint(nil)
	}
	return fmt.Sprint(args[0])
}

// Memo is a memoized function. Results are cached by key for the lifetime
// of the Memo and never evicted. It is safe for concurrent use.
type Memo struct {
	fn     Func
	hasher Hasher

	mu    sync.RWMutex
	cache map[string]any
}

// Memoize wraps fn with a result cache.
//
//	var fib *functions.Memo
//	fib, _ = functions.Memoize(func(n int) int {
//	    if n < 2 {
//	        return n
//	    }
//	    return fib.Call(n-1).(int) + fib.Call(n-2).(int)
//	})
//
// fn runs outside the cache lock, so it may call the Memo recursively.
// Two concurrent first calls for the same key may both run fn; the first
// result stored wins and is returned to both.
func Memoize(fn any, opts ...MemoOption) (*Memo, error) {
	f, err := toFunc(fn)
	if err != nil {
		return nil, err
	}
	m := &Memo{fn: f, hasher: firstArgKey, cache: make(map[string]any)}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Call returns the cached result for args' key, invoking fn on a miss.
func (m *Memo) Call(args ...any) any {
	key := m.hasher(args...)
	m.mu.RLock()
	v, ok := m.cache[key]
	m.mu.RUnlock()
	if ok {
		return v
	}

	v = m.fn(args...)

	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.cache[key]; ok {
		return prev
	}
	m.cache[key] = v
	return v
}

// Cache returns a copy of the cache.
func (m *Memo) Cache() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.cache)
}

// Len returns the number of cached results.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// Forget removes the entry for args' key and reports whether one existed.
func (m *Memo) Forget(args ...any) bool {
	key := m.hasher(args...)
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.cache[key]
	delete(m.cache, key)
	return ok
}

// MemoizeFunc is the typed form of [Memoize] for single-argument
// functions, keyed by the argument itself.
func MemoizeFunc[K comparable, V any](fn func(K) V) func(K) V {
	var (
		mu    sync.RWMutex
		cache = make(map[K]V)
	)
	return func(k K) V {
		mu.RLock()
		v, ok := cache[k]
		mu.RUnlock()
		if ok {
			return v
		}
		v = fn(k)
		mu.Lock()
		defer mu.Unlock()
		if prev, ok := cache[k]; ok {
			return prev
		}
		cache[k] = v
		return v
	}
}
