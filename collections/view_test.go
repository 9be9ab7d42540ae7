package collections_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// ordered is a KeyedMapping with insertion order.
type ordered struct {
	keys []string
	vals map[string]any
}

func newOrdered(kv ...any) *ordered {
	o := &ordered{vals: make(map[string]any)}
	for i := 0; i+1 < len(kv); i += 2 {
		k := kv[i].(string)
		o.keys = append(o.keys, k)
		o.vals[k] = kv[i+1]
	}
	return o
}

func (o *ordered) Keys() []string { return o.keys }

func (o *ordered) Get(key string) (any, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// ring is an Indexer over a fixed backing slice.
type ring struct{ items []string }

func (r ring) Len() int        { return len(r.items) }
func (r ring) Index(i int) any { return r.items[i] }

type user struct {
	Name   string
	Age    int
	Active bool
	secret string
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

func TestIsIndexed(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"slice", []int{1, 2}, true},
		{"empty slice", []string{}, true},
		{"array", [3]int{}, true},
		{"string", "héllo", true},
		{"indexer", ring{items: []string{"a"}}, true},
		{"plain map", map[string]any{"a": 1}, false},
		{"array-like map", map[string]any{"length": 2, "0": "a", "1": "b"}, true},
		{"zero length", map[string]any{"length": 0}, true},
		{"fractional length", map[string]any{"length": 1.5}, true},
		{"negative length", map[string]any{"length": -1}, false},
		{"NaN length", map[string]any{"length": math.NaN()}, false},
		{"length above max", map[string]any{"length": float64(collections.MaxArrayIndex) + 2}, false},
		{"length at max", map[string]any{"length": collections.MaxArrayIndex}, true},
		{"string length", map[string]any{"length": "3"}, false},
		{"struct", user{}, false},
		{"nil", nil, false},
		{"number", 42, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, collections.IsIndexed(tc.in))
		})
	}
}

func TestClassifyIndexed(t *testing.T) {
	v := collections.Classify([]string{"a", "b", "c"})
	iv, ok := v.(collections.IndexedView)
	require.True(t, ok)
	require.Equal(t, 3, iv.Len())
	assert.Equal(t, 1, iv.Key(1))
	assert.Equal(t, "c", iv.At(2))
}

func TestClassifyStringByRune(t *testing.T) {
	v := collections.Classify("héllo")
	require.Equal(t, 5, v.Len())
	assert.Equal(t, "é", v.At(1))
}

func TestClassifyKeyedMapSortsKeys(t *testing.T) {
	v := collections.Classify(map[string]int{"b": 2, "c": 3, "a": 1})
	kv, ok := v.(collections.KeyedView)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, kv.Keys())
	assert.Equal(t, "b", kv.Key(1))
	assert.Equal(t, 2, kv.At(1))
}

func TestClassifyStructExportedFieldsInOrder(t *testing.T) {
	v := collections.Classify(&user{Name: "moe", Age: 40, secret: "x"})
	kv, ok := v.(collections.KeyedView)
	require.True(t, ok)
	assert.Equal(t, []string{"Name", "Age", "Active"}, kv.Keys())
	assert.Equal(t, "moe", kv.At(0))
}

func TestClassifyKeyedMappingOrder(t *testing.T) {
	v := collections.Classify(newOrdered("z", 1, "a", 2))
	assert.Equal(t, "z", v.Key(0))
	assert.Equal(t, 2, v.At(1))
}

func TestArrayLikeMapTraversesOffsets(t *testing.T) {
	m := map[string]any{"length": 2, "0": "a", "1": "b", "extra": true}
	assert.Equal(t, []any{"a", "b"}, collections.Map(m, nil))
}

func TestFractionalLengthRoundsUp(t *testing.T) {
	m := map[string]any{"length": 1.5, "0": "a", "1": "b"}
	assert.Equal(t, 2, collections.Size(m))
}

func TestNilIsEmptyKeyed(t *testing.T) {
	v := collections.Classify(nil)
	_, ok := v.(collections.KeyedView)
	assert.True(t, ok)
	assert.Zero(t, v.Len())
	assert.Zero(t, collections.Size(nil))
}

func TestSize(t *testing.T) {
	assert.Equal(t, 3, collections.Size([]int{1, 2, 3}))
	assert.Equal(t, 2, collections.Size(map[string]int{"a": 1, "b": 2}))
	assert.Equal(t, 3, collections.Size(user{}))
	assert.Equal(t, 4, collections.Size("four"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Property access
// ─────────────────────────────────────────────────────────────────────────────

func TestGetAndHas(t *testing.T) {
	u := user{Name: "moe", secret: "x"}
	assert.Equal(t, "moe", collections.Get(u, "Name"))
	assert.Nil(t, collections.Get(u, "secret"))
	assert.True(t, collections.Has(u, "Name"))
	assert.False(t, collections.Has(u, "secret"))

	s := []string{"a", "b"}
	assert.Equal(t, "b", collections.Get(s, 1))
	assert.Equal(t, "b", collections.Get(s, "1"))
	assert.Equal(t, 2, collections.Get(s, "length"))
	assert.Nil(t, collections.Get(s, 5))
	assert.False(t, collections.Has(s, -1))

	m := map[int]string{1: "one"}
	assert.Equal(t, "one", collections.Get(m, 1))
	assert.Equal(t, "one", collections.Get(m, "1"))

	assert.Nil(t, collections.Get(nil, "anything"))
}

func TestTruthy(t *testing.T) {
	var nilMap map[string]int
	falsy := []any{nil, false, 0, 0.0, math.NaN(), "", uint8(0), nilMap}
	for _, v := range falsy {
		assert.False(t, collections.Truthy(v), "%#v should be falsy", v)
	}
	truthy := []any{true, 1, -1, "0", []int{}, map[string]int{}, user{}}
	for _, v := range truthy {
		assert.True(t, collections.Truthy(v), "%#v should be truthy", v)
	}
}
