package collections_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Each / Map
// ─────────────────────────────────────────────────────────────────────────────

func TestEachVisitsInOrder(t *testing.T) {
	var keys, vals []any
	ret := collections.Each([]string{"a", "b", "c"}, func(v, k any) {
		vals = append(vals, v)
		keys = append(keys, k)
	})
	assert.Equal(t, []any{"a", "b", "c"}, vals)
	assert.Equal(t, []any{0, 1, 2}, keys)
	assert.Equal(t, []string{"a", "b", "c"}, ret)
}

func TestEachKeyedVisitsSortedKeys(t *testing.T) {
	var keys []string
	collections.Each(map[string]int{"two": 2, "one": 1, "three": 3}, func(_ int, k string) {
		keys = append(keys, k)
	})
	assert.Equal(t, []string{"one", "three", "two"}, keys)
}

func TestEachPassesCollection(t *testing.T) {
	src := []int{1, 2}
	collections.Each(src, func(_, _, c any) {
		assert.Equal(t, src, c)
	})
}

func TestMapAlignment(t *testing.T) {
	in := []int{1, 2, 3}
	out := collections.Map(in, func(n int) int { return n * 2 })
	require.Len(t, out, len(in))
	assert.Equal(t, []any{2, 4, 6}, out)
}

func TestMapByProperty(t *testing.T) {
	users := []user{{Name: "moe"}, {Name: "larry"}}
	assert.Equal(t, []any{"moe", "larry"}, collections.Map(users, "Name"))
}

func TestMapObject(t *testing.T) {
	got := collections.MapObject(map[string]int{"a": 1, "b": 2}, func(n int) int { return n + 10 })
	require.NotNil(t, got)
	assert.Equal(t, map[string]any{"a": 11, "b": 12}, got)
}

func TestMapObjectEmptyIsNotNil(t *testing.T) {
	assert.NotNil(t, collections.MapObject(nil, nil))
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduce
// ─────────────────────────────────────────────────────────────────────────────

func sum(acc, n int) int { return acc + n }

func TestReduceWithoutSeed(t *testing.T) {
	got, ok := collections.Reduce([]int{1, 2, 3, 4}, sum)
	require.True(t, ok)
	assert.Equal(t, 10, got)
}

func TestReduceWithSeedOnEmpty(t *testing.T) {
	got, ok := collections.Reduce([]int{}, sum, 0)
	require.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestReduceEmptyWithoutSeed(t *testing.T) {
	got, ok := collections.Reduce([]int{}, sum)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestReduceSingleElementWithoutSeedSkipsReducer(t *testing.T) {
	called := false
	got, ok := collections.Reduce([]int{7}, func(a, b any) any { called = true; return nil })
	require.True(t, ok)
	assert.Equal(t, 7, got)
	assert.False(t, called)
}

func TestReduceRight(t *testing.T) {
	got, ok := collections.ReduceRight([]string{"a", "b", "c"}, func(acc, s string) string { return acc + s })
	require.True(t, ok)
	assert.Equal(t, "cba", got)
}

func TestReduceKeyed(t *testing.T) {
	got, _ := collections.Reduce(map[string]int{"a": 1, "b": 2}, func(acc any, v int, k string) any {
		return acc.(string) + k
	}, "")
	assert.Equal(t, "ab", got)
}

func TestReduceNonFunctionPanics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		assert.True(t, errors.Is(err, collections.ErrNotFunction))
	}()
	collections.Reduce([]int{1}, "nope")
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

func isEven(n int) bool { return n%2 == 0 }

func TestFindStopsAtFirstHit(t *testing.T) {
	calls := 0
	v, ok := collections.Find([]int{1, 2, 3, 4}, func(n int) bool {
		calls++
		return isEven(n)
	})
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)

	_, ok = collections.Find([]int{1, 3}, isEven)
	assert.False(t, ok)
}

func TestFindIndex(t *testing.T) {
	assert.Equal(t, 1, collections.FindIndex([]int{1, 2, 3, 4}, isEven))
	assert.Equal(t, 3, collections.FindLastIndex([]int{1, 2, 3, 4}, isEven))
	assert.Equal(t, -1, collections.FindIndex([]int{1, 3}, isEven))
	assert.Equal(t, -1, collections.FindIndex(map[string]int{"a": 2}, isEven), "keyed collections have no index")
}

func TestFindKey(t *testing.T) {
	k, ok := collections.FindKey(map[string]int{"a": 1, "b": 2, "c": 4}, isEven)
	require.True(t, ok)
	assert.Equal(t, "b", k)

	_, ok = collections.FindKey(map[string]int{"a": 1}, isEven)
	assert.False(t, ok)
}

func TestFindWhere(t *testing.T) {
	users := []user{{Name: "moe", Age: 40}, {Name: "curly", Age: 60}}
	v, ok := collections.FindWhere(users, map[string]any{"Age": 60})
	require.True(t, ok)
	assert.Equal(t, "curly", v.(user).Name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

func TestFilterReturnsResult(t *testing.T) {
	got := collections.Filter([]int{1, 2, 3, 4, 5, 6}, isEven)
	require.NotNil(t, got)
	assert.Equal(t, []any{2, 4, 6}, got)
}

func TestFilterNoMatchIsEmptyNotNil(t *testing.T) {
	got := collections.Filter([]int{1, 3}, isEven)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReject(t *testing.T) {
	assert.Equal(t, []any{1, 3, 5}, collections.Reject([]int{1, 2, 3, 4, 5}, isEven))
}

func TestWhere(t *testing.T) {
	users := []user{
		{Name: "moe", Age: 40, Active: true},
		{Name: "larry", Age: 50, Active: false},
		{Name: "curly", Age: 60, Active: true},
	}
	got := collections.Where(users, map[string]any{"Active": true})
	assert.Equal(t, []any{"moe", "curly"}, collections.Pluck(got, "Name"))
}

func TestEveryAndSome(t *testing.T) {
	assert.True(t, collections.Every([]int{2, 4}, isEven))
	assert.False(t, collections.Every([]int{2, 3}, isEven))
	assert.True(t, collections.Every([]int{}, isEven))
	assert.True(t, collections.Some([]int{1, 2}, isEven))
	assert.False(t, collections.Some([]int{}, isEven))
	assert.True(t, collections.Some([]any{0, "", "x"}, nil), "identity tests truthiness")
}

func TestContains(t *testing.T) {
	assert.True(t, collections.Contains([]int{1, 2, 3}, 3))
	assert.True(t, collections.Contains([]any{[]int{1}}, []int{1}), "deep equality")
	assert.True(t, collections.Contains(map[string]int{"a": 7}, 7), "keyed collections search values")
	assert.True(t, collections.Contains([]float64{1, math.NaN()}, math.NaN()))
	assert.False(t, collections.ContainsFrom([]int{1, 2, 3}, 1, 1))
	assert.True(t, collections.ContainsFrom([]int{1, 2, 3}, 3, -1))
}

func TestPartition(t *testing.T) {
	pass, fail := collections.Partition([]int{1, 2, 3, 4}, isEven)
	assert.Equal(t, []any{2, 4}, pass)
	assert.Equal(t, []any{1, 3}, fail)
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection
// ─────────────────────────────────────────────────────────────────────────────

func TestPluckMissingIsNil(t *testing.T) {
	got := collections.Pluck([]any{map[string]any{"a": 1}, map[string]any{}}, "a")
	assert.Equal(t, []any{1, nil}, got)
}

type greeter struct{ Name string }

func (g greeter) Greet(greeting string) string { return greeting + ", " + g.Name }

func TestInvokeByName(t *testing.T) {
	got := collections.Invoke([]any{greeter{"moe"}, greeter{"curly"}, 5}, "Greet", "hi")
	assert.Equal(t, []any{"hi, moe", "hi, curly", nil}, got)
}

func TestInvokeFunction(t *testing.T) {
	got := collections.Invoke([]string{"a b", "c"}, strings.Fields)
	assert.Equal(t, []any{[]string{"a", "b"}, []string{"c"}}, got)
}

func TestToArray(t *testing.T) {
	assert.Equal(t, []any{1, 2}, collections.ToArray(map[string]int{"x": 1, "y": 2}))
	assert.Equal(t, []any{"a", "b"}, collections.ToArray("ab"))
	assert.Empty(t, collections.ToArray(nil))
}
