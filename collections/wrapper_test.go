package collections_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Chaining
// ─────────────────────────────────────────────────────────────────────────────

func TestChainPipeline(t *testing.T) {
	got := collections.Chain([]int{5, 2, 8, 2, 1, 6}).
		Filter(isEven).
		Uniq().
		SortBy(nil).
		Map(func(n int) int { return n * 10 }).
		Value()
	assert.Equal(t, []any{20, 60, 80}, got)
}

func TestChainIsImmutable(t *testing.T) {
	base := collections.Chain([]int{1, 2, 3})
	_ = base.Rest()
	assert.Equal(t, []int{1, 2, 3}, base.Value())
}

func TestChainOfWrapperSharesValue(t *testing.T) {
	w := collections.Chain([]int{1})
	assert.Equal(t, w.Value(), collections.Chain(w).Value())
}

func TestChainReduce(t *testing.T) {
	got := collections.Chain([]int{1, 2, 3}).Reduce(sum, 10).Value()
	assert.Equal(t, 16, got)
	assert.Nil(t, collections.Chain([]int{}).Reduce(sum).Value())
}

func TestChainFirstLast(t *testing.T) {
	w := collections.Chain([]string{"a", "b", "c"})
	assert.Equal(t, "a", w.First().Value())
	assert.Equal(t, []any{"b", "c"}, w.Last(2).Value())
}

func TestChainObjects(t *testing.T) {
	obj := map[string]any{"name": "moe", "age": 50}
	assert.Equal(t, []string{"age", "name"}, collections.Chain(obj).Keys().Value())
	assert.Equal(t, map[string]any{"age": 50}, collections.Chain(obj).Omit("name").Value())
	assert.Equal(t, map[string]any{"moe": "name", "50": "age"}, collections.Chain(obj).Invert().Value())
}

func TestChainWhenUnless(t *testing.T) {
	double := func(w *collections.Wrapper) *collections.Wrapper {
		return w.Map(func(n int) int { return n * 2 })
	}
	assert.Equal(t, []any{2}, collections.Chain([]int{1}).When(true, double).Value())
	assert.Equal(t, []int{1}, collections.Chain([]int{1}).Unless(true, double).Value())
	assert.Equal(t, "empty", collections.Chain([]int{}).WhenEmpty(func(*collections.Wrapper) *collections.Wrapper {
		return collections.Chain("empty")
	}).Value())
}

func TestChainTapAndThen(t *testing.T) {
	var seen any
	got := collections.Chain([]int{3, 1}).
		Tap(func(v any) { seen = v }).
		Then(func(v any) any { return collections.Size(v) }).
		Value()
	assert.Equal(t, []int{3, 1}, seen)
	assert.Equal(t, 2, got)
}

func TestWrapperSerialisation(t *testing.T) {
	w := collections.Chain(map[string]any{"a": []int{1, 2}})

	js, err := w.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1,2]}`, string(js))

	y, err := w.ToYAML()
	require.NoError(t, err)
	assert.YAMLEq(t, "a: [1, 2]\n", string(y))

	assert.Equal(t, `{"a":[1,2]}`, w.String())
}

func TestWrapperStringFallsBackForUnencodable(t *testing.T) {
	ch := make(chan int)
	w := collections.Chain(ch)
	assert.NotEmpty(t, w.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Mixins
// ─────────────────────────────────────────────────────────────────────────────

func TestMixinRegisterAndCall(t *testing.T) {
	collections.FlushMixins()
	t.Cleanup(collections.FlushMixins)

	collections.RegisterMixin("evens", func(v any, _ ...any) any {
		return collections.Filter(v, isEven)
	})
	require.True(t, collections.HasMixin("evens"))

	res, err := collections.Chain([]int{1, 2, 3, 4}).Mixin("evens")
	require.NoError(t, err)
	assert.Equal(t, []any{2, 4}, res.Value())
}

func TestMixinArgs(t *testing.T) {
	collections.FlushMixins()
	t.Cleanup(collections.FlushMixins)

	collections.RegisterMixin("take", func(v any, args ...any) any {
		return collections.FirstN(v, args[0].(int))
	})
	got, err := collections.CallMixin("take", []string{"a", "b", "c"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)
}

func TestMixinNotFound(t *testing.T) {
	collections.FlushMixins()
	_, err := collections.Chain(nil).Mixin("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, collections.ErrMixinNotFound))
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestMixinFromMap(t *testing.T) {
	collections.FlushMixins()
	t.Cleanup(collections.FlushMixins)

	collections.Mixin(map[string]any{
		"size":  collections.MixinFunc(func(v any, _ ...any) any { return collections.Size(v) }),
		"plain": func(v any, _ ...any) any { return v },
		"other": func() {},
		"value": 1,
	})
	assert.True(t, collections.HasMixin("size"))
	assert.True(t, collections.HasMixin("plain"))
	assert.False(t, collections.HasMixin("other"))
	assert.False(t, collections.HasMixin("value"))
}

func TestMixinRegistryConcurrent(t *testing.T) {
	collections.FlushMixins()
	t.Cleanup(collections.FlushMixins)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collections.RegisterMixin("id", func(v any, _ ...any) any { return v })
			_, _ = collections.CallMixin("id", 1)
			_ = collections.HasMixin("id")
		}()
	}
	wg.Wait()
	assert.True(t, collections.HasMixin("id"))
}
