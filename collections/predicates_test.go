package collections_test

import (
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underscore/collections"
)

func TestIsEmpty(t *testing.T) {
	var nilSlice []int
	for _, v := range []any{nil, nilSlice, []int{}, "", map[string]int{}, struct{}{}, 5, true} {
		assert.True(t, collections.IsEmpty(v), "%#v", v)
	}
	for _, v := range []any{[]int{0}, "x", map[string]int{"a": 0}, user{}} {
		assert.False(t, collections.IsEmpty(v), "%#v", v)
	}
}

func TestTypePredicates(t *testing.T) {
	s := "x"
	now := time.Now()

	assert.True(t, collections.IsArray([]int{}))
	assert.True(t, collections.IsArray([2]int{}))
	assert.False(t, collections.IsArray("abc"))

	assert.True(t, collections.IsObject(map[string]int{}))
	assert.True(t, collections.IsObject(&s))
	assert.True(t, collections.IsObject(func() {}))
	assert.False(t, collections.IsObject((*int)(nil)))
	assert.False(t, collections.IsObject(1))

	assert.True(t, collections.IsFunction(time.Now))
	assert.False(t, collections.IsFunction(nil))

	assert.True(t, collections.IsString(s))
	assert.True(t, collections.IsString(&s))
	assert.False(t, collections.IsString(1))

	assert.True(t, collections.IsNumber(uint16(1)))
	assert.True(t, collections.IsNumber(math.NaN()))
	assert.False(t, collections.IsNumber("1"))

	assert.True(t, collections.IsBoolean(false))
	assert.False(t, collections.IsBoolean(0))

	assert.True(t, collections.IsDate(now))
	assert.True(t, collections.IsDate(&now))
	assert.False(t, collections.IsDate((*time.Time)(nil)))

	assert.True(t, collections.IsRegExp(regexp.MustCompile(`x`)))
	assert.False(t, collections.IsRegExp(`x`))

	assert.True(t, collections.IsError(errors.New("boom")))
	assert.False(t, collections.IsError("boom"))

	assert.True(t, collections.IsNil((*int)(nil)))
	assert.False(t, collections.IsNil(0))
}

func TestIsNaNAndIsFinite(t *testing.T) {
	nan := math.NaN()
	assert.True(t, collections.IsNaN(nan))
	assert.True(t, collections.IsNaN(&nan))
	assert.False(t, collections.IsNaN(1))
	assert.False(t, collections.IsNaN("NaN"))

	assert.True(t, collections.IsFinite(12))
	assert.True(t, collections.IsFinite(-1.5))
	assert.True(t, collections.IsFinite("1e3"))
	assert.False(t, collections.IsFinite("abc"))
	assert.False(t, collections.IsFinite(math.Inf(1)))
	assert.False(t, collections.IsFinite(nan))
	assert.False(t, collections.IsFinite(nil))
}
