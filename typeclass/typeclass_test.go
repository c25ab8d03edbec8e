package typeclass

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

type point struct{ x, y int }

type ticks uint16

type intAlias = int

func TestIntegerPredicates(t *testing.T) {
	assert.True(t, IsInteger[bool]())
	assert.True(t, IsInteger[byte]())
	assert.True(t, IsInteger[rune]())
	assert.True(t, IsInteger[int8]())
	assert.True(t, IsInteger[int16]())
	assert.True(t, IsInteger[int32]())
	assert.True(t, IsInteger[int64]())
	assert.True(t, IsInteger[int]())
	assert.True(t, IsInteger[uint]())
	assert.True(t, IsInteger[uint16]())
	assert.True(t, IsInteger[uint32]())
	assert.True(t, IsInteger[uint64]())
	assert.True(t, IsInteger[uintptr]())
	assert.False(t, IsInteger[float32]())
	assert.False(t, IsInteger[string]())
	assert.False(t, IsInteger[*int]())
	assert.False(t, IsInteger[[]int]())
}

func TestFloatingPredicates(t *testing.T) {
	assert.True(t, IsFloating[float32]())
	assert.True(t, IsFloating[float64]())
	assert.True(t, IsFloating[celsius]())
	assert.False(t, IsFloating[complex128]())
	assert.False(t, IsFloating[int]())
}

func TestPointerPredicates(t *testing.T) {
	assert.True(t, IsPointer[*int]())
	assert.True(t, IsPointer[*point]())
	assert.True(t, IsPointer[**string]())
	assert.True(t, IsPointer[unsafe.Pointer]())
	assert.False(t, IsPointer[uintptr]())
	assert.False(t, IsPointer[point]())
	assert.False(t, IsPointer[map[int]int]())
}

func TestCompositePredicates(t *testing.T) {
	cases := []struct {
		name       string
		tr         Traits
		arithmetic bool
		scalar     bool
	}{
		{"int", Of[int](), true, true},
		{"float64", Of[float64](), true, true},
		{"*int", Of[*int](), false, true},
		{"string", Of[string](), false, false},
		{"struct", Of[point](), false, false},
		{"any", Of[any](), false, false},
		{"error", Of[error](), false, false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.arithmetic, c.tr.Arithmetic(), "arithmetic(%s)", c.name)
		assert.Equalf(t, c.scalar, c.tr.Scalar(), "scalar(%s)", c.name)
	}
	assert.True(t, IsArithmetic[uint8]())
	assert.True(t, IsScalar[*point]())
	assert.False(t, IsScalar[[2]int]())
}

func TestSame(t *testing.T) {
	assert.True(t, Same[int, int]())
	assert.True(t, Same[int, intAlias]())
	assert.True(t, Same[byte, uint8]())
	assert.False(t, Same[int, int64]())
	assert.False(t, Same[celsius, float64]())
	assert.False(t, Same[*int, int]())
}

func TestTraitsAreCached(t *testing.T) {
	first := Of[celsius]()
	second := Of[celsius]()
	require.Equal(t, first, second)
	require.True(t, second.Floating)
	_, ok := traitsCache.Load(reflect.TypeFor[celsius]())
	require.True(t, ok)
}

func TestPredicateFillsCache(t *testing.T) {
	_, ok := traitsCache.Load(reflect.TypeFor[ticks]())
	require.False(t, ok, "no lookup for ticks yet")
	assert.True(t, IsInteger[ticks]())
	cached, ok := traitsCache.Load(reflect.TypeFor[ticks]())
	require.True(t, ok)
	assert.Equal(t, Traits{Integer: true}, cached)
	assert.True(t, IsScalar[ticks]())
}

func sum[T Arithmetic](xs ...T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}

func TestArithmeticConstraint(t *testing.T) {
	require.Equal(t, 6, sum(1, 2, 3))
	require.InDelta(t, 1.5, sum(0.5, 1.0), 1e-9)
	require.Equal(t, celsius(3), sum[celsius](1, 2))
}
