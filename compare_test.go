package rcslice

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := NewLocalView[byte](NewVector([]byte("xxhelloyy")), Span(2, 7))
	b := NewLocalView[byte](NewFixed([]byte("hello")), All())
	defer a.Free()
	defer b.Free()
	// Equality is over the viewed elements, not the containers.
	require.True(t, Equal(a, b))
	b.SaturatingRetract(1)
	assert.False(t, Equal(a, b))
}
func TestEqualSameContainer(t *testing.T) {
	v := NewLocalView[byte](NewVector([]byte("abab")), All())
	defer v.Free()
	first, second := v.SplitAt(2)
	defer first.Free()
	defer second.Free()
	require.True(t, Equal(first, second))
	assert.False(t, Same(first, second))
}
func TestEqualFunc(t *testing.T) {
	a := NewLocalView[byte](NewVector([]byte("HELLO")), All())
	b := NewLocalView[byte](NewVector([]byte("hello")), All())
	defer a.Free()
	defer b.Free()
	assert.False(t, Equal(a, b))
	require.True(t, EqualFunc(a, b, func(x, y byte) bool {
		return strings.EqualFold(string(x), string(y))
	}))
}
func TestCompare(t *testing.T) {
	a := NewLocalView[byte](NewVector([]byte("abc")), All())
	b := NewLocalView[byte](NewVector([]byte("abd")), All())
	prefix := NewLocalView[byte](NewVector([]byte("ab")), All())
	defer a.Free()
	defer b.Free()
	defer prefix.Free()
	require.Equal(t, 0, Compare(a, a))
	require.Equal(t, -1, Compare(a, b))
	require.Equal(t, 1, Compare(b, a))
	// A proper prefix orders first.
	require.Equal(t, -1, Compare(prefix, a))
}
func TestCompareFunc(t *testing.T) {
	a := NewLocalView[int](NewVector([]int{1, 2, 3}), All())
	b := NewLocalView[int](NewVector([]int{3, 2, 1}), All())
	defer a.Free()
	defer b.Free()
	reverse := func(x, y int) int { return y - x }
	require.Equal(t, 1, CompareFunc(a, b, reverse))
	require.Equal(t, -1, CompareFunc(b, a, reverse))
}
func TestSame(t *testing.T) {
	v := NewLocalView[byte](NewVector([]byte("hello")), All())
	clone := v.Ref()
	require.True(t, Same(v, clone))
	clone.SaturatingAdvance(1)
	assert.False(t, Same(v, clone))
	clone.Free()

	other := NewLocalView[byte](NewVector([]byte("hello")), All())
	assert.False(t, Same(v, other))
	other.Free()
	v.Free()

	var x, y View[byte]
	assert.False(t, Same(&x, &y))
	assert.False(t, Same(&x, &x))
}
func TestCompareQuick(t *testing.T) {
	condition := func(x, y []byte) bool {
		a := NewLocalView[byte](NewVector(x), All())
		b := NewLocalView[byte](NewVector(y), All())
		defer a.Free()
		defer b.Free()
		if !Equal(a, a) || Compare(a, a) != 0 {
			return false
		}
		return Compare(a, b) == -Compare(b, a)
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}
