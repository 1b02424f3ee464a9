package rcslice

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBytes(t *testing.T) {
	v := NewBytes([]byte("hello world"))
	require.Equal(t, 11, v.Len())
	require.Equal(t, "hello world", String(v))
	word, ok := v.SplitOffBefore(5)
	require.True(t, ok)
	require.Equal(t, "hello", String(word))
	require.Equal(t, " world", String(v))
	word.Free()
	v.Free()
}
func TestUnsafeString(t *testing.T) {
	v := NewBytes([]byte("zero copy"))
	s := UnsafeString(v)
	require.Equal(t, "zero copy", s)
	require.Equal(t, String(v), s)
	v.Free()
}
func TestUnsafeStringEmpty(t *testing.T) {
	v := NewBytes(nil)
	require.Equal(t, "", UnsafeString(v))
	v.Free()
	var zero View[byte]
	require.Equal(t, "", UnsafeString(&zero))
}
func TestSum64(t *testing.T) {
	a := NewBytes([]byte("xxhash me"))
	b := NewLocalView[byte](NewFixed([]byte("..xxhash me..")), Span(2, 11))
	defer a.Free()
	defer b.Free()
	require.True(t, Equal(a, b))
	// Equal views hash identically regardless of container or window.
	require.Equal(t, Sum64(a), Sum64(b))
	require.Equal(t, xxhash.Sum64(a.Copy()), Sum64(a))

	b.SaturatingAdvance(1)
	assert.NotEqual(t, Sum64(a), Sum64(b))
}
