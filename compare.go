package rcslice

import (
	"cmp"
	"slices"
)

// Comparison is structural over the viewed elements: two views are equal
// when they see the same sequence, whatever containers or windows produce
// it. Identity comparison is Same.

// Equal reports whether a and b view equal element sequences.
func Equal[E comparable](a, b *View[E]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[E any](a, b *View[E], eq func(E, E) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically over their viewed elements,
// returning -1, 0, or 1.
func Compare[E cmp.Ordered](a, b *View[E]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[E any](a, b *View[E], compare func(E, E) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), compare)
}

// Same reports whether a and b are windows onto the same shared container
// with identical bounds. Equal contents in different containers are not
// Same, and zero-value views share no container, so they are never Same.
func Same[E any](a, b *View[E]) bool {
	a.check()
	b.check()
	return a.h != nil && a.h == b.h && a.start == b.start && a.end == b.end
}
