// Package rcslice provides shared, reference-counted views over array-like
// containers. A view is a window [start, end) into a container owned by a
// counted Handle; views clone in O(1) without copying elements, narrow and
// split without touching the container, and gate mutation and compaction on
// being the only reference alive.
//
// Two counting flavors share the whole API: NewHandle/NewView count
// atomically and may cross goroutines, NewLocalHandle/NewLocalView count
// without synchronization for single-goroutine use.
package rcslice

import (
	"slices"

	"github.com/Phlosioneer/rc-slice2/internal/overflow"
)

// View is a reference-counted window into a shared container. The zero
// value is a usable empty view over no storage. Views are not safe for
// concurrent use of the same *View; distinct views of one atomic handle
// may be used concurrently.
type View[E any] struct {
	h          *Handle[E]
	start, end int
	released   bool
}

// NewView shares c under a new atomic handle and returns a view of r. The
// handle's own reference transfers to the view, so freeing the view
// releases the container.
func NewView[E any](c Container[E], r Range) *View[E] {
	return viewOf(NewHandle(c), r)
}

// NewLocalView is NewView with an unsynchronized count; the view and its
// clones must stay on a single goroutine.
func NewLocalView[E any](c Container[E], r Range) *View[E] {
	return viewOf(NewLocalHandle(c), r)
}

// viewOf adopts h's constructor reference instead of adding one.
func viewOf[E any](h *Handle[E], r Range) *View[E] {
	start, end := r.resolve(h.c.Len())
	return &View[E]{h: h, start: start, end: end}
}

func (v *View[E]) check() {
	if v.released {
		panic("rcslice: use of released view")
	}
}

// mustSlice resolves the window against the container. The window was
// valid when the view got it, so failure means the container misbehaved.
func (v *View[E]) mustSlice(start, end int) []E {
	if v.h == nil {
		return nil
	}
	s, ok := v.h.c.Slice(start, end)
	if !ok {
		panic("rcslice: container no longer covers the view's range")
	}
	return s
}

// Len returns the number of viewed elements.
func (v *View[E]) Len() int {
	v.check()
	return v.end - v.start
}

// IsEmpty reports whether the view covers no elements.
func (v *View[E]) IsEmpty() bool {
	v.check()
	return v.start == v.end
}

// Bounds returns the view's window in container coordinates.
func (v *View[E]) Bounds() (start, end int) {
	v.check()
	return v.start, v.end
}

// Data returns the viewed elements. The slice aliases the container; treat
// it as read-only and do not retain it past the view's release. Mutable
// access goes through Mut.
func (v *View[E]) Data() []E {
	v.check()
	return v.mustSlice(v.start, v.end)
}

// At returns the element i positions into the view. It panics when i is
// out of range, like slice indexing.
func (v *View[E]) At(i int) E {
	v.check()
	if i < 0 || i >= v.end-v.start {
		panic("rcslice: index out of range")
	}
	return v.mustSlice(v.start, v.end)[i]
}

// Copy returns a freshly allocated copy of the viewed elements.
func (v *View[E]) Copy() []E {
	return slices.Clone(v.Data())
}

// Ref returns a new view of the same window, adding one reference. Every
// view needs its own Free.
func (v *View[E]) Ref() *View[E] {
	v.check()
	return v.clone(v.start, v.end)
}

// Free releases the view's reference. Freeing the last reference releases
// the container; the view may not be used afterward.
func (v *View[E]) Free() {
	if v.released {
		panic("rcslice: view freed twice")
	}
	v.released = true
	if v.h != nil {
		v.h.unref()
		v.h = nil
	}
}

// Handle borrows the shared handle without adding a reference, so the
// caller can make further views of the whole container. It returns nil for
// the zero-value view.
func (v *View[E]) Handle() *Handle[E] {
	v.check()
	return v.h
}

func (v *View[E]) clone(start, end int) *View[E] {
	if v.h != nil {
		v.h.refs.ref()
	}
	return &View[E]{h: v.h, start: start, end: end}
}

// SplitAt returns the view's first mid elements and the rest as two new
// views; the receiver is unchanged. It panics when mid is out of range.
func (v *View[E]) SplitAt(mid int) (*View[E], *View[E]) {
	left, right, ok := v.TrySplitAt(mid)
	if !ok {
		panic("rcslice: split index out of range")
	}
	return left, right
}

// TrySplitAt is SplitAt reporting an out-of-range mid instead of
// panicking. On false nothing was created.
func (v *View[E]) TrySplitAt(mid int) (*View[E], *View[E], bool) {
	v.check()
	if mid < 0 || mid > v.end-v.start {
		return nil, nil, false
	}
	cut := v.start + mid
	return v.clone(v.start, cut), v.clone(cut, v.end), true
}

// SplitOffBefore narrows the view to [i, Len()) and returns the cut-off
// prefix as a new view. On false (i negative or past the end) the receiver
// is unchanged and nothing was created.
func (v *View[E]) SplitOffBefore(i int) (*View[E], bool) {
	v.check()
	if i < 0 {
		return nil, false
	}
	cut, ok := overflow.Add(v.start, i)
	if !ok || cut > v.end {
		return nil, false
	}
	prefix := v.clone(v.start, cut)
	v.start = cut
	return prefix, true
}

// SplitOffAfter narrows the view to [0, i) and returns the cut-off suffix
// as a new view. On false the receiver is unchanged and nothing was
// created.
func (v *View[E]) SplitOffAfter(i int) (*View[E], bool) {
	v.check()
	if i < 0 {
		return nil, false
	}
	cut, ok := overflow.Add(v.start, i)
	if !ok || cut > v.end {
		return nil, false
	}
	suffix := v.clone(cut, v.end)
	v.end = cut
	return suffix, true
}

// Advance moves the view's start n elements forward and returns the
// elements that fell off as a plain slice borrowed from the container, not
// a counted view. On false (n negative, past the end, or the container
// misbehaving) the receiver is unchanged.
func (v *View[E]) Advance(n int) ([]E, bool) {
	v.check()
	if n < 0 {
		return nil, false
	}
	cut, ok := overflow.Add(v.start, n)
	if !ok || cut > v.end {
		return nil, false
	}
	var shed []E
	if v.h != nil {
		shed, ok = v.h.c.Slice(v.start, cut)
		if !ok {
			return nil, false
		}
	}
	v.start = cut
	return shed, true
}

// SaturatingAdvance is Advance clamped to the view's end; negative counts
// advance by zero. It always succeeds.
func (v *View[E]) SaturatingAdvance(n int) []E {
	v.check()
	if n < 0 {
		n = 0
	}
	cut := min(overflow.SatAdd(v.start, n), v.end)
	shed := v.mustSlice(v.start, cut)
	v.start = cut
	return shed
}

// Retract moves the view's end n elements backward and returns the
// elements that fell off as a plain slice borrowed from the container. On
// false the receiver is unchanged.
func (v *View[E]) Retract(n int) ([]E, bool) {
	v.check()
	if n < 0 {
		return nil, false
	}
	cut, ok := overflow.Sub(v.end, n)
	if !ok || cut < v.start {
		return nil, false
	}
	var shed []E
	if v.h != nil {
		shed, ok = v.h.c.Slice(cut, v.end)
		if !ok {
			return nil, false
		}
	}
	v.end = cut
	return shed, true
}

// SaturatingRetract is Retract clamped to the view's start; negative
// counts retract by zero. It always succeeds.
func (v *View[E]) SaturatingRetract(n int) []E {
	v.check()
	if n < 0 {
		n = 0
	}
	cut := max(v.end-n, v.start)
	shed := v.mustSlice(cut, v.end)
	v.end = cut
	return shed
}

// ChangeRange re-resolves the view's window from r against the container's
// current length and returns the new bounds. Unlike the narrowing
// operations it can widen the view. Low-level; most callers want the
// handle's View instead.
func (v *View[E]) ChangeRange(r Range) (start, end int) {
	v.check()
	n := 0
	if v.h != nil {
		n = v.h.c.Len()
	}
	v.start, v.end = r.resolve(n)
	return v.start, v.end
}

// Mut returns the viewed elements writable, but only while this is the
// single reference to the container. With other references alive it
// returns nil, false and the container stays untouched. The zero-value
// view is trivially unique.
func (v *View[E]) Mut() ([]E, bool) {
	v.check()
	if v.h == nil {
		return nil, true
	}
	if !v.h.refs.unique() {
		return nil, false
	}
	return v.h.c.Slice(v.start, v.end)
}

// Shrink asks the container to discard the elements outside the view.
// It returns false without touching anything when the container is not
// shrinkable, when the view already spans the whole container, or while
// other references are alive. Otherwise the attempt runs and Shrink
// returns true, adopting the container's new window; a container that
// declined to move anything (a SmallVector still inline, say) still
// counts as an attempt.
func (v *View[E]) Shrink() bool {
	v.check()
	if v.h == nil {
		return false
	}
	s, ok := v.h.c.(ShrinkableContainer[E])
	if !ok {
		return false
	}
	if v.start == 0 && v.end == s.Len() {
		return false
	}
	if !v.h.refs.unique() {
		return false
	}
	if newStart, newEnd, changed := s.ShrinkToRange(v.start, v.end); changed {
		v.start, v.end = newStart, newEnd
	}
	return true
}
