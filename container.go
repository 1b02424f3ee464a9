package rcslice

// Container is the capability an underlying storage type must provide to
// be viewable: report its length and hand out sub-slices of its elements.
//
// Once a container is owned by a Handle it must not be used directly; all
// access goes through views, and mutation is gated by view uniqueness.
type Container[E any] interface {
	// Len returns the current element count.
	Len() int

	// Slice returns the elements in [start, end), or nil, false when the
	// range is out of bounds.
	Slice(start, end int) ([]E, bool)
}

// ShrinkableContainer is implemented by containers that can physically
// discard elements outside a kept range. Support is discovered with a type
// assertion, so containers without it pay nothing for the feature.
type ShrinkableContainer[E any] interface {
	Container[E]

	// ShrinkToRange attempts to discard every element outside [start, end).
	// On success it reports the window now occupied by the kept elements
	// (the container may have moved them, typically to 0..len) and true. A
	// false return means the container was left untouched.
	ShrinkToRange(start, end int) (newStart, newEnd int, ok bool)
}

// Fixed is fixed-length storage. The element count never changes, so there
// is nothing to reclaim and Fixed does not implement ShrinkableContainer.
type Fixed[E any] struct {
	data []E
}

// NewFixed wraps data in fixed-length storage. Ownership of the slice
// transfers to the container.
func NewFixed[E any](data []E) *Fixed[E] {
	return &Fixed[E]{data: data}
}

func (f *Fixed[E]) Len() int { return len(f.data) }

func (f *Fixed[E]) Slice(start, end int) ([]E, bool) {
	if start < 0 || end < start || end > len(f.data) {
		return nil, false
	}
	return f.data[start:end], true
}

// Vector is growable heap storage. It shrinks by reallocating the kept run
// at exact size, which also unpins the discarded elements for the garbage
// collector.
type Vector[E any] struct {
	data []E
}

// NewVector wraps data in growable storage. Ownership of the slice
// transfers to the container.
func NewVector[E any](data []E) *Vector[E] {
	return &Vector[E]{data: data}
}

func (v *Vector[E]) Len() int { return len(v.data) }

func (v *Vector[E]) Slice(start, end int) ([]E, bool) {
	if start < 0 || end < start || end > len(v.data) {
		return nil, false
	}
	return v.data[start:end], true
}

func (v *Vector[E]) ShrinkToRange(start, end int) (int, int, bool) {
	if start < 0 || end < start || end > len(v.data) {
		return 0, 0, false
	}
	kept := make([]E, end-start)
	copy(kept, v.data[start:end])
	v.data = kept
	return 0, len(kept), true
}

// SmallVectorInline is the number of elements a SmallVector holds without
// a heap allocation.
const SmallVectorInline = 8

// SmallVector is small-buffer-optimized storage: up to SmallVectorInline
// elements live in the struct itself, larger contents spill to a heap
// slice. Shrinking only applies after a spill; a shrink whose kept run
// fits inline moves the elements back into the struct.
type SmallVector[E any] struct {
	inline [SmallVectorInline]E
	n      int
	spill  []E // non-nil once spilled
}

// NewSmallVector copies data into small-buffer storage.
func NewSmallVector[E any](data []E) *SmallVector[E] {
	s := &SmallVector[E]{}
	if len(data) <= SmallVectorInline {
		s.n = copy(s.inline[:], data)
	} else {
		s.spill = make([]E, len(data))
		copy(s.spill, data)
	}
	return s
}

// Spilled reports whether the elements live on the heap.
func (s *SmallVector[E]) Spilled() bool { return s.spill != nil }

func (s *SmallVector[E]) Len() int {
	if s.spill != nil {
		return len(s.spill)
	}
	return s.n
}

func (s *SmallVector[E]) Slice(start, end int) ([]E, bool) {
	if start < 0 || end < start || end > s.Len() {
		return nil, false
	}
	if s.spill != nil {
		return s.spill[start:end], true
	}
	return s.inline[start:end], true
}

func (s *SmallVector[E]) ShrinkToRange(start, end int) (int, int, bool) {
	if s.spill == nil {
		// Inline elements occupy the struct either way.
		return 0, 0, false
	}
	if start < 0 || end < start || end > len(s.spill) {
		return 0, 0, false
	}
	kept := s.spill[start:end]
	if len(kept) <= SmallVectorInline {
		var zero [SmallVectorInline]E
		dropped := s.spill
		s.inline = zero
		s.n = copy(s.inline[:], kept)
		s.spill = nil
		clear(dropped)
		return 0, s.n, true
	}
	moved := make([]E, len(kept))
	copy(moved, kept)
	s.spill = moved
	return 0, len(moved), true
}
