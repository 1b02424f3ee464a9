package rcslice

import (
	"github.com/Phlosioneer/rc-slice2/internal/overflow"
)

type boundKind uint8

const (
	unbounded boundKind = iota
	included
	excluded
)

// Bound is one endpoint of a Range. The zero value is unbounded.
type Bound struct {
	kind boundKind
	at   int
}

// Included returns a bound that keeps the element at index i on its side.
func Included(i int) Bound { return Bound{kind: included, at: i} }

// Excluded returns a bound that stops just short of index i.
func Excluded(i int) Bound { return Bound{kind: excluded, at: i} }

// Unbounded returns a bound with no limit.
func Unbounded() Bound { return Bound{} }

// Range selects a window of a container by a start and end bound. The zero
// value selects everything.
//
// Resolving a range against a container never fails. Bounds clamp into
// the container and index arithmetic saturates; an inverted window
// collapses to an empty one at its resolved end. Only the narrowing
// operations on views are strict about their inputs.
type Range struct {
	Start Bound
	End   Bound
}

// All selects the whole container.
func All() Range { return Range{} }

// From selects [start, len).
func From(start int) Range { return Range{Start: Included(start)} }

// To selects [0, end).
func To(end int) Range { return Range{End: Excluded(end)} }

// Span selects [start, end).
func Span(start, end int) Range {
	return Range{Start: Included(start), End: Excluded(end)}
}

// ToInclusive selects [0, end].
func ToInclusive(end int) Range { return Range{End: Included(end)} }

// SpanInclusive selects [start, end].
func SpanInclusive(start, end int) Range {
	return Range{Start: Included(start), End: Included(end)}
}

// resolve clamps r into [0, n] and returns the concrete window. Inverted
// inputs collapse onto the resolved end.
func (r Range) resolve(n int) (start, end int) {
	switch r.Start.kind {
	case included:
		start = min(r.Start.at, n)
	case excluded:
		start = min(overflow.SatAdd(r.Start.at, 1), n)
	}
	end = n
	switch r.End.kind {
	case included:
		end = min(overflow.SatAdd(r.End.at, 1), n)
	case excluded:
		end = min(r.End.at, n)
	}
	start = max(start, 0)
	end = max(end, 0)
	if start > end {
		start = end
	}
	return start, end
}
