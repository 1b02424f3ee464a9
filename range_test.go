package rcslice

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestRangeResolve(t *testing.T) {
	cases := []struct {
		name       string
		r          Range
		n          int
		start, end int
	}{
		{"all", All(), 5, 0, 5},
		{"all empty", All(), 0, 0, 0},
		{"span", Span(1, 4), 5, 1, 4},
		{"span full", Span(0, 5), 5, 0, 5},
		{"from", From(2), 5, 2, 5},
		{"to", To(3), 5, 0, 3},
		{"to inclusive", ToInclusive(3), 5, 0, 4},
		{"span inclusive", SpanInclusive(1, 3), 5, 1, 4},
		{"end past length", Span(3, 10), 5, 3, 5},
		{"start past length", Span(10, 20), 5, 5, 5},
		{"from past length", From(9), 5, 5, 5},
		{"inverted", Span(4, 2), 5, 2, 2},
		{"negative start", Span(-3, 2), 5, 0, 2},
		{"negative both", Span(-7, -2), 5, 0, 0},
		{"explicit unbounded", Range{Start: Unbounded(), End: Unbounded()}, 5, 0, 5},
		{"excluded start", Range{Start: Excluded(1)}, 5, 2, 5},
		{"excluded start at end", Range{Start: Excluded(4)}, 5, 5, 5},
		{"excluded start saturates", Range{Start: Excluded(math.MaxInt)}, 5, 5, 5},
		{"inclusive end saturates", ToInclusive(math.MaxInt), 5, 0, 5},
		{"inclusive end at last", SpanInclusive(0, 4), 5, 0, 5},
		{"zero width", Span(2, 2), 5, 2, 2},
	}
	for _, c := range cases {
		start, end := c.r.resolve(c.n)
		require.Equal(t, c.start, start, "%s: start", c.name)
		require.Equal(t, c.end, end, "%s: end", c.name)
	}
}
func TestRangeResolveAlwaysValid(t *testing.T) {
	condition := func(a, b int16, inclusive bool, n uint8) bool {
		r := Span(int(a), int(b))
		if inclusive {
			r = SpanInclusive(int(a), int(b))
		}
		start, end := r.resolve(int(n))
		return 0 <= start && start <= end && end <= int(n)
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}
func TestRangeResolveUnboundedMatchesLength(t *testing.T) {
	condition := func(n uint8) bool {
		start, end := All().resolve(int(n))
		return start == 0 && end == int(n)
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}
