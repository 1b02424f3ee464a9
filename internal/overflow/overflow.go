package overflow

import "math"

// Add returns a+b and reports whether the sum stayed within the int range.
func Add(a, b int) (int, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return sum, false
	}
	return sum, true
}

// Sub returns a-b and reports whether the difference stayed within the int
// range.
func Sub(a, b int) (int, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return diff, false
	}
	return diff, true
}

// SatAdd returns a+b, clamped to math.MaxInt or math.MinInt on overflow.
func SatAdd(a, b int) int {
	sum, ok := Add(a, b)
	if ok {
		return sum
	}
	if b > 0 {
		return math.MaxInt
	}
	return math.MinInt
}
