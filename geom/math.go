package geom

import "math"

// Clamp constrains v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 constrains v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates linearly between a and b by t in [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Abs returns the absolute value of v
func Abs(v float64) float64 {
	return math.Abs(v)
}

// Sign returns -1, 0 or 1 matching the sign of v
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// ApproxEqual reports whether a and b differ by less than eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
