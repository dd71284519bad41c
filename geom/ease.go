package geom

import "math"

// Easing maps normalized animation time t in [0, 1] to eased progress.
// Input outside [0, 1] is clamped
type Easing func(t float64) float64

// EaseLinear passes t through unchanged
func EaseLinear(t float64) float64 {
	return Clamp01(t)
}

// EaseOut decelerates toward the end (quadratic)
func EaseOut(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// EaseIn accelerates from a standstill (quadratic)
func EaseIn(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// EaseInOut accelerates then decelerates, the shared interpolator used by
// switcher show/hide and relocate transitions
func EaseInOut(t float64) float64 {
	t = Clamp01(t)
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}

// EaseDecelerate is a steeper deceleration curve used by fling
// trajectories so velocity bleeds off quickly at the end
func EaseDecelerate(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 2.5)
}
