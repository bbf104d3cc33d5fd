package analytic

import "math"

// Epsilon is the tolerance under which two scalar attributes of analytic
// objects are considered equal. It is scaled relatively for large magnitudes,
// see RoughlyEqual.
const Epsilon = 1e-9

// RoughlyEqual compares two scalars up to Epsilon, scaling the tolerance by
// the larger magnitude so that big coordinates do not lose equality.
func RoughlyEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Epsilon*scale
}

// RoughlyZero reports whether a scalar is within Epsilon of zero.
func RoughlyZero(a float64) bool {
	return math.Abs(a) <= Epsilon
}

// roughlyZeroAt compares a value against zero with an explicit scale,
// used by incidence tests where the natural scale is the coordinate size.
func roughlyZeroAt(value, scale float64) bool {
	return math.Abs(value) <= Epsilon*math.Max(1, scale)
}
