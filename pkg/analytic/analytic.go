package analytic

import (
	"errors"
	"fmt"
)

// ErrInconstructible signals that an analytic value cannot be produced from
// the given inputs because they are degenerate (equal points, collinear
// points for a circle, parallel lines for an intersection, ...).
//
// Inconstructibility is an ordinary, recoverable outcome: callers inspect it
// with errors.Is and treat the enclosing construction as not producible in
// the current picture.
var ErrInconstructible = errors.New("analytic object is not constructible from degenerate inputs")

// AnalyticObject is a numeric realization of a symbolic geometric object:
// a Point, a Line in canonical normal form, or a Circle.
//
// Equality between analytic objects is tolerance based. Two values are equal
// iff all their canonicalized scalar attributes differ by less than Epsilon
// (relatively scaled). The tolerance makes equality only practically
// transitive; the cross-picture consistency discipline of the constructor
// layer weeds out borderline flips.
type AnalyticObject interface {
	fmt.Stringer

	// IsEqualTo reports tolerance-based equality with another analytic
	// object. Objects of different kinds are never equal.
	IsEqualTo(other AnalyticObject) bool
}
