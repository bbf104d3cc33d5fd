package analytic

import (
	"fmt"
	"math"
)

// Point is a point in the plane.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// IsEqualTo implements AnalyticObject.
func (p Point) IsEqualTo(other AnalyticObject) bool {
	q, ok := other.(Point)
	if !ok {
		return false
	}
	return RoughlyEqual(p.X, q.X) && RoughlyEqual(p.Y, q.Y)
}

// DistanceTo returns the euclidean distance to another point.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Midpoint returns the midpoint of the segment pq.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// ReflectThrough returns the reflection of p through the given center,
// i.e. the point p' with center = midpoint(p, p').
func ReflectThrough(p, center Point) Point {
	return Point{X: 2*center.X - p.X, Y: 2*center.Y - p.Y}
}

// AreCollinear reports whether three points lie on a common line, up to
// Epsilon scaled by the spanned area's natural magnitude.
func AreCollinear(p, q, r Point) bool {
	cross := (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	return roughlyZeroAt(cross, p.DistanceTo(q)*p.DistanceTo(r))
}

// Circumcenter returns the center of the circle through three points, or
// ErrInconstructible if they are collinear (or not pairwise distinct).
func Circumcenter(p, q, r Point) (Point, error) {
	d := 2 * (p.X*(q.Y-r.Y) + q.X*(r.Y-p.Y) + r.X*(p.Y-q.Y))
	if AreCollinear(p, q, r) || RoughlyZero(d) {
		return Point{}, fmt.Errorf("circumcenter of %v, %v, %v: %w", p, q, r, ErrInconstructible)
	}
	p2 := p.X*p.X + p.Y*p.Y
	q2 := q.X*q.X + q.Y*q.Y
	r2 := r.X*r.X + r.Y*r.Y
	return Point{
		X: (p2*(q.Y-r.Y) + q2*(r.Y-p.Y) + r2*(p.Y-q.Y)) / d,
		Y: (p2*(r.X-q.X) + q2*(p.X-r.X) + r2*(q.X-p.X)) / d,
	}, nil
}

// InternalAngleBisector returns the internal bisector of the angle at
// vertex spanned by rays towards p and q. Degenerate when either ray is
// undefined or the rays point in exactly opposite directions.
func InternalAngleBisector(vertex, p, q Point) (Line, error) {
	dp := vertex.DistanceTo(p)
	dq := vertex.DistanceTo(q)
	if RoughlyZero(dp) || RoughlyZero(dq) {
		return Line{}, fmt.Errorf("angle bisector at %v: %w", vertex, ErrInconstructible)
	}
	// Sum of the unit ray directions bisects the internal angle.
	dx := (p.X-vertex.X)/dp + (q.X-vertex.X)/dq
	dy := (p.Y-vertex.Y)/dp + (q.Y-vertex.Y)/dq
	if RoughlyZero(dx) && RoughlyZero(dy) {
		return Line{}, fmt.Errorf("angle bisector at %v of a straight angle: %w", vertex, ErrInconstructible)
	}
	return newLine(dy, -dx, -(dy*vertex.X - dx*vertex.Y))
}
