package analytic

import (
	"fmt"
	"math"
)

// Line is a line in normal form Ax + By + C = 0 with (A, B) a unit vector
// and the orientation canonicalized (A > 0, or A = 0 and B > 0), so that
// equal lines have equal coefficient triples up to Epsilon.
type Line struct {
	A float64
	B float64
	C float64
}

func newLine(a, b, c float64) (Line, error) {
	norm := math.Hypot(a, b)
	if RoughlyZero(norm) {
		return Line{}, fmt.Errorf("line with zero normal: %w", ErrInconstructible)
	}
	a, b, c = a/norm, b/norm, c/norm
	// Canonical orientation. Borderline signs may flip between pictures;
	// IsEqualTo tolerates that and the consistency oracle rejects the rest.
	if a < 0 || (a == 0 && b < 0) {
		a, b, c = -a, -b, -c
	}
	return Line{A: a, B: b, C: c}, nil
}

// NewLineFromPoints returns the line through two distinct points.
func NewLineFromPoints(p, q Point) (Line, error) {
	if p.IsEqualTo(q) {
		return Line{}, fmt.Errorf("line through equal points %v: %w", p, ErrInconstructible)
	}
	a := q.Y - p.Y
	b := p.X - q.X
	return newLine(a, b, -(a*p.X + b*p.Y))
}

func (l Line) String() string {
	return fmt.Sprintf("%vx + %vy + %v = 0", l.A, l.B, l.C)
}

// IsEqualTo implements AnalyticObject. Both orientations of the normal are
// accepted so that canonicalization flips on near-vertical lines do not
// break equality.
func (l Line) IsEqualTo(other AnalyticObject) bool {
	m, ok := other.(Line)
	if !ok {
		return false
	}
	if RoughlyEqual(l.A, m.A) && RoughlyEqual(l.B, m.B) && RoughlyEqual(l.C, m.C) {
		return true
	}
	return RoughlyEqual(l.A, -m.A) && RoughlyEqual(l.B, -m.B) && RoughlyEqual(l.C, -m.C)
}

// Contains reports whether a point lies on the line within tolerance.
func (l Line) Contains(p Point) bool {
	return roughlyZeroAt(l.A*p.X+l.B*p.Y+l.C, math.Max(math.Abs(p.X), math.Abs(p.Y)))
}

// IsParallelTo reports whether two lines have the same direction.
func (l Line) IsParallelTo(m Line) bool {
	return RoughlyZero(l.A*m.B - l.B*m.A)
}

// IsPerpendicularTo reports whether two lines meet at a right angle.
func (l Line) IsPerpendicularTo(m Line) bool {
	return RoughlyZero(l.A*m.A + l.B*m.B)
}

// IntersectionWith returns the common point of two non-parallel lines.
func (l Line) IntersectionWith(m Line) (Point, error) {
	det := l.A*m.B - l.B*m.A
	if RoughlyZero(det) {
		return Point{}, fmt.Errorf("intersection of parallel lines: %w", ErrInconstructible)
	}
	return Point{
		X: (l.B*m.C - m.B*l.C) / det,
		Y: (m.A*l.C - l.A*m.C) / det,
	}, nil
}

// PerpendicularThrough returns the line through p perpendicular to l.
func (l Line) PerpendicularThrough(p Point) Line {
	// The normal (A, B) becomes the direction; (B, -A) is the new normal.
	line, _ := newLine(l.B, -l.A, -(l.B*p.X - l.A*p.Y))
	return line
}

// ParallelThrough returns the line through p parallel to l.
func (l Line) ParallelThrough(p Point) Line {
	line, _ := newLine(l.A, l.B, -(l.A*p.X + l.B*p.Y))
	return line
}

// PerpendicularBisector returns the axis of the segment pq.
func PerpendicularBisector(p, q Point) (Line, error) {
	base, err := NewLineFromPoints(p, q)
	if err != nil {
		return Line{}, err
	}
	return base.PerpendicularThrough(Midpoint(p, q)), nil
}

// IsTangentTo reports whether the line touches the circle in exactly one
// point, i.e. the center's distance to the line equals the radius.
func (l Line) IsTangentTo(c Circle) bool {
	return RoughlyEqual(math.Abs(l.A*c.Center.X+l.B*c.Center.Y+l.C), c.Radius)
}
