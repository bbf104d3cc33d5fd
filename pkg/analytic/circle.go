package analytic

import (
	"fmt"
	"math"
)

// Circle is a circle given by center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircleFromPoints returns the circle through three non-collinear points.
func NewCircleFromPoints(p, q, r Point) (Circle, error) {
	center, err := Circumcenter(p, q, r)
	if err != nil {
		return Circle{}, err
	}
	return Circle{Center: center, Radius: center.DistanceTo(p)}, nil
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(center: %v, radius: %v)", c.Center, c.Radius)
}

// IsEqualTo implements AnalyticObject.
func (c Circle) IsEqualTo(other AnalyticObject) bool {
	d, ok := other.(Circle)
	if !ok {
		return false
	}
	return c.Center.IsEqualTo(d.Center) && RoughlyEqual(c.Radius, d.Radius)
}

// ContainsPoint reports whether a point lies on the circle within tolerance.
func (c Circle) ContainsPoint(p Point) bool {
	return RoughlyEqual(c.Center.DistanceTo(p), c.Radius)
}

// IsTangentTo reports whether two circles touch in exactly one point,
// either externally or internally.
func (c Circle) IsTangentTo(d Circle) bool {
	dist := c.Center.DistanceTo(d.Center)
	if RoughlyZero(dist) {
		return false
	}
	return RoughlyEqual(dist, c.Radius+d.Radius) ||
		RoughlyEqual(dist, math.Abs(c.Radius-d.Radius))
}

// IntersectWithLine returns the common points of the circle and a line:
// zero points when the line misses, one when tangent, two otherwise.
func (c Circle) IntersectWithLine(l Line) []Point {
	// Signed distance from the center; (A, B) is a unit normal.
	t := l.A*c.Center.X + l.B*c.Center.Y + l.C
	foot := Point{X: c.Center.X - t*l.A, Y: c.Center.Y - t*l.B}
	if RoughlyEqual(math.Abs(t), c.Radius) {
		return []Point{foot}
	}
	if math.Abs(t) > c.Radius {
		return nil
	}
	h := math.Sqrt(c.Radius*c.Radius - t*t)
	return []Point{
		{X: foot.X - h*l.B, Y: foot.Y + h*l.A},
		{X: foot.X + h*l.B, Y: foot.Y - h*l.A},
	}
}
