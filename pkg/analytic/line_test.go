package analytic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLineFromPoints(t *testing.T) {
	l, err := NewLineFromPoints(Point{0, 0}, Point{2, 2})
	require.NoError(t, err)
	require.True(t, l.Contains(Point{5, 5}))
	require.False(t, l.Contains(Point{5, 5.1}))

	_, err = NewLineFromPoints(Point{1, 1}, Point{1, 1})
	require.ErrorIs(t, err, ErrInconstructible)
}

func TestLineCanonicalForm(t *testing.T) {
	// The same line built from swapped points has identical coefficients.
	l1, err := NewLineFromPoints(Point{0, 1}, Point{4, 3})
	require.NoError(t, err)
	l2, err := NewLineFromPoints(Point{4, 3}, Point{0, 1})
	require.NoError(t, err)
	require.InDelta(t, l1.A, l2.A, Epsilon)
	require.InDelta(t, l1.B, l2.B, Epsilon)
	require.InDelta(t, l1.C, l2.C, Epsilon)
	require.True(t, l1.IsEqualTo(l2))
	// Unit normal, positive leading coefficient.
	require.InDelta(t, 1, l1.A*l1.A+l1.B*l1.B, Epsilon)
	require.GreaterOrEqual(t, l1.A, 0.0)
}

func TestLineParallelAndPerpendicular(t *testing.T) {
	l, err := NewLineFromPoints(Point{0, 0}, Point{1, 2})
	require.NoError(t, err)

	parallel := l.ParallelThrough(Point{5, 0})
	require.True(t, l.IsParallelTo(parallel))
	require.True(t, parallel.Contains(Point{5, 0}))
	require.False(t, l.IsEqualTo(parallel))

	perpendicular := l.PerpendicularThrough(Point{5, 0})
	require.True(t, l.IsPerpendicularTo(perpendicular))
	require.True(t, perpendicular.Contains(Point{5, 0}))
	require.False(t, l.IsParallelTo(perpendicular))
}

func TestLineIntersection(t *testing.T) {
	l1, err := NewLineFromPoints(Point{0, 0}, Point{1, 1})
	require.NoError(t, err)
	l2, err := NewLineFromPoints(Point{0, 2}, Point{2, 0})
	require.NoError(t, err)

	p, err := l1.IntersectionWith(l2)
	require.NoError(t, err)
	require.True(t, p.IsEqualTo(Point{1, 1}))

	_, err = l1.IntersectionWith(l1.ParallelThrough(Point{0, 3}))
	require.ErrorIs(t, err, ErrInconstructible)
}

func TestPerpendicularBisector(t *testing.T) {
	axis, err := PerpendicularBisector(Point{0, 0}, Point{4, 0})
	require.NoError(t, err)
	require.True(t, axis.Contains(Point{2, 0}))
	require.True(t, axis.Contains(Point{2, 7}))

	base, err := NewLineFromPoints(Point{0, 0}, Point{4, 0})
	require.NoError(t, err)
	require.True(t, axis.IsPerpendicularTo(base))
}

func TestLineTangentToCircle(t *testing.T) {
	c := Circle{Center: Point{0, 0}, Radius: 2}
	tangent, err := NewLineFromPoints(Point{2, -1}, Point{2, 1})
	require.NoError(t, err)
	require.True(t, tangent.IsTangentTo(c))

	secant, err := NewLineFromPoints(Point{0, -1}, Point{0, 1})
	require.NoError(t, err)
	require.False(t, secant.IsTangentTo(c))
}
