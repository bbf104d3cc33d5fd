package analytic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointEquality(t *testing.T) {
	p := Point{X: 1, Y: 2}
	require.True(t, p.IsEqualTo(Point{X: 1 + 1e-12, Y: 2 - 1e-12}))
	require.False(t, p.IsEqualTo(Point{X: 1.001, Y: 2}))
	// Different kinds never compare equal.
	require.False(t, p.IsEqualTo(Circle{Center: p, Radius: 0}))
}

func TestPointEqualityScalesWithMagnitude(t *testing.T) {
	big := 1e12
	require.True(t, Point{X: big, Y: 0}.IsEqualTo(Point{X: big + 1, Y: 0}))
	require.False(t, Point{X: 1, Y: 0}.IsEqualTo(Point{X: 2, Y: 0}))
}

func TestMidpointAndReflection(t *testing.T) {
	a := Point{X: -1, Y: 3}
	b := Point{X: 5, Y: 7}
	m := Midpoint(a, b)
	require.True(t, m.IsEqualTo(Point{X: 2, Y: 5}))
	// Reflecting a through the midpoint lands on b.
	require.True(t, ReflectThrough(a, m).IsEqualTo(b))
}

func TestAreCollinear(t *testing.T) {
	require.True(t, AreCollinear(Point{0, 0}, Point{1, 1}, Point{5, 5}))
	require.False(t, AreCollinear(Point{0, 0}, Point{1, 1}, Point{5, 5.01}))
}

func TestCircumcenter(t *testing.T) {
	center, err := Circumcenter(Point{1, 0}, Point{-1, 0}, Point{0, 1})
	require.NoError(t, err)
	require.True(t, center.IsEqualTo(Point{0, 0}))

	_, err = Circumcenter(Point{0, 0}, Point{1, 1}, Point{2, 2})
	require.ErrorIs(t, err, ErrInconstructible)
}

func TestInternalAngleBisector(t *testing.T) {
	// Right angle at the origin between the axes bisects along y = x.
	bisector, err := InternalAngleBisector(Point{0, 0}, Point{3, 0}, Point{0, 5})
	require.NoError(t, err)
	require.True(t, bisector.Contains(Point{2, 2}))
	require.True(t, bisector.Contains(Point{0, 0}))

	_, err = InternalAngleBisector(Point{0, 0}, Point{1, 0}, Point{-2, 0})
	require.ErrorIs(t, err, ErrInconstructible)

	_, err = InternalAngleBisector(Point{0, 0}, Point{0, 0}, Point{1, 0})
	require.ErrorIs(t, err, ErrInconstructible)
}
