package constructor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wwn13/geogen/pkg/analytic"
	"github.com/wwn13/geogen/pkg/configurations"
)

func TestPictureAddAndLookup(t *testing.T) {
	picture := NewPicture()
	a := configurations.NewLooseObject(1, configurations.Point)
	b := configurations.NewLooseObject(2, configurations.Point)

	equalTo, err := picture.Add(a, analytic.Point{X: 1, Y: 2})
	require.NoError(t, err)
	require.Nil(t, equalTo)
	equalTo, err = picture.Add(b, analytic.Point{X: 3, Y: 4})
	require.NoError(t, err)
	require.Nil(t, equalTo)

	value, ok := picture.AnalyticOf(a)
	require.True(t, ok)
	require.True(t, value.IsEqualTo(analytic.Point{X: 1, Y: 2}))

	object, ok := picture.ObjectByValue(analytic.Point{X: 3, Y: 4 + 1e-12})
	require.True(t, ok)
	require.Equal(t, b.ID(), object.ID())

	_, ok = picture.ObjectByValue(analytic.Point{X: 9, Y: 9})
	require.False(t, ok)
}

func TestPictureRecordsDuplicates(t *testing.T) {
	picture := NewPicture()
	a := configurations.NewLooseObject(1, configurations.Point)
	copyOfA := configurations.NewLooseObject(2, configurations.Point)

	_, err := picture.Add(a, analytic.Point{X: 1, Y: 1})
	require.NoError(t, err)
	equalTo, err := picture.Add(copyOfA, analytic.Point{X: 1, Y: 1})
	require.NoError(t, err)
	require.NotNil(t, equalTo)
	require.Equal(t, a.ID(), equalTo.ID())

	// The canonical object keeps the value; the duplicate is still total.
	object, ok := picture.ObjectByValue(analytic.Point{X: 1, Y: 1})
	require.True(t, ok)
	require.Equal(t, a.ID(), object.ID())
	_, ok = picture.AnalyticOf(copyOfA)
	require.True(t, ok)
}

func TestPictureRejectsReAdd(t *testing.T) {
	picture := NewPicture()
	a := configurations.NewLooseObject(1, configurations.Point)
	_, err := picture.Add(a, analytic.Point{X: 1, Y: 1})
	require.NoError(t, err)
	_, err = picture.Add(a, analytic.Point{X: 2, Y: 2})
	require.ErrorIs(t, err, ErrInternalInvariant)
}

func TestPictureClone(t *testing.T) {
	picture := NewPicture()
	a := configurations.NewLooseObject(1, configurations.Point)
	_, err := picture.Add(a, analytic.Point{X: 1, Y: 1})
	require.NoError(t, err)

	clone := picture.Clone()
	require.NotEqual(t, picture.ID(), clone.ID())

	b := configurations.NewLooseObject(2, configurations.Point)
	_, err = clone.Add(b, analytic.Point{X: 2, Y: 2})
	require.NoError(t, err)
	require.Len(t, clone.Objects(), 2)
	require.Len(t, picture.Objects(), 1)
}
