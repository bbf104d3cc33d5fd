package constructor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wwn13/geogen/pkg/analytic"
	"github.com/wwn13/geogen/pkg/configurations"
	"github.com/wwn13/geogen/pkg/settings"
)

func testSettings() settings.Settings {
	return settings.Settings{NumberOfPictures: 3, ReseedBudget: 20, RandomSeed: 7}
}

func freeTriangle(t *testing.T) (*configurations.Configuration, []*configurations.LooseObject) {
	t.Helper()
	a := configurations.NewLooseObject(1, configurations.Point)
	b := configurations.NewLooseObject(2, configurations.Point)
	c := configurations.NewLooseObject(3, configurations.Point)
	configuration, err := configurations.NewConfiguration([]*configurations.LooseObject{a, b, c}, nil)
	require.NoError(t, err)
	return configuration, []*configurations.LooseObject{a, b, c}
}

func TestConstructConfiguration(t *testing.T) {
	configuration, loose := freeTriangle(t)
	midpoint, err := configurations.NewConstructedObject(4, configurations.Midpoint, loose[0], loose[1])
	require.NoError(t, err)
	configuration, err = configuration.Extended(midpoint)
	require.NoError(t, err)

	g := NewGeometryConstructor(testSettings(), nil)
	pictures, data, err := g.ConstructConfiguration(configuration)
	require.NoError(t, err)
	require.True(t, data.CanBeConstructed())
	require.Empty(t, data.Duplicates)
	require.Equal(t, 3, pictures.Count())
	require.Len(t, pictures.AppliedObjects(), 4)

	for _, picture := range pictures.All() {
		value, ok := picture.AnalyticOf(midpoint)
		require.True(t, ok)
		require.NotNil(t, value)
	}
}

func TestConstructObjectDetectsDuplicates(t *testing.T) {
	configuration, loose := freeTriangle(t)
	first, err := configurations.NewConstructedObject(4, configurations.Midpoint, loose[0], loose[1])
	require.NoError(t, err)
	second, err := configurations.NewConstructedObject(5, configurations.Midpoint, loose[1], loose[0])
	require.NoError(t, err)
	configuration, err = configuration.Extended(first, second)
	require.NoError(t, err)

	g := NewGeometryConstructor(testSettings(), nil)
	_, data, err := g.ConstructConfiguration(configuration)
	require.NoError(t, err)
	require.True(t, data.CanBeConstructed())
	require.Len(t, data.Duplicates, 1)
	require.Equal(t, first.ID(), data.Duplicates[second.ID()].ID())
}

func TestConstructObjectReportsInconstructible(t *testing.T) {
	configuration, loose := freeTriangle(t)
	// Both point pairs span the same line, so the intersection degenerates
	// in every picture.
	crossing, err := configurations.NewConstructedObject(4,
		configurations.IntersectionOfLinesFromPoints, loose[0], loose[1], loose[1], loose[0])
	require.NoError(t, err)
	configuration, err = configuration.Extended(crossing)
	require.NoError(t, err)

	g := NewGeometryConstructor(testSettings(), nil)
	_, data, err := g.ConstructConfiguration(configuration)
	require.NoError(t, err)
	require.False(t, data.CanBeConstructed())
	require.Equal(t, crossing.ID(), data.InconstructibleObject.ID())
}

func TestConstructObjectRejectsMixedConstructibility(t *testing.T) {
	objects := []configurations.ConfigurationObject{
		configurations.NewLooseObject(1, configurations.Point),
		configurations.NewLooseObject(2, configurations.Point),
		configurations.NewLooseObject(3, configurations.Point),
		configurations.NewLooseObject(4, configurations.Point),
	}
	// Lines 1-2 and 3-4 are parallel in the first picture only.
	first := map[configurations.ObjectID]analytic.AnalyticObject{
		1: analytic.Point{X: 0, Y: 0},
		2: analytic.Point{X: 4, Y: 0},
		3: analytic.Point{X: 0, Y: 1},
		4: analytic.Point{X: 4, Y: 1},
	}
	second := map[configurations.ObjectID]analytic.AnalyticObject{
		1: analytic.Point{X: 0, Y: 0},
		2: analytic.Point{X: 4, Y: 0},
		3: analytic.Point{X: 0, Y: 1},
		4: analytic.Point{X: 4, Y: 3},
	}
	pictures, err := PicturesFromAnalytic(objects,
		[]map[configurations.ObjectID]analytic.AnalyticObject{first, second})
	require.NoError(t, err)

	crossing, err := configurations.NewConstructedObject(5,
		configurations.IntersectionOfLinesFromPoints, objects[0], objects[1], objects[2], objects[3])
	require.NoError(t, err)

	g := NewGeometryConstructor(testSettings(), nil)
	_, err = g.ConstructObject(pictures, crossing, true)
	require.ErrorIs(t, err, ErrInconsistentPictures)
	// The failed step left no trace.
	require.Len(t, pictures.AppliedObjects(), 4)
}

func TestConstructConfigurationExhaustsReseedBudget(t *testing.T) {
	configuration, loose := freeTriangle(t)
	// A construction the evaluator does not know fails in every picture of
	// every instance, so each attempt is reseeded until the budget runs out.
	unknown := &configurations.Construction{
		Name:       "TangentLineFromPoints",
		Signature:  []configurations.Parameter{{Kind: configurations.Point, Count: 2}},
		OutputKind: configurations.Line,
	}
	object, err := configurations.NewConstructedObject(4, unknown, loose[0], loose[1])
	require.NoError(t, err)
	configuration, err = configuration.Extended(object)
	require.NoError(t, err)

	g := NewGeometryConstructor(testSettings(), nil)
	_, _, err = g.ConstructConfiguration(configuration)
	require.ErrorIs(t, err, ErrInconstructiblePictures)
}

func TestConstructByCloning(t *testing.T) {
	configuration, loose := freeTriangle(t)
	g := NewGeometryConstructor(testSettings(), nil)
	old, data, err := g.ConstructConfiguration(configuration)
	require.NoError(t, err)
	require.True(t, data.CanBeConstructed())

	midpoint, err := configurations.NewConstructedObject(4, configurations.Midpoint, loose[0], loose[2])
	require.NoError(t, err)
	extended, data, err := g.ConstructByCloning(old, midpoint)
	require.NoError(t, err)
	require.True(t, data.CanBeConstructed())
	require.Len(t, extended.AppliedObjects(), 4)
	// The old manager is untouched.
	require.Len(t, old.AppliedObjects(), 3)
}

func TestProbeLeavesPicturesUntouched(t *testing.T) {
	configuration, loose := freeTriangle(t)
	g := NewGeometryConstructor(testSettings(), nil)
	pictures, _, err := g.ConstructConfiguration(configuration)
	require.NoError(t, err)

	midpoint, err := configurations.NewConstructedObject(4, configurations.Midpoint, loose[0], loose[1])
	require.NoError(t, err)
	values, err := g.Probe(pictures, midpoint)
	require.NoError(t, err)
	require.Len(t, values, pictures.Count())
	for _, picture := range pictures.All() {
		require.Contains(t, values, picture.ID())
		_, ok := picture.AnalyticOf(midpoint)
		require.False(t, ok)
	}
	require.Len(t, pictures.AppliedObjects(), 3)
}

func TestComposedCentroid(t *testing.T) {
	configuration, loose := freeTriangle(t)
	centroid, err := configurations.NewConstructedObject(4,
		configurations.Centroid, loose[0], loose[1], loose[2])
	require.NoError(t, err)
	// The centroid is also the intersection of two medians built by hand;
	// constructing both must surface a duplicate.
	m1, err := configurations.NewConstructedObject(5, configurations.Midpoint, loose[1], loose[2])
	require.NoError(t, err)
	m2, err := configurations.NewConstructedObject(6, configurations.Midpoint, loose[0], loose[2])
	require.NoError(t, err)
	byHand, err := configurations.NewConstructedObject(7,
		configurations.IntersectionOfLinesFromPoints, loose[0], m1, loose[1], m2)
	require.NoError(t, err)
	configuration, err = configuration.Extended(centroid, m1, m2, byHand)
	require.NoError(t, err)

	g := NewGeometryConstructor(testSettings(), nil)
	_, data, err := g.ConstructConfiguration(configuration)
	require.NoError(t, err)
	require.True(t, data.CanBeConstructed())
	require.Equal(t, centroid.ID(), data.Duplicates[byHand.ID()].ID())
}
