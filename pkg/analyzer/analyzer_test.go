package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wwn13/geogen/pkg/configurations"
	"github.com/wwn13/geogen/pkg/settings"
	"github.com/wwn13/geogen/pkg/theorems"
)

func testSettings() settings.Settings {
	return settings.Settings{NumberOfPictures: 5, ReseedBudget: 50, RandomSeed: 13}
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

func TestAnalyzeReportsDuplicate(t *testing.T) {
	configuration, loose := freeTriangle(t)
	first, err := configurations.NewConstructedObject(4, configurations.Midpoint, loose[0], loose[1])
	require.NoError(t, err)
	configuration, err = configuration.Extended(first)
	require.NoError(t, err)

	// The same midpoint with swapped arguments is analytically identical.
	duplicate, err := configurations.NewConstructedObject(5, configurations.Midpoint, loose[1], loose[0])
	require.NoError(t, err)

	analyzer := NewGradualAnalyzer(testSettings(), nil)
	result, err := analyzer.Analyze(configuration, []*configurations.ConstructedObject{duplicate})
	require.NoError(t, err)
	require.False(t, result.UnambiguouslyConstructible)
	require.Equal(t, 1, result.Theorems.Len())
	require.True(t, result.Theorems.Contains(theorems.NewTheorem(theorems.SameObjects,
		theorems.NewNamedObject(duplicate),
		theorems.NewNamedObject(first))))
}

func TestAnalyzeReportsInconstructible(t *testing.T) {
	configuration, loose := freeTriangle(t)
	degenerate, err := configurations.NewConstructedObject(4,
		configurations.IntersectionOfLinesFromPoints, loose[0], loose[1], loose[1], loose[0])
	require.NoError(t, err)

	analyzer := NewGradualAnalyzer(testSettings(), nil)
	result, err := analyzer.Analyze(configuration, []*configurations.ConstructedObject{degenerate})
	require.NoError(t, err)
	require.False(t, result.UnambiguouslyConstructible)
	require.Equal(t, 0, result.Theorems.Len())
}

func TestAnalyzeFindsNewTheorems(t *testing.T) {
	configuration, loose := freeTriangle(t)
	midpoint, err := configurations.NewConstructedObject(4, configurations.Midpoint, loose[0], loose[1])
	require.NoError(t, err)
	configuration, err = configuration.Extended(midpoint)
	require.NoError(t, err)

	// The perpendicular bisector of side 1-2 passes through its midpoint
	// and stands on the side.
	axis, err := configurations.NewConstructedObject(5,
		configurations.PerpendicularBisector, loose[0], loose[1])
	require.NoError(t, err)

	analyzer := NewGradualAnalyzer(testSettings(), nil)
	result, err := analyzer.Analyze(configuration, []*configurations.ConstructedObject{axis})
	require.NoError(t, err)
	require.True(t, result.UnambiguouslyConstructible)

	require.True(t, result.Theorems.Contains(theorems.NewTheorem(theorems.Incidence,
		theorems.NewPointObject(midpoint),
		theorems.NewNamedLineObject(axis))))
	require.True(t, result.Theorems.Contains(theorems.NewTheorem(theorems.PerpendicularLines,
		theorems.NewNamedLineObject(axis),
		theorems.NewLineObjectFromPoints(loose[0], loose[1]))))
	require.Empty(t, result.Theorems.OfType(theorems.SameObjects))
}
