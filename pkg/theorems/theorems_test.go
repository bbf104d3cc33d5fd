package theorems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wwn13/geogen/pkg/configurations"
)

func points(ids ...int) []configurations.ConfigurationObject {
	objects := make([]configurations.ConfigurationObject, len(ids))
	for i, id := range ids {
		objects[i] = configurations.NewLooseObject(id, configurations.Point)
	}
	return objects
}

func TestTheoremSignatureIgnoresObjectOrder(t *testing.T) {
	ps := points(1, 2, 3, 4)
	first := NewTheorem(ParallelLines,
		NewLineObjectFromPoints(ps[0], ps[1]),
		NewLineObjectFromPoints(ps[2], ps[3]))
	second := NewTheorem(ParallelLines,
		NewLineObjectFromPoints(ps[3], ps[2]),
		NewLineObjectFromPoints(ps[1], ps[0]))
	require.Equal(t, first.Signature(), second.Signature())

	different := NewTheorem(PerpendicularLines, first.Objects...)
	require.NotEqual(t, first.Signature(), different.Signature())
}

func TestNamedAndImplicitLinesDiffer(t *testing.T) {
	ps := points(1, 2)
	line := configurations.NewLooseObject(3, configurations.Line)
	named := NewTheorem(Incidence, NewPointObject(ps[0]), NewNamedLineObject(line))
	implicit := NewTheorem(Incidence, NewPointObject(ps[0]), NewLineObjectFromPoints(ps[0], ps[1]))
	require.NotEqual(t, named.Signature(), implicit.Signature())
}

func TestSegmentSignatureIsUnordered(t *testing.T) {
	ps := points(1, 2, 3, 4)
	first := NewTheorem(EqualLineSegments,
		NewSegmentObject(ps[0], ps[1]), NewSegmentObject(ps[2], ps[3]))
	second := NewTheorem(EqualLineSegments,
		NewSegmentObject(ps[3], ps[2]), NewSegmentObject(ps[1], ps[0]))
	require.Equal(t, first.Signature(), second.Signature())
}

func TestTheoremReferences(t *testing.T) {
	ps := points(5, 2, 9)
	theorem := NewTheorem(CollinearPoints,
		NewPointObject(ps[0]), NewPointObject(ps[1]), NewPointObject(ps[2]))
	require.Equal(t, []int{2, 5, 9}, theorem.References())
}

func TestTheoremMapDeduplicatesAndOrders(t *testing.T) {
	ps := points(1, 2, 3, 4)
	parallel := NewTheorem(ParallelLines,
		NewLineObjectFromPoints(ps[0], ps[1]),
		NewLineObjectFromPoints(ps[2], ps[3]))
	collinear := NewTheorem(CollinearPoints,
		NewPointObject(ps[0]), NewPointObject(ps[1]), NewPointObject(ps[2]))

	m := NewTheoremMap()
	require.True(t, m.Add(parallel))
	require.False(t, m.Add(parallel))
	require.True(t, m.Add(collinear))
	require.Equal(t, 2, m.Len())
	require.True(t, m.Contains(parallel))

	ordered := m.AllOrdered()
	require.Len(t, ordered, 2)
	require.Equal(t, CollinearPoints, ordered[0].Type)
	require.Equal(t, ParallelLines, ordered[1].Type)

	other := NewTheoremMap(parallel)
	require.Equal(t, 0, m.Merge(other))
	require.Len(t, m.OfType(ParallelLines), 1)
}
