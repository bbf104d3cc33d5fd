package finder

import (
	"github.com/wwn13/geogen/pkg/analytic"
	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/theorems"
)

// EqualLineSegmentsProducer pairs point-pair segments and states equal
// length.
type EqualLineSegmentsProducer struct{}

func (EqualLineSegmentsProducer) TheoremType() theorems.TheoremType {
	return theorems.EqualLineSegments
}

type segment struct {
	a, b constructor.HandleID
}

func (EqualLineSegmentsProducer) Produce(cp *constructor.ContextualPicture, newOnly bool) ([]PotentialTheorem, error) {
	points := cp.PointHandles(constructor.AllHandles)
	var segments []segment
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			segments = append(segments, segment{a: points[i].HandleID(), b: points[j].HandleID()})
		}
	}

	var candidates []PotentialTheorem
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			first, second := segments[i], segments[j]
			if newOnly && !involvesNewPoint(cp, first, second) {
				continue
			}
			verify := func(picture *constructor.Picture) (bool, error) {
				left, err := cp.SegmentLength(picture, first.a, first.b)
				if err != nil {
					return false, err
				}
				right, err := cp.SegmentLength(picture, second.a, second.b)
				if err != nil {
					return false, err
				}
				return analytic.RoughlyEqual(left, right), nil
			}
			candidates = append(candidates, PotentialTheorem{
				Theorem: theorems.NewTheorem(theorems.EqualLineSegments,
					theorems.NewSegmentObject(
						cp.Point(first.a).ConfigurationObject(),
						cp.Point(first.b).ConfigurationObject()),
					theorems.NewSegmentObject(
						cp.Point(second.a).ConfigurationObject(),
						cp.Point(second.b).ConfigurationObject())),
				Verify: verify,
			})
		}
	}
	return candidates, nil
}

func involvesNewPoint(cp *constructor.ContextualPicture, first, second segment) bool {
	for _, id := range []constructor.HandleID{first.a, first.b, second.a, second.b} {
		if cp.IsNewHandle(id) {
			return true
		}
	}
	return false
}
