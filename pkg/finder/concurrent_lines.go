package finder

import (
	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/theorems"
)

// ConcurrentLinesProducer states that three lines meet in one point. Pencils
// that the index already records as such are suppressed: in new mode triples
// whose three lines all pass through one of this step's new points, and
// otherwise triples through any common registered point, would restate a
// known incidence rather than discover a concurrency. The two modes suppress
// different triples, so for this type a full pass is not the union of the
// incremental passes: a pencil through an old point is reported by the
// incremental pass but not by the full one.
type ConcurrentLinesProducer struct{}

func (ConcurrentLinesProducer) TheoremType() theorems.TheoremType { return theorems.ConcurrentLines }

func (ConcurrentLinesProducer) Produce(cp *constructor.ContextualPicture, newOnly bool) ([]PotentialTheorem, error) {
	lines := cp.LineHandles(constructor.AllHandles)
	var candidates []PotentialTheorem
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			for k := j + 1; k < len(lines); k++ {
				triple := []*constructor.LineHandle{lines[i], lines[j], lines[k]}
				if newOnly && !anyStrictlyNew(cp, triple) {
					continue
				}
				if suppressedPencil(cp, triple, newOnly) {
					continue
				}
				a, b, c := triple[0].HandleID(), triple[1].HandleID(), triple[2].HandleID()
				verify := func(picture *constructor.Picture) (bool, error) {
					return concurrentIn(cp, picture, a, b, c)
				}
				candidates = append(candidates, PotentialTheorem{
					Theorem: theorems.NewTheorem(theorems.ConcurrentLines,
						canonicalLineStatement(cp, triple[0]),
						canonicalLineStatement(cp, triple[1]),
						canonicalLineStatement(cp, triple[2])),
					Verify: verify,
				})
			}
		}
	}
	return candidates, nil
}

func anyStrictlyNew(cp *constructor.ContextualPicture, triple []*constructor.LineHandle) bool {
	for _, line := range triple {
		if cp.IsNewHandle(line.HandleID()) {
			return true
		}
	}
	return false
}

func suppressedPencil(cp *constructor.ContextualPicture, triple []*constructor.LineHandle, newOnly bool) bool {
	for _, point := range cp.PointHandles(constructor.AllHandles) {
		if newOnly && !cp.IsNewHandle(point.HandleID()) {
			continue
		}
		onAll := true
		for _, line := range triple {
			if !line.ContainsPoint(point.HandleID()) {
				onAll = false
				break
			}
		}
		if onAll {
			return true
		}
	}
	return false
}

func concurrentIn(cp *constructor.ContextualPicture, picture *constructor.Picture, a, b, c constructor.HandleID) (bool, error) {
	first, err := lineValue(cp, picture, a)
	if err != nil {
		return false, err
	}
	second, err := lineValue(cp, picture, b)
	if err != nil {
		return false, err
	}
	third, err := lineValue(cp, picture, c)
	if err != nil {
		return false, err
	}
	crossing, err := first.IntersectionWith(second)
	if err != nil {
		// Parallel lines never concur.
		return false, nil
	}
	return third.Contains(crossing), nil
}
