package finder

import (
	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/theorems"
)

// CollinearPointsProducer states collinearity of point triples on a common
// line. Membership is already closed across pictures, so candidates carry no
// verify predicate.
type CollinearPointsProducer struct{}

func (CollinearPointsProducer) TheoremType() theorems.TheoremType { return theorems.CollinearPoints }

func (CollinearPointsProducer) Produce(cp *constructor.ContextualPicture, newOnly bool) ([]PotentialTheorem, error) {
	var candidates []PotentialTheorem
	for _, line := range cp.LineHandles(constructor.AllHandles) {
		members := line.Points()
		if len(members) < 3 {
			continue
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				for k := j + 1; k < len(members); k++ {
					statement := []theorems.TheoremObject{
						pointObject(cp, members[i]),
						pointObject(cp, members[j]),
						pointObject(cp, members[k]),
					}
					if newOnly && !referencesNewObject(cp, statement...) {
						continue
					}
					candidates = append(candidates, PotentialTheorem{
						Theorem: theorems.NewTheorem(theorems.CollinearPoints, statement...),
					})
				}
			}
		}
	}
	return candidates, nil
}
