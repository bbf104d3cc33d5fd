package finder

import (
	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/theorems"
)

// ConcyclicPointsProducer states concyclicity of point quadruples on a
// common circle, by bookkeeping.
type ConcyclicPointsProducer struct{}

func (ConcyclicPointsProducer) TheoremType() theorems.TheoremType { return theorems.ConcyclicPoints }

func (ConcyclicPointsProducer) Produce(cp *constructor.ContextualPicture, newOnly bool) ([]PotentialTheorem, error) {
	var candidates []PotentialTheorem
	for _, circle := range cp.CircleHandles(constructor.AllHandles) {
		members := circle.Points()
		if len(members) < 4 {
			continue
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				for k := j + 1; k < len(members); k++ {
					for l := k + 1; l < len(members); l++ {
						statement := []theorems.TheoremObject{
							pointObject(cp, members[i]),
							pointObject(cp, members[j]),
							pointObject(cp, members[k]),
							pointObject(cp, members[l]),
						}
						if newOnly && !referencesNewObject(cp, statement...) {
							continue
						}
						candidates = append(candidates, PotentialTheorem{
							Theorem: theorems.NewTheorem(theorems.ConcyclicPoints, statement...),
						})
					}
				}
			}
		}
	}
	return candidates, nil
}
