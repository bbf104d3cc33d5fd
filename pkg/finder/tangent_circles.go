package finder

import (
	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/theorems"
)

// TangentCirclesProducer pairs circle handles and states tangency.
type TangentCirclesProducer struct{}

func (TangentCirclesProducer) TheoremType() theorems.TheoremType { return theorems.TangentCircles }

func (TangentCirclesProducer) Produce(cp *constructor.ContextualPicture, newOnly bool) ([]PotentialTheorem, error) {
	circles := cp.CircleHandles(constructor.AllHandles)
	var candidates []PotentialTheorem
	for i := 0; i < len(circles); i++ {
		for j := i + 1; j < len(circles); j++ {
			first, second := circles[i], circles[j]
			if newOnly && !involvesNew(cp, first.HandleID(), second.HandleID()) {
				continue
			}
			firstID, secondID := first.HandleID(), second.HandleID()
			verify := func(picture *constructor.Picture) (bool, error) {
				a, err := circleValue(cp, picture, firstID)
				if err != nil {
					return false, err
				}
				b, err := circleValue(cp, picture, secondID)
				if err != nil {
					return false, err
				}
				return a.IsTangentTo(b), nil
			}
			candidates = append(candidates, pairStatements(cp, theorems.TangentCircles,
				circleStatements(cp, first), circleStatements(cp, second), newOnly, verify)...)
		}
	}
	return candidates, nil
}
