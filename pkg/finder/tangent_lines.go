package finder

import (
	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/theorems"
)

// TangentLinesProducer pairs a line with a circle and states tangency.
type TangentLinesProducer struct{}

func (TangentLinesProducer) TheoremType() theorems.TheoremType { return theorems.TangentLines }

func (TangentLinesProducer) Produce(cp *constructor.ContextualPicture, newOnly bool) ([]PotentialTheorem, error) {
	lines := cp.LineHandles(constructor.AllHandles)
	circles := cp.CircleHandles(constructor.AllHandles)
	var candidates []PotentialTheorem
	for _, line := range lines {
		for _, circle := range circles {
			if newOnly && !involvesNew(cp, line.HandleID(), circle.HandleID()) {
				continue
			}
			lineID, circleID := line.HandleID(), circle.HandleID()
			verify := func(picture *constructor.Picture) (bool, error) {
				l, err := lineValue(cp, picture, lineID)
				if err != nil {
					return false, err
				}
				c, err := circleValue(cp, picture, circleID)
				if err != nil {
					return false, err
				}
				return l.IsTangentTo(c), nil
			}
			candidates = append(candidates, pairStatements(cp, theorems.TangentLines,
				lineStatements(cp, line), circleStatements(cp, circle), newOnly, verify)...)
		}
	}
	return candidates, nil
}
