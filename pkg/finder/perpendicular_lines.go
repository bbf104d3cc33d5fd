package finder

import (
	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/theorems"
)

// PerpendicularLinesProducer pairs line handles and states perpendicularity.
type PerpendicularLinesProducer struct{}

func (PerpendicularLinesProducer) TheoremType() theorems.TheoremType {
	return theorems.PerpendicularLines
}

func (PerpendicularLinesProducer) Produce(cp *constructor.ContextualPicture, newOnly bool) ([]PotentialTheorem, error) {
	lines := cp.LineHandles(constructor.AllHandles)
	var candidates []PotentialTheorem
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			first, second := lines[i], lines[j]
			if newOnly && !involvesNew(cp, first.HandleID(), second.HandleID()) {
				continue
			}
			firstID, secondID := first.HandleID(), second.HandleID()
			verify := func(picture *constructor.Picture) (bool, error) {
				a, err := lineValue(cp, picture, firstID)
				if err != nil {
					return false, err
				}
				b, err := lineValue(cp, picture, secondID)
				if err != nil {
					return false, err
				}
				return a.IsPerpendicularTo(b), nil
			}
			candidates = append(candidates, pairStatements(cp, theorems.PerpendicularLines,
				lineStatements(cp, first), lineStatements(cp, second), newOnly, verify)...)
		}
	}
	return candidates, nil
}
