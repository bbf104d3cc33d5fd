package finder

import (
	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/theorems"
)

// IncidenceProducer reports membership of a point on a named line or circle.
// This is a report over the index, not a numeric test: implicit objects are
// skipped, their incidences are definitional.
type IncidenceProducer struct{}

func (IncidenceProducer) TheoremType() theorems.TheoremType { return theorems.Incidence }

func (IncidenceProducer) Produce(cp *constructor.ContextualPicture, newOnly bool) ([]PotentialTheorem, error) {
	var candidates []PotentialTheorem
	for _, line := range cp.LineHandles(constructor.AllHandles) {
		object := line.ConfigurationObject()
		if object == nil {
			continue
		}
		for _, member := range line.Points() {
			statement := []theorems.TheoremObject{
				pointObject(cp, member),
				theorems.NewNamedLineObject(object),
			}
			if newOnly && !referencesNewObject(cp, statement...) {
				continue
			}
			candidates = append(candidates, PotentialTheorem{
				Theorem: theorems.NewTheorem(theorems.Incidence, statement...),
			})
		}
	}
	for _, circle := range cp.CircleHandles(constructor.AllHandles) {
		object := circle.ConfigurationObject()
		if object == nil {
			continue
		}
		for _, member := range circle.Points() {
			statement := []theorems.TheoremObject{
				pointObject(cp, member),
				theorems.NewNamedCircleObject(object),
			}
			if newOnly && !referencesNewObject(cp, statement...) {
				continue
			}
			candidates = append(candidates, PotentialTheorem{
				Theorem: theorems.NewTheorem(theorems.Incidence, statement...),
			})
		}
	}
	return candidates, nil
}
