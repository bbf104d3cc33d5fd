package finder

import (
	"log/slog"

	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/theorems"
)

// PotentialTheorem is a candidate produced during discovery. Verify
// re-evaluates the stated relation analytically in one picture; a nil Verify
// marks a candidate that holds by the contextual picture's bookkeeping
// (memberships are already closed across all pictures).
type PotentialTheorem struct {
	Theorem theorems.Theorem
	Verify  func(picture *constructor.Picture) (bool, error)
}

// Producer enumerates candidates of one theorem type from a contextual
// picture. With newOnly set it restricts to candidates involving this
// step's new handles and statements referencing its new objects.
type Producer interface {
	TheoremType() theorems.TheoremType
	Produce(cp *constructor.ContextualPicture, newOnly bool) ([]PotentialTheorem, error)
}

// TheoremFinder runs every producer and accepts a candidate only if its
// relation holds in every picture.
type TheoremFinder struct {
	producers []Producer
	logger    *slog.Logger
}

func NewTheoremFinder(logger *slog.Logger) *TheoremFinder {
	if logger == nil {
		logger = slog.Default()
	}
	return &TheoremFinder{
		producers: []Producer{
			ParallelLinesProducer{},
			PerpendicularLinesProducer{},
			ConcurrentLinesProducer{},
			EqualLineSegmentsProducer{},
			TangentCirclesProducer{},
			TangentLinesProducer{},
			CollinearPointsProducer{},
			ConcyclicPointsProducer{},
			IncidenceProducer{},
		},
		logger: logger,
	}
}

// FindAll discovers every theorem of the configuration.
func (f *TheoremFinder) FindAll(cp *constructor.ContextualPicture) (*theorems.TheoremMap, error) {
	return f.run(cp, false, nil)
}

// FindNew discovers theorems involving this step's new objects, skipping
// already-known ones.
func (f *TheoremFinder) FindNew(cp *constructor.ContextualPicture, known *theorems.TheoremMap) (*theorems.TheoremMap, error) {
	return f.run(cp, true, known)
}

func (f *TheoremFinder) run(cp *constructor.ContextualPicture, newOnly bool, known *theorems.TheoremMap) (*theorems.TheoremMap, error) {
	result := theorems.NewTheoremMap()
	for _, producer := range f.producers {
		candidates, err := producer.Produce(cp, newOnly)
		if err != nil {
			return nil, err
		}
		accepted := 0
		for _, candidate := range candidates {
			if known != nil && known.Contains(candidate.Theorem) {
				continue
			}
			holds, err := f.verify(cp, candidate)
			if err != nil {
				return nil, err
			}
			if holds && result.Add(candidate.Theorem) {
				accepted++
			}
		}
		f.logger.Debug("producer finished",
			slog.String("type", string(producer.TheoremType())),
			slog.Int("candidates", len(candidates)),
			slog.Int("accepted", accepted))
	}
	return result, nil
}

func (f *TheoremFinder) verify(cp *constructor.ContextualPicture, candidate PotentialTheorem) (bool, error) {
	if candidate.Verify == nil {
		return true, nil
	}
	for _, picture := range cp.Pictures().All() {
		holds, err := candidate.Verify(picture)
		if err != nil {
			return false, err
		}
		if !holds {
			return false, nil
		}
	}
	return true, nil
}
