package analyzer

import (
	"log/slog"
	"sort"

	"github.com/wwn13/geogen/pkg/configurations"
	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/finder"
	"github.com/wwn13/geogen/pkg/settings"
	"github.com/wwn13/geogen/pkg/theorems"
)

// Result is the outcome of one incremental analysis step.
type Result struct {
	// Theorems holds the newly discovered theorems, or the SameObjects
	// statements when the extension duplicated existing objects.
	Theorems *theorems.TheoremMap
	// UnambiguouslyConstructible is false when the extension was
	// inconstructible or duplicated an existing object. Generators prune on
	// this flag.
	UnambiguouslyConstructible bool
}

// GradualAnalyzer is the top-level contract of the reasoning core: given an
// already-valid configuration and newly appended constructed objects, it
// returns either the new theorems or the duplicate-object report.
type GradualAnalyzer struct {
	constructor *constructor.GeometryConstructor
	finder      *finder.TheoremFinder
	logger      *slog.Logger
}

func NewGradualAnalyzer(s settings.Settings, logger *slog.Logger) *GradualAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &GradualAnalyzer{
		constructor: constructor.NewGeometryConstructor(s, logger),
		finder:      finder.NewTheoremFinder(logger),
		logger:      logger,
	}
}

// Analyze realizes the old configuration, appends the new objects, and runs
// theorem discovery over the result. Cross-picture inconsistency surfaces as
// constructor.ErrInconsistentPictures; the caller discards the
// configuration.
func (a *GradualAnalyzer) Analyze(old *configurations.Configuration, newObjects []*configurations.ConstructedObject) (*Result, error) {
	oldPictures, oldData, err := a.constructor.ConstructConfiguration(old)
	if err != nil {
		return nil, err
	}
	if !oldData.CanBeConstructed() {
		return &Result{Theorems: theorems.NewTheoremMap()}, nil
	}

	pictures, data, err := a.constructor.ConstructByCloning(oldPictures, newObjects...)
	if err != nil {
		return nil, err
	}
	if !data.CanBeConstructed() {
		a.logger.Debug("extension is inconstructible",
			slog.Int("object", data.InconstructibleObject.ID()))
		return &Result{Theorems: theorems.NewTheoremMap()}, nil
	}
	if len(data.Duplicates) > 0 {
		return &Result{Theorems: sameObjectTheorems(newObjects, data)}, nil
	}

	oldContext, err := constructor.NewContextualPicture(oldPictures, a.logger)
	if err != nil {
		return nil, err
	}
	known, err := a.finder.FindAll(oldContext)
	if err != nil {
		return nil, err
	}

	added := make([]configurations.ConfigurationObject, len(newObjects))
	for i, object := range newObjects {
		added[i] = object
	}
	context, err := constructor.NewContextualPictureWithNewObjects(pictures, added, a.logger)
	if err != nil {
		return nil, err
	}
	found, err := a.finder.FindNew(context, known)
	if err != nil {
		return nil, err
	}
	return &Result{Theorems: found, UnambiguouslyConstructible: true}, nil
}

// sameObjectTheorems emits one SameObjects statement per duplicate, in id
// order.
func sameObjectTheorems(newObjects []*configurations.ConstructedObject, data constructor.ConstructionData) *theorems.TheoremMap {
	byID := make(map[configurations.ObjectID]*configurations.ConstructedObject, len(newObjects))
	ids := make([]configurations.ObjectID, 0, len(data.Duplicates))
	for id := range data.Duplicates {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, object := range newObjects {
		byID[object.ID()] = object
	}
	result := theorems.NewTheoremMap()
	for _, id := range ids {
		duplicated, ok := byID[id]
		if !ok {
			continue
		}
		result.Add(theorems.NewTheorem(theorems.SameObjects,
			theorems.NewNamedObject(duplicated),
			theorems.NewNamedObject(data.Duplicates[id])))
	}
	return result
}
