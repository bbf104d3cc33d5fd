package constructor

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/wwn13/geogen/pkg/analytic"
	"github.com/wwn13/geogen/pkg/configurations"
	"github.com/wwn13/geogen/pkg/settings"
)

// ConstructionData is the outcome of applying constructed objects to a set
// of pictures.
type ConstructionData struct {
	// InconstructibleObject is the first object no picture could realize,
	// nil when every object was realized.
	InconstructibleObject configurations.ConfigurationObject
	// Duplicates maps the id of a newly constructed object to the earlier
	// object sharing its analytic value in every picture.
	Duplicates map[configurations.ObjectID]configurations.ConfigurationObject
}

// CanBeConstructed reports whether every object was realized in every
// picture.
func (d ConstructionData) CanBeConstructed() bool { return d.InconstructibleObject == nil }

// GeometryConstructor realizes symbolic configurations as sets of random
// pictures and enforces the cross-picture consistency discipline: every
// picture must agree on constructibility and on duplicates, otherwise the
// configuration is rejected with ErrInconsistentPictures.
type GeometryConstructor struct {
	settings settings.Settings
	rnd      *rand.Rand
	logger   *slog.Logger
}

func NewGeometryConstructor(s settings.Settings, logger *slog.Logger) *GeometryConstructor {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeometryConstructor{
		settings: s,
		rnd:      rand.New(rand.NewSource(s.Seed())),
		logger:   logger,
	}
}

// ConstructConfiguration builds the configured number of pictures from
// scratch. A random instance in which some picture fails a construction the
// others succeed at is discarded and reseeded, up to the reseed budget.
func (g *GeometryConstructor) ConstructConfiguration(configuration *configurations.Configuration) (*Pictures, ConstructionData, error) {
	var lastErr error
	for attempt := 0; attempt < g.settings.ReseedBudget; attempt++ {
		pictures, data, err := g.constructInstance(configuration)
		if err == nil {
			return pictures, data, nil
		}
		lastErr = err
		g.logger.Debug("reseeding configuration instance",
			slog.Int("attempt", attempt+1), slog.String("reason", err.Error()))
	}
	return nil, ConstructionData{}, fmt.Errorf("reseed budget of %d exhausted: %w (last: %w)",
		g.settings.ReseedBudget, ErrInconstructiblePictures, lastErr)
}

func (g *GeometryConstructor) constructInstance(configuration *configurations.Configuration) (*Pictures, ConstructionData, error) {
	pictures := newPictures(g.settings.NumberOfPictures)
	for _, picture := range pictures.All() {
		layout := newLooseLayout(g.rnd)
		for _, object := range configuration.LooseObjects {
			if _, err := picture.Add(object, layout.Realize(object)); err != nil {
				return nil, ConstructionData{}, err
			}
		}
	}
	pictures.applied = append(pictures.applied, looseAsObjects(configuration.LooseObjects)...)

	data := ConstructionData{Duplicates: map[configurations.ObjectID]configurations.ConfigurationObject{}}
	for _, object := range configuration.ConstructedObjects {
		stepData, err := g.ConstructObject(pictures, object, true)
		if err != nil {
			return nil, ConstructionData{}, err
		}
		if !stepData.CanBeConstructed() {
			data.InconstructibleObject = object
			return pictures, data, nil
		}
		for id, existing := range stepData.Duplicates {
			data.Duplicates[id] = existing
		}
	}
	return pictures, data, nil
}

// ConstructByCloning extends an already-constructed set of pictures by the
// given objects, cloning first so the old pictures stay usable.
func (g *GeometryConstructor) ConstructByCloning(old *Pictures, extension ...*configurations.ConstructedObject) (*Pictures, ConstructionData, error) {
	pictures := old.Clone()
	data := ConstructionData{Duplicates: map[configurations.ObjectID]configurations.ConfigurationObject{}}
	for _, object := range extension {
		stepData, err := g.ConstructObject(pictures, object, true)
		if err != nil {
			return nil, ConstructionData{}, err
		}
		if !stepData.CanBeConstructed() {
			data.InconstructibleObject = object
			return pictures, data, nil
		}
		for id, existing := range stepData.Duplicates {
			data.Duplicates[id] = existing
		}
	}
	return pictures, data, nil
}

// ConstructObject realizes one constructed object in every picture. All
// pictures must agree: mixed constructibility, or a duplicate found in some
// pictures but not all (or against different existing objects), is an
// inconsistency. With addToPictures false the pictures are left untouched.
func (g *GeometryConstructor) ConstructObject(pictures *Pictures, object *configurations.ConstructedObject, addToPictures bool) (ConstructionData, error) {
	values, constructible, err := g.evaluate(pictures, object)
	if err != nil {
		return ConstructionData{}, err
	}
	data := ConstructionData{Duplicates: map[configurations.ObjectID]configurations.ConfigurationObject{}}
	if !constructible {
		data.InconstructibleObject = object
		return data, nil
	}
	if !addToPictures {
		return data, nil
	}

	var canonical configurations.ConfigurationObject
	for i, picture := range pictures.All() {
		equalTo, err := picture.Add(object, values[i])
		if err != nil {
			return ConstructionData{}, err
		}
		if i == 0 {
			canonical = equalTo
			continue
		}
		if !sameObject(canonical, equalTo) {
			return ConstructionData{}, fmt.Errorf(
				"pictures disagree on a duplicate of object #%d: %w", object.ID(), ErrInconsistentPictures)
		}
	}
	pictures.applied = append(pictures.applied, object)
	if canonical != nil {
		g.logger.Debug("duplicate construction detected",
			slog.Int("object", object.ID()), slog.Int("existing", canonical.ID()))
		data.Duplicates[object.ID()] = canonical
	}
	return data, nil
}

// Probe evaluates an object in every picture without mutating them. The
// returned map is keyed by picture id; it is nil when the object is
// consistently inconstructible.
func (g *GeometryConstructor) Probe(pictures *Pictures, object *configurations.ConstructedObject) (map[uuid.UUID]analytic.AnalyticObject, error) {
	values, constructible, err := g.evaluate(pictures, object)
	if err != nil {
		return nil, err
	}
	if !constructible {
		return nil, nil
	}
	result := make(map[uuid.UUID]analytic.AnalyticObject, pictures.Count())
	for i, picture := range pictures.All() {
		result[picture.ID()] = values[i]
	}
	return result, nil
}

// evaluate runs the object's construction in every picture and enforces
// agreement on constructibility. The boolean is false when every picture
// reported a degenerate input.
func (g *GeometryConstructor) evaluate(pictures *Pictures, object *configurations.ConstructedObject) ([]analytic.AnalyticObject, bool, error) {
	values := make([]analytic.AnalyticObject, pictures.Count())
	failures := 0
	for i, picture := range pictures.All() {
		arguments := make([]analytic.AnalyticObject, len(object.Arguments))
		for j, argument := range object.Arguments {
			value, ok := picture.AnalyticOf(argument)
			if !ok {
				return nil, false, fmt.Errorf("argument #%d of object #%d is not realized: %w",
					argument.ID(), object.ID(), ErrInternalInvariant)
			}
			arguments[j] = value
		}
		value, err := Apply(object.Construction, arguments)
		switch {
		case err == nil:
			values[i] = value
		case errors.Is(err, analytic.ErrInconstructible):
			failures++
		default:
			return nil, false, err
		}
	}
	if failures == pictures.Count() {
		return nil, false, nil
	}
	if failures > 0 {
		return nil, false, fmt.Errorf("object #%d constructible in %d of %d pictures: %w",
			object.ID(), pictures.Count()-failures, pictures.Count(), ErrInconsistentPictures)
	}
	return values, true, nil
}

func sameObject(a, b configurations.ConfigurationObject) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

func looseAsObjects(loose []*configurations.LooseObject) []configurations.ConfigurationObject {
	objects := make([]configurations.ConfigurationObject, len(loose))
	for i, object := range loose {
		objects[i] = object
	}
	return objects
}
