package constructor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wwn13/geogen/pkg/analytic"
	"github.com/wwn13/geogen/pkg/configurations"
)

// Picture is one numerical realization of a configuration: a bidirectional
// mapping between symbolic objects and analytic values. The analytic side
// additionally records every symbolic object sharing a value, so duplicate
// constructions surface instead of silently replacing the canonical object.
//
// Analytic lookup is a tolerance scan over canonical values. Pictures stay
// small (tens of objects), so the linear scan is the near-duplicate path the
// equality semantics require anyway.
type Picture struct {
	id      uuid.UUID
	order   []configurations.ConfigurationObject
	values  map[configurations.ObjectID]analytic.AnalyticObject
	entries []*pictureEntry
}

type pictureEntry struct {
	value      analytic.AnalyticObject
	canonical  configurations.ConfigurationObject
	duplicates []configurations.ConfigurationObject
}

func NewPicture() *Picture {
	return &Picture{
		id:     uuid.New(),
		values: map[configurations.ObjectID]analytic.AnalyticObject{},
	}
}

// ID is the picture's identity, stable across its lifetime and unique per
// clone. Used to key per-picture caches.
func (p *Picture) ID() uuid.UUID { return p.id }

// Add registers the analytic value of a symbolic object. If an equal value
// is already present, the object is recorded as a duplicate and the existing
// canonical object is returned; otherwise Add returns nil. Re-adding the
// same object is an internal error.
func (p *Picture) Add(object configurations.ConfigurationObject, value analytic.AnalyticObject) (configurations.ConfigurationObject, error) {
	if _, ok := p.values[object.ID()]; ok {
		return nil, fmt.Errorf("object #%d added twice: %w", object.ID(), ErrInternalInvariant)
	}
	p.values[object.ID()] = value
	p.order = append(p.order, object)
	for _, entry := range p.entries {
		if entry.value.IsEqualTo(value) {
			entry.duplicates = append(entry.duplicates, object)
			return entry.canonical, nil
		}
	}
	p.entries = append(p.entries, &pictureEntry{value: value, canonical: object})
	return nil, nil
}

// AnalyticOf returns the analytic value of a symbolic object.
func (p *Picture) AnalyticOf(object configurations.ConfigurationObject) (analytic.AnalyticObject, bool) {
	value, ok := p.values[object.ID()]
	return value, ok
}

// ObjectByValue returns the canonical symbolic object realized by an
// analytic value equal to the given one.
func (p *Picture) ObjectByValue(value analytic.AnalyticObject) (configurations.ConfigurationObject, bool) {
	for _, entry := range p.entries {
		if entry.value.IsEqualTo(value) {
			return entry.canonical, true
		}
	}
	return nil, false
}

// Objects returns the symbolic objects in insertion order.
func (p *Picture) Objects() []configurations.ConfigurationObject {
	return p.order
}

// Clone returns a deep copy with a fresh identity, used for incremental
// extension of an already-constructed configuration.
func (p *Picture) Clone() *Picture {
	clone := NewPicture()
	clone.order = append([]configurations.ConfigurationObject(nil), p.order...)
	for id, value := range p.values {
		clone.values[id] = value
	}
	clone.entries = make([]*pictureEntry, len(p.entries))
	for i, entry := range p.entries {
		clone.entries[i] = &pictureEntry{
			value:      entry.value,
			canonical:  entry.canonical,
			duplicates: append([]configurations.ConfigurationObject(nil), entry.duplicates...),
		}
	}
	return clone
}
