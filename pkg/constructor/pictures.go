package constructor

import (
	"fmt"

	"github.com/wwn13/geogen/pkg/analytic"
	"github.com/wwn13/geogen/pkg/configurations"
)

// Pictures owns the N independent pictures of one configuration. All
// pictures realize the same ordered object list; only the random values of
// loose objects differ between them.
type Pictures struct {
	pictures []*Picture
	applied  []configurations.ConfigurationObject
}

func newPictures(count int) *Pictures {
	ps := &Pictures{pictures: make([]*Picture, count)}
	for i := range ps.pictures {
		ps.pictures[i] = NewPicture()
	}
	return ps
}

// All returns the pictures for iteration. Callers must not reorder them.
func (ps *Pictures) All() []*Picture { return ps.pictures }

func (ps *Pictures) Count() int { return len(ps.pictures) }

// AppliedObjects returns the symbolic objects realized in every picture, in
// application order.
func (ps *Pictures) AppliedObjects() []configurations.ConfigurationObject {
	return ps.applied
}

// PicturesFromAnalytic builds a manager from explicit analytic values, one
// map per picture, all realizing the same ordered object list. Used by tests
// and by drivers replaying fixed coordinates.
func PicturesFromAnalytic(objects []configurations.ConfigurationObject, values []map[configurations.ObjectID]analytic.AnalyticObject) (*Pictures, error) {
	ps := newPictures(len(values))
	for i, picture := range ps.pictures {
		for _, object := range objects {
			value, ok := values[i][object.ID()]
			if !ok {
				return nil, fmt.Errorf("picture %d has no value for object #%d: %w",
					i, object.ID(), ErrInternalInvariant)
			}
			if _, err := picture.Add(object, value); err != nil {
				return nil, err
			}
		}
	}
	ps.applied = append([]configurations.ConfigurationObject(nil), objects...)
	return ps, nil
}

// Clone deep-copies the manager, giving every picture a fresh identity.
func (ps *Pictures) Clone() *Pictures {
	clone := &Pictures{
		pictures: make([]*Picture, len(ps.pictures)),
		applied:  append([]configurations.ConfigurationObject(nil), ps.applied...),
	}
	for i, picture := range ps.pictures {
		clone.pictures[i] = picture.Clone()
	}
	return clone
}
