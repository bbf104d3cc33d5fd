package configurations

import "fmt"

// Configuration is an ordered list of symbolic objects: the loose objects
// first, then constructed objects in dependency order.
type Configuration struct {
	LooseObjects       []*LooseObject
	ConstructedObjects []*ConstructedObject
}

// NewConfiguration validates id uniqueness and that every constructed
// object's arguments appear earlier in the linearization.
func NewConfiguration(loose []*LooseObject, constructed []*ConstructedObject) (*Configuration, error) {
	seen := make(map[ObjectID]bool, len(loose)+len(constructed))
	for _, object := range loose {
		if object == nil {
			return nil, fmt.Errorf("nil loose object: %w", ErrInvalidInput)
		}
		if seen[object.ID()] {
			return nil, fmt.Errorf("duplicate object id #%d: %w", object.ID(), ErrInvalidInput)
		}
		seen[object.ID()] = true
	}
	for _, object := range constructed {
		if object == nil {
			return nil, fmt.Errorf("nil constructed object: %w", ErrInvalidInput)
		}
		if seen[object.ID()] {
			return nil, fmt.Errorf("duplicate object id #%d: %w", object.ID(), ErrInvalidInput)
		}
		for _, argument := range object.Arguments {
			if !seen[argument.ID()] {
				return nil, fmt.Errorf("object #%d uses #%d before its definition: %w",
					object.ID(), argument.ID(), ErrInvalidInput)
			}
		}
		seen[object.ID()] = true
	}
	return &Configuration{LooseObjects: loose, ConstructedObjects: constructed}, nil
}

// AllObjects returns the objects in linearization order.
func (c *Configuration) AllObjects() []ConfigurationObject {
	all := make([]ConfigurationObject, 0, len(c.LooseObjects)+len(c.ConstructedObjects))
	for _, object := range c.LooseObjects {
		all = append(all, object)
	}
	for _, object := range c.ConstructedObjects {
		all = append(all, object)
	}
	return all
}

// Extended returns a new configuration with extra constructed objects
// appended, re-running validation over the whole linearization.
func (c *Configuration) Extended(extra ...*ConstructedObject) (*Configuration, error) {
	constructed := make([]*ConstructedObject, 0, len(c.ConstructedObjects)+len(extra))
	constructed = append(constructed, c.ConstructedObjects...)
	constructed = append(constructed, extra...)
	return NewConfiguration(c.LooseObjects, constructed)
}
