package configurations

import "fmt"

type ObjectID = int

// ObjectKind is the closed set of geometric kinds a symbolic object can have.
type ObjectKind string

const (
	Point  ObjectKind = "point"
	Line   ObjectKind = "line"
	Circle ObjectKind = "circle"
)

// ConfigurationObject is a symbolic geometric object identified by a stable
// integer id. It is either loose (its analytic value is randomized per
// picture) or constructed (its value follows deterministically from its
// arguments).
type ConfigurationObject interface {
	fmt.Stringer

	ID() ObjectID
	Kind() ObjectKind
}

// LooseObject is a free object with no parent construction.
type LooseObject struct {
	ObjectID   ObjectID
	ObjectKind ObjectKind
}

func NewLooseObject(id ObjectID, kind ObjectKind) *LooseObject {
	return &LooseObject{ObjectID: id, ObjectKind: kind}
}

func (o *LooseObject) ID() ObjectID     { return o.ObjectID }
func (o *LooseObject) Kind() ObjectKind { return o.ObjectKind }

func (o *LooseObject) String() string {
	return fmt.Sprintf("loose %s #%d", o.ObjectKind, o.ObjectID)
}

// ConstructedObject is an object produced by applying a construction to
// earlier objects. Arguments is the flattened ordered argument list matching
// the construction's signature (set parameters contribute Count consecutive
// arguments whose order inside the set is irrelevant).
type ConstructedObject struct {
	ObjectID     ObjectID
	Construction *Construction
	Arguments    []ConfigurationObject
}

// NewConstructedObject validates the arguments against the construction's
// signature and returns the object, or ErrInvalidInput.
func NewConstructedObject(id ObjectID, construction *Construction, arguments ...ConfigurationObject) (*ConstructedObject, error) {
	if construction == nil {
		return nil, fmt.Errorf("object #%d has no construction: %w", id, ErrInvalidInput)
	}
	if err := construction.checkArguments(arguments); err != nil {
		return nil, fmt.Errorf("object #%d (%s): %w", id, construction.Name, err)
	}
	return &ConstructedObject{
		ObjectID:     id,
		Construction: construction,
		Arguments:    arguments,
	}, nil
}

func (o *ConstructedObject) ID() ObjectID     { return o.ObjectID }
func (o *ConstructedObject) Kind() ObjectKind { return o.Construction.OutputKind }

func (o *ConstructedObject) String() string {
	return fmt.Sprintf("%s #%d", o.Construction.Name, o.ObjectID)
}
