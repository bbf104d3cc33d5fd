package configurations

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid configuration input")

// Parameter describes one slot of a construction's signature: a single object
// of a kind (Count == 1) or an unordered set of Count objects of that kind.
type Parameter struct {
	Kind  ObjectKind
	Count int
}

// Construction is a named operator over configuration objects. Predefined
// constructions are evaluated analytically by the constructor layer, keyed by
// Name; composed constructions additionally carry a sequence of internal
// steps over their parameter slots.
type Construction struct {
	Name       string
	Signature  []Parameter
	OutputKind ObjectKind

	// Steps is non-empty for composed constructions. Step arguments index
	// flattened input slots first, then the outputs of earlier steps.
	Steps []ConstructionStep
}

// ConstructionStep is one internal primitive application of a composed
// construction.
type ConstructionStep struct {
	Construction *Construction
	Arguments    []int
}

// Arity returns the flattened argument count of the signature.
func (c *Construction) Arity() int {
	total := 0
	for _, parameter := range c.Signature {
		total += parameter.Count
	}
	return total
}

// IsComposed reports whether the construction expands to internal steps.
func (c *Construction) IsComposed() bool { return len(c.Steps) > 0 }

func (c *Construction) checkArguments(arguments []ConfigurationObject) error {
	if len(arguments) != c.Arity() {
		return fmt.Errorf("want %d arguments, got %d: %w", c.Arity(), len(arguments), ErrInvalidInput)
	}
	next := 0
	for _, parameter := range c.Signature {
		group := arguments[next : next+parameter.Count]
		for _, argument := range group {
			if argument == nil {
				return fmt.Errorf("nil argument at position %d: %w", next, ErrInvalidInput)
			}
			if argument.Kind() != parameter.Kind {
				return fmt.Errorf("argument #%d is a %s, want %s: %w",
					argument.ID(), argument.Kind(), parameter.Kind, ErrInvalidInput)
			}
		}
		// Objects inside one set parameter must be pairwise distinct.
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if group[i].ID() == group[j].ID() {
					return fmt.Errorf("repeated argument #%d in a set parameter: %w",
						group[i].ID(), ErrInvalidInput)
				}
			}
		}
		next += parameter.Count
	}
	return nil
}

// Predefined constructions. The constructor layer dispatches on Name.
var (
	// Midpoint({A, B}) -> point.
	Midpoint = &Construction{
		Name:       "Midpoint",
		Signature:  []Parameter{{Kind: Point, Count: 2}},
		OutputKind: Point,
	}

	// LineFromPoints({A, B}) -> line through both points.
	LineFromPoints = &Construction{
		Name:       "LineFromPoints",
		Signature:  []Parameter{{Kind: Point, Count: 2}},
		OutputKind: Line,
	}

	// Circumcircle({A, B, C}) -> circle through three points.
	Circumcircle = &Construction{
		Name:       "Circumcircle",
		Signature:  []Parameter{{Kind: Point, Count: 3}},
		OutputKind: Circle,
	}

	// Circumcenter({A, B, C}) -> center of the circle through three points.
	Circumcenter = &Construction{
		Name:       "Circumcenter",
		Signature:  []Parameter{{Kind: Point, Count: 3}},
		OutputKind: Point,
	}

	// PointReflection(A, O) -> reflection of A through the center O.
	PointReflection = &Construction{
		Name:       "PointReflection",
		Signature:  []Parameter{{Kind: Point, Count: 1}, {Kind: Point, Count: 1}},
		OutputKind: Point,
	}

	// PerpendicularLineFromPoints(A, {B, C}) -> line through A perpendicular
	// to line BC.
	PerpendicularLineFromPoints = &Construction{
		Name:       "PerpendicularLineFromPoints",
		Signature:  []Parameter{{Kind: Point, Count: 1}, {Kind: Point, Count: 2}},
		OutputKind: Line,
	}

	// ParallelLineFromPoints(A, {B, C}) -> line through A parallel to BC.
	ParallelLineFromPoints = &Construction{
		Name:       "ParallelLineFromPoints",
		Signature:  []Parameter{{Kind: Point, Count: 1}, {Kind: Point, Count: 2}},
		OutputKind: Line,
	}

	// PerpendicularBisector({A, B}) -> axis of the segment AB.
	PerpendicularBisector = &Construction{
		Name:       "PerpendicularBisector",
		Signature:  []Parameter{{Kind: Point, Count: 2}},
		OutputKind: Line,
	}

	// PerpendicularProjection(A, {B, C}) -> foot of the perpendicular from A
	// onto line BC.
	PerpendicularProjection = &Construction{
		Name:       "PerpendicularProjection",
		Signature:  []Parameter{{Kind: Point, Count: 1}, {Kind: Point, Count: 2}},
		OutputKind: Point,
	}

	// InternalAngleBisector(A, {B, C}) -> internal bisector of the angle at A
	// spanned by rays towards B and C.
	InternalAngleBisector = &Construction{
		Name:       "InternalAngleBisector",
		Signature:  []Parameter{{Kind: Point, Count: 1}, {Kind: Point, Count: 2}},
		OutputKind: Line,
	}

	// IntersectionOfLinesFromPoints({A, B}, {C, D}) -> common point of lines
	// AB and CD.
	IntersectionOfLinesFromPoints = &Construction{
		Name:       "IntersectionOfLinesFromPoints",
		Signature:  []Parameter{{Kind: Point, Count: 2}, {Kind: Point, Count: 2}},
		OutputKind: Point,
	}

	// IntersectionOfLines({l, m}) -> common point of two explicit lines.
	IntersectionOfLines = &Construction{
		Name:       "IntersectionOfLines",
		Signature:  []Parameter{{Kind: Line, Count: 2}},
		OutputKind: Point,
	}

	// Orthocenter({A, B, C}) -> intersection of the altitudes.
	Orthocenter = &Construction{
		Name:       "Orthocenter",
		Signature:  []Parameter{{Kind: Point, Count: 3}},
		OutputKind: Point,
	}
)

// Centroid({A, B, C}) -> point, composed from two midpoints and the
// intersection of the corresponding medians.
var Centroid = &Construction{
	Name:       "Centroid",
	Signature:  []Parameter{{Kind: Point, Count: 3}},
	OutputKind: Point,
	Steps: []ConstructionStep{
		// slots: 0=A, 1=B, 2=C; step outputs take slots 3, 4, ...
		{Construction: Midpoint, Arguments: []int{1, 2}},
		{Construction: Midpoint, Arguments: []int{0, 2}},
		{Construction: IntersectionOfLinesFromPoints, Arguments: []int{0, 3, 1, 4}},
	},
}

// PredefinedConstructions lists every construction the constructor layer
// knows how to evaluate.
var PredefinedConstructions = []*Construction{
	Midpoint,
	LineFromPoints,
	Circumcircle,
	Circumcenter,
	PointReflection,
	PerpendicularLineFromPoints,
	ParallelLineFromPoints,
	PerpendicularBisector,
	PerpendicularProjection,
	InternalAngleBisector,
	IntersectionOfLinesFromPoints,
	IntersectionOfLines,
	Orthocenter,
	Centroid,
}
