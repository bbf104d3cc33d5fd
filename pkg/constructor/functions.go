package constructor

import (
	"fmt"

	"github.com/wwn13/geogen/pkg/analytic"
	"github.com/wwn13/geogen/pkg/configurations"
)

// Apply evaluates a construction on already-realized analytic arguments,
// flattened in signature order. Degenerate inputs yield an error wrapping
// analytic.ErrInconstructible; a mismatch between signature and argument
// types is an internal invariant violation.
func Apply(construction *configurations.Construction, arguments []analytic.AnalyticObject) (analytic.AnalyticObject, error) {
	if len(arguments) != construction.Arity() {
		return nil, fmt.Errorf("%s applied to %d arguments, want %d: %w",
			construction.Name, len(arguments), construction.Arity(), ErrInternalInvariant)
	}
	if construction.IsComposed() {
		return applyComposed(construction, arguments)
	}

	switch construction.Name {
	case configurations.Midpoint.Name:
		p, q, err := twoPoints(arguments[0], arguments[1])
		if err != nil {
			return nil, err
		}
		return analytic.Midpoint(p, q), nil

	case configurations.LineFromPoints.Name:
		p, q, err := twoPoints(arguments[0], arguments[1])
		if err != nil {
			return nil, err
		}
		return analytic.NewLineFromPoints(p, q)

	case configurations.Circumcircle.Name:
		p, q, r, err := threePoints(arguments)
		if err != nil {
			return nil, err
		}
		return analytic.NewCircleFromPoints(p, q, r)

	case configurations.Circumcenter.Name:
		p, q, r, err := threePoints(arguments)
		if err != nil {
			return nil, err
		}
		return analytic.Circumcenter(p, q, r)

	case configurations.PointReflection.Name:
		p, center, err := twoPoints(arguments[0], arguments[1])
		if err != nil {
			return nil, err
		}
		return analytic.ReflectThrough(p, center), nil

	case configurations.PerpendicularLineFromPoints.Name:
		through, base, err := pointAndBaseLine(arguments)
		if err != nil {
			return nil, err
		}
		return base.PerpendicularThrough(through), nil

	case configurations.ParallelLineFromPoints.Name:
		through, base, err := pointAndBaseLine(arguments)
		if err != nil {
			return nil, err
		}
		return base.ParallelThrough(through), nil

	case configurations.PerpendicularBisector.Name:
		p, q, err := twoPoints(arguments[0], arguments[1])
		if err != nil {
			return nil, err
		}
		return analytic.PerpendicularBisector(p, q)

	case configurations.PerpendicularProjection.Name:
		through, base, err := pointAndBaseLine(arguments)
		if err != nil {
			return nil, err
		}
		return base.IntersectionWith(base.PerpendicularThrough(through))

	case configurations.InternalAngleBisector.Name:
		vertex, err := asPoint(arguments[0])
		if err != nil {
			return nil, err
		}
		p, q, err := twoPoints(arguments[1], arguments[2])
		if err != nil {
			return nil, err
		}
		return analytic.InternalAngleBisector(vertex, p, q)

	case configurations.IntersectionOfLinesFromPoints.Name:
		p1, q1, err := twoPoints(arguments[0], arguments[1])
		if err != nil {
			return nil, err
		}
		p2, q2, err := twoPoints(arguments[2], arguments[3])
		if err != nil {
			return nil, err
		}
		first, err := analytic.NewLineFromPoints(p1, q1)
		if err != nil {
			return nil, err
		}
		second, err := analytic.NewLineFromPoints(p2, q2)
		if err != nil {
			return nil, err
		}
		return first.IntersectionWith(second)

	case configurations.IntersectionOfLines.Name:
		first, err := asLine(arguments[0])
		if err != nil {
			return nil, err
		}
		second, err := asLine(arguments[1])
		if err != nil {
			return nil, err
		}
		return first.IntersectionWith(second)

	case configurations.Orthocenter.Name:
		p, q, r, err := threePoints(arguments)
		if err != nil {
			return nil, err
		}
		return orthocenter(p, q, r)
	}

	return nil, fmt.Errorf("unknown construction %q: %w", construction.Name, ErrInternalInvariant)
}

// applyComposed evaluates the internal step sequence in a scratch slot
// table: the flattened inputs first, then each step's output. The last
// step's output is the result.
func applyComposed(construction *configurations.Construction, arguments []analytic.AnalyticObject) (analytic.AnalyticObject, error) {
	slots := append([]analytic.AnalyticObject(nil), arguments...)
	for _, step := range construction.Steps {
		stepArguments := make([]analytic.AnalyticObject, len(step.Arguments))
		for i, slot := range step.Arguments {
			if slot < 0 || slot >= len(slots) {
				return nil, fmt.Errorf("%s step references slot %d of %d: %w",
					construction.Name, slot, len(slots), ErrInternalInvariant)
			}
			stepArguments[i] = slots[slot]
		}
		value, err := Apply(step.Construction, stepArguments)
		if err != nil {
			return nil, err
		}
		slots = append(slots, value)
	}
	return slots[len(slots)-1], nil
}

func orthocenter(p, q, r analytic.Point) (analytic.Point, error) {
	base1, err := analytic.NewLineFromPoints(q, r)
	if err != nil {
		return analytic.Point{}, err
	}
	base2, err := analytic.NewLineFromPoints(p, r)
	if err != nil {
		return analytic.Point{}, err
	}
	return base1.PerpendicularThrough(p).IntersectionWith(base2.PerpendicularThrough(q))
}

func asPoint(value analytic.AnalyticObject) (analytic.Point, error) {
	point, ok := value.(analytic.Point)
	if !ok {
		return analytic.Point{}, fmt.Errorf("argument %v is not a point: %w", value, ErrInternalInvariant)
	}
	return point, nil
}

func asLine(value analytic.AnalyticObject) (analytic.Line, error) {
	line, ok := value.(analytic.Line)
	if !ok {
		return analytic.Line{}, fmt.Errorf("argument %v is not a line: %w", value, ErrInternalInvariant)
	}
	return line, nil
}

func twoPoints(a, b analytic.AnalyticObject) (analytic.Point, analytic.Point, error) {
	p, err := asPoint(a)
	if err != nil {
		return analytic.Point{}, analytic.Point{}, err
	}
	q, err := asPoint(b)
	if err != nil {
		return analytic.Point{}, analytic.Point{}, err
	}
	return p, q, nil
}

func threePoints(arguments []analytic.AnalyticObject) (analytic.Point, analytic.Point, analytic.Point, error) {
	p, q, err := twoPoints(arguments[0], arguments[1])
	if err != nil {
		return analytic.Point{}, analytic.Point{}, analytic.Point{}, err
	}
	r, err := asPoint(arguments[2])
	if err != nil {
		return analytic.Point{}, analytic.Point{}, analytic.Point{}, err
	}
	return p, q, r, nil
}

func pointAndBaseLine(arguments []analytic.AnalyticObject) (analytic.Point, analytic.Line, error) {
	through, err := asPoint(arguments[0])
	if err != nil {
		return analytic.Point{}, analytic.Line{}, err
	}
	p, q, err := twoPoints(arguments[1], arguments[2])
	if err != nil {
		return analytic.Point{}, analytic.Line{}, err
	}
	base, err := analytic.NewLineFromPoints(p, q)
	if err != nil {
		return analytic.Point{}, analytic.Line{}, err
	}
	return through, base, nil
}
