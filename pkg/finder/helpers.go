package finder

import (
	"fmt"
	"sort"

	"github.com/wwn13/geogen/pkg/analytic"
	"github.com/wwn13/geogen/pkg/constructor"
	"github.com/wwn13/geogen/pkg/theorems"
)

// pointObject returns the configuration object backing a point handle.
func pointObject(cp *constructor.ContextualPicture, id constructor.HandleID) theorems.PointObject {
	return theorems.NewPointObject(cp.Point(id).ConfigurationObject())
}

// lineStatements expands a line handle into every way the discovered
// relation can be stated: by the line's name if it has one, and by each
// unordered pair of its member points.
func lineStatements(cp *constructor.ContextualPicture, line *constructor.LineHandle) []theorems.TheoremObject {
	var statements []theorems.TheoremObject
	if object := line.ConfigurationObject(); object != nil {
		statements = append(statements, theorems.NewNamedLineObject(object))
	}
	members := line.Points()
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			statements = append(statements, theorems.NewLineObjectFromPoints(
				cp.Point(members[i]).ConfigurationObject(),
				cp.Point(members[j]).ConfigurationObject()))
		}
	}
	return statements
}

// circleStatements expands a circle handle: its name if any, and each
// unordered triple of its member points.
func circleStatements(cp *constructor.ContextualPicture, circle *constructor.CircleHandle) []theorems.TheoremObject {
	var statements []theorems.TheoremObject
	if object := circle.ConfigurationObject(); object != nil {
		statements = append(statements, theorems.NewNamedCircleObject(object))
	}
	members := circle.Points()
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			for k := j + 1; k < len(members); k++ {
				statements = append(statements, theorems.NewCircleObjectFromPoints(
					cp.Point(members[i]).ConfigurationObject(),
					cp.Point(members[j]).ConfigurationObject(),
					cp.Point(members[k]).ConfigurationObject()))
			}
		}
	}
	return statements
}

// canonicalLineStatement states a line once: by name when named, otherwise
// by its two members with the lowest configuration ids.
func canonicalLineStatement(cp *constructor.ContextualPicture, line *constructor.LineHandle) theorems.TheoremObject {
	if object := line.ConfigurationObject(); object != nil {
		return theorems.NewNamedLineObject(object)
	}
	members := line.Points()
	ids := make([]int, len(members))
	byID := make(map[int]constructor.HandleID, len(members))
	for i, member := range members {
		id := cp.Point(member).ConfigurationObject().ID()
		ids[i] = id
		byID[id] = member
	}
	sort.Ints(ids)
	return theorems.NewLineObjectFromPoints(
		cp.Point(byID[ids[0]]).ConfigurationObject(),
		cp.Point(byID[ids[1]]).ConfigurationObject())
}

// referencesNewObject reports whether a statement mentions any configuration
// object added in this step.
func referencesNewObject(cp *constructor.ContextualPicture, objects ...theorems.TheoremObject) bool {
	for _, object := range objects {
		for _, id := range object.References() {
			if cp.IsNewObject(id) {
				return true
			}
		}
	}
	return false
}

// involvesNew reports whether any of the handles is new or was touched in
// this step.
func involvesNew(cp *constructor.ContextualPicture, ids ...constructor.HandleID) bool {
	for _, id := range ids {
		if cp.IsNewHandle(id) || cp.IsTouchedHandle(id) {
			return true
		}
	}
	return false
}

func lineValue(cp *constructor.ContextualPicture, picture *constructor.Picture, id constructor.HandleID) (analytic.Line, error) {
	value, err := cp.AnalyticOf(id, picture)
	if err != nil {
		return analytic.Line{}, err
	}
	line, ok := value.(analytic.Line)
	if !ok {
		return analytic.Line{}, fmt.Errorf("handle %d is not a line: %w", id, constructor.ErrInternalInvariant)
	}
	return line, nil
}

func circleValue(cp *constructor.ContextualPicture, picture *constructor.Picture, id constructor.HandleID) (analytic.Circle, error) {
	value, err := cp.AnalyticOf(id, picture)
	if err != nil {
		return analytic.Circle{}, err
	}
	circle, ok := value.(analytic.Circle)
	if !ok {
		return analytic.Circle{}, fmt.Errorf("handle %d is not a circle: %w", id, constructor.ErrInternalInvariant)
	}
	return circle, nil
}

// pairStatements builds one candidate per statement pair, sharing a verify
// predicate, keeping in new mode only statements that reference a new
// configuration object.
func pairStatements(cp *constructor.ContextualPicture, theoremType theorems.TheoremType,
	first, second []theorems.TheoremObject, newOnly bool,
	verify func(picture *constructor.Picture) (bool, error)) []PotentialTheorem {
	var candidates []PotentialTheorem
	for _, a := range first {
		for _, b := range second {
			if newOnly && !referencesNewObject(cp, a, b) {
				continue
			}
			candidates = append(candidates, PotentialTheorem{
				Theorem: theorems.NewTheorem(theoremType, a, b),
				Verify:  verify,
			})
		}
	}
	return candidates
}
