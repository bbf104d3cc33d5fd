package theorems

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wwn13/geogen/pkg/configurations"
)

// TheoremObject is one participant of a theorem statement: a point, a line
// or circle (named by a configuration object, defined by incident points,
// or both), a line segment, or a bare named object.
type TheoremObject interface {
	fmt.Stringer

	// Signature is a canonical key, equal for structurally equal objects.
	Signature() string
	// References lists the ids of all configuration objects involved.
	References() []configurations.ObjectID
}

// PointObject wraps a point configuration object.
type PointObject struct {
	Point configurations.ConfigurationObject
}

func NewPointObject(point configurations.ConfigurationObject) PointObject {
	return PointObject{Point: point}
}

func (o PointObject) String() string    { return fmt.Sprintf("point #%d", o.Point.ID()) }
func (o PointObject) Signature() string { return fmt.Sprintf("p(%d)", o.Point.ID()) }

func (o PointObject) References() []configurations.ObjectID {
	return []configurations.ObjectID{o.Point.ID()}
}

// LineObject is a line participant. Object names the line when the line has
// a backing configuration object; otherwise Points defines it by two of its
// incident points. Both may be set; the signature prefers the name.
type LineObject struct {
	Object configurations.ConfigurationObject
	Points []configurations.ConfigurationObject
}

func NewNamedLineObject(line configurations.ConfigurationObject) LineObject {
	return LineObject{Object: line}
}

func NewLineObjectFromPoints(p, q configurations.ConfigurationObject) LineObject {
	return LineObject{Points: []configurations.ConfigurationObject{p, q}}
}

func (o LineObject) String() string {
	if o.Object != nil {
		return fmt.Sprintf("line #%d", o.Object.ID())
	}
	return fmt.Sprintf("line through %s", idList(o.Points))
}

func (o LineObject) Signature() string {
	if o.Object != nil {
		return fmt.Sprintf("l(%d)", o.Object.ID())
	}
	return fmt.Sprintf("l[%s]", idList(o.Points))
}

func (o LineObject) References() []configurations.ObjectID {
	return objectAndPointIDs(o.Object, o.Points)
}

// CircleObject is a circle participant, named or defined by three points.
type CircleObject struct {
	Object configurations.ConfigurationObject
	Points []configurations.ConfigurationObject
}

func NewNamedCircleObject(circle configurations.ConfigurationObject) CircleObject {
	return CircleObject{Object: circle}
}

func NewCircleObjectFromPoints(p, q, r configurations.ConfigurationObject) CircleObject {
	return CircleObject{Points: []configurations.ConfigurationObject{p, q, r}}
}

func (o CircleObject) String() string {
	if o.Object != nil {
		return fmt.Sprintf("circle #%d", o.Object.ID())
	}
	return fmt.Sprintf("circle through %s", idList(o.Points))
}

func (o CircleObject) Signature() string {
	if o.Object != nil {
		return fmt.Sprintf("c(%d)", o.Object.ID())
	}
	return fmt.Sprintf("c[%s]", idList(o.Points))
}

func (o CircleObject) References() []configurations.ObjectID {
	return objectAndPointIDs(o.Object, o.Points)
}

// SegmentObject is an unordered pair of endpoints.
type SegmentObject struct {
	Endpoints []configurations.ConfigurationObject
}

func NewSegmentObject(p, q configurations.ConfigurationObject) SegmentObject {
	return SegmentObject{Endpoints: []configurations.ConfigurationObject{p, q}}
}

func (o SegmentObject) String() string {
	return fmt.Sprintf("segment %s", idList(o.Endpoints))
}

func (o SegmentObject) Signature() string { return fmt.Sprintf("s[%s]", idList(o.Endpoints)) }

func (o SegmentObject) References() []configurations.ObjectID {
	return objectAndPointIDs(nil, o.Endpoints)
}

// NamedObject wraps a configuration object of any kind, used by SameObjects
// statements.
type NamedObject struct {
	Object configurations.ConfigurationObject
}

func NewNamedObject(object configurations.ConfigurationObject) NamedObject {
	return NamedObject{Object: object}
}

func (o NamedObject) String() string    { return o.Object.String() }
func (o NamedObject) Signature() string { return fmt.Sprintf("o(%d)", o.Object.ID()) }

func (o NamedObject) References() []configurations.ObjectID {
	return []configurations.ObjectID{o.Object.ID()}
}

func idList(points []configurations.ConfigurationObject) string {
	ids := make([]int, len(points))
	for i, point := range points {
		ids[i] = point.ID()
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}

func objectAndPointIDs(object configurations.ConfigurationObject, points []configurations.ConfigurationObject) []configurations.ObjectID {
	ids := make([]configurations.ObjectID, 0, len(points)+1)
	if object != nil {
		ids = append(ids, object.ID())
	}
	for _, point := range points {
		ids = append(ids, point.ID())
	}
	return ids
}
