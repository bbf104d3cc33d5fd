package constructor

import (
	"sort"

	"github.com/wwn13/geogen/pkg/configurations"
)

// HandleID identifies a geometric handle inside one contextual picture.
// Membership sets store ids, not references, so the point/line/circle graph
// has no cycles and handle equality is id equality.
type HandleID = int

// GeometricObject is a handle owned by a contextual picture: a point, line
// or circle tracked across all pictures, possibly implicit (no backing
// configuration object yet).
type GeometricObject interface {
	HandleID() HandleID
	Kind() configurations.ObjectKind
	// ConfigurationObject returns the backing symbolic object, nil for
	// implicit lines and circles.
	ConfigurationObject() configurations.ConfigurationObject
}

// PointHandle is a tracked point together with the lines and circles through
// it. Points always have a backing configuration object.
type PointHandle struct {
	id      HandleID
	object  configurations.ConfigurationObject
	lines   map[HandleID]bool
	circles map[HandleID]bool
}

func (h *PointHandle) HandleID() HandleID { return h.id }
func (h *PointHandle) Kind() configurations.ObjectKind { return configurations.Point }
func (h *PointHandle) ConfigurationObject() configurations.ConfigurationObject { return h.object }

// Lines returns the ids of the lines through the point, sorted.
func (h *PointHandle) Lines() []HandleID { return sortedIDs(h.lines) }

// Circles returns the ids of the circles through the point, sorted.
func (h *PointHandle) Circles() []HandleID { return sortedIDs(h.circles) }

func (h *PointHandle) clone() *PointHandle {
	return &PointHandle{
		id:      h.id,
		object:  h.object,
		lines:   cloneIDSet(h.lines),
		circles: cloneIDSet(h.circles),
	}
}

// LineHandle is a tracked line with its incident points. Implicit lines
// (introduced because two known points span them) have no backing object
// until a construction names them.
type LineHandle struct {
	id     HandleID
	object configurations.ConfigurationObject
	points map[HandleID]bool
}

func (h *LineHandle) HandleID() HandleID { return h.id }
func (h *LineHandle) Kind() configurations.ObjectKind { return configurations.Line }
func (h *LineHandle) ConfigurationObject() configurations.ConfigurationObject { return h.object }

// Points returns the ids of the points on the line, sorted.
func (h *LineHandle) Points() []HandleID { return sortedIDs(h.points) }

// ContainsPoint reports whether the point handle is a known member.
func (h *LineHandle) ContainsPoint(id HandleID) bool { return h.points[id] }

func (h *LineHandle) clone() *LineHandle {
	return &LineHandle{id: h.id, object: h.object, points: cloneIDSet(h.points)}
}

// CircleHandle is a tracked circle with its incident points (three or more
// for implicit circles).
type CircleHandle struct {
	id     HandleID
	object configurations.ConfigurationObject
	points map[HandleID]bool
}

func (h *CircleHandle) HandleID() HandleID { return h.id }
func (h *CircleHandle) Kind() configurations.ObjectKind { return configurations.Circle }
func (h *CircleHandle) ConfigurationObject() configurations.ConfigurationObject { return h.object }

// Points returns the ids of the points on the circle, sorted.
func (h *CircleHandle) Points() []HandleID { return sortedIDs(h.points) }

// ContainsPoint reports whether the point handle is a known member.
func (h *CircleHandle) ContainsPoint(id HandleID) bool { return h.points[id] }

func (h *CircleHandle) clone() *CircleHandle {
	return &CircleHandle{id: h.id, object: h.object, points: cloneIDSet(h.points)}
}

func sortedIDs(set map[HandleID]bool) []HandleID {
	ids := make([]HandleID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func cloneIDSet(set map[HandleID]bool) map[HandleID]bool {
	clone := make(map[HandleID]bool, len(set))
	for id := range set {
		clone[id] = true
	}
	return clone
}
