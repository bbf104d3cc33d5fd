package constructor

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wwn13/geogen/pkg/analytic"
	"github.com/wwn13/geogen/pkg/configurations"
)

// HandleFilter selects which handles a query returns, relative to the
// current extension step.
type HandleFilter int

const (
	// AllHandles returns every handle.
	AllHandles HandleFilter = iota
	// NewHandles returns handles created, newly named, or extended with a
	// member point in this step.
	NewHandles
	// OldHandles returns the complement of NewHandles.
	OldHandles
)

const segmentCacheSize = 8192

type segmentKey struct {
	picture   uuid.UUID
	low, high HandleID
}

// ContextualPicture is the incremental geometric index over all pictures of
// one configuration. It tracks every point, line, and circle as a handle,
// including implicit lines through two known points and implicit circles
// through three non-collinear known points, with membership sets that hold
// in every picture simultaneously.
//
// Adds are atomic: on inconsistency the whole index rolls back to its state
// before the offending object.
type ContextualPicture struct {
	pictures *Pictures
	logger   *slog.Logger

	points  map[HandleID]*PointHandle
	lines   map[HandleID]*LineHandle
	circles map[HandleID]*CircleHandle

	byObject map[configurations.ObjectID]HandleID
	maps     map[uuid.UUID]*objectMap
	nextID   HandleID

	newHandles     map[HandleID]bool
	touchedHandles map[HandleID]bool
	newObjects     map[configurations.ObjectID]bool

	segments *lru.Cache[segmentKey, float64]
}

// NewContextualPicture indexes all applied objects of the pictures, with no
// object marked as new.
func NewContextualPicture(pictures *Pictures, logger *slog.Logger) (*ContextualPicture, error) {
	return NewContextualPictureWithNewObjects(pictures, nil, logger)
}

// NewContextualPictureWithNewObjects indexes all applied objects and marks
// the given ones (and every handle they create, name, or extend) as new for
// the producers' incremental filters.
func NewContextualPictureWithNewObjects(pictures *Pictures, newObjects []configurations.ConfigurationObject, logger *slog.Logger) (*ContextualPicture, error) {
	if logger == nil {
		logger = slog.Default()
	}
	segments, err := lru.New[segmentKey, float64](segmentCacheSize)
	if err != nil {
		return nil, err
	}
	cp := &ContextualPicture{
		pictures:       pictures,
		logger:         logger,
		points:         map[HandleID]*PointHandle{},
		lines:          map[HandleID]*LineHandle{},
		circles:        map[HandleID]*CircleHandle{},
		byObject:       map[configurations.ObjectID]HandleID{},
		maps:           map[uuid.UUID]*objectMap{},
		newHandles:     map[HandleID]bool{},
		touchedHandles: map[HandleID]bool{},
		newObjects:     map[configurations.ObjectID]bool{},
		segments:       segments,
	}
	for _, picture := range pictures.All() {
		cp.maps[picture.ID()] = newObjectMap()
	}
	newIDs := map[configurations.ObjectID]bool{}
	for _, object := range newObjects {
		newIDs[object.ID()] = true
	}
	for _, object := range pictures.AppliedObjects() {
		if err := cp.Add(object, newIDs[object.ID()]); err != nil {
			return nil, err
		}
	}
	return cp, nil
}

// Pictures returns the underlying picture manager.
func (cp *ContextualPicture) Pictures() *Pictures { return cp.pictures }

// Contains reports whether a handle backs the configuration object.
func (cp *ContextualPicture) Contains(object configurations.ConfigurationObject) bool {
	_, ok := cp.byObject[object.ID()]
	return ok
}

// HandleOf returns the handle backing a configuration object.
func (cp *ContextualPicture) HandleOf(object configurations.ConfigurationObject) (GeometricObject, bool) {
	id, ok := cp.byObject[object.ID()]
	if !ok {
		return nil, false
	}
	return cp.handle(id), true
}

// IsNewHandle reports whether the handle was created or newly named in this
// step.
func (cp *ContextualPicture) IsNewHandle(id HandleID) bool { return cp.newHandles[id] }

// IsTouchedHandle reports whether the handle gained a member point in this
// step without being new itself.
func (cp *ContextualPicture) IsTouchedHandle(id HandleID) bool {
	return cp.touchedHandles[id] && !cp.newHandles[id]
}

// IsNewObject reports whether the configuration object was added in this
// step.
func (cp *ContextualPicture) IsNewObject(id configurations.ObjectID) bool {
	return cp.newObjects[id]
}

// HasNewObjects reports whether this step added any configuration object.
func (cp *ContextualPicture) HasNewObjects() bool { return len(cp.newObjects) > 0 }

func (cp *ContextualPicture) matches(id HandleID, filter HandleFilter) bool {
	switch filter {
	case NewHandles:
		return cp.newHandles[id] || cp.touchedHandles[id]
	case OldHandles:
		return !cp.newHandles[id] && !cp.touchedHandles[id]
	default:
		return true
	}
}

// PointHandles returns point handles matching the filter, sorted by id.
func (cp *ContextualPicture) PointHandles(filter HandleFilter) []*PointHandle {
	var handles []*PointHandle
	for _, id := range sortedKeys(cp.points) {
		if cp.matches(id, filter) {
			handles = append(handles, cp.points[id])
		}
	}
	return handles
}

// LineHandles returns line handles matching the filter, sorted by id.
func (cp *ContextualPicture) LineHandles(filter HandleFilter) []*LineHandle {
	var handles []*LineHandle
	for _, id := range sortedKeys(cp.lines) {
		if cp.matches(id, filter) {
			handles = append(handles, cp.lines[id])
		}
	}
	return handles
}

// CircleHandles returns circle handles matching the filter, sorted by id.
func (cp *ContextualPicture) CircleHandles(filter HandleFilter) []*CircleHandle {
	var handles []*CircleHandle
	for _, id := range sortedKeys(cp.circles) {
		if cp.matches(id, filter) {
			handles = append(handles, cp.circles[id])
		}
	}
	return handles
}

// Point returns the point handle with the given id, nil if absent.
func (cp *ContextualPicture) Point(id HandleID) *PointHandle { return cp.points[id] }

// Line returns the line handle with the given id, nil if absent.
func (cp *ContextualPicture) Line(id HandleID) *LineHandle { return cp.lines[id] }

// Circle returns the circle handle with the given id, nil if absent.
func (cp *ContextualPicture) Circle(id HandleID) *CircleHandle { return cp.circles[id] }

// AnalyticOf returns the analytic form of a handle in one picture.
func (cp *ContextualPicture) AnalyticOf(id HandleID, picture *Picture) (analytic.AnalyticObject, error) {
	m, ok := cp.maps[picture.ID()]
	if !ok {
		return nil, fmt.Errorf("unknown picture %s: %w", picture.ID(), ErrInternalInvariant)
	}
	value, ok := m.valueOf(id)
	if !ok {
		return nil, fmt.Errorf("handle %d not realized in picture %s: %w",
			id, picture.ID(), ErrInternalInvariant)
	}
	return value, nil
}

// SegmentLength returns the distance between two point handles in one
// picture, memoized per picture.
func (cp *ContextualPicture) SegmentLength(picture *Picture, a, b HandleID) (float64, error) {
	low, high := a, b
	if low > high {
		low, high = high, low
	}
	key := segmentKey{picture: picture.ID(), low: low, high: high}
	if length, ok := cp.segments.Get(key); ok {
		return length, nil
	}
	first, err := cp.pointValue(picture.ID(), a)
	if err != nil {
		return 0, err
	}
	second, err := cp.pointValue(picture.ID(), b)
	if err != nil {
		return 0, err
	}
	length := first.DistanceTo(second)
	cp.segments.Add(key, length)
	return length, nil
}

// Add installs one configuration object into the index, creating or naming
// handles and extending memberships. The object must already be realized in
// every picture. On error the index is unchanged.
func (cp *ContextualPicture) Add(object configurations.ConfigurationObject, isNew bool) error {
	if _, ok := cp.byObject[object.ID()]; ok {
		return fmt.Errorf("object #%d already indexed: %w", object.ID(), ErrInternalInvariant)
	}
	snapshot := cp.snapshot()
	if err := cp.add(object, isNew); err != nil {
		cp.restore(snapshot)
		return err
	}
	return nil
}

func (cp *ContextualPicture) add(object configurations.ConfigurationObject, isNew bool) error {
	values := make([]analytic.AnalyticObject, cp.pictures.Count())
	for i, picture := range cp.pictures.All() {
		value, ok := picture.AnalyticOf(object)
		if !ok {
			return fmt.Errorf("object #%d not realized in picture %s: %w",
				object.ID(), picture.ID(), ErrInternalInvariant)
		}
		values[i] = value
	}

	existing, err := cp.resolveExisting(object, values)
	if err != nil {
		return err
	}
	if existing != nil {
		// A previously implicit line or circle gains a name.
		return cp.nameHandle(existing, object, isNew)
	}

	id := cp.allocate(object, values, isNew)
	switch object.Kind() {
	case configurations.Point:
		return cp.attachPoint(cp.points[id], isNew)
	case configurations.Line:
		return cp.attachLine(cp.lines[id])
	default:
		return cp.attachCircle(cp.circles[id])
	}
}

// resolveExisting finds the handle already realizing the object's analytic
// values, requiring every picture to agree.
func (cp *ContextualPicture) resolveExisting(object configurations.ConfigurationObject, values []analytic.AnalyticObject) (GeometricObject, error) {
	found := -1
	for i, picture := range cp.pictures.All() {
		id, ok := cp.maps[picture.ID()].handleOf(values[i])
		current := -1
		if ok {
			current = id
		}
		if i == 0 {
			found = current
			continue
		}
		if found != current {
			return nil, fmt.Errorf("pictures disagree on the identity of object #%d: %w",
				object.ID(), ErrInconsistentPictures)
		}
	}
	if found < 0 {
		return nil, nil
	}
	return cp.handle(found), nil
}

func (cp *ContextualPicture) nameHandle(handle GeometricObject, object configurations.ConfigurationObject, isNew bool) error {
	if handle.ConfigurationObject() != nil {
		return fmt.Errorf("object #%d duplicates already-named handle %d: %w",
			object.ID(), handle.HandleID(), ErrInternalInvariant)
	}
	switch h := handle.(type) {
	case *LineHandle:
		h.object = object
	case *CircleHandle:
		h.object = object
	default:
		return fmt.Errorf("object #%d collides with point handle %d: %w",
			object.ID(), handle.HandleID(), ErrInternalInvariant)
	}
	cp.byObject[object.ID()] = handle.HandleID()
	if isNew {
		cp.newHandles[handle.HandleID()] = true
		cp.newObjects[object.ID()] = true
	}
	cp.logger.Debug("implicit handle named",
		slog.Int("handle", handle.HandleID()), slog.Int("object", object.ID()))
	return nil
}

func (cp *ContextualPicture) allocate(object configurations.ConfigurationObject, values []analytic.AnalyticObject, isNew bool) HandleID {
	id := cp.nextID
	cp.nextID++
	for i, picture := range cp.pictures.All() {
		cp.maps[picture.ID()].set(id, values[i])
	}
	switch object.Kind() {
	case configurations.Point:
		cp.points[id] = &PointHandle{
			id: id, object: object,
			lines: map[HandleID]bool{}, circles: map[HandleID]bool{},
		}
	case configurations.Line:
		cp.lines[id] = &LineHandle{id: id, object: object, points: map[HandleID]bool{}}
	default:
		cp.circles[id] = &CircleHandle{id: id, object: object, points: map[HandleID]bool{}}
	}
	cp.byObject[object.ID()] = id
	if isNew {
		cp.newHandles[id] = true
		cp.newObjects[object.ID()] = true
	}
	return id
}

// allocateImplicit creates an unnamed line or circle handle with initial
// members, registering the analytic values across pictures.
func (cp *ContextualPicture) allocateImplicit(kind configurations.ObjectKind, values []analytic.AnalyticObject, members []*PointHandle, isNew bool) {
	id := cp.nextID
	cp.nextID++
	for i, picture := range cp.pictures.All() {
		cp.maps[picture.ID()].set(id, values[i])
	}
	pointSet := map[HandleID]bool{}
	for _, member := range members {
		pointSet[member.id] = true
	}
	if kind == configurations.Line {
		cp.lines[id] = &LineHandle{id: id, points: pointSet}
		for _, member := range members {
			member.lines[id] = true
		}
	} else {
		cp.circles[id] = &CircleHandle{id: id, points: pointSet}
		for _, member := range members {
			member.circles[id] = true
		}
	}
	if isNew {
		cp.newHandles[id] = true
	}
}

// attachPoint wires a fresh point into the index: memberships with existing
// lines and circles, implicit lines with every older point, and implicit
// circles with every older non-collinear point pair.
func (cp *ContextualPicture) attachPoint(point *PointHandle, isNew bool) error {
	olderPoints := cp.olderPoints(point.id)

	for _, id := range sortedKeys(cp.lines) {
		line := cp.lines[id]
		member, err := cp.pointOnLineEverywhere(point.id, line.id)
		if err != nil {
			return err
		}
		if member {
			cp.linkLine(point, line, isNew)
		}
	}
	for _, id := range sortedKeys(cp.circles) {
		circle := cp.circles[id]
		member, err := cp.pointOnCircleEverywhere(point.id, circle.id)
		if err != nil {
			return err
		}
		if member {
			cp.linkCircle(point, circle, isNew)
		}
	}

	for _, other := range olderPoints {
		if err := cp.resolveLine(point, other, isNew); err != nil {
			return err
		}
	}
	for i := 0; i < len(olderPoints); i++ {
		for j := i + 1; j < len(olderPoints); j++ {
			if err := cp.resolveCircle(point, olderPoints[i], olderPoints[j], isNew); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveLine reuses or creates the line through two points.
func (cp *ContextualPicture) resolveLine(point, other *PointHandle, isNew bool) error {
	values := make([]analytic.AnalyticObject, cp.pictures.Count())
	for i, picture := range cp.pictures.All() {
		p, err := cp.pointValue(picture.ID(), point.id)
		if err != nil {
			return err
		}
		q, err := cp.pointValue(picture.ID(), other.id)
		if err != nil {
			return err
		}
		line, err := analytic.NewLineFromPoints(p, q)
		if err != nil {
			return fmt.Errorf("points %d and %d coincide in picture %s: %w",
				point.id, other.id, picture.ID(), ErrInconsistentPictures)
		}
		values[i] = line
	}
	found, err := cp.resolveHandle(values)
	if err != nil {
		return err
	}
	if found >= 0 {
		line := cp.lines[found]
		if line == nil {
			return fmt.Errorf("line through points %d and %d resolves to a non-line handle %d: %w",
				point.id, other.id, found, ErrInconsistentPictures)
		}
		cp.linkLine(point, line, isNew)
		cp.linkLine(other, line, isNew)
		return nil
	}
	cp.allocateImplicit(configurations.Line, values, []*PointHandle{point, other}, isNew)
	return nil
}

// resolveCircle reuses or creates the circle through three points, skipping
// triples that are collinear in every picture.
func (cp *ContextualPicture) resolveCircle(point, second, third *PointHandle, isNew bool) error {
	collinearCount := 0
	values := make([]analytic.AnalyticObject, cp.pictures.Count())
	for i, picture := range cp.pictures.All() {
		p, err := cp.pointValue(picture.ID(), point.id)
		if err != nil {
			return err
		}
		q, err := cp.pointValue(picture.ID(), second.id)
		if err != nil {
			return err
		}
		r, err := cp.pointValue(picture.ID(), third.id)
		if err != nil {
			return err
		}
		if analytic.AreCollinear(p, q, r) {
			collinearCount++
			continue
		}
		circle, err := analytic.NewCircleFromPoints(p, q, r)
		if err != nil {
			collinearCount++
			continue
		}
		values[i] = circle
	}
	if collinearCount == cp.pictures.Count() {
		return nil
	}
	if collinearCount > 0 {
		return fmt.Errorf("points %d, %d, %d collinear in %d of %d pictures: %w",
			point.id, second.id, third.id, collinearCount, cp.pictures.Count(), ErrInconsistentPictures)
	}
	found, err := cp.resolveHandle(values)
	if err != nil {
		return err
	}
	if found >= 0 {
		circle := cp.circles[found]
		if circle == nil {
			return fmt.Errorf("circle through points %d, %d, %d resolves to a non-circle handle %d: %w",
				point.id, second.id, third.id, found, ErrInconsistentPictures)
		}
		cp.linkCircle(point, circle, isNew)
		cp.linkCircle(second, circle, isNew)
		cp.linkCircle(third, circle, isNew)
		return nil
	}
	cp.allocateImplicit(configurations.Circle, values, []*PointHandle{point, second, third}, isNew)
	return nil
}

// resolveHandle maps per-picture analytic values to the handle realizing
// them, requiring all pictures to agree (all the same handle, or none).
func (cp *ContextualPicture) resolveHandle(values []analytic.AnalyticObject) (HandleID, error) {
	found := -1
	for i, picture := range cp.pictures.All() {
		id, ok := cp.maps[picture.ID()].handleOf(values[i])
		current := -1
		if ok {
			current = id
		}
		if i == 0 {
			found = current
			continue
		}
		if found != current {
			return 0, fmt.Errorf("pictures disagree on the identity of an implicit object: %w",
				ErrInconsistentPictures)
		}
	}
	return found, nil
}

// attachLine tests every existing point for membership on a fresh explicit
// line.
func (cp *ContextualPicture) attachLine(line *LineHandle) error {
	for _, id := range sortedKeys(cp.points) {
		point := cp.points[id]
		member, err := cp.pointOnLineEverywhere(point.id, line.id)
		if err != nil {
			return err
		}
		if member {
			cp.linkLine(point, line, false)
		}
	}
	return nil
}

// attachCircle tests every existing point for membership on a fresh explicit
// circle.
func (cp *ContextualPicture) attachCircle(circle *CircleHandle) error {
	for _, id := range sortedKeys(cp.points) {
		point := cp.points[id]
		member, err := cp.pointOnCircleEverywhere(point.id, circle.id)
		if err != nil {
			return err
		}
		if member {
			cp.linkCircle(point, circle, false)
		}
	}
	return nil
}

func (cp *ContextualPicture) linkLine(point *PointHandle, line *LineHandle, isNew bool) {
	if line.points[point.id] {
		return
	}
	line.points[point.id] = true
	point.lines[line.id] = true
	if isNew {
		cp.touchedHandles[line.id] = true
	}
}

func (cp *ContextualPicture) linkCircle(point *PointHandle, circle *CircleHandle, isNew bool) {
	if circle.points[point.id] {
		return
	}
	circle.points[point.id] = true
	point.circles[circle.id] = true
	if isNew {
		cp.touchedHandles[circle.id] = true
	}
}

// pointOnLineEverywhere reports membership that holds in every picture;
// disagreement between pictures is an inconsistency.
func (cp *ContextualPicture) pointOnLineEverywhere(pointID, lineID HandleID) (bool, error) {
	count := 0
	for _, picture := range cp.pictures.All() {
		p, err := cp.pointValue(picture.ID(), pointID)
		if err != nil {
			return false, err
		}
		line, err := cp.lineValue(picture.ID(), lineID)
		if err != nil {
			return false, err
		}
		if line.Contains(p) {
			count++
		}
	}
	if count == 0 || count == cp.pictures.Count() {
		return count > 0, nil
	}
	return false, fmt.Errorf("point %d lies on line %d in %d of %d pictures: %w",
		pointID, lineID, count, cp.pictures.Count(), ErrInconsistentPictures)
}

func (cp *ContextualPicture) pointOnCircleEverywhere(pointID, circleID HandleID) (bool, error) {
	count := 0
	for _, picture := range cp.pictures.All() {
		p, err := cp.pointValue(picture.ID(), pointID)
		if err != nil {
			return false, err
		}
		circle, err := cp.circleValue(picture.ID(), circleID)
		if err != nil {
			return false, err
		}
		if circle.ContainsPoint(p) {
			count++
		}
	}
	if count == 0 || count == cp.pictures.Count() {
		return count > 0, nil
	}
	return false, fmt.Errorf("point %d lies on circle %d in %d of %d pictures: %w",
		pointID, circleID, count, cp.pictures.Count(), ErrInconsistentPictures)
}

func (cp *ContextualPicture) olderPoints(exclude HandleID) []*PointHandle {
	var handles []*PointHandle
	for _, id := range sortedKeys(cp.points) {
		if id != exclude {
			handles = append(handles, cp.points[id])
		}
	}
	return handles
}

func (cp *ContextualPicture) handle(id HandleID) GeometricObject {
	if h, ok := cp.points[id]; ok {
		return h
	}
	if h, ok := cp.lines[id]; ok {
		return h
	}
	if h, ok := cp.circles[id]; ok {
		return h
	}
	return nil
}

func (cp *ContextualPicture) pointValue(picture uuid.UUID, id HandleID) (analytic.Point, error) {
	value, ok := cp.maps[picture].valueOf(id)
	if !ok {
		return analytic.Point{}, fmt.Errorf("handle %d not realized in picture %s: %w",
			id, picture, ErrInternalInvariant)
	}
	point, ok := value.(analytic.Point)
	if !ok {
		return analytic.Point{}, fmt.Errorf("handle %d is not a point: %w", id, ErrInternalInvariant)
	}
	return point, nil
}

func (cp *ContextualPicture) lineValue(picture uuid.UUID, id HandleID) (analytic.Line, error) {
	value, ok := cp.maps[picture].valueOf(id)
	if !ok {
		return analytic.Line{}, fmt.Errorf("handle %d not realized in picture %s: %w",
			id, picture, ErrInternalInvariant)
	}
	line, ok := value.(analytic.Line)
	if !ok {
		return analytic.Line{}, fmt.Errorf("handle %d is not a line: %w", id, ErrInternalInvariant)
	}
	return line, nil
}

func (cp *ContextualPicture) circleValue(picture uuid.UUID, id HandleID) (analytic.Circle, error) {
	value, ok := cp.maps[picture].valueOf(id)
	if !ok {
		return analytic.Circle{}, fmt.Errorf("handle %d not realized in picture %s: %w",
			id, picture, ErrInternalInvariant)
	}
	circle, ok := value.(analytic.Circle)
	if !ok {
		return analytic.Circle{}, fmt.Errorf("handle %d is not a circle: %w", id, ErrInternalInvariant)
	}
	return circle, nil
}

type contextSnapshot struct {
	points  map[HandleID]*PointHandle
	lines   map[HandleID]*LineHandle
	circles map[HandleID]*CircleHandle

	byObject map[configurations.ObjectID]HandleID
	maps     map[uuid.UUID]*objectMap
	nextID   HandleID

	newHandles     map[HandleID]bool
	touchedHandles map[HandleID]bool
	newObjects     map[configurations.ObjectID]bool
}

func (cp *ContextualPicture) snapshot() *contextSnapshot {
	s := &contextSnapshot{
		points:         make(map[HandleID]*PointHandle, len(cp.points)),
		lines:          make(map[HandleID]*LineHandle, len(cp.lines)),
		circles:        make(map[HandleID]*CircleHandle, len(cp.circles)),
		byObject:       make(map[configurations.ObjectID]HandleID, len(cp.byObject)),
		maps:           make(map[uuid.UUID]*objectMap, len(cp.maps)),
		nextID:         cp.nextID,
		newHandles:     cloneIDSet(cp.newHandles),
		touchedHandles: cloneIDSet(cp.touchedHandles),
		newObjects:     cloneIDSet(cp.newObjects),
	}
	for id, handle := range cp.points {
		s.points[id] = handle.clone()
	}
	for id, handle := range cp.lines {
		s.lines[id] = handle.clone()
	}
	for id, handle := range cp.circles {
		s.circles[id] = handle.clone()
	}
	for id, handle := range cp.byObject {
		s.byObject[id] = handle
	}
	for id, m := range cp.maps {
		s.maps[id] = m.clone()
	}
	return s
}

func (cp *ContextualPicture) restore(s *contextSnapshot) {
	cp.points = s.points
	cp.lines = s.lines
	cp.circles = s.circles
	cp.byObject = s.byObject
	cp.maps = s.maps
	cp.nextID = s.nextID
	cp.newHandles = s.newHandles
	cp.touchedHandles = s.touchedHandles
	cp.newObjects = s.newObjects
	// Cached segment lengths may refer to handle ids that will be reused.
	cp.segments.Purge()
}

func sortedKeys[V any](m map[HandleID]V) []HandleID {
	keys := make([]HandleID, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}
