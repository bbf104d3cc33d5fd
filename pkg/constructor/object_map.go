package constructor

import "github.com/wwn13/geogen/pkg/analytic"

// objectMap is the per-picture bidirectional map between geometric handles
// and analytic values. The reverse direction is a tolerance scan in handle
// insertion order, which is exactly the near-duplicate lookup the ε-equality
// semantics require.
type objectMap struct {
	order  []HandleID
	values map[HandleID]analytic.AnalyticObject
}

func newObjectMap() *objectMap {
	return &objectMap{values: map[HandleID]analytic.AnalyticObject{}}
}

func (m *objectMap) set(id HandleID, value analytic.AnalyticObject) {
	if _, ok := m.values[id]; !ok {
		m.order = append(m.order, id)
	}
	m.values[id] = value
}

func (m *objectMap) valueOf(id HandleID) (analytic.AnalyticObject, bool) {
	value, ok := m.values[id]
	return value, ok
}

// handleOf returns the first handle whose value equals the given one.
func (m *objectMap) handleOf(value analytic.AnalyticObject) (HandleID, bool) {
	for _, id := range m.order {
		if m.values[id].IsEqualTo(value) {
			return id, true
		}
	}
	return 0, false
}

func (m *objectMap) clone() *objectMap {
	clone := &objectMap{
		order:  append([]HandleID(nil), m.order...),
		values: make(map[HandleID]analytic.AnalyticObject, len(m.values)),
	}
	for id, value := range m.values {
		clone.values[id] = value
	}
	return clone
}
