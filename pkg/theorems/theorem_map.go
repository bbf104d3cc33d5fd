package theorems

import "sort"

// TheoremMap is a deduplicating set of theorems keyed by structural
// signature.
type TheoremMap struct {
	bySignature map[string]Theorem
}

func NewTheoremMap(theorems ...Theorem) *TheoremMap {
	m := &TheoremMap{bySignature: map[string]Theorem{}}
	for _, theorem := range theorems {
		m.Add(theorem)
	}
	return m
}

// Add inserts the theorem and reports whether it was not already present.
func (m *TheoremMap) Add(theorem Theorem) bool {
	signature := theorem.Signature()
	if _, ok := m.bySignature[signature]; ok {
		return false
	}
	m.bySignature[signature] = theorem
	return true
}

// Contains reports whether a structurally equal theorem is present.
func (m *TheoremMap) Contains(theorem Theorem) bool {
	_, ok := m.bySignature[theorem.Signature()]
	return ok
}

func (m *TheoremMap) Len() int { return len(m.bySignature) }

// AllOrdered returns the theorems sorted by type, then signature, giving a
// deterministic emission order.
func (m *TheoremMap) AllOrdered() []Theorem {
	all := make([]Theorem, 0, len(m.bySignature))
	for _, theorem := range m.bySignature {
		all = append(all, theorem)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Type != all[j].Type {
			return all[i].Type < all[j].Type
		}
		return all[i].Signature() < all[j].Signature()
	})
	return all
}

// OfType returns the theorems of one type in canonical order.
func (m *TheoremMap) OfType(theoremType TheoremType) []Theorem {
	var matching []Theorem
	for _, theorem := range m.AllOrdered() {
		if theorem.Type == theoremType {
			matching = append(matching, theorem)
		}
	}
	return matching
}

// Merge adds every theorem of other, reporting how many were new.
func (m *TheoremMap) Merge(other *TheoremMap) int {
	added := 0
	for _, theorem := range other.AllOrdered() {
		if m.Add(theorem) {
			added++
		}
	}
	return added
}
