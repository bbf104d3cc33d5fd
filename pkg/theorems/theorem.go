package theorems

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wwn13/geogen/pkg/configurations"
)

// TheoremType is the closed set of relations the finder can state.
type TheoremType string

const (
	Incidence          TheoremType = "incidence"
	ParallelLines      TheoremType = "parallel_lines"
	PerpendicularLines TheoremType = "perpendicular_lines"
	EqualLineSegments  TheoremType = "equal_line_segments"
	TangentCircles     TheoremType = "tangent_circles"
	TangentLines       TheoremType = "tangent_lines"
	CollinearPoints    TheoremType = "collinear_points"
	ConcurrentLines    TheoremType = "concurrent_lines"
	ConcyclicPoints    TheoremType = "concyclic_points"
	SameObjects        TheoremType = "same_objects"
)

// Theorem is a typed statement over theorem objects. Every type's object
// tuple is unordered, so structural equality sorts object signatures.
type Theorem struct {
	Type    TheoremType
	Objects []TheoremObject
}

func NewTheorem(theoremType TheoremType, objects ...TheoremObject) Theorem {
	return Theorem{Type: theoremType, Objects: objects}
}

func (t Theorem) String() string {
	parts := make([]string, len(t.Objects))
	for i, object := range t.Objects {
		parts[i] = object.String()
	}
	return fmt.Sprintf("%s(%s)", t.Type, strings.Join(parts, ", "))
}

// Signature is the canonical structural key of the theorem, invariant under
// reordering of the object tuple.
func (t Theorem) Signature() string {
	parts := make([]string, len(t.Objects))
	for i, object := range t.Objects {
		parts[i] = object.Signature()
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s{%s}", t.Type, strings.Join(parts, ";"))
}

// References lists the ids of every configuration object the statement
// mentions, without duplicates.
func (t Theorem) References() []configurations.ObjectID {
	seen := map[configurations.ObjectID]bool{}
	var ids []configurations.ObjectID
	for _, object := range t.Objects {
		for _, id := range object.References() {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	return ids
}
