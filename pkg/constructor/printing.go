package constructor

import (
	"fmt"
	"strings"
)

func describeHandle(handle GeometricObject, marker string) string {
	name := "implicit"
	if object := handle.ConfigurationObject(); object != nil {
		name = object.String()
	}
	return fmt.Sprintf("%s#%d %s (%s)", marker, handle.HandleID(), handle.Kind(), name)
}

func memberList(ids []HandleID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	return strings.Join(parts, ", ")
}

// PrintContextualPicture dumps the handle arena of a contextual picture,
// grouped by kind, with membership sets. Debug aid.
func PrintContextualPicture(cp *ContextualPicture) {
	marker := func(id HandleID) string {
		switch {
		case cp.IsNewHandle(id):
			return "*"
		case cp.IsTouchedHandle(id):
			return "+"
		default:
			return " "
		}
	}

	fmt.Printf("\n[Points]\n")
	for _, point := range cp.PointHandles(AllHandles) {
		fmt.Printf("%s\n", describeHandle(point, marker(point.HandleID())))
		if lines := point.Lines(); len(lines) > 0 {
			fmt.Printf("    ↳ on lines: %s\n", memberList(lines))
		}
		if circles := point.Circles(); len(circles) > 0 {
			fmt.Printf("    ↳ on circles: %s\n", memberList(circles))
		}
	}

	fmt.Printf("\n[Lines]\n")
	for _, line := range cp.LineHandles(AllHandles) {
		fmt.Printf("%s\n", describeHandle(line, marker(line.HandleID())))
		fmt.Printf("    ↳ points: %s\n", memberList(line.Points()))
	}

	fmt.Printf("\n[Circles]\n")
	for _, circle := range cp.CircleHandles(AllHandles) {
		fmt.Printf("%s\n", describeHandle(circle, marker(circle.HandleID())))
		fmt.Printf("    ↳ points: %s\n", memberList(circle.Points()))
	}
}
