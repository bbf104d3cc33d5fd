package constructor

import (
	"math/rand"

	"github.com/wwn13/geogen/pkg/analytic"
	"github.com/wwn13/geogen/pkg/configurations"
)

// Random layout of loose objects. Points are kept in general position
// (pairwise separated, no near-collinear triples) so that degenerate random
// instances stay rare; the reseed budget catches the rest.
const (
	layoutSpan          = 5.0
	layoutMinSeparation = 0.5
	layoutMinCross      = 0.3
	layoutResamples     = 100
)

type looseLayout struct {
	rnd    *rand.Rand
	points []analytic.Point
}

func newLooseLayout(rnd *rand.Rand) *looseLayout {
	return &looseLayout{rnd: rnd}
}

func (l *looseLayout) coordinate() float64 {
	return (l.rnd.Float64()*2 - 1) * layoutSpan
}

func (l *looseLayout) randomPoint() analytic.Point {
	for attempt := 0; attempt < layoutResamples; attempt++ {
		candidate := analytic.Point{X: l.coordinate(), Y: l.coordinate()}
		if l.inGeneralPosition(candidate) {
			l.points = append(l.points, candidate)
			return candidate
		}
	}
	// Give up on general position; the consistency oracle will reject the
	// instance if the near-degeneracy actually matters.
	candidate := analytic.Point{X: l.coordinate(), Y: l.coordinate()}
	l.points = append(l.points, candidate)
	return candidate
}

func (l *looseLayout) inGeneralPosition(candidate analytic.Point) bool {
	for _, point := range l.points {
		if candidate.DistanceTo(point) < layoutMinSeparation {
			return false
		}
	}
	for i := 0; i < len(l.points); i++ {
		for j := i + 1; j < len(l.points); j++ {
			p, q := l.points[i], l.points[j]
			cross := (q.X-p.X)*(candidate.Y-p.Y) - (q.Y-p.Y)*(candidate.X-p.X)
			if cross < layoutMinCross && cross > -layoutMinCross {
				return false
			}
		}
	}
	return true
}

func (l *looseLayout) randomLine() analytic.Line {
	for {
		p := analytic.Point{X: l.coordinate(), Y: l.coordinate()}
		q := analytic.Point{X: l.coordinate(), Y: l.coordinate()}
		line, err := analytic.NewLineFromPoints(p, q)
		if err == nil {
			return line
		}
	}
}

func (l *looseLayout) randomCircle() analytic.Circle {
	return analytic.Circle{
		Center: analytic.Point{X: l.coordinate(), Y: l.coordinate()},
		Radius: 1 + 3*l.rnd.Float64(),
	}
}

// Realize picks a random analytic value for a loose object.
func (l *looseLayout) Realize(object *configurations.LooseObject) analytic.AnalyticObject {
	switch object.Kind() {
	case configurations.Point:
		return l.randomPoint()
	case configurations.Line:
		return l.randomLine()
	default:
		return l.randomCircle()
	}
}
