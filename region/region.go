// Package region builds named areas on top of the geometry primitives: basins
// (named polygons with a cached bounding ball), composed basins (unions of
// basins) and axis-aligned rectangles, plus concurrent membership queries over
// batches of points.
package region

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/osuushi/basins/geometry"
)

// Region is anything that can say whether a point lies inside it.
type Region interface {
	Contains(p geometry.Point) bool
}

var (
	_ Region = (*Basin)(nil)
	_ Region = (*ComposedBasin)(nil)
	_ Region = (*Rectangle)(nil)
)

// Checks that points can form a polygon the membership tests are meaningful
// for.
func validatePoints(points []geometry.Point) error {
	if len(points) < 3 {
		return errors.Errorf("need at least 3 vertices, got %d", len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Errorf("vertex %d is not finite: %s", i, p)
		}
	}
	return nil
}

func validateRule(rule geometry.Rule) error {
	switch rule {
	case geometry.EvenOdd, geometry.NonZero:
		return nil
	}
	return errors.Errorf("unknown membership rule %d", int(rule))
}

func warnRejected(kind, abbrev string, err error) {
	Logger().WithFields(logrus.Fields{
		"kind":   kind,
		"abbrev": abbrev,
	}).WithError(err).Warn("rejected region")
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
