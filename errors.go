package basins

import "github.com/pkg/errors"

// ErrTooFewVertices is returned when a polygon is too small for a membership
// test to mean anything.
var ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")

func checkMembershipPolygon(polygon Polygon) error {
	if polygon.Len() < 3 {
		return errors.Wrapf(ErrTooFewVertices, "got %d", polygon.Len())
	}
	return nil
}
