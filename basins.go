// Bounding balls and point-in-polygon tests for Go.
//
// This package takes a closed polygon, given as its vertices in order without
// repeating the first, and answers three questions about it: roughly how big
// a circle is needed to hold it (Ritter's fast bounding ball), whether a point
// is inside by the even-odd rule (crossing number), and how many times the
// boundary winds around a point (winding number).
//
// The functions here validate their input and return errors. The geometry
// package has the same algorithms without the checks, and the region package
// builds named basins on top of them.
package basins

import "github.com/osuushi/basins/geometry"

type Point = geometry.Point
type Vector = geometry.Vector
type Polygon = geometry.Polygon
type Ball = geometry.Ball

// Approximate minimum bounding ball of the polygon's vertices. Every vertex is
// inside the result, but the result is not guaranteed minimal, and reordering
// the vertices may change it.
//
// The polygon needs at least one vertex.
func BoundingBall(polygon Polygon) (result Ball, err error) {
	defer func() {
		recoveredErr := geometry.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = Ball{}
			err = recoveredErr
		}
	}()
	return geometry.FastBall(polygon), nil
}

// Whether point is inside polygon by the even-odd rule. Points exactly on an
// edge may be reported either way.
//
// The polygon needs at least three vertices.
func CrossingNumberInside(polygon Polygon, point Point) (bool, error) {
	if err := checkMembershipPolygon(polygon); err != nil {
		return false, err
	}
	return geometry.ContainsEvenOdd(polygon, point), nil
}

// Signed winding number of polygon around point. Zero means outside; any
// other value means inside. Counterclockwise polygons wind positively.
//
// The polygon needs at least three vertices.
func WindingNumberOf(polygon Polygon, point Point) (int, error) {
	if err := checkMembershipPolygon(polygon); err != nil {
		return 0, err
	}
	return geometry.WindingNumber(polygon, point), nil
}
