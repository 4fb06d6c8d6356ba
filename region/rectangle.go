package region

import (
	"github.com/pkg/errors"

	"github.com/osuushi/basins/geometry"
)

// Rectangle is an axis-aligned box. Membership is a bounds check, so it skips
// the polygon tests entirely. Edges count as inside.
type Rectangle struct {
	bounds geometry.Bounds
}

func NewRectangle(xmin, xmax, ymin, ymax float64) (*Rectangle, error) {
	if !isFinite(xmin, xmax, ymin, ymax) {
		err := errors.Errorf("rectangle bounds must be finite: x [%g, %g], y [%g, %g]", xmin, xmax, ymin, ymax)
		warnRejected("rectangle", "", err)
		return nil, err
	}
	if xmin > xmax || ymin > ymax {
		err := errors.Errorf("inverted rectangle: x [%g, %g], y [%g, %g]", xmin, xmax, ymin, ymax)
		warnRejected("rectangle", "", err)
		return nil, err
	}
	return &Rectangle{geometry.Bounds{
		Min: geometry.Point{X: xmin, Y: ymin},
		Max: geometry.Point{X: xmax, Y: ymax},
	}}, nil
}

func (r *Rectangle) Bounds() geometry.Bounds {
	return r.bounds
}

func (r *Rectangle) Contains(p geometry.Point) bool {
	return r.bounds.Contains(p)
}

// The rectangle as a counterclockwise polygon, starting at the bottom left:
//
//	4-------3
//	|       |
//	1-------2
func (r *Rectangle) Polygon() geometry.Polygon {
	lo, hi := r.bounds.Min, r.bounds.Max
	return geometry.Polygon{Points: []geometry.Point{
		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
		{X: lo.X, Y: hi.Y},
	}}
}

func (r *Rectangle) Ball() geometry.Ball {
	return geometry.FastBall(r.Polygon())
}
