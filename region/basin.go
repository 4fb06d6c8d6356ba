package region

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/osuushi/basins/dbg"
	"github.com/osuushi/basins/geometry"
)

// Basin is a named polygon. Its bounding ball is computed once, at
// construction, and used to reject far away points before running the full
// membership test.
type Basin struct {
	Abbrev string
	Name   string

	polygon geometry.Polygon
	ball    geometry.Ball
	opts    options
}

// NewBasin copies points into a new basin. The polygon needs at least three
// finite vertices.
func NewBasin(abbrev, name string, points []geometry.Point, opts ...Option) (*Basin, error) {
	o := buildOptions(opts)
	err := validatePoints(points)
	if err == nil {
		err = validateRule(o.rule)
	}
	if err != nil {
		warnRejected("basin", abbrev, err)
		return nil, errors.Wrapf(err, "basin %q", abbrev)
	}

	polygon := geometry.Polygon{Points: append([]geometry.Point(nil), points...)}
	b := &Basin{
		Abbrev:  abbrev,
		Name:    name,
		polygon: polygon,
		ball:    geometry.FastBall(polygon),
		opts:    o,
	}

	if log := Logger(); log.IsLevelEnabled(logrus.DebugLevel) {
		log.WithFields(logrus.Fields{
			"abbrev":   abbrev,
			"vertices": polygon.Len(),
			"radius":   b.ball.Radius,
			"rule":     o.rule.String(),
		}).Debug("new basin")
	}
	return b, nil
}

// The basin's polygon. It shares storage with the basin and must not be
// modified.
func (b *Basin) Polygon() geometry.Polygon {
	return b.polygon
}

func (b *Basin) Ball() geometry.Ball {
	return b.ball
}

func (b *Basin) Rule() geometry.Rule {
	return b.opts.rule
}

func (b *Basin) Centroid() geometry.Point {
	return b.polygon.Centroid()
}

func (b *Basin) Contains(p geometry.Point) bool {
	if b.opts.prefilter && !b.ball.Contains(p) {
		return false
	}
	return geometry.Contains(b.polygon, p, b.opts.rule)
}

// ContainsAll tests every point, spreading the work over the basin's workers.
// The i-th result belongs to the i-th point.
func (b *Basin) ContainsAll(ctx context.Context, points []geometry.Point) ([]bool, error) {
	return containsAll(ctx, b, points, b.opts.workers)
}

func (b *Basin) String() string {
	name := b.Name
	if name == "" {
		name = dbg.Name(b)
	}
	return fmt.Sprintf("Basin %s (%s) %d vertices", b.Abbrev, name, b.polygon.Len())
}
