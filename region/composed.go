package region

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/osuushi/basins/dbg"
	"github.com/osuushi/basins/geometry"
)

// ComposedBasin is the union of several basins, such as a sea made of its
// sub-basins. A point is inside when any member contains it.
type ComposedBasin struct {
	Abbrev string
	Name   string

	basins []*Basin
	ball   geometry.Ball
	opts   options
}

// NewComposedBasin unites basins under one name. Only WithoutPrefilter and
// WithWorkers apply. WithRule is ignored, since each member keeps its own rule.
func NewComposedBasin(abbrev, name string, basins []*Basin, opts ...Option) (*ComposedBasin, error) {
	if len(basins) == 0 {
		err := errors.New("no member basins")
		warnRejected("composed basin", abbrev, err)
		return nil, errors.Wrapf(err, "composed basin %q", abbrev)
	}
	var points []geometry.Point
	for i, b := range basins {
		if b == nil {
			err := errors.Errorf("member %d is nil", i)
			warnRejected("composed basin", abbrev, err)
			return nil, errors.Wrapf(err, "composed basin %q", abbrev)
		}
		points = append(points, b.polygon.Points...)
	}

	c := &ComposedBasin{
		Abbrev: abbrev,
		Name:   name,
		basins: append([]*Basin(nil), basins...),
		ball:   geometry.FastBall(geometry.Polygon{Points: points}),
		opts:   buildOptions(opts),
	}

	if log := Logger(); log.IsLevelEnabled(logrus.DebugLevel) {
		log.WithFields(logrus.Fields{
			"abbrev":  abbrev,
			"members": len(basins),
			"radius":  c.ball.Radius,
		}).Debug("new composed basin")
	}
	return c, nil
}

func (c *ComposedBasin) Basins() []*Basin {
	return append([]*Basin(nil), c.basins...)
}

// Bounding ball over the vertices of every member.
func (c *ComposedBasin) Ball() geometry.Ball {
	return c.ball
}

func (c *ComposedBasin) Contains(p geometry.Point) bool {
	if c.opts.prefilter && !c.ball.Contains(p) {
		return false
	}
	for _, b := range c.basins {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

func (c *ComposedBasin) ContainsAll(ctx context.Context, points []geometry.Point) ([]bool, error) {
	return containsAll(ctx, c, points, c.opts.workers)
}

func (c *ComposedBasin) String() string {
	name := c.Name
	if name == "" {
		name = dbg.Name(c)
	}
	abbrevs := make([]string, len(c.basins))
	for i, b := range c.basins {
		abbrevs[i] = b.Abbrev
	}
	return fmt.Sprintf("ComposedBasin %s (%s) [%s]", c.Abbrev, name, strings.Join(abbrevs, ", "))
}
