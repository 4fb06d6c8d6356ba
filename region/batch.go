package region

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/osuushi/basins/geometry"
)

// Smallest chunk handed to a worker. Below this, goroutine overhead dominates
// the membership tests themselves.
const minChunkSize = 64

// How many points a worker tests between context checks.
const cancelCheckInterval = 256

// ContainsAll tests every point against r concurrently. The i-th result
// belongs to the i-th point. If ctx is cancelled before all points are tested,
// no results are returned, only ctx's error. Only WithWorkers matters here.
func ContainsAll(ctx context.Context, r Region, points []geometry.Point, opts ...Option) ([]bool, error) {
	return containsAll(ctx, r, points, buildOptions(opts).workers)
}

func containsAll(ctx context.Context, r Region, points []geometry.Point, workers int) ([]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	log := Logger()
	if log.IsLevelEnabled(logrus.DebugLevel) {
		log.WithFields(logrus.Fields{
			"region":  r,
			"points":  len(points),
			"workers": workers,
		}).Debug("batch membership")
	}

	result := make([]bool, len(points))
	chunkSize := (len(points) + workers - 1) / workers
	if chunkSize < minChunkSize {
		chunkSize = minChunkSize
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(points); start += chunkSize {
		start, end := start, min(start+chunkSize, len(points))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				result[i] = r.Contains(points[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Debug("batch membership cancelled")
		return nil, err
	}
	return result, nil
}
