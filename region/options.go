package region

import (
	"runtime"

	"github.com/osuushi/basins/geometry"
)

type options struct {
	rule      geometry.Rule
	prefilter bool
	workers   int
}

func defaultOptions() options {
	return options{
		rule:      geometry.EvenOdd,
		prefilter: true,
		workers:   runtime.GOMAXPROCS(0),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a Basin, ComposedBasin or batch query. Options that do
// not apply where they are passed are ignored.
type Option func(*options)

// WithRule picks the membership test. The default is geometry.EvenOdd. It only
// affects NewBasin: a ComposedBasin defers to the rule of each member, and the
// package level ContainsAll to whatever r does.
func WithRule(rule geometry.Rule) Option {
	return func(o *options) {
		o.rule = rule
	}
}

// WithoutPrefilter skips the bounding ball check and always runs the full
// membership test. Useful mostly for benchmarking the prefilter itself.
func WithoutPrefilter() Option {
	return func(o *options) {
		o.prefilter = false
	}
}

// WithWorkers bounds the number of goroutines a batch query uses. Values
// below one mean one.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
