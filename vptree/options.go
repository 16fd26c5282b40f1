package vptree

import "math/rand/v2"

type options struct {
	rng *rand.Rand
}

// Option configures Build.
type Option func(*options)

// WithRand sets the generator used to pick vantage points. The generator is
// only used for the duration of the Build call. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed makes tree shape reproducible by seeding the vantage point
// generator.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}
