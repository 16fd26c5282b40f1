package vp

import "github.com/viant/vptree/vptree"

// Option configures an Index.
type Option func(*Index)

// WithSeed fixes the vantage point generator so rebuilt trees keep their shape.
func WithSeed(seed uint64) Option {
	return func(i *Index) {
		i.buildOpts = append(i.buildOpts, vptree.WithSeed(seed))
	}
}
