// SPDX-License-Identifier: MIT

package decisiontree

// DefaultMaxEntropyStop keeps buckets whose label entropy is exactly 1.0
// splitting. Turning it on makes such buckets leaves, which stops XOR-like
// tables short of a perfect fit.
const DefaultMaxEntropyStop = false

// Option mutates Options.
type Option func(*Options)

// Options holds the induction policy.
type Options struct {
	maxEntropyStop bool // DefaultMaxEntropyStop
}

// WithMaxEntropyStop makes a bucket with entropy exactly 1.0 a leaf
// (in addition to pure buckets).
func WithMaxEntropyStop(on bool) Option {
	return func(o *Options) { o.maxEntropyStop = on }
}

func gatherOptions(user ...Option) Options {
	o := Options{maxEntropyStop: DefaultMaxEntropyStop}
	for _, set := range user {
		set(&o)
	}

	return o
}
