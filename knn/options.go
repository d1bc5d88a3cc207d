// SPDX-License-Identifier: MIT

package knn

const (
	// DefaultK is the neighbourhood size.
	DefaultK = 3

	// DefaultDistanceWeighting counts every neighbour once.
	DefaultDistanceWeighting = false
)

const panicK = "knn: WithK: k must be > 0"

// Option mutates Options.
type Option func(*Options)

// Options holds the neighbourhood policy.
type Options struct {
	k        int
	weighted bool
}

// WithK sets the number of neighbours consulted. A k larger than the
// training table uses every row.
func WithK(k int) Option {
	if k < 1 {
		panic(panicK)
	}

	return func(o *Options) { o.k = k }
}

// WithDistanceWeighting weighs each neighbour by the inverse square of its
// distance.
func WithDistanceWeighting() Option {
	return func(o *Options) { o.weighted = true }
}

func gatherOptions(user ...Option) Options {
	o := Options{k: DefaultK, weighted: DefaultDistanceWeighting}
	for _, set := range user {
		set(&o)
	}

	return o
}
