// SPDX-License-Identifier: MIT

package perceptron

import "math"

const (
	// DefaultLearningRate scales every weight nudge.
	DefaultLearningRate = 0.1

	// DefaultStallEpochs is the flat-epoch budget Train passes to Fit.
	DefaultStallEpochs = 5

	// DefaultMaxEpochs caps Fit on data that never settles.
	DefaultMaxEpochs = 1000

	// DefaultBias leaves bias handling to the caller's columns.
	DefaultBias = false
)

const (
	panicRate      = "perceptron: WithLearningRate: rate must be finite and > 0"
	panicStall     = "perceptron: WithStallEpochs: epochs must be > 0"
	panicMaxEpochs = "perceptron: WithMaxEpochs: epochs must be > 0"
)

// Option mutates Options.
type Option func(*Options)

// Options holds the training configuration.
type Options struct {
	rate      float64
	stall     int
	maxEpochs int
	bias      bool
}

// WithLearningRate sets the step size.
func WithLearningRate(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic(panicRate)
	}

	return func(o *Options) { o.rate = r }
}

// WithStallEpochs sets how many consecutive flat epochs end Train.
func WithStallEpochs(n int) Option {
	if n < 1 {
		panic(panicStall)
	}

	return func(o *Options) { o.stall = n }
}

// WithMaxEpochs caps the number of epochs Fit may run.
func WithMaxEpochs(n int) Option {
	if n < 1 {
		panic(panicMaxEpochs)
	}

	return func(o *Options) { o.maxEpochs = n }
}

// WithBias gives every unit an extra weight fed by a constant 1, for tables
// that carry no bias column of their own.
func WithBias() Option {
	return func(o *Options) { o.bias = true }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		rate:      DefaultLearningRate,
		stall:     DefaultStallEpochs,
		maxEpochs: DefaultMaxEpochs,
		bias:      DefaultBias,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
