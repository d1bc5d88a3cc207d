// SPDX-License-Identifier: MIT

package neuralnet

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStallEpochs is the patience of the default StopCondition.
	DefaultStallEpochs = 20

	// DefaultMaxEpochs caps training regardless of the StopCondition.
	DefaultMaxEpochs = 1000

	// DefaultValidationFraction validates on the training rows themselves.
	DefaultValidationFraction = 0.0
)

// ---------- Internal panic messages ----------

const (
	panicRate       = "neuralnet: WithLearningRate: rate must be finite and > 0"
	panicMomentum   = "neuralnet: WithMomentum: momentum must be in [0,1)"
	panicMaxEpochs  = "neuralnet: WithMaxEpochs: epochs must be > 0"
	panicFraction   = "neuralnet: WithValidationFraction: fraction must be in [0,1)"
	panicHidden     = "neuralnet: WithHidden: layer sizes must be > 0"
	panicStop       = "neuralnet: WithStopCondition: condition must not be nil"
	panicNilNetwork = "neuralnet: WithNetwork: network must not be nil"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective training configuration.
type Options struct {
	hidden     []int         // nil ⇒ one hidden layer of 2×inputs units
	rate       float64       // DefaultLearningRate
	momentum   float64       // DefaultMomentum
	stop       StopCondition // StopAfterStall(DefaultStallEpochs)
	maxEpochs  int           // DefaultMaxEpochs
	validation float64       // DefaultValidationFraction
	network    *Network      // caller-built topology, used as a template
}

// WithHidden sets the hidden layer sizes, input side first. An explicit
// empty list trains a network with no hidden layer.
func WithHidden(sizes ...int) Option {
	for _, s := range sizes {
		if s < 1 {
			panic(panicHidden)
		}
	}
	cp := append(make([]int, 0, len(sizes)), sizes...)

	return func(o *Options) { o.hidden = cp }
}

// WithLearningRate sets the step size of learner-built networks.
func WithLearningRate(rate float64) Option {
	if !(rate > 0) || math.IsInf(rate, 0) {
		panic(panicRate)
	}

	return func(o *Options) { o.rate = rate }
}

// WithMomentum sets the momentum of learner-built networks.
func WithMomentum(m float64) Option {
	if !(m >= 0 && m < 1) {
		panic(panicMomentum)
	}

	return func(o *Options) { o.momentum = m }
}

// WithStopCondition replaces the default stall-based condition.
func WithStopCondition(c StopCondition) Option {
	if c == nil {
		panic(panicStop)
	}

	return func(o *Options) { o.stop = c }
}

// WithMaxEpochs caps the number of epochs.
func WithMaxEpochs(n int) Option {
	if n < 1 {
		panic(panicMaxEpochs)
	}

	return func(o *Options) { o.maxEpochs = n }
}

// WithValidationFraction holds out that fraction of the training rows (after
// a shuffle) for validation in Train. 0 validates on the training rows.
func WithValidationFraction(f float64) Option {
	if !(f >= 0 && f < 1) {
		panic(panicFraction)
	}

	return func(o *Options) { o.validation = f }
}

// WithNetwork trains a copy of net instead of building one. The copy keeps
// net's learning rate, momentum and label range; WithHidden, WithLearningRate
// and WithMomentum do not apply to it.
func WithNetwork(net *Network) Option {
	if net == nil {
		panic(panicNilNetwork)
	}
	tpl := net.Clone()

	return func(o *Options) { o.network = tpl }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		rate:       DefaultLearningRate,
		momentum:   DefaultMomentum,
		stop:       StopAfterStall(DefaultStallEpochs),
		maxEpochs:  DefaultMaxEpochs,
		validation: DefaultValidationFraction,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

