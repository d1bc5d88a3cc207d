// SPDX-License-Identifier: MIT

package neuralnet

import (
	"fmt"
	"iter"
	"math/rand"
	"strconv"
	"strings"
)

// Default hyperparameters of a freshly built network.
const (
	DefaultLearningRate = 0.1
	DefaultMomentum     = 0.0
)

// unit is one sigmoid neuron. weights, derivative and lastDelta all have
// length inputs+1; the last slot belongs to the bias.
type unit struct {
	weights    []float64
	derivative []float64
	lastDelta  []float64
	output     float64
	err        float64
}

// Layer is a fully connected row of units.
type Layer struct {
	units []unit
	out   []float64 // outputs of the last forward pass, one per unit
}

// Network is an ordered sequence of layers plus the hyperparameters that
// drive its updates. Layer i's units take layer i-1's outputs (or the
// network inputs for i == 0) plus one bias.
type Network struct {
	inputs   int
	layers   []*Layer
	rate     float64
	momentum float64
	lo, hi   float64 // label range used to scale targets into [0,1]
}

// NewNetwork returns an empty network over the given number of inputs,
// with the default hyperparameters and the label range [0,1].
//
// Errors:
//   - ErrTopology when inputs < 1.
func NewNetwork(inputs int) (*Network, error) {
	if inputs < 1 {
		return nil, fmt.Errorf("NewNetwork(%d): %w", inputs, ErrTopology)
	}

	return &Network{inputs: inputs, rate: DefaultLearningRate, momentum: DefaultMomentum, lo: 0, hi: 1}, nil
}

// Build returns a network over inputs with one layer per entry of sizes
// (the last entry is the output layer).
func Build(rng *rand.Rand, inputs int, sizes ...int) (*Network, error) {
	n, err := NewNetwork(inputs)
	if err != nil {
		return nil, err
	}
	for _, size := range sizes {
		if err = n.AddLayer(size, rng); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// AddLayer appends a layer of units fed by the current last layer. Weights
// start uniform in [0,1), drawn from rng in unit-major order.
//
// Errors:
//   - ErrTopology when units < 1; ErrNilRand when rng is nil.
func (n *Network) AddLayer(units int, rng *rand.Rand) error {
	if units < 1 {
		return fmt.Errorf("AddLayer(%d): %w", units, ErrTopology)
	}
	if rng == nil {
		return fmt.Errorf("AddLayer: %w", ErrNilRand)
	}
	width := n.inputs + 1
	if len(n.layers) > 0 {
		width = len(n.layers[len(n.layers)-1].units) + 1
	}

	l := &Layer{units: make([]unit, units), out: make([]float64, units)}
	for i := range l.units {
		w := make([]float64, width)
		for j := range w {
			w[j] = rng.Float64()
		}
		l.units[i] = unit{weights: w, derivative: make([]float64, width), lastDelta: make([]float64, width)}
	}
	n.layers = append(n.layers, l)

	return nil
}

// SetLearningRate sets the step size applied to accumulated derivatives.
func (n *Network) SetLearningRate(r float64) { n.rate = r }

// SetMomentum sets the fraction of the previous delta carried into the next one.
func (n *Network) SetMomentum(m float64) { n.momentum = m }

// SetLabelRange fixes the label bounds used by Normalize and Denormalize.
func (n *Network) SetLabelRange(lo, hi float64) { n.lo, n.hi = lo, hi }

// LabelRange returns the bounds set by SetLabelRange.
func (n *Network) LabelRange() (lo, hi float64) { return n.lo, n.hi }

// Inputs returns the width of the input vector.
func (n *Network) Inputs() int { return n.inputs }

// Outputs returns the width of the output layer (0 with no layers).
func (n *Network) Outputs() int {
	if len(n.layers) == 0 {
		return 0
	}

	return len(n.layers[len(n.layers)-1].units)
}

// Depth returns the number of layers.
func (n *Network) Depth() int { return len(n.layers) }

// Layers yields (index, layer) from the input side to the output layer.
func (n *Network) Layers() iter.Seq2[int, *Layer] {
	return func(yield func(int, *Layer) bool) {
		for i := 0; i < len(n.layers); i++ {
			if !yield(i, n.layers[i]) {
				return
			}
		}
	}
}

// Backward yields (index, layer) from the output layer to the input side.
// The layer order itself is never changed.
func (n *Network) Backward() iter.Seq2[int, *Layer] {
	return func(yield func(int, *Layer) bool) {
		for i := len(n.layers) - 1; i >= 0; i-- {
			if !yield(i, n.layers[i]) {
				return
			}
		}
	}
}

// Units returns the number of units in the layer.
func (l *Layer) Units() int { return len(l.units) }

// Weights returns a copy of one unit's weights (bias last).
//
// Errors:
//   - ErrNoIndex.
func (n *Network) Weights(layer, u int) ([]float64, error) {
	un, err := n.unitAt(layer, u)
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), un.weights...), nil
}

// SetWeights overwrites one unit's weights (bias last).
//
// Errors:
//   - ErrNoIndex; ErrTopology when len(w) differs from the unit's width.
func (n *Network) SetWeights(layer, u int, w []float64) error {
	un, err := n.unitAt(layer, u)
	if err != nil {
		return err
	}
	if len(w) != len(un.weights) {
		return fmt.Errorf("SetWeights(%d,%d): %d weights, want %d: %w", layer, u, len(w), len(un.weights), ErrTopology)
	}
	copy(un.weights, w)

	return nil
}

func (n *Network) unitAt(layer, u int) (*unit, error) {
	if layer < 0 || layer >= len(n.layers) || u < 0 || u >= len(n.layers[layer].units) {
		return nil, fmt.Errorf("unit (%d,%d): %w", layer, u, ErrNoIndex)
	}

	return &n.layers[layer].units[u], nil
}

// Clone returns a fully independent copy: topology, weights, derivative
// and momentum buffers, scratch outputs and errors, hyperparameters.
//
// Complexity:
//   - Time/Space O(total weights).
func (n *Network) Clone() *Network {
	cp := *n
	cp.layers = make([]*Layer, len(n.layers))
	for i, l := range n.layers {
		nl := &Layer{units: make([]unit, len(l.units)), out: append([]float64(nil), l.out...)}
		for k, u := range l.units {
			nl.units[k] = unit{
				weights:    append([]float64(nil), u.weights...),
				derivative: append([]float64(nil), u.derivative...),
				lastDelta:  append([]float64(nil), u.lastDelta...),
				output:     u.output,
				err:        u.err,
			}
		}
		cp.layers[i] = nl
	}

	return &cp
}

// String summarizes the topology and hyperparameters, e.g.
// "4-8-1 rate=0.1 momentum=0.9".
func (n *Network) String() string {
	parts := []string{strconv.Itoa(n.inputs)}
	for _, l := range n.layers {
		parts = append(parts, strconv.Itoa(len(l.units)))
	}

	return fmt.Sprintf("%s rate=%g momentum=%g", strings.Join(parts, "-"), n.rate, n.momentum)
}
