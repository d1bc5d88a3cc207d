// SPDX-License-Identifier: MIT

package neuralnet

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// sigmoid is the logistic activation.
func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

// Forward propagates x and returns the output layer's activations. The
// returned slice is the network's scratch buffer: it is overwritten by the
// next pass. len(x) must equal Inputs().
//
// Complexity:
//   - Time O(total weights), no allocations.
func (n *Network) Forward(x []float64) []float64 {
	in := x
	for _, l := range n.Layers() {
		for k := range l.units {
			u := &l.units[k]
			last := len(u.weights) - 1
			u.output = sigmoid(floats.Dot(u.weights[:last], in) + u.weights[last])
			l.out[k] = u.output
		}
		in = l.out
	}

	return in
}

// Step runs one backpropagation update for the example (x, target) whose
// forward pass has just been computed. target is already scaled into [0,1].
//
// Implementation:
//   - Stage 1 (errors, output layer first):
//     output unit: (t - o)·o·(1 - o)
//     hidden unit k: o·(1 - o)·Σ next.w[k]·next.err
//   - Stage 2 (updates, input side first): derivative[j] += err·in[j],
//     derivative[bias] += err; then for every weight
//     delta = rate·derivative + momentum·lastDelta; w += delta;
//     lastDelta = delta; derivative = 0.
//
// All errors are computed before any weight changes.
func (n *Network) Step(x, target []float64) {
	top := len(n.layers) - 1
	for li, l := range n.Backward() {
		for k := range l.units {
			u := &l.units[k]
			o := u.output
			if li == top {
				u.err = (target[k] - o) * o * (1 - o)
				continue
			}
			sum := 0.0
			for _, next := range n.layers[li+1].units {
				sum += next.weights[k] * next.err
			}
			u.err = sum * o * (1 - o)
		}
	}

	in := x
	for _, l := range n.Layers() {
		for k := range l.units {
			u := &l.units[k]
			bias := len(in)
			floats.AddScaled(u.derivative[:bias], u.err, in)
			u.derivative[bias] += u.err
			for j := range u.weights {
				delta := n.rate*u.derivative[j] + n.momentum*u.lastDelta[j]
				u.weights[j] += delta
				u.lastDelta[j] = delta
				u.derivative[j] = 0
			}
		}
		in = l.out
	}
}

// Normalize maps a label into [0,1] with the fixed label range.
// A degenerate range (lo == hi) maps everything to 0.
func (n *Network) Normalize(v float64) float64 {
	if n.hi == n.lo {
		return 0
	}

	return (v - n.lo) / (n.hi - n.lo)
}

// Denormalize maps an output back to label scale and rounds it.
func (n *Network) Denormalize(o float64) float64 {
	return math.Round(o*(n.hi-n.lo) + n.lo)
}
