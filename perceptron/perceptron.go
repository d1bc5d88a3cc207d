// SPDX-License-Identifier: MIT

package perceptron

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/matrix"
)

const (
	opInit    = "perceptron.Init"
	opFit     = "perceptron.Fit"
	opTrain   = "perceptron.Train"
	opPredict = "perceptron.Predict"
)

// flatEpsilon is the largest accuracy change that still counts as flat.
const flatEpsilon = 0.01

// Perceptron is a bank of threshold units.
type Perceptron struct {
	rng     *rand.Rand
	opts    Options
	weights [][]float64 // one vector per unit; bias weight last under WithBias
	inputs  int
}

var _ learner.Learner = (*Perceptron)(nil)

// New returns an uninitialized perceptron shuffling with rng.
func New(rng *rand.Rand, opts ...Option) *Perceptron {
	return &Perceptron{rng: rng, opts: gatherOptions(opts...)}
}

// Units returns the number of units (0 before Init).
func (p *Perceptron) Units() int { return len(p.weights) }

// Weights returns a copy of unit u's weights, or nil when u is out of range.
func (p *Perceptron) Weights(u int) []float64 {
	if u < 0 || u >= len(p.weights) {
		return nil
	}

	return append([]float64(nil), p.weights[u]...)
}

// Init sizes and zeroes the weight bank: one unit when the label has at
// most two values (continuous labels included), one per value otherwise.
//
// Errors:
//   - learner.ErrShapeMismatch, learner.ErrEmptyTable.
func (p *Perceptron) Init(features, labels *matrix.Table) error {
	if err := learner.ValidateTraining(features, labels); err != nil {
		return fmt.Errorf("%s: %w", opInit, err)
	}

	units := labels.ValueCount(0)
	if units <= 2 {
		units = 1
	}
	width := features.Cols()
	if p.opts.bias {
		width++
	}
	p.inputs = features.Cols()
	p.weights = make([][]float64, units)
	for u := range p.weights {
		p.weights[u] = make([]float64, width)
	}

	return nil
}

// Fit runs epochs until stall consecutive epochs leave training accuracy
// within 0.01 of the previous epoch, or until WithMaxEpochs. It returns the
// number of epochs run; stall < 1 runs none. The caller's tables are not
// modified.
//
// Implementation:
//   - Stage 1: clone the tables, measure the starting accuracy.
//   - Stage 2: per epoch, sweep every unit over all rows in the current
//     order, re-measure, count flat epochs, reshuffle.
//
// Errors:
//   - ErrNotInitialized, ErrNilRand, ErrMissingValue,
//     learner.ErrShapeMismatch, learner.ErrMissingLabel.
func (p *Perceptron) Fit(features, labels *matrix.Table, stall int) (int, error) {
	if p.weights == nil {
		return 0, fmt.Errorf("%s: %w", opFit, ErrNotInitialized)
	}
	if err := learner.ValidateTraining(features, labels); err != nil {
		return 0, fmt.Errorf("%s: %w", opFit, err)
	}
	if features.Cols() != p.inputs {
		return 0, fmt.Errorf("%s: %d features, initialized for %d: %w", opFit, features.Cols(), p.inputs, learner.ErrShapeMismatch)
	}
	if p.rng == nil {
		return 0, fmt.Errorf("%s: %w", opFit, ErrNilRand)
	}

	f, l := features.Clone(), labels.Clone()
	acc, err := learner.MeasureAccuracy(p, f, l, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opFit, err)
	}

	var epochs, flat int
	for flat < stall && epochs < p.opts.maxEpochs {
		for u := range p.weights {
			p.sweep(u, f, l)
		}
		next, err := learner.MeasureAccuracy(p, f, l, nil)
		if err != nil {
			return epochs, fmt.Errorf("%s: epoch %d: %w", opFit, epochs+1, err)
		}
		if math.Abs(next-acc) <= flatEpsilon {
			flat++
		} else {
			flat = 0
		}
		acc = next
		if err = f.Shuffle(p.rng, l); err != nil {
			return epochs, fmt.Errorf("%s: %w", opFit, err)
		}
		epochs++
	}

	return epochs, nil
}

// sweep applies the perceptron rule for unit u to every row in order.
// Rows and labels were checked by the accuracy pass that precedes every sweep.
func (p *Perceptron) sweep(u int, features, labels *matrix.Table) {
	w := p.weights[u]
	for i, row := range features.All() {
		y, _ := labels.At(i, 0)
		target := y
		if len(p.weights) > 1 {
			target = 0
			if int(math.Round(y)) == u {
				target = 1
			}
		}
		diff := target - fire(p.activation(w, row))
		if diff == 0 {
			continue
		}
		step := p.opts.rate * diff
		floats.AddScaled(w[:len(row)], step, row)
		if p.opts.bias {
			w[len(row)] += step
		}
	}
}

// activation is the dot product of w with row, plus the bias weight.
func (p *Perceptron) activation(w, row []float64) float64 {
	z := floats.Dot(w[:len(row)], row)
	if p.opts.bias {
		z += w[len(row)]
	}

	return z
}

// fire thresholds an activation at 0.
func fire(z float64) float64 {
	if z >= 0 {
		return 1
	}

	return 0
}

// Train is Init followed by Fit with the WithStallEpochs budget.
func (p *Perceptron) Train(features, labels *matrix.Table) error {
	if err := p.Init(features, labels); err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}
	if _, err := p.Fit(features, labels, p.opts.stall); err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}

	return nil
}

// Predict returns the single unit's output, or in the one-vs-rest case the
// class of the fired unit with the lowest activation (0 when none fires).
//
// Errors:
//   - learner.ErrNotTrained, learner.ErrShapeMismatch, ErrMissingValue.
func (p *Perceptron) Predict(row []float64) (float64, error) {
	if p.weights == nil {
		return 0, fmt.Errorf("%s: %w", opPredict, learner.ErrNotTrained)
	}
	if err := learner.ValidateRow(row, p.inputs); err != nil {
		return 0, fmt.Errorf("%s: %w", opPredict, err)
	}
	for j, v := range row {
		if matrix.IsMissing(v) {
			return 0, fmt.Errorf("%s: column %d: %w", opPredict, j, ErrMissingValue)
		}
	}

	if len(p.weights) == 1 {
		return fire(p.activation(p.weights[0], row)), nil
	}
	best, lowest := 0, math.Inf(1)
	for u, w := range p.weights {
		if z := p.activation(w, row); z >= 0 && z < lowest {
			best, lowest = u, z
		}
	}

	return float64(best), nil
}
