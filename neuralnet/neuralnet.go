// SPDX-License-Identifier: MIT

package neuralnet

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/matrix"
)

const (
	opTrain    = "neuralnet.Train"
	opTrainVal = "neuralnet.TrainWithValidation"
	opPredict  = "neuralnet.Predict"
)

// NeuralNet is the learner wrapping a Network.
type NeuralNet struct {
	rng  *rand.Rand
	opts Options
	net  *Network
}

var _ learner.Learner = (*NeuralNet)(nil)

// New returns an untrained learner drawing all randomness from rng.
func New(rng *rand.Rand, opts ...Option) *NeuralNet {
	return &NeuralNet{rng: rng, opts: gatherOptions(opts...)}
}

// Network returns the trained network (nil before training).
func (nn *NeuralNet) Network() *Network { return nn.net }

// Train fits a fresh network. Validation uses a held-out share of the rows
// when WithValidationFraction > 0 (and the split leaves both sides
// non-empty), the training rows otherwise. The caller's tables are not
// modified.
//
// Errors:
//   - see TrainWithValidation.
func (nn *NeuralNet) Train(features, labels *matrix.Table) error {
	if err := learner.ValidateTraining(features, labels); err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}
	if nn.rng == nil {
		return fmt.Errorf("%s: %w", opTrain, ErrNilRand)
	}

	vf, vl := features, labels
	if n := int(nn.opts.validation * float64(features.Rows())); n > 0 && n < features.Rows() {
		f, l := features.Clone(), labels.Clone()
		if err := f.Shuffle(nn.rng, l); err != nil {
			return fmt.Errorf("%s: %w", opTrain, err)
		}
		var err error
		if vf, err = f.Slice(0, 0, n, f.Cols()); err != nil {
			return fmt.Errorf("%s: %w", opTrain, err)
		}
		vl, _ = l.Slice(0, 0, n, 1)
		features, _ = f.Slice(n, 0, f.Rows()-n, f.Cols())
		labels, _ = l.Slice(n, 0, l.Rows()-n, 1)
	}

	if _, err := nn.TrainWithValidation(features, labels, vf, vl); err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}

	return nil
}

// TrainWithValidation trains on (features, labels), scores every epoch on
// (vFeatures, vLabels) and returns the number of epochs run. The caller's
// tables are not modified, and on error the learner keeps the network it
// had before the call.
//
// Implementation:
//   - Stage 1: check both table pairs up front, including width and missing
//     values of the validation rows.
//   - Stage 2: build the network (or copy the WithNetwork template); the
//     label range comes from the training labels for built networks.
//   - Stage 3: loop epochs: pass, reshuffle, validate, snapshot on strict
//     improvement; stop on the StopCondition or the epoch cap.
//   - Stage 4: install the best snapshot (the live network if none improved
//     on 0 accuracy).
//
// Errors:
//   - learner.ErrShapeMismatch, learner.ErrEmptyTable, learner.ErrMissingLabel,
//     ErrMissingValue, ErrTopology, ErrNilRand.
func (nn *NeuralNet) TrainWithValidation(features, labels, vFeatures, vLabels *matrix.Table) (int, error) {
	if err := learner.ValidateTraining(features, labels); err != nil {
		return 0, fmt.Errorf("%s: %w", opTrainVal, err)
	}
	if err := learner.ValidateTraining(vFeatures, vLabels); err != nil {
		return 0, fmt.Errorf("%s: validation: %w", opTrainVal, err)
	}
	if vFeatures.Cols() != features.Cols() {
		return 0, fmt.Errorf("%s: validation has %d features, training %d: %w",
			opTrainVal, vFeatures.Cols(), features.Cols(), learner.ErrShapeMismatch)
	}
	if nn.rng == nil {
		return 0, fmt.Errorf("%s: %w", opTrainVal, ErrNilRand)
	}
	if err := checkKnown(features, labels); err != nil {
		return 0, fmt.Errorf("%s: %w", opTrainVal, err)
	}
	if err := checkKnown(vFeatures, vLabels); err != nil {
		return 0, fmt.Errorf("%s: validation: %w", opTrainVal, err)
	}

	net, err := nn.prepare(features, labels)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opTrainVal, err)
	}

	prev := nn.net
	nn.net = net // Predict scores the live network during the epochs
	best, epochs, err := nn.runEpochs(net, features, labels, vFeatures, vLabels)
	if err != nil {
		nn.net = prev
		return epochs, fmt.Errorf("%s: %w", opTrainVal, err)
	}
	nn.net = best

	return epochs, nil
}

// runEpochs trains net until the stop rule fires and returns the best snapshot
// (net itself when no epoch scored above 0).
func (nn *NeuralNet) runEpochs(net *Network, features, labels, vFeatures, vLabels *matrix.Table) (*Network, int, error) {
	f, l := features.Clone(), labels.Clone()
	target := make([]float64, 1)
	var (
		best        = net
		acc         float64
		bestAcc     float64
		notImproved int
		epochs      int
		err         error
	)
	for {
		epochs++
		for i, row := range f.All() {
			y, _ := l.At(i, 0)
			target[0] = net.Normalize(y)
			net.Forward(row)
			net.Step(row, target)
		}
		if err = f.Shuffle(nn.rng, l); err != nil {
			return nil, epochs, err
		}

		acc, err = learner.MeasureAccuracy(nn, vFeatures, vLabels, nil)
		if err != nil {
			return nil, epochs, fmt.Errorf("epoch %d: %w", epochs, err)
		}
		if acc > bestAcc {
			best, bestAcc, notImproved = net.Clone(), acc, 0
		} else {
			notImproved++
		}
		if nn.opts.stop(bestAcc, notImproved) || epochs >= nn.opts.maxEpochs {
			return best, epochs, nil
		}
	}
}

// prepare returns the network to train.
func (nn *NeuralNet) prepare(features, labels *matrix.Table) (*Network, error) {
	if tpl := nn.opts.network; tpl != nil {
		if tpl.Inputs() != features.Cols() || tpl.Outputs() != 1 {
			return nil, fmt.Errorf("network %s for %d inputs and 1 output: %w", tpl, features.Cols(), ErrTopology)
		}

		return tpl.Clone(), nil
	}

	hidden := nn.opts.hidden
	if hidden == nil {
		hidden = []int{2 * features.Cols()}
	}
	net, err := Build(nn.rng, features.Cols(), append(append([]int(nil), hidden...), 1)...)
	if err != nil {
		return nil, err
	}
	net.SetLearningRate(nn.opts.rate)
	net.SetMomentum(nn.opts.momentum)

	lo, err := labels.ColumnMin(0)
	if err != nil {
		return nil, err
	}
	hi, _ := labels.ColumnMax(0)
	net.SetLabelRange(lo, hi)

	return net, nil
}

// checkKnown rejects MissingValue anywhere in the training data.
func checkKnown(features, labels *matrix.Table) error {
	for i, row := range features.All() {
		for j, v := range row {
			if matrix.IsMissing(v) {
				return fmt.Errorf("row %d column %q: %w", i, features.ColumnName(j), ErrMissingValue)
			}
		}
		if y, _ := labels.At(i, 0); matrix.IsMissing(y) {
			return fmt.Errorf("row %d: %w", i, learner.ErrMissingLabel)
		}
	}

	return nil
}

// Predict runs the forward pass and maps the output back to label scale,
// rounded to the nearest integer.
//
// Errors:
//   - learner.ErrNotTrained, learner.ErrShapeMismatch, ErrMissingValue.
func (nn *NeuralNet) Predict(row []float64) (float64, error) {
	if nn.net == nil {
		return 0, fmt.Errorf("%s: %w", opPredict, learner.ErrNotTrained)
	}
	if err := learner.ValidateRow(row, nn.net.Inputs()); err != nil {
		return 0, fmt.Errorf("%s: %w", opPredict, err)
	}
	for j, v := range row {
		if matrix.IsMissing(v) {
			return 0, fmt.Errorf("%s: column %d: %w", opPredict, j, ErrMissingValue)
		}
	}

	return nn.net.Denormalize(nn.net.Forward(row)[0]), nil
}
