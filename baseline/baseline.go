// SPDX-License-Identifier: MIT

// Package baseline provides the reference learner every other learner
// should beat: it ignores the features and always answers the most common
// label (nominal labels) or the label mean (continuous labels).
package baseline

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/matrix"
)

const (
	opTrain   = "baseline.Train"
	opPredict = "baseline.Predict"
)

// Baseline predicts one constant.
type Baseline struct {
	answer  float64
	width   int
	trained bool
}

var _ learner.Learner = (*Baseline)(nil)

// New returns an untrained baseline.
func New() *Baseline { return &Baseline{} }

// Answer returns the constant prediction (0 before training).
func (b *Baseline) Answer() float64 { return b.answer }

// Train records the plurality (nominal) or mean (continuous) of the known
// labels.
//
// Errors:
//   - learner.ErrShapeMismatch, learner.ErrEmptyTable.
//   - matrix.ErrEmptyColumn when every label is missing.
func (b *Baseline) Train(features, labels *matrix.Table) error {
	if err := learner.ValidateTraining(features, labels); err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}

	var (
		answer float64
		err    error
	)
	if labels.ValueCount(0) == 0 {
		answer, err = labels.ColumnMean(0)
	} else {
		answer, err = labels.MostCommonValue(0)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}
	b.answer, b.width, b.trained = answer, features.Cols(), true

	return nil
}

// Predict returns the trained constant.
//
// Errors:
//   - learner.ErrNotTrained, learner.ErrShapeMismatch.
func (b *Baseline) Predict(row []float64) (float64, error) {
	if !b.trained {
		return 0, fmt.Errorf("%s: %w", opPredict, learner.ErrNotTrained)
	}
	if err := learner.ValidateRow(row, b.width); err != nil {
		return 0, fmt.Errorf("%s: %w", opPredict, err)
	}

	return b.answer, nil
}
