// SPDX-License-Identifier: MIT

package learner

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlearn/matrix"
)

const (
	opMeasure       = "MeasureAccuracy"
	opValidateTrain = "ValidateTraining"
	opValidateRow   = "ValidateRow"
)

// Learner is a supervised model trained once over a fully materialized table.
type Learner interface {
	// Train fits the model to features (one row per instance) and labels
	// (one column, same row count). A second call retrains from scratch.
	Train(features, labels *matrix.Table) error

	// Predict returns the label for one feature row. Nominal labels come
	// back as their code; callers round to compare.
	Predict(row []float64) (float64, error)
}

// MeasureAccuracy predicts every row of features and returns the fraction
// whose rounded prediction equals the label.
//
// When cm is non-nil, cell [label][prediction] is incremented for every row,
// so after the call cm.Total() == rows and cm.Accuracy() equals the result.
// cm must be sized for the label's value range beforehand.
//
// Errors:
//   - ErrShapeMismatch, ErrEmptyTable, ErrMissingLabel.
//   - Any Predict error, and matrix.ErrOutOfRange when a prediction falls
//     outside cm.
//
// Complexity:
//   - Time O(rows * cost(Predict)).
func MeasureAccuracy(l Learner, features, labels *matrix.Table, cm *ConfusionMatrix) (float64, error) {
	if err := validatePair(features, labels); err != nil {
		return 0, fmt.Errorf("%s: %w", opMeasure, err)
	}
	if features.Rows() == 0 {
		return 0, fmt.Errorf("%s: %w", opMeasure, ErrEmptyTable)
	}

	correct := 0
	for i, row := range features.All() {
		target, _ := labels.At(i, 0) // i < labels.Rows() by validatePair
		if matrix.IsMissing(target) {
			return 0, fmt.Errorf("%s: row %d: %w", opMeasure, i, ErrMissingLabel)
		}
		pred, err := l.Predict(row)
		if err != nil {
			return 0, fmt.Errorf("%s: row %d: %w", opMeasure, i, err)
		}
		want, got := int(math.Round(target)), int(math.Round(pred))
		if want == got {
			correct++
		}
		if cm != nil {
			if err = cm.Add(want, got); err != nil {
				return 0, fmt.Errorf("%s: row %d: %w", opMeasure, i, err)
			}
		}
	}

	return float64(correct) / float64(features.Rows()), nil
}

// ValidateTraining checks the pre-conditions every Train shares: valid
// paired tables, exactly one label column, at least one row.
func ValidateTraining(features, labels *matrix.Table) error {
	if err := validatePair(features, labels); err != nil {
		return fmt.Errorf("%s: %w", opValidateTrain, err)
	}
	if features.Rows() == 0 {
		return fmt.Errorf("%s: %w", opValidateTrain, ErrEmptyTable)
	}

	return nil
}

// ValidateRow checks that a prediction row has the trained width.
func ValidateRow(row []float64, width int) error {
	if err := matrix.ValidateRowLen(row, width); err != nil {
		return fmt.Errorf("%s: %w: %w", opValidateRow, ErrShapeMismatch, err)
	}

	return nil
}

// validatePair maps matrix pairing failures onto ErrShapeMismatch.
func validatePair(features, labels *matrix.Table) error {
	if err := matrix.ValidatePaired(features, labels); err != nil {
		return fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}
	if labels.Cols() != 1 {
		return fmt.Errorf("label table has %d columns: %w", labels.Cols(), ErrShapeMismatch)
	}

	return nil
}
