// SPDX-License-Identifier: MIT

package learner

import "errors"

// Sentinel errors shared by every learner. Call sites wrap them with
// fmt.Errorf("%s: %w", op, err); callers match with errors.Is.
var (
	// ErrNotTrained indicates Predict was called before a successful Train.
	ErrNotTrained = errors.New("learner: model is not trained")

	// ErrShapeMismatch indicates features and labels do not pair up, the
	// label table does not have exactly one column, or a prediction row has
	// the wrong width.
	ErrShapeMismatch = errors.New("learner: shape mismatch")

	// ErrEmptyTable indicates training or measuring over zero rows.
	ErrEmptyTable = errors.New("learner: empty table")

	// ErrMissingLabel indicates a label cell holds matrix.MissingValue.
	ErrMissingLabel = errors.New("learner: missing label value")

	// ErrUnknownLearner indicates a registry lookup for an unregistered name.
	ErrUnknownLearner = errors.New("learner: unknown learner")

	// ErrBadClassCount indicates a confusion matrix with fewer than one class.
	ErrBadClassCount = errors.New("learner: class count must be > 0")
)
