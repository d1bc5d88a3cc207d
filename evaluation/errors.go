// SPDX-License-Identifier: MIT

package evaluation

import "errors"

var (
	// ErrUnknownMethod indicates a method name outside training, static,
	// random and cross.
	ErrUnknownMethod = errors.New("evaluation: unknown evaluation method")

	// ErrBadFraction indicates a random-split training fraction outside [0,1].
	ErrBadFraction = errors.New("evaluation: training fraction must be in [0,1]")

	// ErrBadFolds indicates a fold count < 2 or larger than the row count.
	ErrBadFolds = errors.New("evaluation: bad fold count")

	// ErrBadReps indicates a negative repetition count.
	ErrBadReps = errors.New("evaluation: repetitions must be >= 0")

	// ErrMissingTestSet indicates static evaluation without a test table.
	ErrMissingTestSet = errors.New("evaluation: static evaluation needs a test table")

	// ErrNilLearner indicates Run was given no learner.
	ErrNilLearner = errors.New("evaluation: nil learner")

	// ErrNoFeatures indicates a data table with fewer than two columns, so
	// there is nothing left once the label column is split off.
	ErrNoFeatures = errors.New("evaluation: table needs at least one feature and a label column")
)
