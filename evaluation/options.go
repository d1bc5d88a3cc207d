// SPDX-License-Identifier: MIT

package evaluation

import (
	"fmt"
	"log"

	"github.com/katalvlaran/lvlearn/matrix"
)

// Options configures one Run.
type Options struct {
	Method Method

	// LearnerName is copied into the Report.
	LearnerName string

	// TestTable is the static test set; TestName labels it in the Report.
	TestTable *matrix.Table
	TestName  string

	// TrainFraction is the share of rows trained on by the random method.
	TrainFraction float64

	// Folds and Reps drive cross validation; Reps 0 means 1.
	Folds int
	Reps  int

	// Confusion tallies a confusion matrix over the scored rows when the
	// label is nominal.
	Confusion bool

	// Normalize min-max scales continuous columns before any split.
	Normalize bool

	// IndependentTestNormalization scales the static test table by its own
	// ranges instead of the training ranges.
	IndependentTestNormalization bool

	// Logger receives progress lines; nil is silent.
	Logger *log.Logger
}

// Validate checks the method-specific settings before any training starts.
//
// Errors:
//   - ErrUnknownMethod, ErrBadFraction, ErrBadFolds, ErrBadReps,
//     ErrMissingTestSet.
func (o Options) Validate() error {
	switch o.Method {
	case Training:
	case Static:
		if o.TestTable == nil {
			return ErrMissingTestSet
		}
	case Random:
		if !(o.TrainFraction >= 0 && o.TrainFraction <= 1) {
			return fmt.Errorf("%g: %w", o.TrainFraction, ErrBadFraction)
		}
	case Cross:
		if o.Folds < 2 {
			return fmt.Errorf("%d folds: %w", o.Folds, ErrBadFolds)
		}
	default:
		return fmt.Errorf("%v: %w", o.Method, ErrUnknownMethod)
	}
	if o.Reps < 0 {
		return fmt.Errorf("%d: %w", o.Reps, ErrBadReps)
	}

	return nil
}

func (o Options) reps() int {
	if o.Reps == 0 {
		return 1
	}

	return o.Reps
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}
