// SPDX-License-Identifier: MIT

package evaluation

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/lvlearn/learner"
)

// FoldResult is the test accuracy of one cross-validation fold.
type FoldResult struct {
	Rep      int
	Fold     int
	Accuracy float64
}

// Report is the outcome of one Run.
type Report struct {
	Dataset    string
	Learner    string
	Method     Method
	Instances  int
	Attributes int
	Normalized bool

	// Static method.
	TestName               string
	TestInstances          int
	TestRangesFromTraining bool

	// Random method.
	TrainFraction float64

	// Cross method.
	Folds       int
	Reps        int
	FoldResults []FoldResult

	// TrainTime is the mean duration of one Train call.
	TrainTime time.Duration

	// Accuracies are NaN when the method does not produce them or when
	// there were no rows to score.
	TrainAccuracy float64
	TestAccuracy  float64
	MeanAccuracy  float64

	// Confusion is nil unless requested and the label is nominal.
	Confusion *learner.ConfusionMatrix
}

func newReport(opts Options, rows, cols int, dataset string) *Report {
	return &Report{
		Dataset:       dataset,
		Learner:       opts.LearnerName,
		Method:        opts.Method,
		Instances:     rows,
		Attributes:    cols,
		Normalized:    opts.Normalize,
		TestName:      opts.TestName,
		TrainFraction: opts.TrainFraction,
		Folds:         opts.Folds,
		Reps:          opts.reps(),
		TrainAccuracy: math.NaN(),
		TestAccuracy:  math.NaN(),
		MeanAccuracy:  math.NaN(),
	}
}

// WriteTo renders the human-readable report.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	if r.Normalized {
		b.WriteString("Using normalized data\n\n")
	}
	fmt.Fprintf(&b, "Dataset name: %s\n", r.Dataset)
	fmt.Fprintf(&b, "Number of instances: %d\n", r.Instances)
	fmt.Fprintf(&b, "Number of attributes: %d\n", r.Attributes)
	fmt.Fprintf(&b, "Learning algorithm: %s\n", r.Learner)
	fmt.Fprintf(&b, "Evaluation method: %s\n\n", r.Method)

	switch r.Method {
	case Training:
		b.WriteString("Calculating accuracy on training set...\n")
		fmt.Fprintf(&b, "Time to train (in seconds): %g\n", r.TrainTime.Seconds())
		fmt.Fprintf(&b, "Training set accuracy: %s\n", accuracy(r.TrainAccuracy))
	case Static:
		b.WriteString("Calculating accuracy on separate test set...\n")
		fmt.Fprintf(&b, "Test set name: %s\n", r.TestName)
		fmt.Fprintf(&b, "Number of test instances: %d\n", r.TestInstances)
		if r.TestRangesFromTraining {
			b.WriteString("Test set normalized with the training set's ranges\n")
		}
		fmt.Fprintf(&b, "Time to train (in seconds): %g\n", r.TrainTime.Seconds())
		fmt.Fprintf(&b, "Training set accuracy: %s\n", accuracy(r.TrainAccuracy))
		fmt.Fprintf(&b, "Test set accuracy: %s\n", accuracy(r.TestAccuracy))
	case Random:
		b.WriteString("Calculating accuracy on a random hold-out set...\n")
		fmt.Fprintf(&b, "Percentage used for training: %g\n", r.TrainFraction)
		fmt.Fprintf(&b, "Percentage used for testing: %g\n", 1-r.TrainFraction)
		fmt.Fprintf(&b, "Time to train (in seconds): %g\n", r.TrainTime.Seconds())
		fmt.Fprintf(&b, "Training set accuracy: %s\n", accuracy(r.TrainAccuracy))
		fmt.Fprintf(&b, "Test set accuracy: %s\n", accuracy(r.TestAccuracy))
	case Cross:
		b.WriteString("Calculating accuracy using cross-validation...\n")
		fmt.Fprintf(&b, "Number of folds: %d\n", r.Folds)
		for _, f := range r.FoldResults {
			fmt.Fprintf(&b, "Rep=%d, Fold=%d, Accuracy=%s\n", f.Rep, f.Fold, accuracy(f.Accuracy))
		}
		fmt.Fprintf(&b, "Average time to train (in seconds): %g\n", r.TrainTime.Seconds())
		fmt.Fprintf(&b, "Mean accuracy=%s\n", accuracy(r.MeanAccuracy))
	}

	if r.Confusion != nil {
		b.WriteString("\nConfusion matrix: (Row=target value, Col=predicted value)\n")
		b.WriteString(r.Confusion.String())
	}

	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

func accuracy(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}

	return fmt.Sprintf("%g", v)
}
