// SPDX-License-Identifier: MIT

package evaluation

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/matrix"
)

const opRun = "evaluation.Run"

// run carries one evaluation's state between the protocol steps.
type run struct {
	ctx    context.Context
	l      learner.Learner
	data   *matrix.Table // private copy, possibly normalized
	ranges matrix.Ranges // set when opts.Normalize
	opts   Options
	rng    *rand.Rand
	rep    *Report
	cm     *learner.ConfusionMatrix
	clock  trainClock
}

// Run evaluates l on data with the protocol in opts. data is not modified;
// the learner is retrained from scratch for every split.
//
// Implementation:
//   - Stage 1: validate options and tables, copy data, normalize if asked.
//   - Stage 2: run the protocol; cross validation checks ctx between folds.
//   - Stage 3: fill the Report (mean train time, accuracies, confusion).
//
// Errors:
//   - ErrNilLearner, ErrNoFeatures and every Options.Validate error.
//   - ErrBadFolds when Folds exceeds the row count.
//   - ErrBadFraction when TrainFraction leaves no training rows.
//   - matrix.ErrNilRand for random or cross without rng.
//   - matrix.ErrDimensionMismatch when the static test table's width differs.
//   - ctx.Err() when cancelled; any learner error.
func Run(ctx context.Context, l learner.Learner, data *matrix.Table, opts Options, rng *rand.Rand) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	if l == nil {
		return nil, fmt.Errorf("%s: %w", opRun, ErrNilLearner)
	}
	if err := matrix.ValidateTable(data); err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	if data.Cols() < 2 {
		return nil, fmt.Errorf("%s: %d columns: %w", opRun, data.Cols(), ErrNoFeatures)
	}
	switch opts.Method {
	case Cross:
		if opts.Folds > data.Rows() {
			return nil, fmt.Errorf("%s: %d folds over %d rows: %w", opRun, opts.Folds, data.Rows(), ErrBadFolds)
		}
		if rng == nil {
			return nil, fmt.Errorf("%s: %w", opRun, matrix.ErrNilRand)
		}
	case Random:
		if int(opts.TrainFraction*float64(data.Rows())) == 0 {
			return nil, fmt.Errorf("%s: %g of %d rows trains on none: %w", opRun, opts.TrainFraction, data.Rows(), ErrBadFraction)
		}
		if rng == nil {
			return nil, fmt.Errorf("%s: %w", opRun, matrix.ErrNilRand)
		}
	case Static:
		if opts.TestTable.Cols() != data.Cols() {
			return nil, fmt.Errorf("%s: test table has %d columns, data %d: %w",
				opRun, opts.TestTable.Cols(), data.Cols(), matrix.ErrDimensionMismatch)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}

	r := &run{
		ctx:  ctx,
		l:    l,
		data: data.Clone(),
		opts: opts,
		rng:  rng,
		rep:  newReport(opts, data.Rows(), data.Cols(), data.Relation()),
	}
	opts.logf("eval: dataset=%s rows=%d cols=%d learner=%s method=%s",
		data.Relation(), data.Rows(), data.Cols(), opts.LearnerName, opts.Method)

	if err := r.execute(); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", opRun, opts.Method, err)
	}
	r.rep.TrainTime = r.clock.mean()
	r.rep.Confusion = r.cm

	return r.rep, nil
}

func (r *run) execute() error {
	if r.opts.Normalize {
		ranges, err := r.data.Normalize()
		if err != nil {
			return err
		}
		r.ranges = ranges
		r.opts.logf("eval: normalized continuous columns")
	}
	if r.opts.Confusion {
		r.cm = r.newConfusion()
	}

	switch r.opts.Method {
	case Static:
		return r.static()
	case Random:
		return r.random()
	case Cross:
		return r.cross()
	default:
		return r.training()
	}
}

// newConfusion sizes a tally for the label, or returns nil for a
// continuous label.
func (r *run) newConfusion() *learner.ConfusionMatrix {
	label := r.data.Column(r.data.Cols() - 1)
	if !label.IsNominal() {
		r.opts.logf("eval: confusion matrix skipped: label %q is continuous", label.Name)
		return nil
	}
	cm, _ := learner.NewConfusionMatrix(label.ValueCount(), label.Values...) // ValueCount > 0

	return cm
}

// split separates the label (last column) from the features.
func split(t *matrix.Table) (features, labels *matrix.Table, err error) {
	last := t.Cols() - 1
	if features, err = t.Slice(0, 0, t.Rows(), last); err != nil {
		return nil, nil, err
	}
	if labels, err = t.Slice(0, last, t.Rows(), 1); err != nil {
		return nil, nil, err
	}

	return features, labels, nil
}

// train fits the learner on t and returns the training accuracy.
func (r *run) train(t *matrix.Table, cm *learner.ConfusionMatrix) (float64, error) {
	f, y, err := split(t)
	if err != nil {
		return 0, err
	}
	if err = r.clock.time(func() error { return r.l.Train(f, y) }); err != nil {
		return 0, err
	}

	return learner.MeasureAccuracy(r.l, f, y, cm)
}

// score returns the accuracy over t, NaN when t has no rows.
func (r *run) score(t *matrix.Table) (float64, error) {
	if t.Rows() == 0 {
		return math.NaN(), nil
	}
	f, y, err := split(t)
	if err != nil {
		return 0, err
	}

	return learner.MeasureAccuracy(r.l, f, y, r.cm)
}

func (r *run) training() error {
	acc, err := r.train(r.data, r.cm)
	if err != nil {
		return err
	}
	r.rep.TrainAccuracy = acc
	r.opts.logf("eval: train_accuracy=%.4f", acc)

	return nil
}

func (r *run) static() error {
	test := r.opts.TestTable.Clone()
	if r.opts.Normalize {
		if r.opts.IndependentTestNormalization {
			if _, err := test.Normalize(); err != nil {
				return err
			}
			r.opts.logf("eval: test set normalized with its own ranges")
		} else {
			if err := test.NormalizeWith(r.ranges); err != nil {
				return err
			}
			r.rep.TestRangesFromTraining = true
			r.opts.logf("eval: test set normalized with training ranges")
		}
	}
	r.rep.TestInstances = test.Rows()

	var err error
	if r.rep.TrainAccuracy, err = r.train(r.data, nil); err != nil {
		return err
	}
	if r.rep.TestAccuracy, err = r.score(test); err != nil {
		return err
	}
	r.opts.logf("eval: train_accuracy=%.4f test_accuracy=%.4f", r.rep.TrainAccuracy, r.rep.TestAccuracy)

	return nil
}

func (r *run) random() error {
	if err := r.data.Shuffle(r.rng, nil); err != nil {
		return err
	}
	rows, cols := r.data.Rows(), r.data.Cols()
	n := int(r.opts.TrainFraction * float64(rows))
	train, err := r.data.Slice(0, 0, n, cols)
	if err != nil {
		return err
	}
	test, err := r.data.Slice(n, 0, rows-n, cols)
	if err != nil {
		return err
	}
	r.opts.logf("eval: train_rows=%d test_rows=%d", n, rows-n)

	if r.rep.TrainAccuracy, err = r.train(train, nil); err != nil {
		return err
	}
	if r.rep.TestAccuracy, err = r.score(test); err != nil {
		return err
	}
	r.opts.logf("eval: train_accuracy=%.4f test_accuracy=%s", r.rep.TrainAccuracy, accuracy(r.rep.TestAccuracy))

	return nil
}

// cross runs Reps rounds of Folds-fold cross validation. Fold i tests rows
// [i*rows/folds, (i+1)*rows/folds) of the freshly shuffled data and trains
// on the rest.
func (r *run) cross() error {
	rows, cols := r.data.Rows(), r.data.Cols()
	folds, reps := r.opts.Folds, r.opts.reps()

	sum := 0.0
	for rep := 0; rep < reps; rep++ {
		if err := r.data.Shuffle(r.rng, nil); err != nil {
			return err
		}
		for i := 0; i < folds; i++ {
			if err := r.ctx.Err(); err != nil {
				return fmt.Errorf("rep %d fold %d: %w", rep, i, err)
			}
			begin, end := i*rows/folds, (i+1)*rows/folds

			train, err := r.data.Slice(0, 0, begin, cols)
			if err != nil {
				return err
			}
			if err = train.AppendRows(r.data, end, rows-end); err != nil {
				return err
			}
			test, err := r.data.Slice(begin, 0, end-begin, cols)
			if err != nil {
				return err
			}

			if _, err = r.train(train, nil); err != nil {
				return fmt.Errorf("rep %d fold %d: %w", rep, i, err)
			}
			acc, err := r.score(test)
			if err != nil {
				return fmt.Errorf("rep %d fold %d: %w", rep, i, err)
			}
			r.rep.FoldResults = append(r.rep.FoldResults, FoldResult{Rep: rep, Fold: i, Accuracy: acc})
			sum += acc
			r.opts.logf("eval: rep=%d fold=%d accuracy=%.4f", rep, i, acc)
		}
	}
	r.rep.MeanAccuracy = sum / float64(reps*folds)
	r.opts.logf("eval: mean_accuracy=%.4f", r.rep.MeanAccuracy)

	return nil
}
