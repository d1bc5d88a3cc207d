// SPDX-License-Identifier: MIT
package perceptron_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/katalvlaran/lvlearn/perceptron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tables(t *testing.T, x [][]float64, y []float64, classes ...string) (*matrix.Table, *matrix.Table) {
	t.Helper()
	f, err := matrix.NewTableFromRows(x)
	require.NoError(t, err)
	lr := make([][]float64, len(y))
	for i, v := range y {
		lr[i] = []float64{v}
	}
	var opts []matrix.Option
	if len(classes) > 0 {
		opts = append(opts, matrix.WithColumns(matrix.Column{Name: "class", Values: classes}))
	}
	l, err := matrix.NewTableFromRows(lr, opts...)
	require.NoError(t, err)

	return f, l
}

// separable puts class 0 at x1 <= 0.1 and class 1 at x1 >= 0.9.
func separable(t *testing.T) (*matrix.Table, *matrix.Table) {
	return tables(t,
		[][]float64{{0, 0.4}, {0.1, 1}, {0, 0.9}, {1, 0.1}, {0.9, 0.6}, {1, 1}},
		[]float64{0, 0, 0, 1, 1, 1})
}

func xor(t *testing.T) (*matrix.Table, *matrix.Table) {
	return tables(t,
		[][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		[]float64{0, 1, 1, 0})
}

func TestTrain_SeparableConverges(t *testing.T) {
	t.Parallel()

	f, l := separable(t)
	p := perceptron.New(rand.New(rand.NewSource(3)), perceptron.WithBias(), perceptron.WithStallEpochs(50))
	require.NoError(t, p.Train(f, l))
	assert.Equal(t, 1, p.Units())
	assert.Len(t, p.Weights(0), 3)

	acc, err := learner.MeasureAccuracy(p, f, l, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)
}

func TestFit_XORStaysBelowPerfect(t *testing.T) {
	t.Parallel()

	f, l := xor(t)
	p := perceptron.New(rand.New(rand.NewSource(8)), perceptron.WithBias(), perceptron.WithMaxEpochs(200))
	require.NoError(t, p.Init(f, l))
	epochs, err := p.Fit(f, l, 10)
	require.NoError(t, err)
	assert.LessOrEqual(t, epochs, 200)
	assert.Positive(t, epochs)

	acc, err := learner.MeasureAccuracy(p, f, l, nil)
	require.NoError(t, err)
	assert.Less(t, acc, 1.0)
}

func TestFit_MaxEpochsBoundsOscillation(t *testing.T) {
	t.Parallel()

	f, l := xor(t)
	p := perceptron.New(rand.New(rand.NewSource(1)), perceptron.WithMaxEpochs(7))
	require.NoError(t, p.Init(f, l))
	epochs, err := p.Fit(f, l, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, 7, epochs)
}

func TestTrain_OneVsRest(t *testing.T) {
	t.Parallel()

	f, l := tables(t,
		[][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[]float64{0, 1, 2, 0, 1, 2},
		"red", "green", "blue")
	p := perceptron.New(rand.New(rand.NewSource(5)), perceptron.WithBias(), perceptron.WithStallEpochs(50))
	require.NoError(t, p.Train(f, l))
	assert.Equal(t, 3, p.Units())

	cm, err := learner.NewConfusionMatrix(3)
	require.NoError(t, err)
	acc, err := learner.MeasureAccuracy(p, f, l, cm)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)
	assert.Equal(t, 6, cm.Total())
}

func TestFit_SameSeedSameWeights(t *testing.T) {
	t.Parallel()

	f, l := xor(t)
	run := func() (int, []float64) {
		p := perceptron.New(rand.New(rand.NewSource(21)), perceptron.WithBias(), perceptron.WithMaxEpochs(50))
		require.NoError(t, p.Init(f, l))
		n, err := p.Fit(f, l, 5)
		require.NoError(t, err)

		return n, p.Weights(0)
	}
	n1, w1 := run()
	n2, w2 := run()
	assert.Equal(t, n1, n2)
	assert.Equal(t, w1, w2)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	f, l := separable(t)
	rng := rand.New(rand.NewSource(1))

	_, err := perceptron.New(rng).Fit(f, l, 3)
	require.ErrorIs(t, err, perceptron.ErrNotInitialized)

	_, err = perceptron.New(rng).Predict([]float64{0, 0})
	require.ErrorIs(t, err, learner.ErrNotTrained)

	require.ErrorIs(t, perceptron.New(nil).Train(f, l), perceptron.ErrNilRand)

	p := perceptron.New(rng)
	require.NoError(t, p.Train(f, l))
	_, err = p.Predict([]float64{0})
	require.ErrorIs(t, err, learner.ErrShapeMismatch)
	_, err = p.Predict([]float64{0, matrix.MissingValue})
	require.ErrorIs(t, err, perceptron.ErrMissingValue)

	wide, _ := tables(t, [][]float64{{0, 0, 0}}, []float64{0})
	_, err = p.Fit(wide, l, 1)
	require.ErrorIs(t, err, learner.ErrShapeMismatch)

	mf, ml := tables(t, [][]float64{{0, matrix.MissingValue}, {1, 1}}, []float64{0, 1})
	require.ErrorIs(t, perceptron.New(rng).Train(mf, ml), perceptron.ErrMissingValue)

	assert.Panics(t, func() { perceptron.WithLearningRate(-1) })
	assert.Panics(t, func() { perceptron.WithStallEpochs(0) })
	assert.Panics(t, func() { perceptron.WithMaxEpochs(0) })
}
