// SPDX-License-Identifier: MIT
package knn_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/knn"
	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelTable(t *testing.T, y []float64, values ...string) *matrix.Table {
	t.Helper()
	rows := make([][]float64, len(y))
	for i, v := range y {
		rows[i] = []float64{v}
	}
	var opts []matrix.Option
	if len(values) > 0 {
		opts = append(opts, matrix.WithColumns(matrix.Column{Name: "class", Values: values}))
	}
	l, err := matrix.NewTableFromRows(rows, opts...)
	require.NoError(t, err)

	return l
}

func clusters(t *testing.T) (*matrix.Table, *matrix.Table) {
	t.Helper()
	f, err := matrix.NewTableFromRows([][]float64{
		{0, 0}, {0.1, 0.2}, {0.2, 0.1},
		{5, 5}, {5.1, 4.9}, {4.8, 5.2},
	})
	require.NoError(t, err)

	return f, labelTable(t, []float64{0, 0, 0, 1, 1, 1}, "near", "far")
}

func TestPredict_MajorityVote(t *testing.T) {
	t.Parallel()

	f, l := clusters(t)
	m := knn.New()
	require.NoError(t, m.Train(f, l))

	cases := []struct {
		row  []float64
		want float64
	}{
		{[]float64{0.05, 0.05}, 0},
		{[]float64{4.9, 5}, 1},
		{[]float64{1, 1}, 0},
	}
	for _, tc := range cases {
		got, err := m.Predict(tc.row)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "row %v", tc.row)
	}

	acc, err := learner.MeasureAccuracy(m, f, l, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)
}

func TestPredict_DistanceWeightingOverridesCount(t *testing.T) {
	t.Parallel()

	f, err := matrix.NewTableFromRows([][]float64{{0}, {2}, {2.1}})
	require.NoError(t, err)
	l := labelTable(t, []float64{0, 1, 1}, "a", "b")

	plain := knn.New(knn.WithK(3))
	require.NoError(t, plain.Train(f, l))
	got, err := plain.Predict([]float64{0.1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	weighted := knn.New(knn.WithK(3), knn.WithDistanceWeighting())
	require.NoError(t, weighted.Train(f, l))
	got, err = weighted.Predict([]float64{0.1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestPredict_ContinuousMean(t *testing.T) {
	t.Parallel()

	f, err := matrix.NewTableFromRows([][]float64{{0}, {1}, {10}})
	require.NoError(t, err)
	l := labelTable(t, []float64{2, 4, 100})

	m := knn.New(knn.WithK(2))
	require.NoError(t, m.Train(f, l))
	got, err := m.Predict([]float64{0.4})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)
}

func TestPredict_NominalAndMissingDistance(t *testing.T) {
	t.Parallel()

	colour := matrix.Column{Name: "colour", Values: []string{"red", "green", "blue"}}
	f, err := matrix.NewTableFromRows([][]float64{{0, 0}, {2, 0.5}}, matrix.WithColumns(colour, matrix.Column{Name: "size"}))
	require.NoError(t, err)
	l := labelTable(t, []float64{0, 1}, "a", "b")

	m := knn.New(knn.WithK(1))
	require.NoError(t, m.Train(f, l))

	// Codes 1 and 2 are equally far from 0 on a nominal column.
	got, err := m.Predict([]float64{1, 0.4})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	// A missing colour costs 1 against both rows; size decides.
	got, err = m.Predict([]float64{matrix.MissingValue, 0.1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestKNN_Errors(t *testing.T) {
	t.Parallel()

	m := knn.New()
	_, err := m.Predict([]float64{0})
	require.ErrorIs(t, err, learner.ErrNotTrained)

	f, err := matrix.NewTableFromRows([][]float64{{0}, {1}})
	require.NoError(t, err)
	require.ErrorIs(t, m.Train(f, labelTable(t, []float64{0, matrix.MissingValue})), learner.ErrMissingLabel)

	require.NoError(t, m.Train(f, labelTable(t, []float64{0, 1})))
	_, err = m.Predict([]float64{0, 0})
	require.ErrorIs(t, err, learner.ErrShapeMismatch)

	assert.Panics(t, func() { knn.WithK(0) })
}
