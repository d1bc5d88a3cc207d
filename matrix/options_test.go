// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies the documented defaults reach the table.
func TestDefaultOptions_Documented(t *testing.T) {
	tb, err := matrix.NewTable(1, 2)
	require.NoError(t, err)

	require.Equal(t, matrix.DefaultRelation, tb.Relation())
	require.Equal(t, "c0", tb.ColumnName(0))
	require.Equal(t, 0, tb.ValueCount(1))
}

// 2) TestNewTableFromRows_RejectsNonFinite checks that no table can hold NaN/Inf.
func TestNewTableFromRows_RejectsNonFinite(t *testing.T) {
	_, err := matrix.NewTableFromRows([][]float64{{1, 1.0 / zero()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	tb := MustTable(t, [][]float64{{matrix.MissingValue}})
	v, err := tb.At(0, 0)
	require.NoError(t, err)
	require.True(t, matrix.IsMissing(v))
}

// 3) TestWithColumns_DeepCopy ensures the caller can reuse the slice it passed.
func TestWithColumns_DeepCopy(t *testing.T) {
	col := matrix.Column{Name: "c", Values: []string{"a", "b"}}
	opt := matrix.WithColumns(col)
	col.Values[0] = "mutated"

	tb, err := matrix.NewTable(0, 1, opt)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, tb.Column(0).Values)
}

// 4) TestPanics validates parameter guards.
func TestPanics(t *testing.T) {
	ExpectPanic(t, func() { _ = matrix.WithRelation("  ") })
	ExpectPanic(t, func() { _ = matrix.WithColumns(matrix.Column{Name: ""}) })
}

// zero defeats constant folding so 1/zero() is +Inf at run time.
func zero() float64 { return 0 }
