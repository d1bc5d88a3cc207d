// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (tables, nominal columns) shared by
//     the matrix tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustTable builds a Table from literal rows or fails the test.
func MustTable(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Table {
	t.Helper()
	tb, err := matrix.NewTableFromRows(rows, opts...)
	require.NoError(t, err)

	return tb
}

// Rows copies every row of tb out as a [][]float64 for whole-table assertions.
func Rows(t *testing.T, tb *matrix.Table) [][]float64 {
	t.Helper()
	out := make([][]float64, 0, tb.Rows())
	for _, row := range tb.All() {
		out = append(out, append([]float64(nil), row...))
	}

	return out
}

// colorColumn is a 3-valued nominal column used across tests.
var colorColumn = matrix.Column{Name: "color", Values: []string{"red", "green", "blue"}}

// ExpectPanic asserts that f panics.
func ExpectPanic(t *testing.T, f func()) {
	t.Helper()
	require.Panics(t, f)
}
