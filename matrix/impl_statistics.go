// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the per-column statistics learners and the evaluation harness
//     need: min, max, mean, most common value and [min,max] ranges.
//   - Provide min-max normalization of continuous columns, either from the
//     table's own ranges (Normalize) or from externally supplied ranges
//     (NormalizeWith), so a test set can be scaled by its training set.
//
// Exposed API:
//   - (*Table).ColumnMin(j)       -> (min, error)
//   - (*Table).ColumnMax(j)       -> (max, error)
//   - (*Table).ColumnMean(j)      -> (mean, error)
//   - (*Table).MostCommonValue(j) -> (value, error)
//   - (*Table).Ranges()           -> Ranges
//   - (*Table).Normalize()        -> (Ranges, error)
//   - (*Table).NormalizeWith(r)   -> error
//
// Determinism & Performance:
//   - Fixed top-to-bottom traversal; ties resolve to the smallest value.
//   - MissingValue cells are skipped by every statistic and left untouched
//     by normalization.

package matrix

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opColumnMin     = "ColumnMin"
	opColumnMax     = "ColumnMax"
	opColumnMean    = "ColumnMean"
	opMostCommon    = "MostCommonValue"
	opNormalize     = "Normalize"
	opNormalizeWith = "NormalizeWith"
)

// known collects the non-missing values of column j in row order.
func (t *Table) known(j int) []float64 {
	out := make([]float64, 0, t.data.r)
	for i := 0; i < t.data.r; i++ {
		if v := t.data.data[i*t.data.c+j]; !IsMissing(v) {
			out = append(out, v)
		}
	}

	return out
}

// columnKnown validates j and returns its non-missing values.
// Returns ErrEmptyColumn when every cell is missing (or there are no rows).
func (t *Table) columnKnown(tag string, j int) ([]float64, error) {
	if err := ValidateColumn(t, j); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	vals := t.known(j)
	if len(vals) == 0 {
		return nil, fmt.Errorf("%s: column %q: %w", tag, t.cols[j].Name, ErrEmptyColumn)
	}

	return vals, nil
}

// ColumnMin returns the smallest non-missing value in column j.
//
// Errors:
//   - ErrOutOfRange, ErrEmptyColumn.
//
// Complexity:
//   - Time O(rows), Space O(rows).
func (t *Table) ColumnMin(j int) (float64, error) {
	vals, err := t.columnKnown(opColumnMin, j)
	if err != nil {
		return 0, err
	}

	return floats.Min(vals), nil
}

// ColumnMax returns the largest non-missing value in column j.
//
// Errors:
//   - ErrOutOfRange, ErrEmptyColumn.
func (t *Table) ColumnMax(j int) (float64, error) {
	vals, err := t.columnKnown(opColumnMax, j)
	if err != nil {
		return 0, err
	}

	return floats.Max(vals), nil
}

// ColumnMean returns the arithmetic mean of the non-missing values in column j.
//
// Errors:
//   - ErrOutOfRange, ErrEmptyColumn.
func (t *Table) ColumnMean(j int) (float64, error) {
	vals, err := t.columnKnown(opColumnMean, j)
	if err != nil {
		return 0, err
	}

	return stat.Mean(vals, nil), nil
}

// MostCommonValue returns the most frequent non-missing value in column j.
// Ties resolve to the smallest value, which for nominal columns is the
// lowest code.
//
// Implementation:
//   - Stage 1: sort a copy of the known values.
//   - Stage 2: scan runs; a run replaces the current best only when strictly longer.
//
// Errors:
//   - ErrOutOfRange, ErrEmptyColumn.
//
// Complexity:
//   - Time O(rows log rows), Space O(rows).
func (t *Table) MostCommonValue(j int) (float64, error) {
	vals, err := t.columnKnown(opMostCommon, j)
	if err != nil {
		return 0, err
	}
	sort.Float64s(vals)

	best, bestRun := vals[0], 0
	for start := 0; start < len(vals); {
		end := start
		for end < len(vals) && vals[end] == vals[start] {
			end++
		}
		if run := end - start; run > bestRun {
			best, bestRun = vals[start], run
		}
		start = end
	}

	return best, nil
}

// Ranges returns the observed [min,max] of every continuous column.
// Nominal columns and columns without known values get Known=false.
//
// Complexity:
//   - Time O(rows*cols).
func (t *Table) Ranges() Ranges {
	out := make(Ranges, t.data.c)
	for j := range out {
		if t.cols[j].IsNominal() {
			continue
		}
		vals := t.known(j)
		if len(vals) == 0 {
			continue
		}
		out[j] = Range{Min: floats.Min(vals), Max: floats.Max(vals), Known: true}
	}

	return out
}

// Normalize min-max scales every continuous column of t in place using t's
// own ranges, and returns those ranges.
//
// Behavior highlights:
//   - Values map to (v-min)/(max-min); the training rows land in [0,1].
//   - A constant column (min==max) maps to 0.
//   - Nominal columns and MissingValue cells are untouched.
//
// Complexity:
//   - Time O(rows*cols).
func (t *Table) Normalize() (Ranges, error) {
	r := t.Ranges()
	if err := t.NormalizeWith(r); err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}

	return r, nil
}

// NormalizeWith min-max scales t in place using the supplied ranges, one per
// column. Rows outside a range scale outside [0,1]; that is expected when the
// ranges were computed on a different table.
//
// Errors:
//   - ErrDimensionMismatch when len(r) != Cols().
//
// Complexity:
//   - Time O(rows*cols).
func (t *Table) NormalizeWith(r Ranges) error {
	if len(r) != t.data.c {
		return fmt.Errorf("%s: %d ranges for %d columns: %w", opNormalizeWith, len(r), t.data.c, ErrDimensionMismatch)
	}
	scale := make([]float64, len(r))
	shift := make([]float64, len(r))
	active := make([]bool, len(r))
	for j, rg := range r {
		if !rg.Known || t.cols[j].IsNominal() {
			continue
		}
		active[j] = true
		shift[j] = -rg.Min
		if span := rg.Max - rg.Min; span != 0 {
			scale[j] = 1 / span
		} // constant column: scale stays 0
	}
	ewAffineColumns(t.data, shift, scale, active)

	return nil
}
