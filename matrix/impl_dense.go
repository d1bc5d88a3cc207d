// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold table cells in one contiguous row-major buffer (offset = i*cols + j).
//   - Keep the public surface panic-free: At/Set return errors on bad indices.
//   - Provide the row primitives the Table layer is built from: row slices,
//     in-place row swaps (shuffles), row appends (fold assembly) and
//     index-driven copies (Induced, used for split subsets).
//   - Reject NaN/Inf in one place (Set), so every table stays finite.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c);
//     Induced: O(r'*c'); swapRows: O(c); appendRows: amortized O(n*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxInduce = "Induced" // ctor tag for Dense.Induced
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf attaches "Dense.<method>(row,col)" to a sentinel.
// The sentinel stays reachable through errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); r may be 0 for tables built by
//     filtering (empty split buckets, empty folds).
//   - data is a flat buffer of length r*c in row-major order.
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Zero-row shapes are legal only through Table constructors and Induced.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols)
}

// newDenseZeroOK is the internal constructor that allows rows==0 or cols==0.
// Tables use it: a split bucket or a fold can legitimately be empty.
// Complexity: O(rows*cols).
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf bounds-checks (row,col) and returns the flat offset.
// Returns the bare ErrOutOfRange; At/Set add the coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1), no allocations.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bad coordinates.
//   - ErrNaNInf when v is not finite. MissingValue is finite and accepted.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// String renders rows as "[a, b, c]" lines for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced copies the rows/cols named by the index lists into a new Dense.
//
// Implementation:
//   - Stage 1: zero-area results are legal.
//   - Stage 2: nested loops with direct offset math; every index is checked.
//
// Behavior highlights:
//   - Duplicates are allowed (repeated rows in the result).
//   - Index order is preserved, so callers control the resulting row order.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res, err := newDenseZeroOK(rp, cp)
	if err != nil {
		return nil, err
	}
	if rp == 0 || cp == 0 {
		return res, nil
	}

	var i, j, ri, cj int
	for j = 0; j < cp; j++ { // validate columns once
		if cj = colsIdx[j]; cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			res.data[i*cp+j] = m.data[ri*m.c+colsIdx[j]]
		}
	}

	return res, nil
}

// rowSlice returns the live storage of row i (no copy). Caller checks bounds.
func (m *Dense) rowSlice(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c] // capped so appends cannot bleed into row i+1
}

// swapRows exchanges rows i and j in place. Caller checks bounds.
// Complexity: O(c).
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	a, b := m.rowSlice(i), m.rowSlice(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// appendRows copies n rows of src, starting at r0, onto the end of m.
//
// Errors:
//   - ErrDimensionMismatch when column counts differ.
//   - ErrBadShape when [r0, r0+n) leaves src.
//
// Complexity: amortized O(n*c).
func (m *Dense) appendRows(src *Dense, r0, n int) error {
	if src.c != m.c {
		return ErrDimensionMismatch
	}
	if r0 < 0 || n < 0 || r0+n > src.r {
		return ErrBadShape
	}
	m.data = append(m.data, src.data[r0*src.c:(r0+n)*src.c]...)
	m.r += n

	return nil
}

// Do visits each element in row-major order; f returns false to stop early.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
