// SPDX-License-Identifier: MIT

// Package matrix - Table: a Dense plus per-column metadata.
//
// Purpose:
//   - Carry the dataset contract every learner consumes: row/column counts,
//     per-column value counts (0 = continuous, N = N-valued nominal), row
//     access, cell reads, sub-tables and row appends.
//   - Keep the nominal enumeration next to the codes so reports can print
//     "Iris-setosa" instead of 0.
//
// Behavior highlights:
//   - Zero-row tables are legal (empty split buckets, empty folds).
//   - Sub-tables (Slice/Induced) are copies; mutating them never
//     reaches the source.
//   - Row slices handed out by All/Row alias storage; they stay valid until
//     the next AppendRows on the same table.

package matrix

import (
	"fmt"
	"iter"
	"strconv"
)

// Operation name constants for unified error wrapping.
const (
	opNewTable   = "NewTable"
	opFromRows   = "NewTableFromRows"
	opTableAt    = "Table.At"
	opTableRow   = "Table.Row"
	opSlice      = "Table.Slice"
	opInduced    = "Table.Induced"
	opAppendRows = "Table.AppendRows"
	opColumn     = "Table.ColumnValues"
	opAttrValue  = "Table.AttrValue"
)

// missingToken is how unknown cells are rendered.
const missingToken = "?"

// Table is a row-major numeric table with column metadata.
type Table struct {
	data     *Dense
	cols     []Column
	relation string
}

// NewTable allocates a rows×cols zero table.
//
// Implementation:
//   - Stage 1: resolve options; validate rows>=0 && cols>0.
//   - Stage 2: take column metadata from WithColumns (count must equal cols),
//     otherwise name columns "c0".."cN" and mark them continuous.
//
// Errors:
//   - ErrInvalidDimensions, ErrColumnMeta.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewTable(rows, cols int, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	if rows < 0 || cols <= 0 {
		return nil, matrixErrorf(opNewTable, ErrInvalidDimensions)
	}
	meta, err := resolveColumns(o.columns, cols)
	if err != nil {
		return nil, matrixErrorf(opNewTable, err)
	}
	d, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewTable, err)
	}

	return &Table{data: d, cols: meta, relation: o.relation}, nil
}

// NewTableFromRows builds a table from row slices (copied).
// The column count is taken from WithColumns when given, else from rows[0].
//
// Errors:
//   - ErrInvalidDimensions when no column count can be inferred.
//   - ErrDimensionMismatch when a row has the wrong length.
//   - ErrNaNInf when a value is NaN or ±Inf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewTableFromRows(rows [][]float64, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	cols := len(o.columns)
	if cols == 0 && len(rows) > 0 {
		cols = len(rows[0])
	}
	t, err := NewTable(len(rows), cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opFromRows, i, len(row), cols, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = t.data.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return t, nil
}

// resolveColumns validates user metadata or synthesizes anonymous columns.
func resolveColumns(user []Column, cols int) ([]Column, error) {
	if user == nil {
		meta := make([]Column, cols)
		for j := range meta {
			meta[j] = Column{Name: "c" + strconv.Itoa(j)}
		}

		return meta, nil
	}
	if len(user) != cols {
		return nil, ErrColumnMeta
	}
	meta := make([]Column, cols)
	for j, c := range user {
		seen := make(map[string]struct{}, len(c.Values))
		for _, v := range c.Values {
			if _, dup := seen[v]; dup {
				return nil, fmt.Errorf("column %q value %q: %w", c.Name, v, ErrColumnMeta)
			}
			seen[v] = struct{}{}
		}
		meta[j] = c.clone()
	}

	return meta, nil
}

// Relation returns the table name.
func (t *Table) Relation() string { return t.relation }

// Rows returns the row count. Complexity: O(1).
func (t *Table) Rows() int { return t.data.r }

// Cols returns the column count. Complexity: O(1).
func (t *Table) Cols() int { return t.data.c }

// Column returns a copy of the metadata of column j (zero Column if j is out of range).
func (t *Table) Column(j int) Column {
	if j < 0 || j >= len(t.cols) {
		return Column{}
	}

	return t.cols[j].clone()
}

// ColumnName returns the declared name of column j ("" if out of range).
func (t *Table) ColumnName(j int) string {
	if j < 0 || j >= len(t.cols) {
		return ""
	}

	return t.cols[j].Name
}

// ValueCount returns the number of nominal values of column j,
// 0 for a continuous column (and for an out-of-range j).
func (t *Table) ValueCount(j int) int {
	if j < 0 || j >= len(t.cols) {
		return 0
	}

	return len(t.cols[j].Values)
}

// AttrValue renders v as it appears in column j's source vocabulary.
// Missing cells render as "?"; continuous cells as %g.
//
// Errors:
//   - ErrOutOfRange for a bad column or a nominal code outside the enumeration.
func (t *Table) AttrValue(j int, v float64) (string, error) {
	if err := ValidateColumn(t, j); err != nil {
		return "", matrixErrorf(opAttrValue, err)
	}
	if IsMissing(v) {
		return missingToken, nil
	}
	vals := t.cols[j].Values
	if len(vals) == 0 {
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	code := int(v)
	if v < 0 || code >= len(vals) || float64(code) != v {
		return "", fmt.Errorf("%s: column %q code %g: %w", opAttrValue, t.cols[j].Name, v, ErrOutOfRange)
	}

	return vals[code], nil
}

// At returns cell (i, j). Errors: ErrOutOfRange.
func (t *Table) At(i, j int) (float64, error) {
	v, err := t.data.At(i, j)
	if err != nil {
		return 0, matrixErrorf(opTableAt, err)
	}

	return v, nil
}

// Row returns the live values of row i. The slice aliases table storage:
// callers must treat it as read-only.
//
// Errors:
//   - ErrOutOfRange for a bad index.
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= t.data.r {
		return nil, fmt.Errorf("%s(%d): %w", opTableRow, i, ErrOutOfRange)
	}

	return t.data.rowSlice(i), nil
}

// All iterates rows in order as (index, live row slice) pairs.
// The slices are read-only views, as with Row.
func (t *Table) All() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		for i := 0; i < t.data.r; i++ {
			if !yield(i, t.data.rowSlice(i)) {
				return
			}
		}
	}
}

// ColumnValues copies column j into a new slice of length Rows().
//
// Errors:
//   - ErrOutOfRange for a bad column.
func (t *Table) ColumnValues(j int) ([]float64, error) {
	if err := ValidateColumn(t, j); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	out := make([]float64, t.data.r)
	for i := range out {
		out[i] = t.data.data[i*t.data.c+j]
	}

	return out, nil
}

// Slice copies the window [r0:r0+rows, c0:c0+cols) into a new table,
// keeping the metadata of the selected columns.
//
// Errors:
//   - ErrBadShape when the window leaves the table.
//
// Complexity:
//   - Time O(rows*cols).
func (t *Table) Slice(r0, c0, rows, cols int) (*Table, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > t.data.r || c0+cols > t.data.c {
		return nil, fmt.Errorf("%s(%d,%d,%d,%d): %w", opSlice, r0, c0, rows, cols, ErrBadShape)
	}

	return t.Induced(span(r0, rows), span(c0, cols))
}

// Induced copies the rows and columns named by the index lists, in that order.
//
// Errors:
//   - ErrOutOfRange for any bad index.
//
// Complexity:
//   - Time O(len(rowsIdx)*len(colsIdx)).
func (t *Table) Induced(rowsIdx, colsIdx []int) (*Table, error) {
	d, err := t.data.Induced(rowsIdx, colsIdx)
	if err != nil {
		return nil, matrixErrorf(opInduced, err)
	}
	meta := make([]Column, len(colsIdx))
	for k, j := range colsIdx {
		meta[k] = t.cols[j].clone() // j already validated by Dense.Induced
	}

	return &Table{data: d, cols: meta, relation: t.relation}, nil
}

// AppendRows copies n rows of src, starting at r0, to the end of t.
// Column metadata of t is kept; src must have the same column count.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadShape.
//
// Complexity:
//   - Amortized O(n*cols).
func (t *Table) AppendRows(src *Table, r0, n int) error {
	if err := ValidateTable(src); err != nil {
		return matrixErrorf(opAppendRows, err)
	}
	if err := t.data.appendRows(src.data, r0, n); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", opAppendRows, r0, n, err)
	}

	return nil
}

// Clone returns an independent deep copy.
func (t *Table) Clone() *Table {
	meta := make([]Column, len(t.cols))
	for j, c := range t.cols {
		meta[j] = c.clone()
	}

	return &Table{data: t.data.Clone(), cols: meta, relation: t.relation}
}

// String renders the raw numeric rows (see Dense.String).
func (t *Table) String() string { return t.data.String() }

// span returns [start, start+n).
func span(start, n int) []int {
	idx := make([]int, n)
	for k := range idx {
		idx[k] = start + k
	}

	return idx
}

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
