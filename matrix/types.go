// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and Table.
// This file contains ONLY domain-facing types (column metadata, range
// records) and the missing-value sentinel. Errors and options
// live in dedicated files (errors.go, options.go).
package matrix

import "math"

// MissingValue marks an unknown cell ("?" in ARFF sources).
// It is a finite float so Set accepts it, and it is larger than
// any real observation, so it never matches a nominal code in [0, valueCount).
// Statistics and normalization skip it; nothing coerces it to a number.
const MissingValue = math.MaxFloat64

// IsMissing reports whether v is the missing-value sentinel.
func IsMissing(v float64) bool { return v == MissingValue }

// Column describes one attribute of a Table.
//
//   - Name: attribute name (as declared by the source).
//   - Values: nominal enumeration; the code of Values[k] is k.
//     An empty Values slice marks a continuous column.
type Column struct {
	Name   string
	Values []string
}

// ValueCount returns the number of nominal values, or 0 for a continuous column.
func (c Column) ValueCount() int { return len(c.Values) }

// IsNominal reports whether the column holds category codes.
func (c Column) IsNominal() bool { return len(c.Values) > 0 }

// clone returns a column that shares nothing with c.
func (c Column) clone() Column {
	out := Column{Name: c.Name}
	if c.Values != nil {
		out.Values = append([]string(nil), c.Values...)
	}

	return out
}

// Range is the observed [Min, Max] interval of one column.
// Known is false when the column had no non-missing value or is nominal;
// such columns are left untouched by normalization.
type Range struct {
	Min, Max float64
	Known    bool
}

// Ranges holds one Range per column, in column order.
type Ranges []Range
