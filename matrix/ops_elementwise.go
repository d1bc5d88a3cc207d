// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Keep the tight per-cell loops used by normalization in one private kernel.
//
// Determinism & Performance:
//   - Flat row-major traversal over the Dense buffer; no allocations.

package matrix

// ewAffineColumns rewrites X[i,j] = (X[i,j] + shift[j]) * scale[j] in place
// for every column with active[j], skipping MissingValue cells.
// Time: O(r*c). Space: O(1).
func ewAffineColumns(X *Dense, shift, scale []float64, active []bool) {
	c := X.c
	var j int
	for base := 0; base < len(X.data); base += c {
		row := X.data[base : base+c]
		for j = 0; j < c; j++ {
			if !active[j] || IsMissing(row[j]) {
				continue
			}
			row[j] = (row[j] + shift[j]) * scale[j]
		}
	}
}
