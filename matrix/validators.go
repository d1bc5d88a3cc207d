// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep Table methods and learners minimal by delegating nil, pairing,
//     column and row-width checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - ValidatePaired checks each table before comparing row counts.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRowLen ensures a row handed in from outside a table has exactly
// width values. A nil row is just a row of length 0.
// Complexity: O(1).
func ValidateRowLen(row []float64, width int) error {
	if len(row) != width {
		return validatorErrorf(fmt.Sprintf("ValidateRowLen(%d, want %d)", len(row), width), ErrDimensionMismatch)
	}

	return nil
}

// ValidateTable ensures t is non-nil and its metadata describes its data.
// Complexity: O(1).
func ValidateTable(t *Table) error {
	if t == nil || t.data == nil {
		return validatorErrorf("ValidateTable", ErrNilMatrix)
	}
	if len(t.cols) != t.data.c {
		return validatorErrorf("ValidateTable", ErrColumnMeta)
	}

	return nil
}

// ValidatePaired ensures features and labels are usable together: both
// valid tables with the same row count. This is the pre-condition of every
// learner's Train and of Shuffle with a paired table.
// Complexity: O(1).
func ValidatePaired(features, labels *Table) error {
	if err := ValidateTable(features); err != nil {
		return validatorErrorf("ValidatePaired: features", err)
	}
	if err := ValidateTable(labels); err != nil {
		return validatorErrorf("ValidatePaired: labels", err)
	}
	if features.Rows() != labels.Rows() {
		return validatorErrorf("ValidatePaired: Rows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateColumn ensures col addresses a column of t. Assumes t is valid.
// Complexity: O(1).
func ValidateColumn(t *Table, col int) error {
	if col < 0 || col >= len(t.cols) {
		return validatorErrorf("ValidateColumn", ErrOutOfRange)
	}

	return nil
}
