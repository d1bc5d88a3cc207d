// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection point; callers use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> column metadata violations.

var (
	// ErrBadShape is returned when a requested window or slice is invalid
	// (negative offsets, or a window that exceeds the table bounds).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. paired shuffle over tables with different row counts, or appending
	// rows with a different column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (table ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Table (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative,
	// or non-positive where the strict constructor requires it.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrColumnMeta indicates that the column metadata does not describe the
	// stored data (count mismatch, duplicate nominal value, empty name).
	ErrColumnMeta = errors.New("matrix: inconsistent column metadata")

	// ErrNilRand indicates that a nil random source was passed to an operation
	// that consumes randomness (Shuffle). Randomness is never ambient.
	ErrNilRand = errors.New("matrix: nil random source")

	// ErrEmptyColumn indicates a statistic was requested over a column that
	// has no non-missing values.
	ErrEmptyColumn = errors.New("matrix: column has no known values")
)
