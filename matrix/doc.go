// SPDX-License-Identifier: MIT

// Package matrix is the dataset layer shared by every learner.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with panic-free At/Set,
//     index-driven copies and NaN/Inf rejection on Set.
//   - Table: a Dense plus per-column metadata. Each column is either
//     continuous (ValueCount()==0) or nominal with N named values encoded as
//     the codes 0..N-1. Unknown cells hold MissingValue.
//   - Row operations used by evaluation protocols: paired Shuffle, Slice,
//     AppendRows.
//   - Column statistics (min, max, mean, most common value) and min-max
//     normalization with either own or externally supplied Ranges.
//
// Conventions:
//   - Feature tables and label tables are separate Tables with equal row
//     counts ("paired"); the label table has a single column.
//   - Sub-tables are copies. Row slices returned by Row/All alias storage
//     and are read-only.
//   - Randomness is always injected (*rand.Rand); nothing reads a global source.
//   - Errors are sentinels wrapped with an operation tag; match them with errors.Is.
package matrix
