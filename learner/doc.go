// SPDX-License-Identifier: MIT

// Package learner defines the contract every supervised learner implements
// and the operations built once on top of it.
//
//   - Learner: Train over a paired features/labels table, then Predict one row.
//   - MeasureAccuracy: fraction of rows whose rounded prediction equals the
//     label, optionally tallied into a ConfusionMatrix (row = target,
//     column = predicted).
//   - Registry: name → Factory lookup used by the command-line harness.
//   - ValidateTraining / ValidateRow: shared input checks for implementations.
//
// Learners are single-threaded and own their model state exclusively. Every
// source of randomness is a *rand.Rand handed in by the caller.
package learner
