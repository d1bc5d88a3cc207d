// SPDX-License-Identifier: MIT

// Package evaluation runs a learner through one of four protocols and
// reports its accuracy.
//
//	training  train and score on every row
//	static    train on every row, score on a separate test table
//	random    shuffle, train on the first TrainFraction of rows, score the rest
//	cross     shuffle, then k-fold cross validation, Reps times
//
// The last column of every table is the label. With Normalize set, the
// continuous columns of the data are min-max scaled before any split. The
// static test table is scaled with the training table's ranges, and the
// Report says so (TestRangesFromTraining); IndependentTestNormalization
// restores scaling the test table by its own ranges, which can disagree with
// the ranges the learner was trained under.
//
// Every shuffle draws from the *rand.Rand passed to Run, so a fixed seed
// reproduces a run exactly. Progress is logged to Options.Logger when set.
package evaluation
