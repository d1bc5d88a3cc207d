// SPDX-License-Identifier: MIT

// Package lvlearn is your in-memory playground for training and evaluating
// classic supervised learners over tabular data, from the table primitives
// to a command-line evaluation harness.
//
// 🚀 What is lvlearn?
//
//	A small, deterministic machine-learning toolkit that brings together:
//		• Tables: dense row-major storage, nominal columns, missing values, shuffles
//		• Data input: ARFF reader
//		• Learners: decision tree (ID3), backprop neural net, perceptron, kNN, baseline
//		• Evaluation: training, static test set, random hold-out, k-fold cross validation
//		• Reports: accuracy, confusion matrices, per-fold results
//
// ✨ Why choose lvlearn?
//
//   - Reproducible – every random draw comes from the *rand.Rand you pass in
//   - One contract – every learner is a learner.Learner (Train / Predict)
//   - Explicit errors – sentinel errors per package, matched with errors.Is
//   - Extensible – register your own learner in a learner.Registry
//
// Under the hood, everything is organized into subpackages:
//
//	matrix/       Dense storage and the Table with column metadata
//	arff/         ARFF → *matrix.Table
//	learner/      Learner, MeasureAccuracy, ConfusionMatrix, Registry
//	decisiontree/ entropy-driven induction over nominal features
//	neuralnet/    sigmoid network, momentum, best-snapshot retention
//	perceptron/   threshold units, one-vs-rest for multi-class labels
//	knn/          k nearest neighbours, optional distance weighting
//	baseline/     most common label / label mean
//	evaluation/   the four evaluation protocols and their Report
//	config/       YAML run configuration
//	cmd/mlharness the command-line harness
//
// Quick example:
//
//	mlharness eval -A weather.arff -L decisiontree -E cross 10 -V
package lvlearn
