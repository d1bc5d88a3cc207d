// SPDX-License-Identifier: MIT

// Package perceptron implements threshold units trained with the classic
// perceptron rule.
//
// A label with at most two values trains one unit whose target is the raw
// label. A label with N > 2 values trains N units one-vs-rest: unit k sees
// target 1 for rows of class k and 0 otherwise.
//
// Training is split in two:
//
//	p := perceptron.New(rng, perceptron.WithBias())
//	_ = p.Init(features, labels)            // zeroed weight bank
//	epochs, _ := p.Fit(features, labels, 5) // run until 5 flat epochs
//
// Train does both with the configured stall budget. An epoch is flat when
// its training accuracy moved by at most 0.01; Fit stops after the given
// number of consecutive flat epochs or at WithMaxEpochs, whichever is first.
// Rows are reshuffled after every epoch with the caller's *rand.Rand, so a
// fixed seed reproduces the weights exactly.
//
// Predict with several units returns the class whose fired unit has the
// lowest activation; when no unit fires it returns class 0.
package perceptron
