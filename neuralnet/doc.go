// SPDX-License-Identifier: MIT

// Package neuralnet implements a feed-forward network of fully connected
// sigmoid layers trained by online backpropagation with momentum.
//
// Model:
//   - σ(z) = 1/(1+e^-z) on every unit; a unit's z is its weighted sum of the
//     previous layer's outputs plus a bias weight on an implicit constant 1.
//   - Labels are mapped into [0,1] with the label range fixed when the
//     network is built; predictions map back and round.
//
// Training (one epoch = one pass over the rows in their current order):
//   - per row: forward pass, then every unit's error (output layer first),
//     then every weight: delta = rate·derivative + momentum·lastDelta.
//   - after the pass: reshuffle rows (labels follow), score the validation
//     set, snapshot the whole network (deep copy) on strict improvement.
//   - the StopCondition sees (best accuracy, epochs without improvement)
//     after every epoch; at least one epoch always runs; the best snapshot
//     replaces the live network at the end.
//
// All randomness (weight initialization, shuffles, hold-out selection) comes
// from the *rand.Rand given to New, so equal seeds give equal networks.
package neuralnet
