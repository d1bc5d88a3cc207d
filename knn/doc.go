// SPDX-License-Identifier: MIT

// Package knn implements an instance-based learner: Train memorizes the
// table and Predict answers from the k stored rows nearest to the query.
//
// Distance is Euclidean over per-column differences. A continuous column
// contributes its numeric difference; a nominal column contributes 0 when
// the codes match and 1 otherwise; a column where either side is missing
// contributes 1.
//
// A nominal label is decided by vote, a continuous label by the mean of the
// neighbours. WithDistanceWeighting weighs each neighbour by 1/d² instead of
// counting it once. Ties between equally distant rows go to the row stored
// first; ties between vote totals go to the lowest class code.
package knn
