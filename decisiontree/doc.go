// SPDX-License-Identifier: MIT

// Package decisiontree induces an ID3-style classification tree over
// nominal features.
//
// At each node every unused feature is scored by the weighted residual
// entropy of the label after partitioning on it:
//
//	score(f) = Σ_v (|bucket_v| / |rows|) · H(labels in bucket_v)
//	H(p)     = -Σ p·log2(p)
//
// The lowest score wins (ties go to the lower feature index). Each value of
// the winning feature gets a child: empty buckets become leaves answering the
// parent's plurality label, pure buckets become leaves answering their only
// label, and the rest recurse with the feature marked used. A node whose
// path has used every feature is a leaf even when impure.
//
// Prediction walks from the root; a feature value with no child (missing,
// out of range, never seen) answers the current node's plurality label.
//
// Complexity:
//   - Train: O(F² · N) worst case for F features and N rows.
//   - Predict: O(depth) ≤ O(F).
package decisiontree
