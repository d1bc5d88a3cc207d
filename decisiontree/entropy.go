// SPDX-License-Identifier: MIT

package decisiontree

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Entropy returns the Shannon entropy, in bits, of the probability vector p.
// Zero-probability terms contribute 0. The result lies in [0, log2(len(p))].
func Entropy(p []float64) float64 {
	return stat.Entropy(p) / math.Ln2
}

// distribution turns category counts into probabilities (in place) and
// returns the entropy and the plurality code. Ties go to the lowest code.
// A zero total yields entropy 0 and code 0.
func distribution(counts []float64) (entropy float64, plurality int) {
	total := floats.Sum(counts)
	if total == 0 {
		return 0, 0
	}
	plurality = floats.MaxIdx(counts)
	floats.Scale(1/total, counts)

	return Entropy(counts), plurality
}
