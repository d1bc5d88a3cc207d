// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"
)

const opShuffle = "Shuffle"

// Shuffle permutes the rows of t uniformly at random (Fisher-Yates).
// When paired is non-nil, its rows receive the identical permutation, so a
// feature table and its label table stay aligned row for row.
//
// Implementation:
//   - For n = Rows() down to 1: pick k = rng.Intn(n), swap rows n-1 and k
//     (in both tables).
//
// Errors:
//   - ErrNilRand when rng is nil.
//   - ErrDimensionMismatch when paired has a different row count.
//
// Determinism:
//   - The permutation depends only on rng's state; equal seeds give equal orders.
//
// Complexity:
//   - Time O(rows*cols), Space O(1).
func (t *Table) Shuffle(rng *rand.Rand, paired *Table) error {
	if rng == nil {
		return fmt.Errorf("%s: %w", opShuffle, ErrNilRand)
	}
	if paired != nil {
		if err := ValidatePaired(t, paired); err != nil {
			return matrixErrorf(opShuffle, err)
		}
	}
	var k int
	for n := t.data.r; n > 0; n-- {
		k = rng.Intn(n)
		t.data.swapRows(n-1, k)
		if paired != nil {
			paired.data.swapRows(n-1, k)
		}
	}

	return nil
}
