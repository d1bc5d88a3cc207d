// SPDX-License-Identifier: MIT

package decisiontree

import "errors"

var (
	// ErrNotNominal indicates a continuous feature or label column; the tree
	// treats every column as a category index.
	ErrNotNominal = errors.New("decisiontree: column is not nominal")

	// ErrBadCode indicates a training cell that is neither MissingValue nor an
	// integer code in [0, valueCount).
	ErrBadCode = errors.New("decisiontree: value is not a valid category code")
)
