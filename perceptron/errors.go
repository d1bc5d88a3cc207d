// SPDX-License-Identifier: MIT

package perceptron

import "errors"

var (
	// ErrNilRand indicates Fit was called without a random source.
	ErrNilRand = errors.New("perceptron: nil random source")

	// ErrMissingValue indicates a MissingValue cell in a feature row.
	ErrMissingValue = errors.New("perceptron: missing value in input")

	// ErrNotInitialized indicates Fit before Init.
	ErrNotInitialized = errors.New("perceptron: weights not initialized")
)
