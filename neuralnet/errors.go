// SPDX-License-Identifier: MIT

package neuralnet

import "errors"

var (
	// ErrTopology indicates an invalid layer (no units, no inputs) or a
	// network whose input/output width does not fit the data.
	ErrTopology = errors.New("neuralnet: invalid topology")

	// ErrMissingValue indicates a MissingValue cell in a training or
	// prediction row; the network has no way to feed an unknown input.
	ErrMissingValue = errors.New("neuralnet: missing value in input")

	// ErrNilRand indicates a nil random source where one is needed.
	ErrNilRand = errors.New("neuralnet: nil random source")

	// ErrNoIndex indicates a layer or unit index outside the network.
	ErrNoIndex = errors.New("neuralnet: layer or unit index out of range")
)
