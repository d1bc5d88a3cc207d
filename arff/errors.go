// SPDX-License-Identifier: MIT

package arff

import "errors"

// Sentinel errors. Every message carries the "arff: ..." prefix; call sites
// wrap them with the offending line number.
var (
	// ErrSyntax indicates a malformed header or data line.
	ErrSyntax = errors.New("arff: syntax error")

	// ErrUnknownType indicates an attribute type other than a nominal
	// enumeration or real/numeric/integer/continuous.
	ErrUnknownType = errors.New("arff: unsupported attribute type")

	// ErrUnknownNominal indicates a data value missing from its attribute's enumeration.
	ErrUnknownNominal = errors.New("arff: value not in nominal enumeration")

	// ErrColumnCount indicates a data row whose field count differs from the
	// number of declared attributes.
	ErrColumnCount = errors.New("arff: wrong number of values")
)
