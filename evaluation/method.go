// SPDX-License-Identifier: MIT

package evaluation

import "fmt"

// Method selects the evaluation protocol.
type Method int

const (
	Training Method = iota
	Static
	Random
	Cross
)

var methodNames = [...]string{
	Training: "training",
	Static:   "static",
	Random:   "random",
	Cross:    "cross",
}

// String returns the command-line name of m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a command-line name onto a Method.
//
// Errors:
//   - ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}
