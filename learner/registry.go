// SPDX-License-Identifier: MIT

package learner

import (
	"fmt"
	"math/rand"
	"sort"
)

// Factory builds a fresh, untrained learner. rng is the run's single random
// source; factories of deterministic learners ignore it.
type Factory func(rng *rand.Rand) (Learner, error)

// Registry maps learner names to factories.
type Registry map[string]Factory

// New builds the learner registered under name.
//
// Errors:
//   - ErrUnknownLearner (the message lists the registered names).
//   - Any factory error.
func (r Registry) New(name string, rng *rand.Rand) (Learner, error) {
	f, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%q (known: %v): %w", name, r.Names(), ErrUnknownLearner)
	}
	l, err := f(rng)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}

	return l, nil
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
