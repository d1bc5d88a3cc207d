// SPDX-License-Identifier: MIT

package evaluation

import "time"

// trainClock accumulates training durations across folds.
type trainClock struct {
	total time.Duration
	runs  int
}

// time runs train and records how long it took.
func (c *trainClock) time(train func() error) error {
	start := time.Now()
	err := train()
	c.total += time.Since(start)
	c.runs++

	return err
}

// mean returns the average recorded duration (0 with no runs).
func (c *trainClock) mean() time.Duration {
	if c.runs == 0 {
		return 0
	}

	return c.total / time.Duration(c.runs)
}
