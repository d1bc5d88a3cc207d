// SPDX-License-Identifier: MIT

package learner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlearn/matrix"
)

// ConfusionMatrix tallies (target, predicted) class pairs.
// Row = target value, column = predicted value.
type ConfusionMatrix struct {
	cells *matrix.Dense
	names []string
}

// NewConfusionMatrix returns a classes×classes zero tally. names, when
// given, label rows and columns in String; missing names fall back to codes.
//
// Errors:
//   - ErrBadClassCount when classes < 1.
func NewConfusionMatrix(classes int, names ...string) (*ConfusionMatrix, error) {
	if classes < 1 {
		return nil, fmt.Errorf("NewConfusionMatrix(%d): %w", classes, ErrBadClassCount)
	}
	cells, err := matrix.NewDense(classes, classes)
	if err != nil {
		return nil, fmt.Errorf("NewConfusionMatrix: %w", err)
	}

	return &ConfusionMatrix{cells: cells, names: append([]string(nil), names...)}, nil
}

// Classes returns the side length of the tally.
func (c *ConfusionMatrix) Classes() int { return c.cells.Rows() }

// Add counts one (target, predicted) observation.
// Errors: matrix.ErrOutOfRange when either code is outside [0, Classes()).
func (c *ConfusionMatrix) Add(target, predicted int) error {
	v, err := c.cells.At(target, predicted)
	if err != nil {
		return fmt.Errorf("ConfusionMatrix.Add: %w", err)
	}

	return c.cells.Set(target, predicted, v+1)
}

// Count returns cell [target][predicted] (0 when out of range).
func (c *ConfusionMatrix) Count(target, predicted int) int {
	v, err := c.cells.At(target, predicted)
	if err != nil {
		return 0
	}

	return int(v)
}

// Total returns the number of observations.
func (c *ConfusionMatrix) Total() int {
	total := 0.0
	c.cells.Do(func(_, _ int, v float64) bool {
		total += v
		return true
	})

	return int(total)
}

// Correct returns the diagonal sum.
func (c *ConfusionMatrix) Correct() int {
	correct := 0
	for k := 0; k < c.Classes(); k++ {
		correct += c.Count(k, k)
	}

	return correct
}

// Accuracy returns Correct()/Total(), or 0 for an empty tally.
func (c *ConfusionMatrix) Accuracy() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}

	return float64(c.Correct()) / float64(total)
}

// String renders the tally as an aligned grid with a header of predicted
// classes; each line starts with the target class.
func (c *ConfusionMatrix) String() string {
	n := c.Classes()
	labels := make([]string, n)
	width := 1
	for k := range labels {
		labels[k] = c.name(k)
		width = max(width, len(labels[k]))
	}
	for t := 0; t < n; t++ {
		for p := 0; p < n; p++ {
			width = max(width, len(strconv.Itoa(c.Count(t, p))))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width))
	for _, l := range labels {
		fmt.Fprintf(&b, " %*s", width, l)
	}
	b.WriteByte('\n')
	for t := 0; t < n; t++ {
		fmt.Fprintf(&b, "%*s", width, labels[t])
		for p := 0; p < n; p++ {
			fmt.Fprintf(&b, " %*d", width, c.Count(t, p))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (c *ConfusionMatrix) name(k int) string {
	if k < len(c.names) && c.names[k] != "" {
		return c.names[k]
	}

	return strconv.Itoa(k)
}
