// SPDX-License-Identifier: MIT

package knn

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/matrix"
)

const (
	opTrain   = "knn.Train"
	opPredict = "knn.Predict"
)

// minSquared keeps the 1/d² weight of an exact match finite.
const minSquared = 1e-12

// KNN is a k-nearest-neighbour learner.
type KNN struct {
	opts     Options
	features *matrix.Table
	labels   []float64
	nominal  []bool // per feature column
	classes  int    // label value count; 0 for a continuous label
}

var _ learner.Learner = (*KNN)(nil)

// New returns an untrained learner.
func New(opts ...Option) *KNN {
	return &KNN{opts: gatherOptions(opts...)}
}

// Train stores a copy of the training rows.
//
// Errors:
//   - learner.ErrShapeMismatch, learner.ErrEmptyTable, learner.ErrMissingLabel.
func (m *KNN) Train(features, labels *matrix.Table) error {
	if err := learner.ValidateTraining(features, labels); err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}
	ys, err := labels.ColumnValues(0)
	if err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}
	for i, y := range ys {
		if matrix.IsMissing(y) {
			return fmt.Errorf("%s: row %d: %w", opTrain, i, learner.ErrMissingLabel)
		}
	}

	m.features = features.Clone()
	m.labels = ys
	m.classes = labels.ValueCount(0)
	m.nominal = make([]bool, features.Cols())
	for j := range m.nominal {
		m.nominal[j] = features.ValueCount(j) > 0
	}

	return nil
}

// neighbour is one stored row and its distance to the query.
type neighbour struct {
	row  int
	dist float64
}

// Predict answers from the k nearest stored rows.
//
// Implementation:
//   - Stage 1: distance from row to every stored row.
//   - Stage 2: stable sort by distance, keep the first k.
//   - Stage 3: vote (nominal label) or average (continuous label),
//     optionally weighted by 1/d².
//
// Errors:
//   - learner.ErrNotTrained, learner.ErrShapeMismatch.
//
// Complexity:
//   - Time O(n·cols + n log n) for n stored rows.
func (m *KNN) Predict(row []float64) (float64, error) {
	if m.features == nil {
		return 0, fmt.Errorf("%s: %w", opPredict, learner.ErrNotTrained)
	}
	if err := learner.ValidateRow(row, m.features.Cols()); err != nil {
		return 0, fmt.Errorf("%s: %w", opPredict, err)
	}

	diff := make([]float64, len(row))
	near := make([]neighbour, 0, m.features.Rows())
	for i, stored := range m.features.All() {
		near = append(near, neighbour{row: i, dist: m.distance(diff, row, stored)})
	}
	sort.SliceStable(near, func(a, b int) bool { return near[a].dist < near[b].dist })
	near = near[:min(m.opts.k, len(near))]

	if m.classes > 0 {
		votes := make([]float64, m.classes)
		for _, n := range near {
			if c := int(math.Round(m.labels[n.row])); c >= 0 && c < m.classes {
				votes[c] += m.weight(n.dist)
			}
		}

		return float64(floats.MaxIdx(votes)), nil
	}

	var sum, total float64
	for _, n := range near {
		w := m.weight(n.dist)
		sum += w * m.labels[n.row]
		total += w
	}

	return sum / total, nil
}

// distance fills diff with per-column differences and returns its norm.
func (m *KNN) distance(diff, a, b []float64) float64 {
	for j := range diff {
		switch {
		case matrix.IsMissing(a[j]) || matrix.IsMissing(b[j]):
			diff[j] = 1
		case m.nominal[j]:
			diff[j] = 0
			if a[j] != b[j] {
				diff[j] = 1
			}
		default:
			diff[j] = a[j] - b[j]
		}
	}

	return floats.Norm(diff, 2)
}

func (m *KNN) weight(d float64) float64 {
	if !m.opts.weighted {
		return 1
	}

	return 1 / max(d*d, minSquared)
}
