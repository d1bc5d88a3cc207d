// SPDX-License-Identifier: MIT

package decisiontree

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/matrix"
)

const (
	opTrain   = "decisiontree.Train"
	opPredict = "decisiontree.Predict"
)

// Tree is a trained (or not yet trained) decision tree.
type Tree struct {
	opts     Options
	root     node
	features []matrix.Column
	label    matrix.Column
}

var _ learner.Learner = (*Tree)(nil)

// New returns an untrained tree.
func New(opts ...Option) *Tree {
	return &Tree{opts: gatherOptions(opts...)}
}

// inducer carries the read-only training data through the recursion.
type inducer struct {
	rows       [][]float64
	labels     []int
	valueCount []int // per feature
	classes    int
	stopAtMax  bool
}

// Train builds the tree from every row.
//
// Implementation:
//   - Stage 1: validate shapes; every column must be nominal and every
//     cell a valid code (features may be missing, labels may not).
//   - Stage 2: recurse from the root with the plurality of all labels.
//
// Errors:
//   - learner.ErrShapeMismatch, learner.ErrEmptyTable, learner.ErrMissingLabel,
//     ErrNotNominal, ErrBadCode.
func (t *Tree) Train(features, labels *matrix.Table) error {
	if err := learner.ValidateTraining(features, labels); err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}
	in, err := newInducer(features, labels, t.opts)
	if err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}

	all := make([]int, len(in.rows))
	for i := range all {
		all[i] = i
	}
	_, answer := in.labelStats(all)

	t.root = in.build(all, make([]bool, len(in.valueCount)), answer)
	t.features = make([]matrix.Column, features.Cols())
	for j := range t.features {
		t.features[j] = features.Column(j)
	}
	t.label = labels.Column(0)

	return nil
}

func newInducer(features, labels *matrix.Table, opts Options) (*inducer, error) {
	in := &inducer{
		rows:       make([][]float64, features.Rows()),
		labels:     make([]int, labels.Rows()),
		valueCount: make([]int, features.Cols()),
		classes:    labels.ValueCount(0),
		stopAtMax:  opts.maxEntropyStop,
	}
	if in.classes == 0 {
		return nil, fmt.Errorf("label %q: %w", labels.ColumnName(0), ErrNotNominal)
	}
	for j := range in.valueCount {
		if in.valueCount[j] = features.ValueCount(j); in.valueCount[j] == 0 {
			return nil, fmt.Errorf("feature %q: %w", features.ColumnName(j), ErrNotNominal)
		}
	}

	for i, row := range features.All() {
		for j, v := range row {
			if !matrix.IsMissing(v) && !isCode(v, in.valueCount[j]) {
				return nil, fmt.Errorf("row %d feature %q value %g: %w", i, features.ColumnName(j), v, ErrBadCode)
			}
		}
		in.rows[i] = row

		v, _ := labels.At(i, 0)
		if matrix.IsMissing(v) {
			return nil, fmt.Errorf("row %d: %w", i, learner.ErrMissingLabel)
		}
		if !isCode(v, in.classes) {
			return nil, fmt.Errorf("row %d label %g: %w", i, v, ErrBadCode)
		}
		in.labels[i] = int(v)
	}

	return in, nil
}

// isCode reports whether v is an integer in [0, n).
func isCode(v float64, n int) bool {
	return v >= 0 && v < float64(n) && v == math.Trunc(v)
}

// labelStats returns the label entropy and plurality over a row subset.
func (in *inducer) labelStats(subset []int) (float64, int) {
	counts := make([]float64, in.classes)
	for _, i := range subset {
		counts[in.labels[i]]++
	}

	return distribution(counts)
}

// buckets partitions subset by feature f. Rows whose value is missing fall
// into no bucket.
func (in *inducer) buckets(subset []int, f int) [][]int {
	out := make([][]int, in.valueCount[f])
	for _, i := range subset {
		if v := in.rows[i][f]; !matrix.IsMissing(v) {
			out[int(v)] = append(out[int(v)], i)
		}
	}

	return out
}

// build returns the subtree for subset; answer is the subset's plurality label.
//
// Implementation:
//   - Stage 1: a pure subset, or a path that used every feature, is a leaf.
//   - Stage 2: score every unused feature; keep the strictly lowest score,
//     so ties resolve to the lower index.
//   - Stage 3: one child per value: empty → leaf(answer), pure (or entropy
//     1.0 under WithMaxEntropyStop) → leaf(bucket plurality), otherwise recurse.
func (in *inducer) build(subset []int, used []bool, answer int) node {
	if h, _ := in.labelStats(subset); h == 0 {
		return &leaf{answer: answer}
	}

	best, bestScore := -1, math.Inf(1)
	total := float64(len(subset))
	for f, done := range used {
		if done {
			continue
		}
		score := 0.0
		for _, b := range in.buckets(subset, f) {
			if len(b) == 0 {
				continue
			}
			h, _ := in.labelStats(b)
			score += float64(len(b)) / total * h
		}
		if score < bestScore {
			best, bestScore = f, score
		}
	}
	if best < 0 {
		return &leaf{answer: answer} // every feature used on this path
	}

	next := append([]bool(nil), used...)
	next[best] = true
	s := &split{feature: best, answer: answer}
	for _, b := range in.buckets(subset, best) {
		if len(b) == 0 {
			s.children = append(s.children, &leaf{answer: answer})
			continue
		}
		h, plurality := in.labelStats(b)
		if h == 0 || (in.stopAtMax && h == 1) {
			s.children = append(s.children, &leaf{answer: plurality})
			continue
		}
		s.children = append(s.children, in.build(b, next, plurality))
	}

	return s
}

// Predict descends the tree. A value with no matching child answers the
// current node's plurality label.
//
// Errors:
//   - learner.ErrNotTrained, learner.ErrShapeMismatch.
func (t *Tree) Predict(row []float64) (float64, error) {
	if t.root == nil {
		return 0, fmt.Errorf("%s: %w", opPredict, learner.ErrNotTrained)
	}
	if err := learner.ValidateRow(row, len(t.features)); err != nil {
		return 0, fmt.Errorf("%s: %w", opPredict, err)
	}

	cur := t.root
	for {
		switch n := cur.(type) {
		case *leaf:
			return float64(n.answer), nil
		case *split:
			v := row[n.feature]
			if !isCode(v, len(n.children)) {
				return float64(n.answer), nil
			}
			cur = n.children[int(v)]
		}
	}
}

// Depth returns the number of split levels on the longest path (0 for a
// single leaf or an untrained tree).
func (t *Tree) Depth() int {
	if t.root == nil {
		return 0
	}

	return depth(t.root)
}

// Leaves returns the number of leaves (0 for an untrained tree).
func (t *Tree) Leaves() int {
	if t.root == nil {
		return 0
	}

	return leaves(t.root)
}

// String renders the tree with box-drawing branches, one node per line:
//
//	outlook? (yes)
//	├── sunny: humidity? (no)
//	│   ├── high: no
//	│   └── normal: yes
//	├── overcast: yes
//	└── rainy: yes
func (t *Tree) String() string {
	if t.root == nil {
		return "<untrained>\n"
	}
	var b strings.Builder
	t.render(&b, t.root, "")

	return b.String()
}

func (t *Tree) render(b *strings.Builder, n node, indent string) {
	switch n := n.(type) {
	case *leaf:
		b.WriteString(name(t.label, n.answer))
		b.WriteByte('\n')
	case *split:
		col := t.features[n.feature]
		fmt.Fprintf(b, "%s? (%s)\n", col.Name, name(t.label, n.answer))
		for v, child := range n.children {
			branch, pad := "├── ", "│   "
			if v == len(n.children)-1 {
				branch, pad = "└── ", "    "
			}
			fmt.Fprintf(b, "%s%s%s: ", indent, branch, name(col, v))
			t.render(b, child, indent+pad)
		}
	}
}

// name returns the declared value name of code k, or k itself.
func name(c matrix.Column, k int) string {
	if k < len(c.Values) {
		return c.Values[k]
	}

	return fmt.Sprint(k)
}
