// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlearn/matrix"
)

// ExampleTable shows a nominal label column next to continuous features.
func ExampleTable() {
	species := matrix.Column{Name: "class", Values: []string{"setosa", "versicolor"}}
	data, _ := matrix.NewTableFromRows([][]float64{
		{5.1, 3.5, 0},
		{7.0, 3.2, 1},
		{4.9, matrix.MissingValue, 0},
	}, matrix.WithRelation("iris"), matrix.WithColumns(
		matrix.Column{Name: "sepallength"}, matrix.Column{Name: "sepalwidth"}, species))

	features, _ := data.Slice(0, 0, data.Rows(), 2)
	labels, _ := data.Slice(0, 2, data.Rows(), 1)

	mean, _ := features.ColumnMean(1)
	name, _ := labels.AttrValue(0, 1)
	fmt.Println(data.Relation(), features.Cols(), labels.ValueCount(0))
	fmt.Printf("mean sepalwidth %.2f, code 1 = %s\n", mean, name)

	_ = features.Shuffle(rand.New(rand.NewSource(1)), labels)
	fmt.Println(features.Rows() == labels.Rows())

	// Output:
	// iris 2 2
	// mean sepalwidth 3.35, code 1 = versicolor
	// true
}

// ExampleTable_Normalize scales a test set with its training ranges.
func ExampleTable_Normalize() {
	train, _ := matrix.NewTableFromRows([][]float64{{0, 100}, {4, 300}})
	test, _ := matrix.NewTableFromRows([][]float64{{2, 400}})

	r, _ := train.Normalize()
	_ = test.NormalizeWith(r)
	fmt.Print(train.String() + test.String())

	// Output:
	// [0, 0]
	// [1, 1]
	// [0.5, 1.5]
}
