// SPDX-License-Identifier: MIT
package perceptron_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/katalvlaran/lvlearn/perceptron"
)

// ExamplePerceptron learns logical AND with a bias unit.
func ExamplePerceptron() {
	features, _ := matrix.NewTableFromRows([][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	labels, _ := matrix.NewTableFromRows([][]float64{{0}, {0}, {0}, {1}})

	p := perceptron.New(rand.New(rand.NewSource(1)), perceptron.WithBias(), perceptron.WithStallEpochs(50))
	if err := p.Train(features, labels); err != nil {
		fmt.Println(err)
		return
	}
	acc, _ := learner.MeasureAccuracy(p, features, labels, nil)
	fmt.Println("units:", p.Units())
	fmt.Printf("accuracy: %.2f\n", acc)
	// Output:
	// units: 1
	// accuracy: 1.00
}
