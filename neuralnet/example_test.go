// SPDX-License-Identifier: MIT
package neuralnet_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/katalvlaran/lvlearn/neuralnet"
)

// ExampleNeuralNet fits a single sigmoid unit to a one-feature threshold.
func ExampleNeuralNet() {
	features, _ := matrix.NewTableFromRows([][]float64{{0}, {0.1}, {0.2}, {0.8}, {0.9}, {1}})
	labels, _ := matrix.NewTableFromRows([][]float64{{0}, {0}, {0}, {1}, {1}, {1}})

	nn := neuralnet.New(rand.New(rand.NewSource(11)),
		neuralnet.WithHidden(),
		neuralnet.WithLearningRate(0.5),
		neuralnet.WithStopCondition(neuralnet.StopAtAccuracy(1, 500)),
		neuralnet.WithMaxEpochs(5000))
	if err := nn.Train(features, labels); err != nil {
		fmt.Println(err)
		return
	}
	acc, _ := learner.MeasureAccuracy(nn, features, labels, nil)
	fmt.Println(nn.Network())
	fmt.Printf("accuracy %.2f\n", acc)
	// Output:
	// 1-1 rate=0.5 momentum=0
	// accuracy 1.00
}
