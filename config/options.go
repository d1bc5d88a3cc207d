// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/lvlearn/decisiontree"
	"github.com/katalvlaran/lvlearn/knn"
	"github.com/katalvlaran/lvlearn/neuralnet"
	"github.com/katalvlaran/lvlearn/perceptron"
)

// The Options methods translate a validated section into functional
// options. Calling them on an unvalidated section may panic.

// Options returns the neuralnet options of c.
func (c NeuralNetConfig) Options() []neuralnet.Option {
	stop := neuralnet.StopAfterStall(c.StallEpochs)
	if c.TargetAccuracy > 0 {
		stop = neuralnet.StopAtAccuracy(c.TargetAccuracy, c.StallEpochs)
	}
	opts := []neuralnet.Option{
		neuralnet.WithLearningRate(c.LearningRate),
		neuralnet.WithMomentum(c.Momentum),
		neuralnet.WithStopCondition(stop),
		neuralnet.WithMaxEpochs(c.MaxEpochs),
		neuralnet.WithValidationFraction(c.ValidationFraction),
	}
	if len(c.Hidden) > 0 {
		opts = append(opts, neuralnet.WithHidden(c.Hidden...))
	}

	return opts
}

// Options returns the perceptron options of c.
func (c PerceptronConfig) Options() []perceptron.Option {
	opts := []perceptron.Option{
		perceptron.WithLearningRate(c.LearningRate),
		perceptron.WithStallEpochs(c.StallEpochs),
		perceptron.WithMaxEpochs(c.MaxEpochs),
	}
	if c.Bias {
		opts = append(opts, perceptron.WithBias())
	}

	return opts
}

// Options returns the decisiontree options of c.
func (c DecisionTreeConfig) Options() []decisiontree.Option {
	return []decisiontree.Option{decisiontree.WithMaxEntropyStop(c.MaxEntropyStop)}
}

// Options returns the knn options of c.
func (c KNNConfig) Options() []knn.Option {
	opts := []knn.Option{knn.WithK(c.K)}
	if c.DistanceWeighting {
		opts = append(opts, knn.WithDistanceWeighting())
	}

	return opts
}
