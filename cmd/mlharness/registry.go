// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvlearn/baseline"
	"github.com/katalvlaran/lvlearn/config"
	"github.com/katalvlaran/lvlearn/decisiontree"
	"github.com/katalvlaran/lvlearn/knn"
	"github.com/katalvlaran/lvlearn/learner"
	"github.com/katalvlaran/lvlearn/neuralnet"
	"github.com/katalvlaran/lvlearn/perceptron"
)

// registry maps the -L names onto learners configured from cfg.
func registry(cfg *config.Config) learner.Registry {
	return learner.Registry{
		"baseline": func(*rand.Rand) (learner.Learner, error) {
			return baseline.New(), nil
		},
		"perceptron": func(rng *rand.Rand) (learner.Learner, error) {
			return perceptron.New(rng, cfg.Perceptron.Options()...), nil
		},
		"neuralnet": func(rng *rand.Rand) (learner.Learner, error) {
			return neuralnet.New(rng, cfg.NeuralNet.Options()...), nil
		},
		"decisiontree": func(*rand.Rand) (learner.Learner, error) {
			return decisiontree.New(cfg.DecisionTree.Options()...), nil
		},
		"knn": func(*rand.Rand) (learner.Learner, error) {
			return knn.New(cfg.KNN.Options()...), nil
		},
	}
}

func newLearnersCommand(stdout io.Writer) *commander.Command {
	return &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			for _, name := range registry(config.Default()).Names() {
				fmt.Fprintln(stdout, name)
			}
			return nil
		},
		UsageLine: "learners",
		Short:     "lists the learner names accepted by eval -L",
		Flag:      *flag.NewFlagSet("learners", flag.ExitOnError),
	}
}
