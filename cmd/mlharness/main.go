// SPDX-License-Identifier: MIT

// Command mlharness trains a learner on an ARFF table and reports its
// accuracy under one of the evaluation protocols.
//
//	mlharness eval -A data.arff -L decisiontree -E training
//	mlharness eval -A train.arff -L neuralnet -E static test.arff -N
//	mlharness eval -A data.arff -L perceptron -E random 0.75 -V
//	mlharness eval -A data.arff -L knn -E cross 10 -config run.yaml
//	mlharness learners
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
)

func newRootCommand(stdout io.Writer) *commander.Command {
	return &commander.Command{
		UsageLine: "mlharness <command> [options]",
		Short:     "train and evaluate supervised learners",
		Subcommands: []*commander.Command{
			newEvalCommand(stdout),
			newLearnersCommand(stdout),
		},
	}
}

func main() {
	cmd := newRootCommand(os.Stdout)
	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
