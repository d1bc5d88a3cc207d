// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvlearn/arff"
	"github.com/katalvlaran/lvlearn/config"
	"github.com/katalvlaran/lvlearn/evaluation"
)

var (
	errMissingFlag  = errors.New("required flag not set")
	errMissingExtra = errors.New("evaluation method needs an argument")
	errExtraArgs    = errors.New("unexpected arguments")
)

// evalFlags holds the parsed eval command line.
type evalFlags struct {
	arff       string
	learner    string
	method     string
	extra      string
	verbose    bool
	normalize  bool
	configPath string
	seed       int64
	reps       int
	quiet      bool
}

func newEvalCommand(stdout io.Writer) *commander.Command {
	f := &evalFlags{}
	cmd := &commander.Command{
		UsageLine: "eval -A <file> -L <learner> -E <method> [<extra>] [options]",
		Short:     "trains a learner and reports its accuracy",
		Long: `
trains a learner on an ARFF table and reports its accuracy

	$ mlharness eval -A <arff> -L <learner> -E training
	$ mlharness eval -A <arff> -L <learner> -E static <test arff>
	$ mlharness eval -A <arff> -L <learner> -E random <train fraction 0..1>
	$ mlharness eval -A <arff> -L <learner> -E cross <folds>

The last attribute of the table is the label.
`,
		Flag:        *flag.NewFlagSet("eval", flag.ContinueOnError),
		CustomFlags: true,
	}
	cmd.Flag.StringVar(&f.arff, "A", "", "ARFF data file")
	cmd.Flag.StringVar(&f.learner, "L", "", "learner: baseline, perceptron, neuralnet, decisiontree, knn")
	cmd.Flag.StringVar(&f.method, "E", "", "evaluation method: training, static, random, cross")
	cmd.Flag.BoolVar(&f.verbose, "V", false, "print the confusion matrix")
	cmd.Flag.BoolVar(&f.normalize, "N", false, "normalize continuous attributes")
	cmd.Flag.StringVar(&f.configPath, "config", "", "YAML run configuration")
	cmd.Flag.Int64Var(&f.seed, "seed", 0, "PRNG seed (overrides the configuration)")
	cmd.Flag.IntVar(&f.reps, "reps", 0, "cross-validation repetitions (overrides the configuration)")
	cmd.Flag.BoolVar(&f.quiet, "q", false, "suppress progress logging")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		rest, extra, err := splitEvalExtra(args)
		if err != nil {
			return err
		}
		if err = cmd.Flag.Parse(rest); err != nil {
			return err
		}
		if cmd.Flag.NArg() > 0 {
			return fmt.Errorf("%v: %w", cmd.Flag.Args(), errExtraArgs)
		}
		f.extra = extra

		return runEval(f, stdout)
	}

	return cmd
}

// splitEvalExtra removes the positional argument that follows
// "-E static|random|cross" so the remaining flags parse normally.
func splitEvalExtra(args []string) (rest []string, extra string, err error) {
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		rest = append(rest, args[i])
		if args[i] != "-E" && args[i] != "--E" {
			continue
		}
		if i+1 >= len(args) {
			break // let the flag parser report the missing value
		}
		i++
		rest = append(rest, args[i])
		m, perr := evaluation.ParseMethod(args[i])
		if perr != nil {
			return nil, "", perr
		}
		if m == evaluation.Training {
			continue
		}
		if i+1 >= len(args) {
			return nil, "", fmt.Errorf("-E %s: %w", m, errMissingExtra)
		}
		i++
		extra = args[i]
	}

	return rest, extra, nil
}

// runEval loads everything, runs the protocol and writes the report.
func runEval(f *evalFlags, stdout io.Writer) error {
	for _, req := range []struct{ name, value string }{{"A", f.arff}, {"L", f.learner}, {"E", f.method}} {
		if req.value == "" {
			return fmt.Errorf("-%s: %w", req.name, errMissingFlag)
		}
	}
	method, err := evaluation.ParseMethod(f.method)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if f.configPath != "" {
		if cfg, err = config.Load(f.configPath); err != nil {
			return err
		}
	}
	cfg.ApplyOverrides(config.Overrides{Seed: f.seed, Reps: f.reps})
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	opts := evaluation.Options{
		Method:      method,
		LearnerName: f.learner,
		Reps:        cfg.Eval.Reps,
		Confusion:   f.verbose,
		Normalize:   f.normalize,
	}
	if !f.quiet {
		opts.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	switch method {
	case evaluation.Static:
		if opts.TestTable, err = arff.Load(f.extra); err != nil {
			return err
		}
		opts.TestName = f.extra
	case evaluation.Random:
		if opts.TrainFraction, err = strconv.ParseFloat(f.extra, 64); err != nil {
			return fmt.Errorf("random fraction %q: %w", f.extra, err)
		}
	case evaluation.Cross:
		if opts.Folds, err = strconv.Atoi(f.extra); err != nil {
			return fmt.Errorf("cross folds %q: %w", f.extra, err)
		}
	}
	if err = opts.Validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	l, err := registry(cfg).New(f.learner, rng)
	if err != nil {
		return err
	}
	data, err := arff.Load(f.arff)
	if err != nil {
		return err
	}
	if opts.Logger != nil {
		opts.Logger.Printf("seed=%d file=%s", cfg.Seed, f.arff)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := evaluation.Run(ctx, l, data, opts, rng)
	if err != nil {
		return err
	}
	rep.Dataset = f.arff
	_, err = rep.WriteTo(stdout)

	return err
}
