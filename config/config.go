// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the harness: the
// random seed, evaluation repetitions and per-learner hyperparameters.
//
// Unknown keys are rejected. Keys left out keep the learner packages'
// defaults, so an empty file is a valid configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlearn/decisiontree"
	"github.com/katalvlaran/lvlearn/knn"
	"github.com/katalvlaran/lvlearn/neuralnet"
	"github.com/katalvlaran/lvlearn/perceptron"
)

const (
	// DefaultSeed makes runs without a configured seed reproducible.
	DefaultSeed int64 = 1

	// DefaultPerceptronBias gives perceptron units a constant input. Tables
	// read from ARFF carry no bias column, so without it every boundary
	// passes through the origin.
	DefaultPerceptronBias = true
)

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config captures the knobs of one harness run.
type Config struct {
	Seed         int64              `yaml:"seed"`
	Eval         EvalConfig         `yaml:"eval"`
	NeuralNet    NeuralNetConfig    `yaml:"neuralnet"`
	Perceptron   PerceptronConfig   `yaml:"perceptron"`
	DecisionTree DecisionTreeConfig `yaml:"decisiontree"`
	KNN          KNNConfig          `yaml:"knn"`
}

// EvalConfig tunes the evaluation protocols.
type EvalConfig struct {
	Reps int `yaml:"reps"` // cross-validation repetitions; 0 means 1
}

// NeuralNetConfig mirrors the neuralnet options. An empty Hidden list keeps
// the default topology; TargetAccuracy 0 stops on stall alone.
type NeuralNetConfig struct {
	Hidden             []int   `yaml:"hidden"`
	LearningRate       float64 `yaml:"learning_rate"`
	Momentum           float64 `yaml:"momentum"`
	StallEpochs        int     `yaml:"stall_epochs"`
	TargetAccuracy     float64 `yaml:"target_accuracy"`
	MaxEpochs          int     `yaml:"max_epochs"`
	ValidationFraction float64 `yaml:"validation_fraction"`
}

// PerceptronConfig mirrors the perceptron options.
type PerceptronConfig struct {
	LearningRate float64 `yaml:"learning_rate"`
	StallEpochs  int     `yaml:"stall_epochs"`
	MaxEpochs    int     `yaml:"max_epochs"`
	Bias         bool    `yaml:"bias"`
}

// DecisionTreeConfig mirrors the decisiontree options.
type DecisionTreeConfig struct {
	MaxEntropyStop bool `yaml:"max_entropy_stop"`
}

// KNNConfig mirrors the knn options.
type KNNConfig struct {
	K                 int  `yaml:"k"`
	DistanceWeighting bool `yaml:"distance_weighting"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Seed int64
	Reps int
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Seed: DefaultSeed,
		NeuralNet: NeuralNetConfig{
			LearningRate:       neuralnet.DefaultLearningRate,
			Momentum:           neuralnet.DefaultMomentum,
			StallEpochs:        neuralnet.DefaultStallEpochs,
			MaxEpochs:          neuralnet.DefaultMaxEpochs,
			ValidationFraction: neuralnet.DefaultValidationFraction,
		},
		Perceptron: PerceptronConfig{
			LearningRate: perceptron.DefaultLearningRate,
			StallEpochs:  perceptron.DefaultStallEpochs,
			MaxEpochs:    perceptron.DefaultMaxEpochs,
			Bias:         DefaultPerceptronBias,
		},
		DecisionTree: DecisionTreeConfig{MaxEntropyStop: decisiontree.DefaultMaxEntropyStop},
		KNN:          KNNConfig{K: knn.DefaultK, DistanceWeighting: knn.DefaultDistanceWeighting},
	}
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML over Default(). Unknown keys are errors. Parse does
// not validate.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Reps > 0 {
		c.Eval.Reps = o.Reps
	}
}

// Validate verifies the config is runnable. Every failure wraps ErrInvalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil: %w", ErrInvalid)
	}
	if c.Eval.Reps < 0 {
		return invalid("eval.reps must be >= 0 (got %d)", c.Eval.Reps)
	}

	nn := c.NeuralNet
	for _, h := range nn.Hidden {
		if h < 1 {
			return invalid("neuralnet.hidden sizes must be > 0 (got %v)", nn.Hidden)
		}
	}
	switch {
	case !positive(nn.LearningRate):
		return invalid("neuralnet.learning_rate must be > 0 (got %g)", nn.LearningRate)
	case nn.Momentum < 0 || nn.Momentum >= 1:
		return invalid("neuralnet.momentum must be in [0,1) (got %g)", nn.Momentum)
	case nn.StallEpochs < 1:
		return invalid("neuralnet.stall_epochs must be > 0 (got %d)", nn.StallEpochs)
	case nn.TargetAccuracy < 0 || nn.TargetAccuracy > 1:
		return invalid("neuralnet.target_accuracy must be in [0,1] (got %g)", nn.TargetAccuracy)
	case nn.MaxEpochs < 1:
		return invalid("neuralnet.max_epochs must be > 0 (got %d)", nn.MaxEpochs)
	case nn.ValidationFraction < 0 || nn.ValidationFraction >= 1:
		return invalid("neuralnet.validation_fraction must be in [0,1) (got %g)", nn.ValidationFraction)
	}

	p := c.Perceptron
	switch {
	case !positive(p.LearningRate):
		return invalid("perceptron.learning_rate must be > 0 (got %g)", p.LearningRate)
	case p.StallEpochs < 1:
		return invalid("perceptron.stall_epochs must be > 0 (got %d)", p.StallEpochs)
	case p.MaxEpochs < 1:
		return invalid("perceptron.max_epochs must be > 0 (got %d)", p.MaxEpochs)
	}

	if c.KNN.K < 1 {
		return invalid("knn.k must be > 0 (got %d)", c.KNN.K)
	}

	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}
