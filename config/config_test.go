// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlearn/config"
	"github.com/katalvlaran/lvlearn/knn"
	"github.com/katalvlaran/lvlearn/neuralnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
seed: 42
eval:
  reps: 3
neuralnet:
  hidden: [8, 4]
  learning_rate: 0.3
  momentum: 0.9
  target_accuracy: 0.95
perceptron:
  bias: false
knn:
  k: 5
  distance_weighting: true
`

func TestParse_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 3, cfg.Eval.Reps)
	assert.Equal(t, []int{8, 4}, cfg.NeuralNet.Hidden)
	assert.Equal(t, 0.9, cfg.NeuralNet.Momentum)
	assert.Equal(t, neuralnet.DefaultMaxEpochs, cfg.NeuralNet.MaxEpochs)
	assert.False(t, cfg.Perceptron.Bias)
	assert.Equal(t, 5, cfg.KNN.K)
	assert.False(t, cfg.DecisionTree.MaxEntropyStop)

	assert.Len(t, cfg.NeuralNet.Options(), 6)
	assert.Len(t, cfg.Perceptron.Options(), 3)
	assert.Len(t, cfg.KNN.Options(), 2)
	assert.Len(t, cfg.DecisionTree.Options(), 1)
}

func TestParse_EmptyIsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, knn.DefaultK, cfg.KNN.K)
	assert.True(t, cfg.Perceptron.Bias)
	assert.Len(t, cfg.Perceptron.Options(), 4)
	require.NoError(t, cfg.Validate())
}

func TestParse_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := config.Parse(strings.NewReader("knn:\n  neighbours: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neighbours")
}

func TestValidate_Ranges(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*config.Config){
		"reps":       func(c *config.Config) { c.Eval.Reps = -1 },
		"hidden":     func(c *config.Config) { c.NeuralNet.Hidden = []int{3, 0} },
		"nn rate":    func(c *config.Config) { c.NeuralNet.LearningRate = 0 },
		"momentum":   func(c *config.Config) { c.NeuralNet.Momentum = 1 },
		"nn stall":   func(c *config.Config) { c.NeuralNet.StallEpochs = 0 },
		"target":     func(c *config.Config) { c.NeuralNet.TargetAccuracy = 1.5 },
		"nn max":     func(c *config.Config) { c.NeuralNet.MaxEpochs = 0 },
		"validation": func(c *config.Config) { c.NeuralNet.ValidationFraction = 1 },
		"perceptron": func(c *config.Config) { c.Perceptron.LearningRate = -0.1 },
		"p stall":    func(c *config.Config) { c.Perceptron.StallEpochs = 0 },
		"p max":      func(c *config.Config) { c.Perceptron.MaxEpochs = 0 },
		"k":          func(c *config.Config) { c.KNN.K = 0 },
	}
	for name, mutate := range cases {
		cfg := config.Default()
		mutate(cfg)
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid, name)
	}

	var nilCfg *config.Config
	assert.ErrorIs(t, nilCfg.Validate(), config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(good, []byte(sample), 0o600))
	cfg, err := config.Load(good)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("knn:\n  k: 0\n"), 0o600))
	_, err = config.Load(bad)
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.ApplyOverrides(config.Overrides{})
	assert.Equal(t, config.DefaultSeed, cfg.Seed)

	cfg.ApplyOverrides(config.Overrides{Seed: 9, Reps: 4})
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 4, cfg.Eval.Reps)
}
