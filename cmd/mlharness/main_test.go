// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlearn/config"
	"github.com/katalvlaran/lvlearn/evaluation"
	"github.com/katalvlaran/lvlearn/learner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xorARFF = `@relation xor
@attribute a {0,1}
@attribute b {0,1}
@attribute class {false,true}
@data
0,0,false
0,1,true
1,0,true
1,1,false
0,0,false
0,1,true
1,0,true
1,1,false
`

const andARFF = `@relation and
@attribute a {0,1}
@attribute b {0,1}
@attribute class {0,1}
@data
0,0,0
0,1,0
1,0,0
1,1,1
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func dispatch(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newRootCommand(&out).Dispatch(args)

	return out.String(), err
}

func TestSplitEvalExtra(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		args  []string
		rest  []string
		extra string
	}{
		{"training", []string{"-A", "x", "-E", "training", "-V"}, []string{"-A", "x", "-E", "training", "-V"}, ""},
		{"static", []string{"-E", "static", "t.arff", "-N"}, []string{"-E", "static", "-N"}, "t.arff"},
		{"cross", []string{"-L", "knn", "-E", "cross", "10"}, []string{"-L", "knn", "-E", "cross"}, "10"},
		{"dangling", []string{"-E"}, []string{"-E"}, ""},
	}
	for _, tc := range cases {
		rest, extra, err := splitEvalExtra(tc.args)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.rest, rest, tc.name)
		assert.Equal(t, tc.extra, extra, tc.name)
	}

	_, _, err := splitEvalExtra([]string{"-E", "random"})
	require.ErrorIs(t, err, errMissingExtra)
	_, _, err = splitEvalExtra([]string{"-E", "bootstrap", "5"})
	require.ErrorIs(t, err, evaluation.ErrUnknownMethod)
}

func TestEval_TrainingWithConfusion(t *testing.T) {
	t.Parallel()

	data := writeFile(t, "xor.arff", xorARFF)
	out, err := dispatch(t, "eval", "-A", data, "-L", "decisiontree", "-E", "training", "-V", "-q")
	require.NoError(t, err)

	assert.Contains(t, out, "Dataset name: "+data+"\n")
	assert.Contains(t, out, "Number of instances: 8\n")
	assert.Contains(t, out, "Learning algorithm: decisiontree\n")
	assert.Contains(t, out, "Training set accuracy: 1\n")
	assert.Contains(t, out, "Confusion matrix: (Row=target value, Col=predicted value)\n")
}

func TestEval_CrossWithConfig(t *testing.T) {
	t.Parallel()

	data := writeFile(t, "xor.arff", xorARFF)
	cfg := writeFile(t, "run.yaml", "seed: 5\neval:\n  reps: 2\n")
	out, err := dispatch(t, "eval", "-A", data, "-L", "baseline", "-E", "cross", "4", "-config", cfg, "-q")
	require.NoError(t, err)

	assert.Contains(t, out, "Number of folds: 4\n")
	assert.Contains(t, out, "Rep=1, Fold=3, Accuracy=")
	assert.Contains(t, out, "Mean accuracy=")
}

func TestEval_StaticAndRandom(t *testing.T) {
	t.Parallel()

	data := writeFile(t, "xor.arff", xorARFF)
	test := writeFile(t, "test.arff", xorARFF)

	out, err := dispatch(t, "eval", "-A", data, "-L", "knn", "-E", "static", test, "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "Test set name: "+test+"\n")
	assert.Contains(t, out, "Number of test instances: 8\n")

	out, err = dispatch(t, "eval", "-A", data, "-L", "perceptron", "-E", "random", "0.5", "-seed", "3", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "Percentage used for training: 0.5\n")
}

func TestEval_PerceptronLearnsAND(t *testing.T) {
	t.Parallel()

	data := writeFile(t, "and.arff", andARFF)
	out, err := dispatch(t, "eval", "-A", data, "-L", "perceptron", "-E", "training", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "Training set accuracy: 1\n")

	// without the bias input (0,0) always fires, so AND cannot be separated
	noBias := writeFile(t, "run.yaml", "perceptron:\n  bias: false\n")
	out, err = dispatch(t, "eval", "-A", data, "-L", "perceptron", "-E", "training", "-config", noBias, "-q")
	require.NoError(t, err)
	assert.NotContains(t, out, "Training set accuracy: 1\n")
}

func TestEval_Errors(t *testing.T) {
	t.Parallel()

	data := writeFile(t, "xor.arff", xorARFF)

	_, err := dispatch(t, "eval", "-A", data, "-L", "svm", "-E", "training", "-q")
	require.ErrorIs(t, err, learner.ErrUnknownLearner)

	_, err = dispatch(t, "eval", "-L", "baseline", "-E", "training", "-q")
	require.ErrorIs(t, err, errMissingFlag)

	_, err = dispatch(t, "eval", "-A", data, "-L", "baseline", "-E", "random", "1.5", "-q")
	require.ErrorIs(t, err, evaluation.ErrBadFraction)

	_, err = dispatch(t, "eval", "-A", data, "-L", "baseline", "-E", "cross", "0", "-q")
	require.ErrorIs(t, err, evaluation.ErrBadFolds)

	bad := writeFile(t, "bad.yaml", "knn:\n  k: -1\n")
	_, err = dispatch(t, "eval", "-A", data, "-L", "knn", "-E", "training", "-config", bad, "-q")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = dispatch(t, "eval", "-A", data, "-L", "baseline", "-E", "training", "-q", "stray")
	require.ErrorIs(t, err, errExtraArgs)
}

func TestLearners(t *testing.T) {
	t.Parallel()

	out, err := dispatch(t, "learners")
	require.NoError(t, err)
	assert.Equal(t, "baseline\ndecisiontree\nknn\nneuralnet\nperceptron\n", out)
}
