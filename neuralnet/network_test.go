// SPDX-License-Identifier: MIT
package neuralnet_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlearn/neuralnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// single builds a 1-input, 1-output network with weights {w, bias}.
func single(t *testing.T, w, bias float64) *neuralnet.Network {
	t.Helper()
	net, err := neuralnet.Build(rand.New(rand.NewSource(1)), 1, 1)
	require.NoError(t, err)
	require.NoError(t, net.SetWeights(0, 0, []float64{w, bias}))

	return net
}

func TestStep_MovesWeightAgainstError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		x, target float64
	}{
		{"push up", 2, 1},
		{"push down", 2, 0},
		{"negative input", -1.5, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			net := single(t, 0.3, -0.1)
			x := []float64{tc.x}

			before := net.Forward(x)[0]
			net.Step(x, []float64{tc.target})
			w, err := net.Weights(0, 0)
			require.NoError(t, err)

			delta := w[0] - 0.3
			want := (tc.target - before) * tc.x
			assert.Equal(t, want > 0, delta > 0, "weight delta %g must share the sign of %g", delta, want)
			assert.NotZero(t, delta)

			after := net.Forward(x)[0]
			assert.Less(t, (tc.target-after)*(tc.target-after), (tc.target-before)*(tc.target-before))
		})
	}
}

func TestStep_MomentumCarriesPreviousDelta(t *testing.T) {
	t.Parallel()

	withM := single(t, 0.3, -0.1)
	withM.SetMomentum(0.5)
	x, y := []float64{1}, []float64{1}

	withM.Forward(x)
	withM.Step(x, y)
	w1, _ := withM.Weights(0, 0)
	firstDelta := w1[0] - 0.3

	noM := withM.Clone()
	noM.SetMomentum(0)

	withM.Forward(x)
	withM.Step(x, y)
	noM.Forward(x)
	noM.Step(x, y)

	a, _ := withM.Weights(0, 0)
	b, _ := noM.Weights(0, 0)
	assert.InDelta(t, 0.5*firstDelta, a[0]-b[0], 1e-12)
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	net, err := neuralnet.Build(rand.New(rand.NewSource(5)), 2, 3, 1)
	require.NoError(t, err)
	snap := net.Clone()
	before, _ := snap.Weights(1, 0)

	x := []float64{0.2, 0.7}
	net.Forward(x)
	net.Step(x, []float64{1})

	after, _ := snap.Weights(1, 0)
	live, _ := net.Weights(1, 0)
	assert.Equal(t, before, after)
	assert.NotEqual(t, before, live)
	assert.Equal(t, net.String(), snap.String())
}

func TestBackward_DoesNotReorderLayers(t *testing.T) {
	t.Parallel()

	net, err := neuralnet.Build(rand.New(rand.NewSource(2)), 3, 4, 2, 1)
	require.NoError(t, err)

	var back, fwd []int
	for i, l := range net.Backward() {
		back = append(back, l.Units()*10+i)
	}
	for i, l := range net.Layers() {
		fwd = append(fwd, l.Units()*10+i)
	}
	assert.Equal(t, []int{12, 21, 40}, back)
	assert.Equal(t, []int{40, 21, 12}, fwd)
	assert.Equal(t, "3-4-2-1 rate=0.1 momentum=0", net.String())
}

func TestNetwork_Errors(t *testing.T) {
	t.Parallel()

	_, err := neuralnet.NewNetwork(0)
	require.ErrorIs(t, err, neuralnet.ErrTopology)

	net, err := neuralnet.NewNetwork(2)
	require.NoError(t, err)
	require.ErrorIs(t, net.AddLayer(0, rand.New(rand.NewSource(1))), neuralnet.ErrTopology)
	require.ErrorIs(t, net.AddLayer(1, nil), neuralnet.ErrNilRand)
	require.NoError(t, net.AddLayer(1, rand.New(rand.NewSource(1))))

	_, err = net.Weights(1, 0)
	require.ErrorIs(t, err, neuralnet.ErrNoIndex)
	require.ErrorIs(t, net.SetWeights(0, 0, []float64{1}), neuralnet.ErrTopology)
}

func TestNormalize_Range(t *testing.T) {
	t.Parallel()

	net, err := neuralnet.NewNetwork(1)
	require.NoError(t, err)
	net.SetLabelRange(2, 6)
	assert.Equal(t, 0.5, net.Normalize(4))
	assert.Equal(t, 5.0, net.Denormalize(0.7))

	net.SetLabelRange(3, 3)
	assert.Equal(t, 0.0, net.Normalize(3))
	assert.Equal(t, 3.0, net.Denormalize(0.9))
}
