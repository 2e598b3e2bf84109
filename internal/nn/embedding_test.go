package nn_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vtsne/internal/autodiff"
	"github.com/born-ml/vtsne/internal/backend/cpu"
	"github.com/born-ml/vtsne/internal/nn"
	"github.com/born-ml/vtsne/internal/tensor"
)

func TestEmbedding_ConstantInit(t *testing.T) {
	backend := cpu.New()
	embed, err := nn.NewEmbedding("means", 5, 2, nn.Constant(0.25), backend)
	require.NoError(t, err)

	assert.Equal(t, 5, embed.NumEmbed)
	assert.Equal(t, 2, embed.EmbedDim)
	assert.Equal(t, "means", embed.Weight.Name())
	assert.Equal(t, tensor.Shape{5, 2}, embed.All().Shape())
	for _, v := range embed.All().Data() {
		assert.Equal(t, 0.25, v)
	}
}

func TestEmbedding_NilInitIsZero(t *testing.T) {
	embed, err := nn.NewEmbedding("logvars", 3, 4, nil, cpu.New())
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 12), embed.All().Data())
}

func TestEmbedding_InvalidShape(t *testing.T) {
	_, err := nn.NewEmbedding("bad", 0, 2, nil, cpu.New())
	assert.Error(t, err)
}

func TestEmbedding_NormalInitIsSeeded(t *testing.T) {
	backend := cpu.New()
	a, err := nn.NewEmbedding("a", 100, 2, nn.Normal(1, 0.5, rand.NewPCG(1, 2)), backend)
	require.NoError(t, err)
	b, err := nn.NewEmbedding("b", 100, 2, nn.Normal(1, 0.5, rand.NewPCG(1, 2)), backend)
	require.NoError(t, err)

	assert.Equal(t, a.All().Data(), b.All().Data())

	mean := 0.0
	for _, v := range a.All().Data() {
		assert.False(t, math.IsNaN(v))
		mean += v
	}
	assert.InDelta(t, 1.0, mean/200, 0.15)
}

func TestEmbedding_ForwardAndGrads(t *testing.T) {
	backend := autodiff.New(cpu.New())
	embed, err := nn.NewEmbedding("means", 4, 2, nn.Constant(1), backend)
	require.NoError(t, err)
	unused, err := nn.NewEmbedding("unused", 4, 2, nil, backend)
	require.NoError(t, err)

	backend.Tape().StartRecording()
	rows := embed.Forward([]int{1, 1, 3})
	assert.Equal(t, tensor.Shape{3, 2}, rows.Shape())

	loss := rows.Sum()
	grads := autodiff.Backward(loss, backend)

	params := append(embed.Parameters(), unused.Parameters()...)
	nn.AssignGrads(params, grads)

	assert.Equal(t, []float64{0, 0, 2, 2, 0, 0, 1, 1}, embed.Weight.Grad().Data())
	assert.Equal(t, make([]float64, 8), unused.Weight.Grad().Data())

	nn.ZeroGrads[*autodiff.AutodiffBackend[*cpu.CPUBackend]](embed)
	assert.Nil(t, embed.Weight.Grad())
	assert.NotNil(t, unused.Weight.Grad())
}
