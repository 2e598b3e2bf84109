package vtsne_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/vtsne/internal/backend/cpu"
	"github.com/born-ml/vtsne/internal/tensor"
	"github.com/born-ml/vtsne/internal/vtsne"
)

func fromSlice[B tensor.Backend](t *testing.T, backend B, data []float64, shape ...int) *tensor.Tensor[B] {
	t.Helper()
	x, err := tensor.FromSlice(data, tensor.Shape(shape), backend)
	require.NoError(t, err)
	return x
}

func TestSampler_ShapeAndReparameterization(t *testing.T) {
	backend := cpu.New()
	mu := fromSlice(t, backend, []float64{1, -2, 0.5, 3, 0, 0}, 3, 2)
	logVar := fromSlice(t, backend, []float64{0, -1, 2, 0.3, -4, 1}, 3, 2)

	sampler := vtsne.NewSampler[*cpu.CPUBackend](rand.NewPCG(3, 5))
	z, kld, err := sampler.Sample(mu, logVar)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 2}, z.Shape())
	assert.Empty(t, kld.Shape())

	// Replay the same noise stream to rebuild z = μ + exp(0.5·logσ²)·ε.
	eps := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(3, 5)}
	std := logVar.MulScalar(0.5).Exp().Data()
	for k, m := range mu.Data() {
		assert.InDelta(t, m+std[k]*eps.Rand(), z.Data()[k], 1e-12)
	}
}

func TestSampler_FreshNoiseEachCall(t *testing.T) {
	backend := cpu.New()
	mu := tensor.Zeros(tensor.Shape{4, 2}, backend)
	logVar := tensor.Zeros(tensor.Shape{4, 2}, backend)

	sampler := vtsne.NewSampler[*cpu.CPUBackend](rand.NewPCG(1, 1))
	z1, _, err := sampler.Sample(mu, logVar)
	require.NoError(t, err)
	z2, _, err := sampler.Sample(mu, logVar)
	require.NoError(t, err)

	assert.NotEqual(t, z1.Data(), z2.Data())
}

func TestSampler_KLDZeroAtPrior(t *testing.T) {
	backend := cpu.New()
	mu := tensor.Zeros(tensor.Shape{5, 2}, backend)
	logVar := tensor.Zeros(tensor.Shape{5, 2}, backend)

	_, kld, err := vtsne.NewSampler[*cpu.CPUBackend](rand.NewPCG(1, 2)).Sample(mu, logVar)
	require.NoError(t, err)
	assert.Equal(t, 0.0, kld.Item())
}

func TestSampler_KLDClosedForm(t *testing.T) {
	backend := cpu.New()
	mu := fromSlice(t, backend, []float64{1, 0}, 1, 2)
	logVar := fromSlice(t, backend, []float64{0, 1}, 1, 2)

	_, kld, err := vtsne.NewSampler[*cpu.CPUBackend](rand.NewPCG(1, 2)).Sample(mu, logVar)
	require.NoError(t, err)

	// −0.5·[(1 + 0 − 1 − 1) + (1 + 1 − 0 − e)] = 0.5·(e − 1)
	want := 0.5 * (2.718281828459045 - 1)
	assert.InDelta(t, want, kld.Item(), 1e-12)
	assert.Greater(t, kld.Item(), 0.0)
}

func TestSampler_ShapeMismatch(t *testing.T) {
	backend := cpu.New()
	mu := tensor.Zeros(tensor.Shape{3, 2}, backend)
	logVar := tensor.Zeros(tensor.Shape{2, 2}, backend)

	_, _, err := vtsne.NewSampler[*cpu.CPUBackend](nil).Sample(mu, logVar)
	assert.ErrorIs(t, err, vtsne.ErrShapeMismatch)
}

func TestSampler_DeviceMismatch(t *testing.T) {
	backend := cpu.New()
	gpuRaw, err := tensor.NewRaw(tensor.Shape{3, 2}, tensor.CUDA)
	require.NoError(t, err)
	mu := tensor.New(gpuRaw, backend)
	logVar := tensor.Zeros(tensor.Shape{3, 2}, backend)

	_, _, err = vtsne.NewSampler[*cpu.CPUBackend](nil).Sample(mu, logVar)
	assert.ErrorIs(t, err, vtsne.ErrDeviceMismatch)
}
