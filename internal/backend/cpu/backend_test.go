package cpu_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vtsne/internal/backend/cpu"
	"github.com/born-ml/vtsne/internal/parallel"
	"github.com/born-ml/vtsne/internal/tensor"
)

func raw(t *testing.T, data []float64, shape ...int) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.RawFromSlice(data, tensor.Shape(shape), tensor.CPU)
	require.NoError(t, err)
	return r
}

func randomRaw(t *testing.T, rng *rand.Rand, rows, cols int) *tensor.RawTensor {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.NormFloat64() * 3
	}
	return raw(t, data, rows, cols)
}

func TestCPUBackend_Metadata(t *testing.T) {
	backend := cpu.New()
	defer backend.Release()

	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestCPUBackend_Binary(t *testing.T) {
	backend := cpu.New()
	a := raw(t, []float64{1, 2, 3, 4}, 2, 2)
	b := raw(t, []float64{4, 3, 2, 1}, 2, 2)

	assert.Equal(t, []float64{5, 5, 5, 5}, backend.Add(a, b).Data())
	assert.Equal(t, []float64{-3, -1, 1, 3}, backend.Sub(a, b).Data())
	assert.Equal(t, []float64{4, 6, 6, 4}, backend.Mul(a, b).Data())
	assert.Equal(t, []float64{0.25, 2.0 / 3.0, 1.5, 4}, backend.Div(a, b).Data())

	// Inputs are never modified.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
}

func TestCPUBackend_ScalarBroadcast(t *testing.T) {
	backend := cpu.New()
	v := raw(t, []float64{1, 2, 4}, 3)
	s := raw(t, []float64{2}) // shape []

	out := backend.Div(v, s)
	assert.Equal(t, tensor.Shape{3}, out.Shape())
	assert.Equal(t, []float64{0.5, 1, 2}, out.Data())

	out = backend.Sub(s, v)
	assert.Equal(t, tensor.Shape{3}, out.Shape())
	assert.Equal(t, []float64{1, 0, -2}, out.Data())
}

func TestCPUBackend_ShapeMismatchPanics(t *testing.T) {
	backend := cpu.New()
	a := raw(t, []float64{1, 2, 3}, 3)
	b := raw(t, []float64{1, 2}, 2)

	assert.Panics(t, func() { backend.Add(a, b) })
	assert.Panics(t, func() { backend.KLDiv(a, b) })
}

func TestCPUBackend_DeviceMismatchPanics(t *testing.T) {
	backend := cpu.New()
	a := raw(t, []float64{1, 2}, 2)
	gpu, err := tensor.RawFromSlice([]float64{1, 2}, tensor.Shape{2}, tensor.CUDA)
	require.NoError(t, err)

	assert.PanicsWithValue(t, "mul: operand on CUDA, backend on CPU", func() { backend.Mul(a, gpu) })
	assert.Panics(t, func() { backend.Exp(gpu) })
}

func TestCPUBackend_Math(t *testing.T) {
	backend := cpu.New()
	x := raw(t, []float64{0, 1, 2}, 3)

	assert.InDeltaSlice(t, []float64{1, math.E, math.E * math.E}, backend.Exp(x).Data(), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 1, 2}, backend.Log(backend.Exp(x)).Data(), 1e-12)
	assert.Equal(t, []float64{1, 0.5, 1.0 / 3.0}, backend.Reciprocal(backend.AddScalar(x, 1)).Data())
	assert.Equal(t, []float64{0, -0.5, -1}, backend.MulScalar(x, -0.5).Data())
}

func TestCPUBackend_KLDivZeroProbability(t *testing.T) {
	backend := cpu.New()
	p := raw(t, []float64{0, 0, 0.5, 1}, 4)
	q := raw(t, []float64{0, 0.3, 0.25, 1}, 4)

	out := backend.KLDiv(p, q).Data()
	assert.Equal(t, 0.0, out[0], "p=0, q=0 must not produce NaN")
	assert.Equal(t, 0.0, out[1])
	assert.InDelta(t, 0.5*math.Log(2), out[2], 1e-15)
	assert.Equal(t, 0.0, out[3])
}

func TestCPUBackend_Reductions(t *testing.T) {
	backend := cpu.New()
	x := raw(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	sum := backend.Sum(x)
	assert.Empty(t, sum.Shape())
	assert.Equal(t, 21.0, sum.Item())

	rows := backend.SumDim(x, 1)
	assert.Equal(t, tensor.Shape{2}, rows.Shape())
	assert.Equal(t, []float64{6, 15}, rows.Data())

	cols := backend.SumDim(x, 0)
	assert.Equal(t, tensor.Shape{3}, cols.Shape())
	assert.Equal(t, []float64{5, 7, 9}, cols.Data())

	expanded := backend.Expand(sum, tensor.Shape{2, 2})
	assert.Equal(t, []float64{21, 21, 21, 21}, expanded.Data())

	assert.Panics(t, func() { backend.SumDim(x, 2) })
}

func TestCPUBackend_EmbeddingGatherScatter(t *testing.T) {
	backend := cpu.New()
	weight := raw(t, []float64{0, 1, 10, 11, 20, 21}, 3, 2)

	rows := backend.Embedding(weight, []int{2, 0, 2})
	assert.Equal(t, tensor.Shape{3, 2}, rows.Shape())
	assert.Equal(t, []float64{20, 21, 0, 1, 20, 21}, rows.Data())

	grad := raw(t, []float64{1, 2, 3, 4, 5, 6}, 3, 2)
	scattered := backend.EmbeddingGrad(grad, []int{0, 1, 0}, 3)
	assert.Equal(t, []float64{6, 8, 3, 4, 0, 0}, scattered.Data())

	assert.Panics(t, func() { backend.Embedding(weight, []int{3}) })
	assert.Panics(t, func() { backend.Embedding(weight, []int{-1}) })
}

func TestCPUBackend_PairwiseSqDistProperties(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewPCG(7, 11))
	x := randomRaw(t, rng, 37, 3)

	d := backend.PairwiseSqDist(x)
	require.Equal(t, tensor.Shape{37, 37}, d.Shape())

	data := d.Data()
	for k := 0; k < 37; k++ {
		assert.Equal(t, 0.0, data[k*37+k], "diagonal %d", k)
		for l := 0; l < 37; l++ {
			assert.Equal(t, data[k*37+l], data[l*37+k], "symmetry (%d,%d)", k, l)
			assert.GreaterOrEqual(t, data[k*37+l], 0.0)
		}
	}

	small := raw(t, []float64{0, 0, 3, 4}, 2, 2)
	assert.Equal(t, []float64{0, 25, 25, 0}, backend.PairwiseSqDist(small).Data())
}

func TestCPUBackend_ParallelMatchesSequential(t *testing.T) {
	seq, err := cpu.NewWithConfig(parallel.Config{Enabled: false})
	require.NoError(t, err)
	par, err := cpu.NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 4})
	require.NoError(t, err)
	defer par.Release()

	rng := rand.New(rand.NewPCG(1, 2))
	x := randomRaw(t, rng, 50, 2)
	g := randomRaw(t, rng, 50, 50)

	assert.Equal(t, seq.PairwiseSqDist(x).Data(), par.PairwiseSqDist(x).Data())
	assert.Equal(t, seq.PairwiseSqDistGrad(x, g).Data(), par.PairwiseSqDistGrad(x, g).Data())
}

// The gradient kernel must be the adjoint of the forward kernel's
// linearization: <G, dD> == <dL/dx, dx> for a small perturbation dx.
func TestCPUBackend_PairwiseSqDistGradDirectional(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewPCG(3, 4))
	x := randomRaw(t, rng, 6, 2)
	g := randomRaw(t, rng, 6, 6)
	dir := randomRaw(t, rng, 6, 2)

	const h = 1e-6
	plus := backend.Add(x, backend.MulScalar(dir, h))
	minus := backend.Sub(x, backend.MulScalar(dir, h))
	dD := backend.MulScalar(backend.Sub(backend.PairwiseSqDist(plus), backend.PairwiseSqDist(minus)), 1/(2*h))

	lhs := backend.Sum(backend.Mul(g, dD)).Item()
	rhs := backend.Sum(backend.Mul(backend.PairwiseSqDistGrad(x, g), dir)).Item()
	assert.InDelta(t, lhs, rhs, 1e-5*math.Max(1, math.Abs(lhs)))
}
