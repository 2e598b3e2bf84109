package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vtsne/internal/autodiff"
	"github.com/born-ml/vtsne/internal/backend/cpu"
	"github.com/born-ml/vtsne/internal/tensor"
)

type adBackend = autodiff.AutodiffBackend[*cpu.CPUBackend]

func newBackend(t *testing.T) *adBackend {
	t.Helper()
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()
	return backend
}

func fromSlice(t *testing.T, backend *adBackend, data []float64, shape ...int) *tensor.Tensor[*adBackend] {
	t.Helper()
	x, err := tensor.FromSlice(data, tensor.Shape(shape), backend)
	require.NoError(t, err)
	return x
}

func TestAutodiffBackend_Name(t *testing.T) {
	backend := autodiff.New(cpu.New())
	assert.Equal(t, "Autodiff(CPU)", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
	assert.False(t, backend.Tape().IsRecording())
}

func TestGradientTape_RecordOnlyWhileRecording(t *testing.T) {
	backend := autodiff.New(cpu.New())
	x := fromSlice(t, backend, []float64{1, 2}, 2)

	x.Mul(x)
	assert.Equal(t, 0, backend.Tape().NumOps())

	backend.Tape().StartRecording()
	x.Mul(x).Sum()
	assert.Equal(t, 2, backend.Tape().NumOps())

	backend.Tape().Clear()
	assert.Equal(t, 0, backend.Tape().NumOps())
	assert.True(t, backend.Tape().IsRecording())
}

func TestBackward_PanicsWithoutOps(t *testing.T) {
	backend := autodiff.New(cpu.New())
	x := fromSlice(t, backend, []float64{1}, 1)
	assert.Panics(t, func() { autodiff.Backward(x, backend) })
}

func TestBackward_Square(t *testing.T) {
	backend := newBackend(t)
	x := fromSlice(t, backend, []float64{2, -3}, 2)

	y := x.Mul(x).Sum()
	grads := autodiff.Backward(y, backend)

	assert.Equal(t, 13.0, y.Item())
	assert.Equal(t, []float64{4, -6}, grads[x.Raw()].Data())
}

func TestBackward_AccumulatesSharedInputs(t *testing.T) {
	backend := newBackend(t)
	x := fromSlice(t, backend, []float64{3}, 1)

	// y = x + 2x + x·x → dy/dx = 3 + 2x = 9
	y := x.Add(x.MulScalar(2)).Add(x.Mul(x)).Sum()
	grads := autodiff.Backward(y, backend)

	assert.Equal(t, []float64{9}, grads[x.Raw()].Data())
}

func TestBackward_DivideByScalar(t *testing.T) {
	backend := newBackend(t)
	num := fromSlice(t, backend, []float64{1, 2, 3}, 3)
	z := fromSlice(t, backend, []float64{2})

	// y = Σ num / z
	y := num.Div(z).Sum()
	grads := autodiff.Backward(y, backend)

	assert.Equal(t, 3.0, y.Item())
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, grads[num.Raw()].Data())

	gz := grads[z.Raw()]
	assert.Empty(t, gz.Shape())
	assert.InDelta(t, -6.0/4.0, gz.Item(), 1e-15)
}

func TestBackward_ExpLogReciprocal(t *testing.T) {
	backend := newBackend(t)
	x := fromSlice(t, backend, []float64{0.5, 1.5}, 2)

	// y = Σ log(exp(x)) + 1/(1+x)
	y := x.Exp().Log().Add(x.AddScalar(1).Reciprocal()).Sum()
	grads := autodiff.Backward(y, backend)

	g := grads[x.Raw()].Data()
	for i, v := range []float64{0.5, 1.5} {
		want := 1 - 1/((1+v)*(1+v))
		assert.InDelta(t, want, g[i], 1e-12)
	}
}

func TestBackward_SumDim(t *testing.T) {
	backend := newBackend(t)
	x := fromSlice(t, backend, []float64{1, 2, 3, 4, 5, 6}, 3, 2)
	w := fromSlice(t, backend, []float64{1, 10, 100}, 3)

	y := x.SumDim(1).Mul(w).Sum()
	grads := autodiff.Backward(y, backend)

	assert.Equal(t, 3+70+1100.0, y.Item())
	assert.Equal(t, []float64{1, 1, 10, 10, 100, 100}, grads[x.Raw()].Data())
}

func TestBackward_EmbeddingScatterAdd(t *testing.T) {
	backend := newBackend(t)
	table := fromSlice(t, backend, []float64{1, 2, 3, 4, 5, 6}, 3, 2)

	rows := table.Embedding([]int{2, 0, 2})
	y := rows.Mul(rows).Sum()
	grads := autodiff.Backward(y, backend)

	// Row 2 selected twice: 2·2·[5,6]; row 1 never selected.
	assert.Equal(t, []float64{2, 4, 0, 0, 20, 24}, grads[table.Raw()].Data())
}

func TestBackward_KLDivZeroProbabilityHasNoGradient(t *testing.T) {
	backend := newBackend(t)
	p := fromSlice(t, backend, []float64{0, 0.5}, 2)
	q := fromSlice(t, backend, []float64{0.25, 0.25}, 2)

	y := p.KLDiv(q).Sum()
	grads := autodiff.Backward(y, backend)

	assert.InDelta(t, 0.5*math.Log(2), y.Item(), 1e-15)
	assert.Equal(t, []float64{0, -2}, grads[q.Raw()].Data())
}

func TestBackward_PairwiseSqDist(t *testing.T) {
	backend := newBackend(t)
	x := fromSlice(t, backend, []float64{0, 0, 1, 0, 0, 2}, 3, 2)

	// y = Σ_{k,l} dist²[k,l] → grad_x[k] = 4·Σ_l (x[k] − x[l])
	y := x.PairwiseSqDist().Sum()
	grads := autodiff.Backward(y, backend)

	assert.Equal(t, 2*(1+4+5.0), y.Item())
	assert.Equal(t, []float64{-4, -8, 8, -8, -4, 16}, grads[x.Raw()].Data())
}
