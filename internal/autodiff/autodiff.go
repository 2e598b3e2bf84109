// Package autodiff implements automatic differentiation using the decorator pattern.
//
// AutodiffBackend wraps any Backend implementation and adds gradient
// tracking through a GradientTape.
//
// Architecture:
//   - Decorator pattern: AutodiffBackend[B] wraps any Backend implementation
//   - GradientTape: Records operations during forward pass
//   - Operation interface: Each op implements its backward pass
//   - Reverse-mode AD: one backward sweep yields gradients for all parameters
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x, _ := tensor.FromSlice([]float64{2}, tensor.Shape{1}, backend)
//	y := x.Mul(x).Sum() // y = x²
//
//	grads := autodiff.Backward(y, backend)
//	fmt.Println(grads[x.Raw()].Data()) // dy/dx = 2x = [4]
package autodiff

import (
	"github.com/born-ml/vtsne/internal/autodiff/ops"
	"github.com/born-ml/vtsne/internal/tensor"
)

// AutodiffBackend wraps a Backend and records differentiable operations.
// Backend kernels always allocate fresh outputs, so recorded inputs are never
// overwritten before the backward pass.
type AutodiffBackend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for manual control.
// Useful for:
//   - Starting/stopping recording
//   - Clearing tape between training steps
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend for direct access.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the compute device.
func (b *AutodiffBackend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// Add performs element-wise addition and records the operation.
func (b *AutodiffBackend[B]) Add(a, c *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Add(a, c)
	b.tape.Record(ops.NewAddOp(a, c, result))
	return result
}

// Sub performs element-wise subtraction and records the operation.
func (b *AutodiffBackend[B]) Sub(a, c *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Sub(a, c)
	b.tape.Record(ops.NewSubOp(a, c, result))
	return result
}

// Mul performs element-wise multiplication and records the operation.
func (b *AutodiffBackend[B]) Mul(a, c *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Mul(a, c)
	b.tape.Record(ops.NewMulOp(a, c, result))
	return result
}

// Div performs element-wise division and records the operation.
func (b *AutodiffBackend[B]) Div(a, c *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Div(a, c)
	b.tape.Record(ops.NewDivOp(a, c, result))
	return result
}

// AddScalar adds a constant and records the operation.
func (b *AutodiffBackend[B]) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := b.inner.AddScalar(x, scalar)
	b.tape.Record(ops.NewAddScalarOp(x, result))
	return result
}

// MulScalar multiplies by a constant and records the operation.
func (b *AutodiffBackend[B]) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := b.inner.MulScalar(x, scalar)
	b.tape.Record(ops.NewMulScalarOp(x, result, scalar))
	return result
}

// Exp computes element-wise exponential and records the operation.
func (b *AutodiffBackend[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Exp(x)
	b.tape.Record(ops.NewExpOp(x, result))
	return result
}

// Log computes element-wise natural logarithm and records the operation.
func (b *AutodiffBackend[B]) Log(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Log(x)
	b.tape.Record(ops.NewLogOp(x, result))
	return result
}

// Reciprocal computes element-wise 1/x and records the operation.
func (b *AutodiffBackend[B]) Reciprocal(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Reciprocal(x)
	b.tape.Record(ops.NewReciprocalOp(x, result))
	return result
}

// KLDiv computes p·(log p − log q) and records the operation.
func (b *AutodiffBackend[B]) KLDiv(p, q *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.KLDiv(p, q)
	b.tape.Record(ops.NewKLDivOp(p, q, result))
	return result
}

// Sum reduces to a scalar and records the operation.
func (b *AutodiffBackend[B]) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Sum(x)
	b.tape.Record(ops.NewSumOp(x, result))
	return result
}

// SumDim reduces along dim and records the operation.
func (b *AutodiffBackend[B]) SumDim(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	result := b.inner.SumDim(x, dim)
	b.tape.Record(ops.NewSumDimOp(x, result, dim))
	return result
}

// Expand repeats a single-element tensor. Only used while computing
// gradients, so it is not recorded.
func (b *AutodiffBackend[B]) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	return b.inner.Expand(x, shape)
}

// Embedding gathers rows and records the operation so gradients scatter
// back onto the table.
func (b *AutodiffBackend[B]) Embedding(weight *tensor.RawTensor, indices []int) *tensor.RawTensor {
	result := b.inner.Embedding(weight, indices)
	b.tape.Record(ops.NewEmbeddingOp(weight, indices, result))
	return result
}

// EmbeddingGrad delegates to the wrapped backend (gradient kernel, not recorded).
func (b *AutodiffBackend[B]) EmbeddingGrad(grad *tensor.RawTensor, indices []int, numEmbeddings int) *tensor.RawTensor {
	return b.inner.EmbeddingGrad(grad, indices, numEmbeddings)
}

// PairwiseSqDist computes the squared-distance matrix and records the operation.
func (b *AutodiffBackend[B]) PairwiseSqDist(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.PairwiseSqDist(x)
	b.tape.Record(ops.NewPairwiseSqDistOp(x, result))
	return result
}

// PairwiseSqDistGrad delegates to the wrapped backend (gradient kernel, not recorded).
func (b *AutodiffBackend[B]) PairwiseSqDistGrad(x, grad *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.PairwiseSqDistGrad(x, grad)
}
