package tensor

// Backend defines the operations a compute backend must provide.
//
// Backends allocate every result on their own Device and panic on contract
// violations (mismatched shapes, mixed devices, out-of-range indices); callers
// that accept user input validate it before reaching a backend.
//
// Implementations:
//   - cpu.CPUBackend: pure Go, row-parallel O(N²) kernels.
//   - autodiff.AutodiffBackend: decorator recording every op on a GradientTape.
type Backend interface {
	// Element-wise binary operations. Operands must have equal shapes or one
	// of them must hold a single element.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations.
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Reciprocal(x *RawTensor) *RawTensor

	// KLDiv returns p·(log p − log q) element-wise, with p == 0 contributing 0.
	KLDiv(p, q *RawTensor) *RawTensor

	// Reductions. Sum returns a scalar, SumDim removes dim, and Expand
	// repeats a single-element x over shape (the adjoint of Sum).
	Sum(x *RawTensor) *RawTensor
	SumDim(x *RawTensor, dim int) *RawTensor
	Expand(x *RawTensor, shape Shape) *RawTensor

	// Embedding gathers rows of a [N, D] weight: out[k] = weight[indices[k]].
	Embedding(weight *RawTensor, indices []int) *RawTensor
	// EmbeddingGrad scatter-adds rows of grad [len(indices), D] into a [N, D] tensor.
	EmbeddingGrad(grad *RawTensor, indices []int, numEmbeddings int) *RawTensor

	// PairwiseSqDist returns the [N, N] squared Euclidean distance matrix of x [N, D].
	PairwiseSqDist(x *RawTensor) *RawTensor
	// PairwiseSqDistGrad returns dL/dx given x [N, D] and dL/d(dist²) [N, N].
	PairwiseSqDistGrad(x, grad *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
