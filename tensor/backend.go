// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/vtsne/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go, row-parallel pairwise kernels
//
// Decorator backends for additional functionality:
//   - autodiff: Automatic differentiation (wraps any backend)
type Backend interface {
	// Element-wise binary operations.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations.
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor

	// Math operations (element-wise).
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Reciprocal(x *RawTensor) *RawTensor
	KLDiv(p, q *RawTensor) *RawTensor

	// Reduction operations.
	Sum(x *RawTensor) *RawTensor
	SumDim(x *RawTensor, dim int) *RawTensor
	Expand(x *RawTensor, shape Shape) *RawTensor

	// Indexing operations.
	Embedding(weight *RawTensor, indices []int) *RawTensor
	EmbeddingGrad(grad *RawTensor, indices []int, numEmbeddings int) *RawTensor

	// Distance operations.
	PairwiseSqDist(x *RawTensor) *RawTensor
	PairwiseSqDistGrad(x, grad *RawTensor) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
