// Package ops defines the differentiable operations recorded by the autodiff tape.
//
// Each operation stores its inputs and output during the forward pass and
// maps an output gradient to input gradients during the backward pass:
//   - AddOp, SubOp, MulOp, DivOp: element-wise binary ops (scalar operands reduce by sum)
//   - AddScalarOp, MulScalarOp: affine ops with a constant
//   - ExpOp, LogOp, ReciprocalOp: element-wise math
//   - KLDivOp: p·(log p − log q) with the 0·log 0 = 0 convention
//   - SumOp, SumDimOp: reductions
//   - EmbeddingOp: row gather (scatter-add backward)
//   - PairwiseSqDistOp: full squared-distance matrix
package ops

import "github.com/born-ml/vtsne/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns one gradient per entry of Inputs(); a nil entry means no
	// gradient flows to that input.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)]
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
