package ops

import "github.com/born-ml/vtsne/internal/tensor"

// PairwiseSqDistOp represents dist²[k,l] = ‖x[k] − x[l]‖² for x [N, D].
//
// Backward:
//
//	grad_x[k] = Σ_l 2·(G[k,l] + G[l,k])·(x[k] − x[l])
//
// delegated to the backend's PairwiseSqDistGrad kernel, which is O(N²·D).
type PairwiseSqDistOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewPairwiseSqDistOp creates a new PairwiseSqDistOp.
func NewPairwiseSqDistOp(input, output *tensor.RawTensor) *PairwiseSqDistOp {
	return &PairwiseSqDistOp{input: input, output: output}
}

// Backward computes the coordinate gradient.
func (op *PairwiseSqDistOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.PairwiseSqDistGrad(op.input, outputGrad)}
}

// Inputs returns [x].
func (op *PairwiseSqDistOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns the distance matrix.
func (op *PairwiseSqDistOp) Output() *tensor.RawTensor { return op.output }
