package ops

import "github.com/born-ml/vtsne/internal/tensor"

// EmbeddingOp represents a row gather: output[k] = weight[indices[k]].
//
// Backward is a scatter-add: rows selected more than once accumulate, so a
// point appearing in several pairs of a batch receives every pair's gradient.
type EmbeddingOp struct {
	weight  *tensor.RawTensor
	indices []int
	output  *tensor.RawTensor
}

// NewEmbeddingOp creates a new embedding operation.
func NewEmbeddingOp(weight *tensor.RawTensor, indices []int, output *tensor.RawTensor) *EmbeddingOp {
	return &EmbeddingOp{
		weight:  weight,
		indices: append([]int(nil), indices...),
		output:  output,
	}
}

// Backward scatters the output gradient back onto the weight table.
func (op *EmbeddingOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.EmbeddingGrad(outputGrad, op.indices, op.weight.Shape()[0])}
}

// Inputs returns [weight]. Indices are integers and carry no gradient.
func (op *EmbeddingOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.weight} }

// Output returns the gathered rows.
func (op *EmbeddingOp) Output() *tensor.RawTensor { return op.output }
