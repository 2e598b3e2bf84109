package ops

import "github.com/born-ml/vtsne/internal/tensor"

// SumOp represents the total reduction output = Σ x.
//
// Backward: every input element receives the (scalar) output gradient.
type SumOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSumOp creates a new SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{input: input, output: output}
}

// Backward broadcasts the scalar gradient to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Expand(outputGrad, op.input.Shape())}
}

// Inputs returns [x].
func (op *SumOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns Σ x.
func (op *SumOp) Output() *tensor.RawTensor { return op.output }
