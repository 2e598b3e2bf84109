package ops

import "github.com/born-ml/vtsne/internal/tensor"

// LogOp represents element-wise natural logarithm.
//
// Backward:
//
//	∂L/∂input = ∂L/∂output / input
//
// Assumes input > 0.
type LogOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewLogOp creates a new log operation.
func NewLogOp(input, output *tensor.RawTensor) *LogOp {
	return &LogOp{input: input, output: output}
}

// Backward computes grad_output / input.
func (op *LogOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Div(outputGrad, op.input)}
}

// Inputs returns the input tensors.
func (op *LogOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns the output tensor.
func (op *LogOp) Output() *tensor.RawTensor { return op.output }
