package ops

import "github.com/born-ml/vtsne/internal/tensor"

// SubOp represents element-wise subtraction: output = a - b.
//
// Backward:
//   - grad_a = grad_output
//   - grad_b = -grad_output
type SubOp struct {
	inputs []*tensor.RawTensor
	output *tensor.RawTensor
}

// NewSubOp creates a new SubOp.
func NewSubOp(a, b, output *tensor.RawTensor) *SubOp {
	return &SubOp{inputs: []*tensor.RawTensor{a, b}, output: output}
}

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceTo(outputGrad, op.inputs[0], backend),
		reduceTo(backend.MulScalar(outputGrad, -1), op.inputs[1], backend),
	}
}

// Inputs returns [a, b].
func (op *SubOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns a - b.
func (op *SubOp) Output() *tensor.RawTensor { return op.output }
