package ops

import "github.com/born-ml/vtsne/internal/tensor"

// DivOp represents element-wise division: output = a / b.
//
// Backward:
//   - grad_a = grad_output / b
//   - grad_b = -grad_output * a / b² = -grad_output * output / b
//
// When b is a scalar (e.g. a normalizing constant), grad_b is summed over
// every element it divided.
type DivOp struct {
	inputs []*tensor.RawTensor
	output *tensor.RawTensor
}

// NewDivOp creates a new DivOp.
func NewDivOp(a, b, output *tensor.RawTensor) *DivOp {
	return &DivOp{inputs: []*tensor.RawTensor{a, b}, output: output}
}

// Backward computes input gradients for division.
func (op *DivOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]
	gradA := backend.Div(outputGrad, b)
	gradB := backend.MulScalar(backend.Mul(outputGrad, backend.Div(op.output, b)), -1)
	return []*tensor.RawTensor{
		reduceTo(gradA, a, backend),
		reduceTo(gradB, b, backend),
	}
}

// Inputs returns [a, b].
func (op *DivOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns a / b.
func (op *DivOp) Output() *tensor.RawTensor { return op.output }
