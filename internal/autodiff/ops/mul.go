package ops

import "github.com/born-ml/vtsne/internal/tensor"

// MulOp represents element-wise multiplication: output = a * b.
//
// Backward:
//   - grad_a = grad_output * b
//   - grad_b = grad_output * a
type MulOp struct {
	inputs []*tensor.RawTensor
	output *tensor.RawTensor
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *tensor.RawTensor) *MulOp {
	return &MulOp{inputs: []*tensor.RawTensor{a, b}, output: output}
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]
	return []*tensor.RawTensor{
		reduceTo(backend.Mul(outputGrad, b), a, backend),
		reduceTo(backend.Mul(outputGrad, a), b, backend),
	}
}

// Inputs returns [a, b].
func (op *MulOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns a * b.
func (op *MulOp) Output() *tensor.RawTensor { return op.output }
