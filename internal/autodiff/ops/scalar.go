package ops

import "github.com/born-ml/vtsne/internal/tensor"

// AddScalarOp represents output = x + c for a constant c.
// The gradient passes through unchanged.
type AddScalarOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewAddScalarOp creates a new AddScalarOp.
func NewAddScalarOp(input, output *tensor.RawTensor) *AddScalarOp {
	return &AddScalarOp{input: input, output: output}
}

// Backward returns the output gradient as the input gradient.
func (op *AddScalarOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad}
}

// Inputs returns [x].
func (op *AddScalarOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns x + c.
func (op *AddScalarOp) Output() *tensor.RawTensor { return op.output }

// MulScalarOp represents output = x * c for a constant c.
//
// Backward: grad_x = grad_output * c.
type MulScalarOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	scalar float64
}

// NewMulScalarOp creates a new MulScalarOp.
func NewMulScalarOp(input, output *tensor.RawTensor, scalar float64) *MulScalarOp {
	return &MulScalarOp{input: input, output: output, scalar: scalar}
}

// Backward scales the output gradient by the constant.
func (op *MulScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(outputGrad, op.scalar)}
}

// Inputs returns [x].
func (op *MulScalarOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns x * c.
func (op *MulScalarOp) Output() *tensor.RawTensor { return op.output }
