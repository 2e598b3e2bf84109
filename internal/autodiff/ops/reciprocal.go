package ops

import "github.com/born-ml/vtsne/internal/tensor"

// ReciprocalOp represents y = 1/x, the Student-t kernel step (1 + d²)^-1.
//
// Backward:
//
//	dy/dx = -1/x² = -y²
type ReciprocalOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewReciprocalOp creates a new ReciprocalOp.
func NewReciprocalOp(input, output *tensor.RawTensor) *ReciprocalOp {
	return &ReciprocalOp{input: input, output: output}
}

// Backward computes -grad_output * y².
func (op *ReciprocalOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	ySquared := backend.Mul(op.output, op.output)
	return []*tensor.RawTensor{backend.MulScalar(backend.Mul(outputGrad, ySquared), -1)}
}

// Inputs returns [x].
func (op *ReciprocalOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns 1/x.
func (op *ReciprocalOp) Output() *tensor.RawTensor { return op.output }
