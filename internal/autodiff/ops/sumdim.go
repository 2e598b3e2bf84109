package ops

import "github.com/born-ml/vtsne/internal/tensor"

// SumDimOp represents summation along one dimension (removed from the shape).
//
// Backward: the gradient is repeated along the reduced dimension.
//
//	x: [batch, D] --SumDim(1)--> [batch]
//	grad_x[b, d] = grad_output[b]
type SumDimOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	dim    int
}

// NewSumDimOp creates a new SumDimOp.
func NewSumDimOp(input, output *tensor.RawTensor, dim int) *SumDimOp {
	return &SumDimOp{input: input, output: output, dim: dim}
}

// Backward repeats grad_output along dim.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	shape := op.input.Shape()
	gradInput, err := tensor.NewRaw(shape, backend.Device())
	if err != nil {
		panic(err)
	}

	outer, inner := 1, 1
	for _, d := range shape[:op.dim] {
		outer *= d
	}
	for _, d := range shape[op.dim+1:] {
		inner *= d
	}
	n := shape[op.dim]

	g, out := outputGrad.Data(), gradInput.Data()
	for o := 0; o < outer; o++ {
		for k := 0; k < n; k++ {
			copy(out[(o*n+k)*inner:(o*n+k+1)*inner], g[o*inner:(o+1)*inner])
		}
	}
	return []*tensor.RawTensor{gradInput}
}

// Inputs returns [x].
func (op *SumDimOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }

// Output returns the reduced tensor.
func (op *SumDimOp) Output() *tensor.RawTensor { return op.output }
