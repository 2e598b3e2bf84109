package ops

import (
	"math"

	"github.com/born-ml/vtsne/internal/tensor"
)

// KLDivOp represents term = p·(log p − log q) element-wise.
//
// Backward, for p > 0:
//
//	∂term/∂p = log p − log q + 1
//	∂term/∂q = −p / q
//
// Both gradients are 0 where p == 0, matching the forward convention.
type KLDivOp struct {
	p, q   *tensor.RawTensor
	output *tensor.RawTensor
}

// NewKLDivOp creates a new KLDivOp.
func NewKLDivOp(p, q, output *tensor.RawTensor) *KLDivOp {
	return &KLDivOp{p: p, q: q, output: output}
}

// Backward computes gradients for p and q.
func (op *KLDivOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradP, err := tensor.NewRaw(op.p.Shape(), backend.Device())
	if err != nil {
		panic(err)
	}
	gradQ, err := tensor.NewRaw(op.q.Shape(), backend.Device())
	if err != nil {
		panic(err)
	}

	pd, qd, g := op.p.Data(), op.q.Data(), outputGrad.Data()
	gp, gq := gradP.Data(), gradQ.Data()
	for i, pv := range pd {
		if pv == 0 {
			continue
		}
		gp[i] = g[i] * (math.Log(pv) - math.Log(qd[i]) + 1)
		gq[i] = -g[i] * pv / qd[i]
	}
	return []*tensor.RawTensor{gradP, gradQ}
}

// Inputs returns [p, q].
func (op *KLDivOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.p, op.q} }

// Output returns the element-wise terms.
func (op *KLDivOp) Output() *tensor.RawTensor { return op.output }
