package vtsne

import (
	"fmt"

	"github.com/born-ml/vtsne/internal/tensor"
)

// Loss is the result of one forward evaluation.
//
// Total = Reconstruction + KLDWeight·Regularization, a scalar tensor to pass
// to autodiff.Backward. The other fields are diagnostics recorded on the same
// tape; they need no separate backward pass.
type Loss[B tensor.Backend] struct {
	// Total is the training objective.
	Total *tensor.Tensor[B]
	// Reconstruction is Σ_k p_k·(log p_k − log q_k) over the batch.
	Reconstruction *tensor.Tensor[B]
	// Regularization is the unweighted full-set KL(N(μ,σ²) ‖ N(0,I)).
	Regularization *tensor.Tensor[B]
	// Partition is the partition function Z of this evaluation's sample.
	Partition *tensor.Tensor[B]
}

// Value returns Total as a float64.
func (l *Loss[B]) Value() float64 {
	return l.Total.Item()
}

// KLDivergence returns Σ_k p[k]·(log p[k] − log q[k]). Entries with p[k] = 0
// contribute exactly 0, whatever q[k] is.
func KLDivergence[B tensor.Backend](p, q *tensor.Tensor[B]) (*tensor.Tensor[B], error) {
	if !p.Shape().Equal(q.Shape()) {
		return nil, fmt.Errorf("%w: target %v vs induced %v", ErrShapeMismatch, p.Shape(), q.Shape())
	}
	return p.KLDiv(q).Sum(), nil
}

// composeLoss adds the weighted regularizer to the reconstruction term.
func composeLoss[B tensor.Backend](reconstruction, regularization, partition *tensor.Tensor[B], kldWeight float64) *Loss[B] {
	return &Loss[B]{
		Total:          reconstruction.Add(regularization.MulScalar(kldWeight)),
		Reconstruction: reconstruction,
		Regularization: regularization,
		Partition:      partition,
	}
}
