package vtsne

import (
	"fmt"

	"github.com/born-ml/vtsne/internal/tensor"
)

// SquaredDistances returns the [N, N] matrix dist²[k,l] = Σ_d (z[k,d] − z[l,d])².
// It is symmetric with a zero diagonal.
func SquaredDistances[B tensor.Backend](z *tensor.Tensor[B]) *tensor.Tensor[B] {
	return z.PairwiseSqDist()
}

// StudentT applies the heavy-tailed kernel (1 + d²)^-1 element-wise.
func StudentT[B tensor.Backend](distSq *tensor.Tensor[B]) *tensor.Tensor[B] {
	return distSq.AddScalar(1).Reciprocal()
}

// PartitionFunction returns Z = Σ_{k,l} (1 + dist²[k,l])^-1 − N for a sample
// z [N, D] of the entire point set. Subtracting N removes the diagonal, whose
// kernel values are exactly 1. Z > 0 whenever N ≥ 2.
func PartitionFunction[B tensor.Backend](z *tensor.Tensor[B]) (*tensor.Tensor[B], error) {
	shape := z.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: latent sample must be [N, D], got %v", ErrShapeMismatch, shape)
	}
	n := shape[0]
	return StudentT(SquaredDistances(z)).Sum().AddScalar(-float64(n)), nil
}

// PairKernel returns num[k] = (1 + Σ_d (xi[k,d] − xj[k,d])²)^-1 for aligned
// batches xi, xj [batch, D]. Identical rows give exactly 1.
func PairKernel[B tensor.Backend](xi, xj *tensor.Tensor[B]) (*tensor.Tensor[B], error) {
	if len(xi.Shape()) != 2 || !xi.Shape().Equal(xj.Shape()) {
		return nil, fmt.Errorf("%w: pair batches %v vs %v", ErrShapeMismatch, xi.Shape(), xj.Shape())
	}
	diff := xi.Sub(xj)
	return StudentT(diff.Square().SumDim(1)), nil
}

// InducedAffinity normalizes pair kernel values by the partition function:
// q[k] = num[k] / Z.
func InducedAffinity[B tensor.Backend](num, partition *tensor.Tensor[B]) *tensor.Tensor[B] {
	return num.Div(partition)
}
