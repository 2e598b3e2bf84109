package cpu

import (
	"fmt"

	"github.com/born-ml/vtsne/internal/tensor"
)

// PairwiseSqDist returns dist²[k,l] = Σ_d (x[k,d] − x[l,d])² for x [N, D].
//
// The result is exactly symmetric with a zero diagonal: both halves are
// computed with the same operation order. Rows are split across the pool;
// each worker owns whole output rows.
func (cpu *CPUBackend) PairwiseSqDist(x *tensor.RawTensor) *tensor.RawTensor {
	cpu.checkDevice("pairwise_sq_dist", x)
	n, dim := rowsCols("pairwise_sq_dist", x)

	result := cpu.alloc("pairwise_sq_dist", tensor.Shape{n, n})
	in, out := x.Data(), result.Data()
	cpu.pool.For(n, func(k int) {
		xk := in[k*dim : (k+1)*dim]
		row := out[k*n : (k+1)*n]
		for l := 0; l < n; l++ {
			if l == k {
				continue
			}
			xl := in[l*dim : (l+1)*dim]
			s := 0.0
			for d, v := range xk {
				diff := v - xl[d]
				s += diff * diff
			}
			row[l] = s
		}
	})
	return result
}

// PairwiseSqDistGrad is the adjoint of PairwiseSqDist:
//
//	dL/dx[k] = Σ_l 2·(G[k,l] + G[l,k])·(x[k] − x[l])
func (cpu *CPUBackend) PairwiseSqDistGrad(x, grad *tensor.RawTensor) *tensor.RawTensor {
	cpu.checkDevice("pairwise_sq_dist_grad", x, grad)
	n, dim := rowsCols("pairwise_sq_dist_grad", x)
	if !grad.Shape().Equal(tensor.Shape{n, n}) {
		panic(fmt.Sprintf("pairwise_sq_dist_grad: gradient shape %v, want [%d %d]", grad.Shape(), n, n))
	}

	result := cpu.alloc("pairwise_sq_dist_grad", x.Shape())
	in, g, out := x.Data(), grad.Data(), result.Data()
	cpu.pool.For(n, func(k int) {
		xk := in[k*dim : (k+1)*dim]
		gk := out[k*dim : (k+1)*dim]
		for l := 0; l < n; l++ {
			if l == k {
				continue
			}
			c := 2 * (g[k*n+l] + g[l*n+k])
			if c == 0 {
				continue
			}
			xl := in[l*dim : (l+1)*dim]
			for d, v := range xk {
				gk[d] += c * (v - xl[d])
			}
		}
	})
	return result
}
