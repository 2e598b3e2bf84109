package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/vtsne/internal/tensor"
)

// Sum reduces all elements to a scalar (shape []).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	cpu.checkDevice("sum", x)
	result := cpu.alloc("sum", tensor.Shape{})
	result.Data()[0] = floats.Sum(x.Data())
	return result
}

// SumDim sums along dim and removes it from the shape.
//
// Example: [batch, D] summed over dim 1 → [batch].
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	cpu.checkDevice("sum_dim", x)
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("sum_dim: dim %d out of range for shape %v", dim, shape))
	}

	outer, n, inner := splitDim(shape, dim)
	outShape := make(tensor.Shape, 0, len(shape)-1)
	outShape = append(outShape, shape[:dim]...)
	outShape = append(outShape, shape[dim+1:]...)

	result := cpu.alloc("sum_dim", outShape)
	in, out := x.Data(), result.Data()
	for o := 0; o < outer; o++ {
		for k := 0; k < n; k++ {
			base := (o*n + k) * inner
			for i := 0; i < inner; i++ {
				out[o*inner+i] += in[base+i]
			}
		}
	}
	return result
}

// Expand repeats a single-element tensor over shape.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	cpu.checkDevice("expand", x)
	v := x.Item()
	result := cpu.alloc("expand", shape)
	out := result.Data()
	for i := range out {
		out[i] = v
	}
	return result
}

// splitDim returns the element counts before, at and after dim, so that a
// row-major index decomposes as (outer*n + k)*inner + i.
func splitDim(shape tensor.Shape, dim int) (outer, n, inner int) {
	outer, inner = 1, 1
	for _, d := range shape[:dim] {
		outer *= d
	}
	for _, d := range shape[dim+1:] {
		inner *= d
	}
	return outer, shape[dim], inner
}
