package cpu

import (
	"fmt"

	"github.com/born-ml/vtsne/internal/tensor"
)

// Embedding gathers rows of weight [N, D]: out[k] = weight[indices[k]].
// Panics on an out-of-range index.
func (cpu *CPUBackend) Embedding(weight *tensor.RawTensor, indices []int) *tensor.RawTensor {
	cpu.checkDevice("embedding", weight)
	numEmbeddings, dim := rowsCols("embedding", weight)

	result := cpu.alloc("embedding", tensor.Shape{len(indices), dim})
	src, dst := weight.Data(), result.Data()
	for k, idx := range indices {
		if idx < 0 || idx >= numEmbeddings {
			panic(fmt.Sprintf("embedding: index %d out of range [0, %d)", idx, numEmbeddings))
		}
		copy(dst[k*dim:(k+1)*dim], src[idx*dim:(idx+1)*dim])
	}
	return result
}

// EmbeddingGrad scatter-adds grad rows back onto a [numEmbeddings, D] table.
// Indices that repeat accumulate.
//
//	indices = [0, 1, 0]
//	grad    = [[1,2], [3,4], [5,6]]
//	result  = [[6,8], [3,4], ...zeros]
func (cpu *CPUBackend) EmbeddingGrad(grad *tensor.RawTensor, indices []int, numEmbeddings int) *tensor.RawTensor {
	cpu.checkDevice("embedding_grad", grad)
	rows, dim := rowsCols("embedding_grad", grad)
	if rows != len(indices) {
		panic(fmt.Sprintf("embedding_grad: %d gradient rows for %d indices", rows, len(indices)))
	}

	result := cpu.alloc("embedding_grad", tensor.Shape{numEmbeddings, dim})
	src, dst := grad.Data(), result.Data()
	for k, idx := range indices {
		if idx < 0 || idx >= numEmbeddings {
			panic(fmt.Sprintf("embedding_grad: index %d out of range [0, %d)", idx, numEmbeddings))
		}
		row := dst[idx*dim : (idx+1)*dim]
		for d, g := range src[k*dim : (k+1)*dim] {
			row[d] += g
		}
	}
	return result
}

func rowsCols(op string, t *tensor.RawTensor) (rows, cols int) {
	shape := t.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("%s: expected 2D tensor, got shape %v", op, shape))
	}
	return shape[0], shape[1]
}
