// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/vtsne/internal/nn"
	"github.com/born-ml/vtsne/internal/tensor"
)

// Module is implemented by every component that owns trainable parameters.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter represents a trainable parameter.
//
// Parameter is a type alias because it is returned from the Module interface,
// which requires exact type matches.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// AssignGrads copies each parameter's gradient out of the map returned by
// autodiff.Backward. Parameters absent from the map get a zero gradient.
//
// Example:
//
//	grads := autodiff.Backward(loss.Total, backend)
//	nn.AssignGrads(model.Parameters(), grads)
//	for _, p := range model.Parameters() {
//	    update(p.Tensor().Data(), p.Grad().Data())
//	}
func AssignGrads[B tensor.Backend](params []*Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) {
	nn.AssignGrads(params, grads)
}

// ZeroGrads clears the gradient of every parameter of m.
func ZeroGrads[B tensor.Backend](m Module[B]) {
	nn.ZeroGrads(m)
}

// Embedding is a row-gathered [N, D] parameter table.
type Embedding[B tensor.Backend] = nn.Embedding[B]

// NewEmbedding creates an embedding table filled by fill. A nil fill leaves
// the table at zero.
func NewEmbedding[B tensor.Backend](name string, numEmbeddings, embeddingDim int, fill Initializer, backend B) (*Embedding[B], error) {
	return nn.NewEmbedding(name, numEmbeddings, embeddingDim, fill, backend)
}

// Initializer fills a freshly allocated parameter buffer.
type Initializer = nn.Initializer

// Constant fills every element with value.
func Constant(value float64) Initializer {
	return nn.Constant(value)
}

// Normal draws every element from N(mean, std²) using src.
func Normal(mean, std float64, src rand.Source) Initializer {
	return nn.Normal(mean, std, src)
}
