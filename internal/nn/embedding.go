package nn

import (
	"fmt"

	"github.com/born-ml/vtsne/internal/tensor"
)

// Embedding is a lookup table mapping point indices to dense rows.
//
// Architecture:
//   - Weight: [NumEmbed, EmbedDim] learnable parameter
//   - Forward: indices [batch] -> rows [batch, EmbedDim]
//   - Backward: gradients scatter-add to weight rows
type Embedding[B tensor.Backend] struct {
	Weight   *Parameter[B]
	NumEmbed int
	EmbedDim int
}

// NewEmbedding creates an Embedding table named name, filled by fill.
func NewEmbedding[B tensor.Backend](name string, numEmbeddings, embeddingDim int, fill Initializer, backend B) (*Embedding[B], error) {
	raw, err := tensor.NewRaw(tensor.Shape{numEmbeddings, embeddingDim}, backend.Device())
	if err != nil {
		return nil, fmt.Errorf("embedding %s: %w", name, err)
	}
	if fill != nil {
		fill(raw.Data())
	}

	return &Embedding[B]{
		Weight:   NewParameter(name, tensor.New(raw, backend)),
		NumEmbed: numEmbeddings,
		EmbedDim: embeddingDim,
	}, nil
}

// Forward gathers the rows at indices. Differentiable with respect to Weight.
// Panics if any index is out of bounds [0, NumEmbed).
func (e *Embedding[B]) Forward(indices []int) *tensor.Tensor[B] {
	return e.Weight.Tensor().Embedding(indices)
}

// All returns the full weight table.
func (e *Embedding[B]) All() *tensor.Tensor[B] {
	return e.Weight.Tensor()
}

// Parameters returns the list of trainable parameters.
func (e *Embedding[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{e.Weight}
}
