// Package nn implements the trainable building blocks of the embedding model.
//
// This package provides:
//   - Module interface: anything that owns trainable parameters
//   - Parameter: a named tensor with an optional gradient
//   - Embedding: a row-gathered [N, D] table
//   - Initializers: Constant, Normal
package nn

import (
	"github.com/born-ml/vtsne/internal/tensor"
)

// Module is the base interface for components that own trainable parameters.
//
// Forward signatures differ between modules, so only Parameters is shared.
// An external optimizer reads Parameters after a backward pass and updates
// the tensors in place.
type Module[B tensor.Backend] interface {
	// Parameters returns all trainable parameters of this module, including
	// those of nested modules.
	Parameters() []*Parameter[B]
}

// ZeroGrads clears the gradient of every parameter of m.
func ZeroGrads[B tensor.Backend](m Module[B]) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
