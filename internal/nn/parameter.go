package nn

import (
	"github.com/born-ml/vtsne/internal/tensor"
)

// Parameter represents a trainable tensor.
//
// The core only reads parameters; an external optimizer looks up their
// gradients in the map returned by autodiff.Backward and updates Tensor()
// in place between forward evaluations.
//
// Example:
//
//	grads := autodiff.Backward(loss, backend)
//	nn.AssignGrads(model.Parameters(), grads)
//	for _, p := range model.Parameters() {
//	    step(p.Tensor().Data(), p.Grad().Data())
//	}
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[B]
	grad   *tensor.Tensor[B]
}

// NewParameter creates a new trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[B] {
	return p.tensor
}

// Grad returns the gradient tensor, or nil before AssignGrads.
func (p *Parameter[B]) Grad() *tensor.Tensor[B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}

// AssignGrads copies each parameter's gradient out of a backward-pass map.
// Parameters that did not take part in the computation get a zero gradient.
func AssignGrads[B tensor.Backend](params []*Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, p := range params {
		backend := p.tensor.Backend()
		if g, ok := grads[p.tensor.Raw()]; ok {
			p.grad = tensor.New(g, backend)
			continue
		}
		p.grad = tensor.Zeros(p.tensor.Shape(), backend)
	}
}
