package ops

import "github.com/born-ml/vtsne/internal/tensor"

// reduceTo sums grad down to the shape of target when target was a
// single-element operand repeated over a larger tensor.
func reduceTo(grad, target *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(target.Shape()) {
		return grad
	}
	sum := backend.Sum(grad)
	if len(target.Shape()) == 0 {
		return sum
	}
	return backend.Expand(sum, target.Shape())
}
