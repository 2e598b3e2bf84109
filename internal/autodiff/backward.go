package autodiff

import (
	"fmt"

	"github.com/born-ml/vtsne/internal/tensor"
)

// BackwardCapable is an interface for backends that support backward pass.
// AutodiffBackend implements this interface.
type BackwardCapable interface {
	tensor.Backend
	// GetTape returns the gradient tape for backward computation.
	GetTape() *GradientTape
}

// GetTape returns the gradient tape (implements BackwardCapable interface).
func (b *AutodiffBackend[B]) GetTape() *GradientTape {
	return b.tape
}

// Backward computes gradients of t with respect to every recorded tensor.
//
// The output gradient is seeded with ones, so for a scalar loss the result
// holds dLoss/dx for each parameter x:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	loss, _ := model.Forward(pij, i, j)
//	grads := autodiff.Backward(loss.Total, backend)
//	gradMeans := grads[means.Raw()]
func Backward[B BackwardCapable](t *tensor.Tensor[B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	tape := backend.GetTape()

	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	outputGrad, err := tensor.NewRaw(t.Shape(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("backward: failed to create output gradient: %v", err))
	}
	data := outputGrad.Data()
	for i := range data {
		data[i] = 1
	}

	return tape.Backward(t.Raw(), outputGrad, backend)
}
