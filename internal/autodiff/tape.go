package autodiff

import (
	"github.com/born-ml/vtsne/internal/autodiff/ops"
	"github.com/born-ml/vtsne/internal/tensor"
)

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass using reverse-mode automatic differentiation.
//
// Usage:
//
//	tape := NewGradientTape()
//	tape.StartRecording()
//	// ... perform operations ...
//	gradients := tape.Backward(output, outputGrad, backend)
type GradientTape struct {
	operations []ops.Operation
	recording  bool
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]ops.Operation, 0, 64),
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear removes all recorded operations. Recording state is preserved.
func (t *GradientTape) Clear() {
	clear(t.operations)
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// Backward computes gradients of output by walking the tape in reverse.
//
// Algorithm:
//  1. Seed output with outputGrad (ones for a scalar loss)
//  2. Walk operations in reverse order
//  3. For each operation whose output has a gradient, apply the chain rule
//  4. Accumulate gradients when a tensor feeds several operations
//
// Returns a map from RawTensor to its accumulated gradient. Recording is
// suspended while the backward pass runs.
func (t *GradientTape) Backward(
	output, outputGrad *tensor.RawTensor,
	backend tensor.Backend,
) map[*tensor.RawTensor]*tensor.RawTensor {
	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)
	grads[output] = outputGrad

	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
	}()

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		opGrad, ok := grads[op.Output()]
		if !ok {
			continue
		}
		t.accumulate(op.Inputs(), op.Backward(opGrad, backend), grads, backend)
	}

	return grads
}

func (t *GradientTape) accumulate(
	inputs, inputGrads []*tensor.RawTensor,
	grads map[*tensor.RawTensor]*tensor.RawTensor,
	backend tensor.Backend,
) {
	for j, input := range inputs {
		if j >= len(inputGrads) || inputGrads[j] == nil {
			continue
		}
		if existing, ok := grads[input]; ok {
			grads[input] = backend.Add(existing, inputGrads[j])
		} else {
			grads[input] = inputGrads[j]
		}
	}
}
