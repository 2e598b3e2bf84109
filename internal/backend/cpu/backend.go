// Package cpu implements the pure Go CPU backend.
package cpu

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/vtsne/internal/parallel"
	"github.com/born-ml/vtsne/internal/tensor"
)

// CPUBackend implements tensor operations on CPU. O(N²) kernels are split
// row-wise across a parallel.Pool.
type CPUBackend struct {
	device tensor.Device
	pool   *parallel.Pool
}

// New creates a CPU backend with parallel.DefaultConfig. If the worker pool
// cannot be started, the error is logged to slog.Default and the backend
// runs sequentially. Use NewWithConfig to handle the error instead.
func New() *CPUBackend {
	return newOrSequential(parallel.DefaultConfig(), slog.Default())
}

func newOrSequential(cfg parallel.Config, logger *slog.Logger) *CPUBackend {
	b, err := NewWithConfig(cfg)
	if err != nil {
		logger.Warn("cpu backend: worker pool unavailable, running sequentially", "error", err)
		return &CPUBackend{device: tensor.CPU}
	}
	return b
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg parallel.Config) (*CPUBackend, error) {
	pool, err := parallel.NewPool(cfg)
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}
	return &CPUBackend{
		device: tensor.CPU,
		pool:   pool,
	}, nil
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Release stops the worker pool. The backend stays usable, sequentially.
func (cpu *CPUBackend) Release() {
	cpu.pool.Release()
}

// alloc creates a result tensor on the backend's device.
func (cpu *CPUBackend) alloc(op string, shape tensor.Shape) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

// checkDevice panics unless every operand lives on the backend's device.
func (cpu *CPUBackend) checkDevice(op string, operands ...*tensor.RawTensor) {
	for _, t := range operands {
		if t.Device() != cpu.device {
			panic(fmt.Sprintf("%s: operand on %s, backend on %s", op, t.Device(), cpu.device))
		}
	}
}
