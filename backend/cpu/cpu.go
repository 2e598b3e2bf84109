// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/vtsne/internal/backend/cpu"
	"github.com/born-ml/vtsne/internal/parallel"
	"github.com/born-ml/vtsne/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// ParallelConfig controls how row-parallel kernels split work across the
// worker pool.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a pool sized to the number of CPUs.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// New creates a new CPU backend with the default worker pool.
//
// Example:
//
//	backend := cpu.New()
//	defer backend.Release()
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with an explicit worker pool
// configuration. A disabled config runs every kernel on the calling goroutine.
func NewWithConfig(cfg ParallelConfig) (*Backend, error) {
	return internalcpu.NewWithConfig(cfg)
}
