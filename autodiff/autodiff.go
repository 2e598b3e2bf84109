// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// This package implements reverse-mode automatic differentiation using a
// gradient tape. It wraps any backend to add autodiff capabilities.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	model, _ := vtsne.New(backend, vtsne.Config{NumPoints: n})
//
//	backend.Tape().StartRecording()
//	loss, _ := model.Forward(pij, i, j)
//	grads := autodiff.Backward(loss.Total, backend)
//	backend.Tape().Clear()
package autodiff

import (
	"github.com/born-ml/vtsne/internal/autodiff"
	"github.com/born-ml/vtsne/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New creates a new autodiff backend wrapping the given backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// BackwardCapable interface for backends that support backpropagation.
type BackwardCapable = autodiff.BackwardCapable

// Backward computes gradients of t with respect to every recorded input.
// The result is keyed by the RawTensor of each input, e.g. a parameter's
// Tensor().Raw().
func Backward[B BackwardCapable](t *tensor.Tensor[B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(t, backend)
}
