// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vtsne

import (
	"github.com/born-ml/vtsne/internal/tensor"
	"github.com/born-ml/vtsne/internal/vtsne"
)

// Model is a variational t-SNE embedding of N points into D latent dimensions.
type Model[B tensor.Backend] = vtsne.Model[B]

// Config holds construction parameters for Model. Zero values select defaults.
type Config = vtsne.Config

// Loss is the result of one forward evaluation.
type Loss[B tensor.Backend] = vtsne.Loss[B]

// LatentSample is a reparameterized draw of some or all points.
type LatentSample[B tensor.Backend] = vtsne.LatentSample[B]

// Store holds the per-point mean and log-variance tables.
type Store[B tensor.Backend] = vtsne.Store[B]

// Default hyperparameters.
const (
	DefaultLatentDims = vtsne.DefaultLatentDims
	DefaultKLDWeight  = vtsne.DefaultKLDWeight
)

// Errors returned by Model. Match them with errors.Is.
var (
	ErrInvalidConfig      = vtsne.ErrInvalidConfig
	ErrShapeMismatch      = vtsne.ErrShapeMismatch
	ErrEmptyBatch         = vtsne.ErrEmptyBatch
	ErrIndexOutOfRange    = vtsne.ErrIndexOutOfRange
	ErrInvalidProbability = vtsne.ErrInvalidProbability
	ErrDeviceMismatch     = vtsne.ErrDeviceMismatch
)

// New creates a model with parameters allocated on backend.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	model, err := vtsne.New(backend, vtsne.Config{
//	    NumPoints: 1083,
//	    Rand:      rand.NewPCG(1, 2),
//	})
func New[B tensor.Backend](backend B, cfg Config) (*Model[B], error) {
	return vtsne.New(backend, cfg)
}

// PartitionFunction returns Z = Σ_{k≠l} (1 + ‖z_k − z_l‖²)^-1 for a full
// latent sample z [N, D].
func PartitionFunction[B tensor.Backend](z *tensor.Tensor[B]) (*tensor.Tensor[B], error) {
	return vtsne.PartitionFunction(z)
}

// PairKernel returns (1 + ‖xi[k] − xj[k]‖²)^-1 for aligned batches.
func PairKernel[B tensor.Backend](xi, xj *tensor.Tensor[B]) (*tensor.Tensor[B], error) {
	return vtsne.PairKernel(xi, xj)
}
