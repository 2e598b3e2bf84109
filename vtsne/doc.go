// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vtsne provides variational t-SNE: a low-dimensional embedding in
// which every point owns a diagonal Gaussian over its latent coordinates.
//
// # Overview
//
// Model.Forward takes a batch of pairs (i, j) with target affinities p_ij and
// returns a differentiable scalar loss:
//
//	Σ p_ij·(log p_ij − log q_ij) + KLDWeight·KL(N(μ, σ²) ‖ N(0, I))
//
// where q_ij is the Student-t affinity of a fresh latent sample, normalized
// by a partition function over the whole point set. The regularizer counts
// every point once per call.
//
// # Training
//
// The package computes the loss only. Wrap the backend with autodiff to get
// gradients and update the parameters with any optimizer:
//
//	backend := autodiff.New(cpu.New())
//	model, err := vtsne.New(backend, vtsne.Config{NumPoints: n})
//	if err != nil {
//	    return err
//	}
//
//	for step := 0; step < steps; step++ {
//	    backend.Tape().Clear()
//	    backend.Tape().StartRecording()
//	    loss, err := model.Forward(pij, i, j)
//	    if err != nil {
//	        return err
//	    }
//	    grads := autodiff.Backward(loss.Total, backend)
//	    backend.Tape().StopRecording()
//	    nn.AssignGrads(model.Parameters(), grads)
//	    // apply updates to p.Tensor().Data() using p.Grad().Data()
//	}
//
//	coords := model.Means() // deterministic embedding for plotting
//
// # Reproducibility
//
// Set Config.Rand to a seeded source such as rand.NewPCG. Reseeding it
// before a call reproduces that call's noise exactly.
package vtsne
