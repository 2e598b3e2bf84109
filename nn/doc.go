// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides trainable parameters and parameter tables.
//
// # Overview
//
// This package contains:
//   - Module and Parameter, the contract between models and optimizers
//   - Embedding, the [N, D] table type behind the vtsne mean and
//     log-variance tables
//   - Initialization: Constant, Normal
//
// # Gradients
//
// Parameters hold no gradient until AssignGrads copies one out of a
// backward pass:
//
//	grads := autodiff.Backward(loss.Total, backend)
//	nn.AssignGrads(model.Parameters(), grads)
//	g := model.Parameters()[0].Grad()
package nn
