// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes float64 tensors and the Backend interface.
//
// # Overview
//
// A Tensor[B] couples a RawTensor (data, shape, device) with the backend B
// that computes on it. Methods return new tensors; nothing is modified in
// place. Operands must share a shape, or one of them must hold a single
// element:
//
//	mu := tensor.Zeros(tensor.Shape{4, 2}, backend)
//	std := logVar.MulScalar(0.5).Exp()
//	z := mu.Add(std.Mul(eps))
//
// # Devices
//
// Every raw tensor records the Device it lives on. Backends panic when given
// an operand from another device; the vtsne package reports the same
// condition as ErrDeviceMismatch before any computation.
//
// # Differentiation
//
// Wrapping a backend with autodiff.New records every operation so that
// gradients can be computed with autodiff.Backward.
package tensor
