// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// The backend computes in float64 on the host. The O(N²) kernels
// (PairwiseSqDist and its gradient) split rows across an ants worker pool;
// everything else runs on the calling goroutine, using gonum/floats for the
// vectorized element-wise paths.
//
// # Basic Usage
//
//	backend := cpu.New()
//	defer backend.Release()
//
//	model, err := vtsne.New(autodiff.New(backend), vtsne.Config{NumPoints: n})
//
// # Thread Safety
//
// Kernels do not share mutable state and are safe for concurrent use.
// Release must not be called while a kernel is running.
package cpu
