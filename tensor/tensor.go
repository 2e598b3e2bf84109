// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/vtsne/internal/tensor"
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{1083, 2} is a table of 1083 two-dimensional points.
type Shape = tensor.Shape

// RawTensor is the low-level, backend-facing tensor representation.
// Most users should use Tensor[B] instead.
type RawTensor = tensor.RawTensor

// Tensor is a float64 tensor bound to backend B.
type Tensor[B Backend] = tensor.Tensor[B]

// ErrShapeMismatch is returned when data does not fit a shape.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// Zeros creates a tensor filled with zeros.
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Zeros(shape, b)
}

// Full creates a tensor filled with value.
func Full[B Backend](shape Shape, value float64, b B) *Tensor[B] {
	return tensor.Full(shape, value, b)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
//
// Example:
//
//	pij, err := tensor.FromSlice([]float64{0.2, 0.8}, tensor.Shape{2}, backend)
func FromSlice[B Backend](data []float64, shape Shape, b B) (*Tensor[B], error) {
	return tensor.FromSlice(data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use Zeros or FromSlice.
func New[B Backend](raw *RawTensor, b B) *Tensor[B] {
	return tensor.New(raw, b)
}

// NewRaw creates a new zero-filled raw tensor on device.
func NewRaw(shape Shape, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, device)
}
