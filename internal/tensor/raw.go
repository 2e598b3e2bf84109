package tensor

import "fmt"

// Device represents the compute device a tensor is allocated on.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the low-level float64 tensor representation used by backends
// and the autodiff tape. Gradients are keyed by *RawTensor identity, so every
// backend operation returns a freshly allocated RawTensor.
type RawTensor struct {
	data   []float64
	shape  Shape
	stride []int
	device Device
}

// NewRaw creates a zero-filled RawTensor with the given shape on device.
func NewRaw(shape Shape, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		device: device,
	}, nil
}

// RawFromSlice creates a RawTensor holding a copy of data.
func RawFromSlice(data []float64, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d", ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	r, err := NewRaw(shape, device)
	if err != nil {
		return nil, err
	}
	copy(r.data, data)
	return r, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's row-major strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Data returns the underlying storage.
// WARNING: the slice aliases the tensor; writes modify it.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// Item returns the single value of a one-element tensor.
func (r *RawTensor) Item() float64 {
	if len(r.data) != 1 {
		panic(fmt.Sprintf("Item() requires a single-element tensor, got shape %v", r.shape))
	}
	return r.data[0]
}

// Clone returns a deep copy with its own storage.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]float64, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		device: r.device,
	}
}
