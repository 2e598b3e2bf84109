package tensor

import "fmt"

// Tensor is a float64 tensor bound to a computation backend.
//
// Type Parameters:
//   - B: Computation backend (must implement Backend interface)
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, backend)
//	result := t.Add(t)
type Tensor[B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
func New[B Backend](raw *RawTensor, b B) *Tensor[B] {
	return &Tensor[B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor on the backend's device from a copy of data.
func FromSlice[B Backend](data []float64, shape Shape, b B) (*Tensor[B], error) {
	raw, err := RawFromSlice(data, shape, b.Device())
	if err != nil {
		return nil, err
	}
	return New(raw, b), nil
}

// Zeros creates a zero-filled tensor.
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	raw, err := NewRaw(shape, b.Device())
	if err != nil {
		panic(err)
	}
	return New(raw, b)
}

// Full creates a tensor filled with value.
func Full[B Backend](shape Shape, value float64, b B) *Tensor[B] {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor[B]) Shape() Shape {
	return t.raw.Shape()
}

// Device returns the tensor's compute device.
func (t *Tensor[B]) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor[B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Gradient maps returned by autodiff are keyed by it.
func (t *Tensor[B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[B]) Backend() B {
	return t.backend
}

// Data returns the tensor's storage (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[B]) Data() []float64 {
	return t.raw.Data()
}

// Item returns the value of a single-element tensor.
func (t *Tensor[B]) Item() float64 {
	return t.raw.Item()
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[B]) At(indices ...int) float64 {
	return t.Data()[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[B]) Set(value float64, indices ...int) {
	t.Data()[t.offset(indices)] = value
}

func (t *Tensor[B]) offset(indices []int) int {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	offset := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Rows copies a 2D tensor into a [][]float64, one slice per row.
func (t *Tensor[B]) Rows() [][]float64 {
	shape := t.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Rows() requires a 2D tensor, got shape %v", shape))
	}

	data := t.Data()
	rows := make([][]float64, shape[0])
	for i := range rows {
		rows[i] = append([]float64(nil), data[i*shape[1]:(i+1)*shape[1]]...)
	}
	return rows
}

// String returns a human-readable description of the tensor.
func (t *Tensor[B]) String() string {
	return fmt.Sprintf("Tensor[float64]%v on %s", t.raw.Shape(), t.raw.Device())
}

// Clone creates a deep copy of the tensor that is not connected to any
// recorded computation.
func (t *Tensor[B]) Clone() *Tensor[B] {
	return New(t.raw.Clone(), t.backend)
}
