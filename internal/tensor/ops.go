package tensor

// Add performs element-wise addition (equal shapes or single-element operand).
func (t *Tensor[B]) Add(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction.
func (t *Tensor[B]) Sub(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication.
func (t *Tensor[B]) Mul(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division.
//
// Example:
//
//	num := tensor.Full(Shape{4}, 1, backend)
//	z := tensor.Full(Shape{}, 2, backend)
//	q := num.Div(z) // [0.5 0.5 0.5 0.5]
func (t *Tensor[B]) Div(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Div(t.raw, other.raw), t.backend)
}

// AddScalar adds a constant to every element.
func (t *Tensor[B]) AddScalar(scalar float64) *Tensor[B] {
	return New(t.backend.AddScalar(t.raw, scalar), t.backend)
}

// MulScalar multiplies every element by a constant.
func (t *Tensor[B]) MulScalar(scalar float64) *Tensor[B] {
	return New(t.backend.MulScalar(t.raw, scalar), t.backend)
}

// Square returns t*t.
func (t *Tensor[B]) Square() *Tensor[B] {
	return t.Mul(t)
}

// Exp computes element-wise e^x.
func (t *Tensor[B]) Exp() *Tensor[B] {
	return New(t.backend.Exp(t.raw), t.backend)
}

// Log computes element-wise natural logarithm.
func (t *Tensor[B]) Log() *Tensor[B] {
	return New(t.backend.Log(t.raw), t.backend)
}

// Reciprocal computes element-wise 1/x.
func (t *Tensor[B]) Reciprocal() *Tensor[B] {
	return New(t.backend.Reciprocal(t.raw), t.backend)
}

// KLDiv computes t·(log t − log q) element-wise, treating t == 0 as a zero
// contribution. t holds probabilities, q their model estimates.
func (t *Tensor[B]) KLDiv(q *Tensor[B]) *Tensor[B] {
	return New(t.backend.KLDiv(t.raw, q.raw), t.backend)
}

// Sum reduces all elements to a scalar tensor.
func (t *Tensor[B]) Sum() *Tensor[B] {
	return New(t.backend.Sum(t.raw), t.backend)
}

// SumDim reduces along dim, removing it from the shape.
func (t *Tensor[B]) SumDim(dim int) *Tensor[B] {
	return New(t.backend.SumDim(t.raw, dim), t.backend)
}

// Embedding gathers rows of a 2D tensor.
//
// Example:
//
//	table := tensor.Zeros(Shape{10, 2}, backend)
//	rows := table.Embedding([]int{3, 3, 7}) // Shape: [3, 2]
func (t *Tensor[B]) Embedding(indices []int) *Tensor[B] {
	return New(t.backend.Embedding(t.raw, indices), t.backend)
}

// PairwiseSqDist returns the [N, N] matrix of squared Euclidean distances
// between the rows of a [N, D] tensor.
func (t *Tensor[B]) PairwiseSqDist() *Tensor[B] {
	return New(t.backend.PairwiseSqDist(t.raw), t.backend)
}
