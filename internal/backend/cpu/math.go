package cpu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/vtsne/internal/tensor"
)

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", a, b, floats.AddTo, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", a, b, floats.SubTo, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", a, b, floats.MulTo, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", a, b, floats.DivTo, func(x, y float64) float64 { return x / y })
}

// binary applies f element-wise. vec is the equal-shape fast path; f is used
// when one operand is a single element repeated over the other.
func (cpu *CPUBackend) binary(
	op string,
	a, b *tensor.RawTensor,
	vec func(dst, s, t []float64) []float64,
	f func(x, y float64) float64,
) *tensor.RawTensor {
	cpu.checkDevice(op, a, b)
	outShape, err := tensor.BroadcastScalar(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result := cpu.alloc(op, outShape)
	out, ad, bd := result.Data(), a.Data(), b.Data()

	switch {
	case len(ad) == len(out) && len(bd) == len(out):
		vec(out, ad, bd)
	case len(ad) == len(out):
		y := bd[0]
		for i, x := range ad {
			out[i] = f(x, y)
		}
	default:
		x := ad[0]
		for i, y := range bd {
			out[i] = f(x, y)
		}
	}
	return result
}

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	cpu.checkDevice("add_scalar", x)
	result := cpu.alloc("add_scalar", x.Shape())
	out := result.Data()
	copy(out, x.Data())
	floats.AddConst(scalar, out)
	return result
}

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	cpu.checkDevice("mul_scalar", x)
	result := cpu.alloc("mul_scalar", x.Shape())
	floats.ScaleTo(result.Data(), scalar, x.Data())
	return result
}

// Exp computes element-wise exponential.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("exp", x, math.Exp)
}

// Log computes element-wise natural logarithm.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log", x, math.Log)
}

// Reciprocal computes element-wise 1/x.
func (cpu *CPUBackend) Reciprocal(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("reciprocal", x, func(v float64) float64 { return 1 / v })
}

func (cpu *CPUBackend) unary(op string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	cpu.checkDevice(op, x)
	result := cpu.alloc(op, x.Shape())
	out := result.Data()
	for i, v := range x.Data() {
		out[i] = f(v)
	}
	return result
}

// KLDiv computes p·(log p − log q) element-wise.
//
// A zero p contributes exactly 0 whatever q is (including q == 0), matching
// the 0·log 0 = 0 convention of the KL divergence.
func (cpu *CPUBackend) KLDiv(p, q *tensor.RawTensor) *tensor.RawTensor {
	cpu.checkDevice("kl_div", p, q)
	if !p.Shape().Equal(q.Shape()) {
		panic(fmt.Sprintf("kl_div: %v: %v vs %v", tensor.ErrShapeMismatch, p.Shape(), q.Shape()))
	}

	result := cpu.alloc("kl_div", p.Shape())
	out, qd := result.Data(), q.Data()
	for i, pv := range p.Data() {
		if pv == 0 {
			continue
		}
		out[i] = pv * (math.Log(pv) - math.Log(qd[i]))
	}
	return result
}
