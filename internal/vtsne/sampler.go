package vtsne

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/vtsne/internal/tensor"
)

// Sampler draws reparameterized samples from diagonal Gaussians.
//
// ε is drawn from a standard normal on every call, so two calls never share
// noise unless the caller reseeds the source in between.
type Sampler[B tensor.Backend] struct {
	noise distuv.Normal
}

// NewSampler creates a sampler reading noise from src. A nil src uses the
// global math/rand/v2 source.
func NewSampler[B tensor.Backend](src rand.Source) *Sampler[B] {
	return &Sampler[B]{
		noise: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

// Sample returns z = μ + exp(0.5·logσ²)·ε and the summed closed-form
// divergence from the standard normal prior:
//
//	kld = −0.5 · Σ (1 + logσ² − μ² − exp(logσ²))
//
// kld is a scalar tensor over every element of the batch. It is exactly 0
// when μ = 0 and logσ² = 0 everywhere.
func (s *Sampler[B]) Sample(mu, logVar *tensor.Tensor[B]) (z, kld *tensor.Tensor[B], err error) {
	if !mu.Shape().Equal(logVar.Shape()) {
		return nil, nil, fmt.Errorf("%w: mean %v vs log-variance %v", ErrShapeMismatch, mu.Shape(), logVar.Shape())
	}

	backend := mu.Backend()
	if mu.Device() != backend.Device() || logVar.Device() != backend.Device() {
		return nil, nil, fmt.Errorf("%w: mean on %s, log-variance on %s, backend %s on %s",
			ErrDeviceMismatch, mu.Device(), logVar.Device(), backend.Name(), backend.Device())
	}

	eps := s.drawNoise(mu.Shape(), backend)
	std := logVar.MulScalar(0.5).Exp()
	z = mu.Add(std.Mul(eps))

	kld = logVar.AddScalar(1).Sub(mu.Square()).Sub(logVar.Exp()).Sum().MulScalar(-0.5)
	return z, kld, nil
}

// drawNoise allocates ε on the backend's device. It is a constant leaf: no
// gradient flows into it.
func (s *Sampler[B]) drawNoise(shape tensor.Shape, backend B) *tensor.Tensor[B] {
	eps := tensor.Zeros(shape, backend)
	data := eps.Data()
	for i := range data {
		data[i] = s.noise.Rand()
	}
	return eps
}
