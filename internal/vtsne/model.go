package vtsne

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/born-ml/vtsne/internal/nn"
	"github.com/born-ml/vtsne/internal/tensor"
)

// Model is a variational t-SNE embedding of N points into D latent dimensions.
//
// The model never writes to its parameters; an external optimizer updates
// them between calls. Forward and Sample consume randomness from the
// configured source and are not safe for concurrent use.
type Model[B tensor.Backend] struct {
	backend   B
	store     *Store[B]
	sampler   *Sampler[B]
	kldWeight float64
	logger    *slog.Logger
}

// LatentSample is a reparameterized draw of some or all points together
// with the summed prior divergence of the sampled rows.
type LatentSample[B tensor.Backend] struct {
	Z   *tensor.Tensor[B] // [len(indices), D], or [N, D] for all points
	KLD *tensor.Tensor[B] // scalar
}

// New creates a model with parameters allocated on backend.
//
// Example:
//
//	model, err := vtsne.New(autodiff.New(cpu.New()), vtsne.Config{
//	    NumPoints: 1083,
//	    Rand:      rand.NewPCG(1, 2),
//	})
func New[B tensor.Backend](backend B, cfg Config) (*Model[B], error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	meanInit := nn.Constant(0)
	if cfg.InitMeanStd > 0 {
		meanInit = nn.Normal(0, cfg.InitMeanStd, cfg.Rand)
	}

	store, err := NewStore(cfg.NumPoints, cfg.LatentDims, meanInit, nn.Constant(cfg.InitLogVar), backend)
	if err != nil {
		return nil, fmt.Errorf("vtsne: create store: %w", err)
	}

	cfg.Logger.Info("vtsne model created",
		"points", cfg.NumPoints,
		"latent_dims", cfg.LatentDims,
		"kld_weight", cfg.KLDWeight,
		"backend", backend.Name(),
		"device", backend.Device().String(),
	)

	return &Model[B]{
		backend:   backend,
		store:     store,
		sampler:   NewSampler[B](cfg.Rand),
		kldWeight: cfg.KLDWeight,
		logger:    cfg.Logger,
	}, nil
}

// NumPoints returns N.
func (m *Model[B]) NumPoints() int { return m.store.NumPoints() }

// LatentDims returns D.
func (m *Model[B]) LatentDims() int { return m.store.Dims() }

// KLDWeight returns the regularizer coefficient.
func (m *Model[B]) KLDWeight() float64 { return m.kldWeight }

// Store returns the latent distribution tables.
func (m *Model[B]) Store() *Store[B] { return m.store }

// Parameters returns [means, logvars] for an external optimizer.
func (m *Model[B]) Parameters() []*nn.Parameter[B] { return m.store.Parameters() }

// Means returns a copy of the mean table, the deterministic embedding used
// for visualization.
func (m *Model[B]) Means() [][]float64 {
	mu, _ := m.store.All()
	return mu.Rows()
}

// Forward evaluates the loss for a batch of pairs (i[k], j[k]) with target
// affinities pij[k].
//
// The whole point set is sampled for the partition function and the
// regularizer; rows i and j are sampled again for the numerator and their
// divergences are discarded. Errors are returned before any computation:
//   - ErrShapeMismatch: len(pij), len(i), len(j) differ
//   - ErrEmptyBatch: no pairs
//   - ErrInvalidProbability: pij[k] outside [0, 1] or NaN
//   - ErrIndexOutOfRange: an index outside [0, N)
//   - ErrDeviceMismatch: parameters not on the backend's device
func (m *Model[B]) Forward(pij []float64, i, j []int) (*Loss[B], error) {
	if err := m.validateBatch(pij, i, j); err != nil {
		return nil, err
	}

	x, kldReg, err := m.sampler.Sample(m.store.All())
	if err != nil {
		return nil, err
	}
	partition, err := PartitionFunction(x)
	if err != nil {
		return nil, err
	}

	xi, err := m.sampleRows(i)
	if err != nil {
		return nil, err
	}
	xj, err := m.sampleRows(j)
	if err != nil {
		return nil, err
	}

	num, err := PairKernel(xi, xj)
	if err != nil {
		return nil, err
	}
	q := InducedAffinity(num, partition)

	p, err := tensor.FromSlice(pij, tensor.Shape{len(pij)}, m.backend)
	if err != nil {
		return nil, fmt.Errorf("vtsne: target affinities: %w", err)
	}
	reconstruction, err := KLDivergence(p, q)
	if err != nil {
		return nil, err
	}

	loss := composeLoss(reconstruction, kldReg, partition, m.kldWeight)
	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logger.Debug("vtsne forward",
			"pairs", len(pij),
			"loss", loss.Total.Item(),
			"reconstruction", reconstruction.Item(),
			"regularization", kldReg.Item(),
			"partition", partition.Item(),
		)
	}
	return loss, nil
}

// Sample draws the latent coordinates of the given points, or of every point
// when no index is given, using the current parameters.
func (m *Model[B]) Sample(indices ...int) (*LatentSample[B], error) {
	if err := m.checkDevice(); err != nil {
		return nil, err
	}

	var mu, logVar *tensor.Tensor[B]
	if len(indices) == 0 {
		mu, logVar = m.store.All()
	} else {
		var err error
		mu, logVar, err = m.store.Rows(indices)
		if err != nil {
			return nil, err
		}
	}

	z, kld, err := m.sampler.Sample(mu, logVar)
	if err != nil {
		return nil, err
	}
	return &LatentSample[B]{Z: z, KLD: kld}, nil
}

// sampleRows samples the rows at indices; their divergence is dropped so the
// regularizer counts each point once per call.
func (m *Model[B]) sampleRows(indices []int) (*tensor.Tensor[B], error) {
	mu, logVar, err := m.store.Rows(indices)
	if err != nil {
		return nil, err
	}
	z, _, err := m.sampler.Sample(mu, logVar)
	return z, err
}

func (m *Model[B]) validateBatch(pij []float64, i, j []int) error {
	if len(pij) != len(i) || len(pij) != len(j) {
		return fmt.Errorf("%w: %d target affinities, %d i indices, %d j indices",
			ErrShapeMismatch, len(pij), len(i), len(j))
	}
	if len(pij) == 0 {
		return ErrEmptyBatch
	}
	for k, p := range pij {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: pij[%d] = %v", ErrInvalidProbability, k, p)
		}
	}
	if err := m.store.checkIndices(i); err != nil {
		return fmt.Errorf("i: %w", err)
	}
	if err := m.store.checkIndices(j); err != nil {
		return fmt.Errorf("j: %w", err)
	}
	return m.checkDevice()
}

func (m *Model[B]) checkDevice() error {
	device := m.backend.Device()
	for _, p := range m.store.Parameters() {
		if p.Tensor().Device() != device {
			return fmt.Errorf("%w: parameter %s on %s, backend %s on %s",
				ErrDeviceMismatch, p.Name(), p.Tensor().Device(), m.backend.Name(), device)
		}
	}
	return nil
}
