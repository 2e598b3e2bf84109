package vtsne

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

// Default hyperparameters.
const (
	DefaultLatentDims = 2
	DefaultKLDWeight  = 1e-7
)

// Config holds construction parameters for Model.
//
// Zero values select defaults, in the manner of optimizer configs:
//   - LatentDims: 2
//   - KLDWeight: 1e-7, unless DisableKLD is set
//   - InitMeanStd: 0 (all means start at exactly 0)
//   - InitLogVar: 0 (σ = 1, the prior)
//   - Rand: PCG seeded from the clock
//   - Logger: slog.Default()
type Config struct {
	NumPoints  int // Number of embedded points N (required).
	LatentDims int // Latent dimensions D per point.

	// KLDWeight scales the full-set KL(N(μ,σ²) ‖ N(0,I)) regularizer relative
	// to the reconstruction term.
	KLDWeight float64
	// DisableKLD drops the regularizer: the effective weight is exactly 0.
	// KLDWeight must then be left at 0.
	DisableKLD bool

	// InitMeanStd is the standard deviation of the Gaussian used to draw
	// initial means. 0 initializes every mean to exactly 0.
	InitMeanStd float64
	// InitLogVar is the initial log-variance of every point and dimension.
	InitLogVar float64

	// Rand is the noise source for ε draws and mean initialization. Supply a
	// seeded source (e.g. rand.NewPCG) for reproducible evaluations.
	Rand rand.Source

	Logger *slog.Logger
}

// withDefaults returns a copy of c with zero values replaced by defaults.
func (c Config) withDefaults() Config {
	if c.LatentDims == 0 {
		c.LatentDims = DefaultLatentDims
	}
	if c.KLDWeight == 0 && !c.DisableKLD {
		c.KLDWeight = DefaultKLDWeight
	}
	if c.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		c.Rand = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.NumPoints < 1:
		return fmt.Errorf("%w: NumPoints must be >= 1, got %d", ErrInvalidConfig, c.NumPoints)
	case c.LatentDims < 1:
		return fmt.Errorf("%w: LatentDims must be >= 1, got %d", ErrInvalidConfig, c.LatentDims)
	case c.DisableKLD && c.KLDWeight != 0:
		return fmt.Errorf("%w: KLDWeight %v set together with DisableKLD", ErrInvalidConfig, c.KLDWeight)
	case c.KLDWeight < 0 || !isFinite(c.KLDWeight):
		return fmt.Errorf("%w: KLDWeight must be finite and >= 0, got %v", ErrInvalidConfig, c.KLDWeight)
	case c.InitMeanStd < 0 || !isFinite(c.InitMeanStd):
		return fmt.Errorf("%w: InitMeanStd must be finite and >= 0, got %v", ErrInvalidConfig, c.InitMeanStd)
	case !isFinite(c.InitLogVar):
		return fmt.Errorf("%w: InitLogVar must be finite, got %v", ErrInvalidConfig, c.InitLogVar)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
