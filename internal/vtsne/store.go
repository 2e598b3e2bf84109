package vtsne

import (
	"fmt"

	"github.com/born-ml/vtsne/internal/nn"
	"github.com/born-ml/vtsne/internal/tensor"
)

// Store holds the per-point latent Gaussians: two [N, D] tables of means and
// log-variances. The model only reads them.
type Store[B tensor.Backend] struct {
	means   *nn.Embedding[B]
	logVars *nn.Embedding[B]
}

// NewStore allocates both tables on backend and fills them with the given
// initializers.
func NewStore[B tensor.Backend](numPoints, dims int, meanInit, logVarInit nn.Initializer, backend B) (*Store[B], error) {
	means, err := nn.NewEmbedding("vtsne.means", numPoints, dims, meanInit, backend)
	if err != nil {
		return nil, err
	}
	logVars, err := nn.NewEmbedding("vtsne.logvars", numPoints, dims, logVarInit, backend)
	if err != nil {
		return nil, err
	}
	return &Store[B]{means: means, logVars: logVars}, nil
}

// NumPoints returns N.
func (s *Store[B]) NumPoints() int { return s.means.NumEmbed }

// Dims returns D.
func (s *Store[B]) Dims() int { return s.means.EmbedDim }

// All returns the full mean and log-variance tables, [N, D] each.
func (s *Store[B]) All() (mu, logVar *tensor.Tensor[B]) {
	return s.means.All(), s.logVars.All()
}

// Rows gathers the mean and log-variance rows at indices, [len(indices), D]
// each. The gather is differentiable; repeated indices are allowed.
func (s *Store[B]) Rows(indices []int) (mu, logVar *tensor.Tensor[B], err error) {
	if len(indices) == 0 {
		return nil, nil, ErrEmptyBatch
	}
	if err := s.checkIndices(indices); err != nil {
		return nil, nil, err
	}
	return s.means.Forward(indices), s.logVars.Forward(indices), nil
}

// Means returns the mean table parameter.
func (s *Store[B]) Means() *nn.Parameter[B] { return s.means.Weight }

// LogVars returns the log-variance table parameter.
func (s *Store[B]) LogVars() *nn.Parameter[B] { return s.logVars.Weight }

// Parameters returns [means, logvars].
func (s *Store[B]) Parameters() []*nn.Parameter[B] {
	return []*nn.Parameter[B]{s.means.Weight, s.logVars.Weight}
}

func (s *Store[B]) checkIndices(indices []int) error {
	n := s.NumPoints()
	for k, idx := range indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: indices[%d] = %d, want [0, %d)", ErrIndexOutOfRange, k, idx, n)
		}
	}
	return nil
}
