// Package parallel provides the bounded worker pool used by the CPU backend
// to split row-wise kernels.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of pooled worker goroutines.
	MinChunkSize int  // Minimum items per task to avoid scheduling overhead.

	// IdleTimeout is how long an idle worker is kept before it exits.
	// 0 uses the ants default; negative values are rejected.
	IdleTimeout time.Duration
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Pool runs index loops across a fixed set of ants workers.
// A nil *Pool runs everything sequentially.
type Pool struct {
	cfg  Config
	pool *ants.Pool
}

// NewPool creates a pool for cfg. A disabled config yields a sequential pool
// that never starts goroutines.
func NewPool(cfg Config) (*Pool, error) {
	if cfg.MinChunkSize < 1 {
		cfg.MinChunkSize = 1
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 {
		cfg.Enabled = false
		return &Pool{cfg: cfg}, nil
	}

	var opts []ants.Option
	if cfg.IdleTimeout != 0 {
		opts = append(opts, ants.WithExpiryDuration(cfg.IdleTimeout))
	}
	pool, err := ants.NewPool(cfg.NumWorkers, opts...)
	if err != nil {
		return nil, fmt.Errorf("parallel: create pool: %w", err)
	}
	return &Pool{cfg: cfg, pool: pool}, nil
}

// Config returns the effective configuration.
func (p *Pool) Config() Config {
	if p == nil {
		return Config{}
	}
	return p.cfg
}

// For executes f(i) for i in [0, n). Each index is handled by exactly one
// task, so f may write to index-owned output without locking.
// Falls back to sequential execution when the pool is disabled, n is below
// MinChunkSize, or a task cannot be submitted.
func (p *Pool) For(n int, f func(i int)) {
	if p == nil || p.pool == nil || n < p.cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+p.cfg.NumWorkers-1)/p.cfg.NumWorkers, p.cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		task := func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				f(i)
			}
		}
		if err := p.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()
}

// Release stops the pooled workers. The pool keeps working sequentially
// afterwards.
func (p *Pool) Release() {
	if p == nil || p.pool == nil {
		return
	}
	p.pool.Release()
	p.pool = nil
}
