// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vtsne/backend/cpu"
	"github.com/born-ml/vtsne/tensor"
)

func TestNew(t *testing.T) {
	backend := cpu.New()
	defer backend.Release()

	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestNewWithConfig_ParallelMatchesSequential(t *testing.T) {
	seq, err := cpu.NewWithConfig(cpu.ParallelConfig{})
	require.NoError(t, err)

	cfg := cpu.DefaultParallelConfig()
	cfg.Enabled, cfg.NumWorkers, cfg.MinChunkSize = true, 4, 1
	par, err := cpu.NewWithConfig(cfg)
	require.NoError(t, err)
	defer par.Release()

	data := make([]float64, 40*3)
	for i := range data {
		data[i] = float64(i%7) - 0.5*float64(i%3)
	}
	x, err := tensor.FromSlice(data, tensor.Shape{40, 3}, seq)
	require.NoError(t, err)
	y, err := tensor.FromSlice(data, tensor.Shape{40, 3}, par)
	require.NoError(t, err)

	assert.Equal(t, x.PairwiseSqDist().Data(), y.PairwiseSqDist().Data())
}
