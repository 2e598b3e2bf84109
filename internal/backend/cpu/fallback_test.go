package cpu

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/vtsne/internal/parallel"
	"github.com/born-ml/vtsne/internal/tensor"
)

func TestNewOrSequential_LogsPoolFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1, IdleTimeout: -time.Second}
	b := newOrSequential(cfg, logger)

	assert.Equal(t, tensor.CPU, b.Device())
	assert.Nil(t, b.pool)
	assert.Contains(t, buf.String(), "worker pool unavailable")
	assert.Contains(t, buf.String(), "level=WARN")

	x, err := tensor.RawFromSlice([]float64{0, 0, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 25, 25, 0}, b.PairwiseSqDist(x).Data())
	b.Release()
}

func TestNewOrSequential_NoLogOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	b := newOrSequential(parallel.Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1}, slog.New(slog.NewTextHandler(&buf, nil)))
	defer b.Release()

	assert.NotNil(t, b.pool)
	assert.Empty(t, buf.String())
}
