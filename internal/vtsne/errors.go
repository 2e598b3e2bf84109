package vtsne

import "errors"

// Sentinel errors returned by the model. Callers match them with errors.Is.
var (
	// ErrInvalidConfig is returned by New for unusable configuration values.
	ErrInvalidConfig = errors.New("vtsne: invalid config")

	// ErrShapeMismatch is returned when batch slices or tensors disagree in shape.
	ErrShapeMismatch = errors.New("vtsne: shape mismatch")

	// ErrEmptyBatch is returned for a forward call without pairs.
	ErrEmptyBatch = errors.New("vtsne: empty batch")

	// ErrIndexOutOfRange is returned for a point index outside [0, N).
	ErrIndexOutOfRange = errors.New("vtsne: point index out of range")

	// ErrInvalidProbability is returned for a target affinity outside [0, 1] or NaN.
	ErrInvalidProbability = errors.New("vtsne: target affinity outside [0, 1]")

	// ErrDeviceMismatch is returned when tensors live on different devices
	// than the backend computing with them.
	ErrDeviceMismatch = errors.New("vtsne: device mismatch")
)
