package poseestimator

import "context"

// RawKeypoint is one body-part detection as reported by the estimator,
// before any confidence filtering.
type RawKeypoint struct {
	Part  string
	X     float64
	Y     float64
	Score float64
}

// Client exposes the subset of the pose-estimation service used by the
// detection flow. Implementations must be safe for concurrent use.
type Client interface {
	EstimatePose(ctx context.Context, imageBytes []byte) ([]RawKeypoint, error)
}
