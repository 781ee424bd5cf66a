package core

import (
	"context"
	"time"
)

// Recorder receives one observation per completed service operation.
// Implementations must be safe for concurrent use. The Prometheus-backed
// recorder lives in internal/metrics.
type Recorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// NopRecorder discards observations. It keeps tests and metric-less
// deployments free of conditionals at the call sites.
type NopRecorder struct{}

// Observe implements Recorder by doing nothing.
func (NopRecorder) Observe(context.Context, string, bool, time.Duration) {}
