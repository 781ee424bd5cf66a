// Package core is the application service of the tower inventory tracker.
// It validates input, resolves service-order references, orchestrates the
// store, snapshot, and export layers, and reports per-operation
// observations through a Recorder.
package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"towerinv/internal/export"
	"towerinv/internal/snapshot"
	"towerinv/pkg/domain"
)

// Service exposes the tracker's operations over the persistence, snapshot,
// and export layers. All methods are safe for concurrent use when the
// underlying store is.
type Service struct {
	store     domain.Store
	snapshots *snapshot.Manager
	exports   *export.Manager
	logger    *zap.Logger
	recorder  Recorder
}

// NewService wires a service over its collaborators. A nil logger or
// recorder is replaced with a no-op implementation.
func NewService(store domain.Store, snapshots *snapshot.Manager, exports *export.Manager, logger *zap.Logger, recorder Recorder) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Service{
		store:     store,
		snapshots: snapshots,
		exports:   exports,
		logger:    logger,
		recorder:  recorder,
	}
}

// Store returns the underlying persistence implementation.
func (s *Service) Store() domain.Store { return s.store }

// instrument times fn and reports the outcome under the operation name.
func (s *Service) instrument(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	s.recorder.Observe(ctx, operation, err == nil, time.Since(start))
	return err
}
