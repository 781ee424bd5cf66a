package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"towerinv/internal/sharefolder"
	"towerinv/pkg/domain"
)

// PublishSnapshot copies the working database into the shared folder,
// replacing whatever snapshot is there.
func (s *Service) PublishSnapshot(ctx context.Context) (sharefolder.Info, error) {
	var info sharefolder.Info
	err := s.instrument(ctx, "publish_snapshot", func() error {
		var err error
		info, err = s.snapshots.Publish(ctx)
		return err
	})
	if err != nil {
		return sharefolder.Info{}, err
	}
	s.logger.Info("snapshot published",
		zap.String("name", info.Name),
		zap.Int64("size", info.Size))
	return info, nil
}

// PullSnapshot downloads the shared snapshot, to target when given or to
// the default local snapshot path otherwise, and returns the written path.
func (s *Service) PullSnapshot(ctx context.Context, target string) (string, error) {
	var path string
	err := s.instrument(ctx, "pull_snapshot", func() error {
		var err error
		path, err = s.snapshots.Pull(ctx, target)
		return err
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("snapshot pulled", zap.String("path", path))
	return path, nil
}

// SnapshotInfo describes the shared snapshot, or nil when none exists.
func (s *Service) SnapshotInfo(ctx context.Context) (*domain.SnapshotInfo, error) {
	return s.snapshots.Info(ctx)
}

// SnapshotURL returns a pre-signed download link when the share driver
// supports signing; other drivers report sharefolder.ErrUnsupported.
func (s *Service) SnapshotURL(ctx context.Context, expiry time.Duration) (string, error) {
	return s.snapshots.SignedURL(ctx, expiry)
}
