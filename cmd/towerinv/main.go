package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"towerinv/internal/config"
	"towerinv/internal/core"
	"towerinv/internal/export"
	"towerinv/internal/httpapi"
	"towerinv/internal/infra/persistence/sqlite"
	"towerinv/internal/metrics"
	"towerinv/internal/sharefolder"
	"towerinv/internal/snapshot"
	"towerinv/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	share, sharePath, err := openShare(cfg)
	if err != nil {
		baseLogger.Fatal("failed to open shared folder", zap.Error(err))
	}

	dbPath := cfg.DB.Path
	snapshots := snapshot.NewManager(cfg.DB.Path, share)
	if cfg.Mode == config.ModeOffice {
		// Office serves the latest published snapshot, never the
		// maintenance working file. A missing snapshot is a warning,
		// not a failure: the office surface comes up on whatever local
		// copy exists, possibly empty, possibly stale.
		pulled, err := snapshots.Pull(context.Background(), "")
		switch {
		case errors.Is(err, snapshot.ErrNoSnapshot):
			baseLogger.Warn("no snapshot in shared folder, office data may be missing or outdated",
				zap.String("path", snapshots.LocalPath()))
			pulled = snapshots.LocalPath()
		case err != nil:
			baseLogger.Fatal("failed to pull snapshot", zap.Error(err))
		}
		dbPath = pulled
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		baseLogger.Fatal("failed to open database", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			baseLogger.Error("failed to close database", zap.Error(err))
		}
	}()

	exports, err := export.NewManager(cfg.Export.Dir)
	if err != nil {
		baseLogger.Fatal("failed to create export directory", zap.Error(err))
	}
	promMetrics := metrics.New(cfg.Metrics.Prefix, prometheus.DefaultRegisterer)

	svc := core.NewService(store, snapshots, exports, logger.Named(baseLogger, "service"), promMetrics)
	srv := httpapi.NewServer(svc, httpapi.Options{
		Mode:     cfg.Mode,
		Logger:   logger.Named(baseLogger, "http"),
		Recorder: promMetrics,
		Share: httpapi.ShareSettings{
			Driver:     cfg.Sharefolder.Driver,
			Path:       sharePath,
			ConfigFile: cfg.Sharefolder.ConfigFile,
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// openShare builds the shared-folder store from configuration. For the fs
// driver the folder resolves from the environment, the persisted config
// file, or the home-directory default, and is created on first use. The
// resolved path is returned for display on the config surface.
func openShare(cfg *config.Config) (sharefolder.Store, string, error) {
	fc := sharefolder.Config{Driver: sharefolder.Driver(cfg.Sharefolder.Driver)}

	var sharePath string
	switch fc.Driver {
	case "", sharefolder.DriverFilesystem:
		path, err := cfg.ResolveSharePath()
		if err != nil {
			return nil, "", err
		}
		sharePath = path
		fc.Path = path
	case sharefolder.DriverS3:
		fc.S3 = sharefolder.S3Config{
			Region:          cfg.Sharefolder.S3.Region,
			Bucket:          cfg.Sharefolder.S3.Bucket,
			Prefix:          cfg.Sharefolder.S3.Prefix,
			Endpoint:        cfg.Sharefolder.S3.Endpoint,
			AccessKeyID:     cfg.Sharefolder.S3.AccessKey,
			SecretAccessKey: cfg.Sharefolder.S3.SecretKey,
			PathStyle:       cfg.Sharefolder.S3.PathStyle,
		}
	}

	store, err := sharefolder.Open(context.Background(), fc)
	if err != nil {
		return nil, "", err
	}
	return store, sharePath, nil
}
