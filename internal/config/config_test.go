package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var allEnvKeys = []string{
	"TOWERINV_MODE",
	"TOWERINV_HTTP_ADDR",
	"TOWERINV_SHUTDOWN_TIMEOUT",
	"TOWERINV_DB_PATH",
	"TOWERINV_EXPORT_DIR",
	"TOWERINV_CONFIG_FILE",
	"TOWERINV_LOG_LEVEL",
	"TOWERINV_METRICS_PREFIX",
	"TOWERINV_SHAREFOLDER_DRIVER",
	"TOWERINV_SHAREFOLDER_PATH",
	"TOWERINV_SHAREFOLDER_S3_BUCKET",
	"TOWERINV_SHAREFOLDER_S3_PREFIX",
	"TOWERINV_SHAREFOLDER_S3_REGION",
	"TOWERINV_SHAREFOLDER_S3_ENDPOINT",
	"TOWERINV_SHAREFOLDER_S3_ACCESS_KEY",
	"TOWERINV_SHAREFOLDER_S3_SECRET_KEY",
	"TOWERINV_SHAREFOLDER_S3_PATH_STYLE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != ModeMaintenance {
		t.Fatalf("mode = %q, want maintenance", cfg.Mode)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown timeout = %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.DB.Path != DefaultDBPath {
		t.Fatalf("db path = %q", cfg.DB.Path)
	}
	if cfg.Export.Dir != DefaultExportDir {
		t.Fatalf("export dir = %q", cfg.Export.Dir)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
	if cfg.Metrics.Prefix != "towerinv" {
		t.Fatalf("metrics prefix = %q", cfg.Metrics.Prefix)
	}
	if cfg.Sharefolder.Driver != "fs" {
		t.Fatalf("driver = %q", cfg.Sharefolder.Driver)
	}
	if cfg.Sharefolder.ConfigFile != DefaultShareFileName {
		t.Fatalf("config file = %q", cfg.Sharefolder.ConfigFile)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOWERINV_MODE", "office")
	t.Setenv("TOWERINV_HTTP_ADDR", "127.0.0.1:9900")
	t.Setenv("TOWERINV_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("TOWERINV_DB_PATH", "data/tower.db")
	t.Setenv("TOWERINV_EXPORT_DIR", "out")
	t.Setenv("TOWERINV_LOG_LEVEL", "debug")
	t.Setenv("TOWERINV_METRICS_PREFIX", "tracker")
	t.Setenv("TOWERINV_SHAREFOLDER_DRIVER", "s3")
	t.Setenv("TOWERINV_SHAREFOLDER_S3_BUCKET", "tower-snapshots")
	t.Setenv("TOWERINV_SHAREFOLDER_S3_PREFIX", "prod")
	t.Setenv("TOWERINV_SHAREFOLDER_S3_REGION", "eu-west-1")
	t.Setenv("TOWERINV_SHAREFOLDER_S3_ENDPOINT", "http://minio.local:9000")
	t.Setenv("TOWERINV_SHAREFOLDER_S3_ACCESS_KEY", "AKIAEXAMPLE")
	t.Setenv("TOWERINV_SHAREFOLDER_S3_SECRET_KEY", "secret")
	t.Setenv("TOWERINV_SHAREFOLDER_S3_PATH_STYLE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != ModeOffice {
		t.Fatalf("mode = %q", cfg.Mode)
	}
	if cfg.HTTP.Addr != "127.0.0.1:9900" {
		t.Fatalf("addr = %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ShutdownTimeout != 3*time.Second {
		t.Fatalf("shutdown timeout = %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.DB.Path != "data/tower.db" {
		t.Fatalf("db path = %q", cfg.DB.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
	if cfg.Metrics.Prefix != "tracker" {
		t.Fatalf("metrics prefix = %q", cfg.Metrics.Prefix)
	}
	s3 := cfg.Sharefolder.S3
	if s3.Bucket != "tower-snapshots" || s3.Prefix != "prod" || s3.Region != "eu-west-1" {
		t.Fatalf("s3 = %+v", s3)
	}
	if s3.Endpoint != "http://minio.local:9000" || !s3.PathStyle {
		t.Fatalf("s3 endpoint = %+v", s3)
	}
	if s3.AccessKey != "AKIAEXAMPLE" || s3.SecretKey != "secret" {
		t.Fatalf("s3 credentials = %+v", s3)
	}
}

func TestLoadBadShutdownTimeoutFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOWERINV_SHUTDOWN_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown timeout = %v", cfg.HTTP.ShutdownTimeout)
	}
}

func TestValidateRejectsBadMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOWERINV_MODE", "kiosk")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "TOWERINV_MODE") {
		t.Fatalf("err = %v, want mode error", err)
	}
}

func TestValidateRejectsBadDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOWERINV_SHAREFOLDER_DRIVER", "ftp")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "TOWERINV_SHAREFOLDER_DRIVER") {
		t.Fatalf("err = %v, want driver error", err)
	}
}

func TestValidateS3RequiresBucket(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOWERINV_SHAREFOLDER_DRIVER", "s3")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "TOWERINV_SHAREFOLDER_S3_BUCKET") {
		t.Fatalf("err = %v, want bucket error", err)
	}
}

func TestSharePathFileRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sharepoint_config.txt")

	if path, err := LoadSharePath(file); err != nil || path != "" {
		t.Fatalf("missing file: path = %q, err = %v", path, err)
	}
	if err := SaveSharePath(file, "/mnt/share/tower"); err != nil {
		t.Fatalf("save: %v", err)
	}
	path, err := LoadSharePath(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if path != "/mnt/share/tower" {
		t.Fatalf("path = %q", path)
	}
}

func TestLoadSharePathTrimsAndTakesFirstLine(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sharepoint_config.txt")
	if err := os.WriteFile(file, []byte("  /mnt/share/tower  \nstale second line\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	path, err := LoadSharePath(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if path != "/mnt/share/tower" {
		t.Fatalf("path = %q", path)
	}
}

func TestSaveSharePathRejectsEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sharepoint_config.txt")
	if err := SaveSharePath(file, "   "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestResolveSharePathPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sharepoint_config.txt")

	cfg := &Config{Sharefolder: SharefolderConfig{Path: "/explicit", ConfigFile: file}}
	if path, err := cfg.ResolveSharePath(); err != nil || path != "/explicit" {
		t.Fatalf("explicit: path = %q, err = %v", path, err)
	}

	cfg.Sharefolder.Path = ""
	if err := SaveSharePath(file, "/persisted"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if path, err := cfg.ResolveSharePath(); err != nil || path != "/persisted" {
		t.Fatalf("persisted: path = %q, err = %v", path, err)
	}

	if err := os.Remove(file); err != nil {
		t.Fatalf("remove: %v", err)
	}
	path, err := cfg.ResolveSharePath()
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if filepath.Base(path) != DefaultShareDirName {
		t.Fatalf("fallback path = %q", path)
	}
}
