// Package config resolves the tracker's runtime configuration from the
// environment and the persisted share-path file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Mode selects the served surface: maintenance is read-write, office is
// read-only reporting over the pulled snapshot.
type Mode string

const (
	ModeMaintenance Mode = "maintenance"
	ModeOffice      Mode = "office"
)

// Defaults for the file-based surfaces. The share file name and folder
// match what operators already have on disk.
const (
	DefaultDBPath        = "inventory.db"
	DefaultExportDir     = "exports"
	DefaultShareFileName = "sharepoint_config.txt"
	DefaultShareDirName  = "sharepoint_sync"
)

// Config represents the full application configuration surface.
type Config struct {
	Mode        Mode
	HTTP        HTTPConfig
	DB          DBConfig
	Export      ExportConfig
	Log         LogConfig
	Metrics     MetricsConfig
	Sharefolder SharefolderConfig
}

// HTTPConfig holds server related options.
type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// DBConfig locates the working database file.
type DBConfig struct {
	Path string
}

// ExportConfig locates the CSV export directory.
type ExportConfig struct {
	Dir string
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string
}

// MetricsConfig holds Prometheus options.
type MetricsConfig struct {
	Prefix string
}

// SharefolderConfig selects the snapshot transport.
type SharefolderConfig struct {
	Driver     string
	Path       string
	ConfigFile string
	S3         S3Config
}

// S3Config carries the bucket settings for the s3 driver.
type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PathStyle bool
}

// Load reads .env when present, then the TOWERINV_* environment variables,
// and validates the result.
func Load() (*Config, error) {
	// Missing .env files are acceptable when configuration comes from the
	// environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Mode: Mode(getEnv("TOWERINV_MODE", string(ModeMaintenance))),
		HTTP: HTTPConfig{
			Addr:            getEnv("TOWERINV_HTTP_ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("TOWERINV_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		DB:      DBConfig{Path: getEnv("TOWERINV_DB_PATH", DefaultDBPath)},
		Export:  ExportConfig{Dir: getEnv("TOWERINV_EXPORT_DIR", DefaultExportDir)},
		Log:     LogConfig{Level: getEnv("TOWERINV_LOG_LEVEL", "info")},
		Metrics: MetricsConfig{Prefix: getEnv("TOWERINV_METRICS_PREFIX", "towerinv")},
		Sharefolder: SharefolderConfig{
			Driver:     getEnv("TOWERINV_SHAREFOLDER_DRIVER", "fs"),
			Path:       os.Getenv("TOWERINV_SHAREFOLDER_PATH"),
			ConfigFile: getEnv("TOWERINV_CONFIG_FILE", DefaultShareFileName),
			S3: S3Config{
				Bucket:    os.Getenv("TOWERINV_SHAREFOLDER_S3_BUCKET"),
				Prefix:    os.Getenv("TOWERINV_SHAREFOLDER_S3_PREFIX"),
				Region:    os.Getenv("TOWERINV_SHAREFOLDER_S3_REGION"),
				Endpoint:  os.Getenv("TOWERINV_SHAREFOLDER_S3_ENDPOINT"),
				AccessKey: os.Getenv("TOWERINV_SHAREFOLDER_S3_ACCESS_KEY"),
				SecretKey: os.Getenv("TOWERINV_SHAREFOLDER_S3_SECRET_KEY"),
				PathStyle: getEnvBool("TOWERINV_SHAREFOLDER_S3_PATH_STYLE", false),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the mode and sharefolder settings are usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch c.Mode {
	case ModeMaintenance, ModeOffice:
	default:
		return fmt.Errorf("TOWERINV_MODE must be maintenance or office, got %q", c.Mode)
	}
	switch c.Sharefolder.Driver {
	case "fs", "memory":
	case "s3":
		if c.Sharefolder.S3.Bucket == "" {
			return errors.New("TOWERINV_SHAREFOLDER_S3_BUCKET must be provided for the s3 driver")
		}
	default:
		return fmt.Errorf("TOWERINV_SHAREFOLDER_DRIVER must be fs, s3 or memory, got %q", c.Sharefolder.Driver)
	}
	if c.DB.Path == "" {
		return errors.New("TOWERINV_DB_PATH must not be empty")
	}
	return nil
}

// ResolveSharePath returns the fs-driver folder: the explicit environment
// path when set, else the persisted path from the share config file, else
// the sharepoint_sync folder in the user's home directory.
func (c *Config) ResolveSharePath() (string, error) {
	if c.Sharefolder.Path != "" {
		return c.Sharefolder.Path, nil
	}
	path, err := LoadSharePath(c.Sharefolder.ConfigFile)
	if err != nil {
		return "", err
	}
	if path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, DefaultShareDirName), nil
}

// LoadSharePath reads the persisted share path, one line of text. A missing
// file is not an error: it reports an empty path.
func LoadSharePath(file string) (string, error) {
	b, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read share config: %w", err)
	}
	line, _, _ := strings.Cut(string(b), "\n")
	return strings.TrimSpace(line), nil
}

// SaveSharePath persists the confirmed share path so the next start reuses
// it.
func SaveSharePath(file, path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("share path must not be empty")
	}
	if err := os.WriteFile(file, []byte(path+"\n"), 0o644); err != nil {
		return fmt.Errorf("write share config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return strings.EqualFold(value, "true") || value == "1"
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
