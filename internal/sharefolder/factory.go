package sharefolder

import (
	"context"
	"fmt"

	fsstore "towerinv/internal/infra/sharefolder/fs"
	memorystore "towerinv/internal/infra/sharefolder/memory"
	s3store "towerinv/internal/infra/sharefolder/s3"
)

// S3Config re-exports the infra S3 configuration type.
type S3Config = s3store.Config

// Config selects and configures a shared-folder driver. Callers resolve it
// explicitly (from flags, env, or the share config file); this package never
// reads ambient state itself.
type Config struct {
	// Driver is one of fs, s3, memory. Empty selects the filesystem driver.
	Driver Driver
	// Path is the folder root when Driver is fs.
	Path string
	// S3 configures the bucket when Driver is s3.
	S3 S3Config
}

// Open constructs the Store described by cfg.
func Open(ctx context.Context, cfg Config) (Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverFilesystem
	}
	switch driver {
	case DriverFilesystem:
		return NewFilesystem(cfg.Path)
	case DriverS3:
		return NewS3(ctx, cfg.S3)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown sharefolder driver %q", driver)
	}
}

// NewFilesystem constructs a directory-backed Store rooted at the provided
// path. Returns Store to keep call sites on the interface.
func NewFilesystem(root string) (Store, error) {
	return fsstore.New(root)
}

// NewS3 constructs a bucket-backed Store from the provided configuration.
func NewS3(ctx context.Context, cfg S3Config) (Store, error) {
	return s3store.New(ctx, cfg)
}

// NewMemory returns an in-memory Store suitable for tests.
func NewMemory() Store { return memorystore.New() }
