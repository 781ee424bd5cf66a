// Package sharefolder re-exports the shared-folder abstractions for stable
// imports and owns driver selection. The snapshot manager publishes to and
// pulls from a Store without knowing which backend sits underneath.
package sharefolder

import (
	"towerinv/internal/sharefolder/core"
)

type (
	// Driver identifies a shared-folder backend driver.
	Driver = core.Driver
	// Info describes stored file metadata.
	Info = core.Info
	// Store is the interface for shared-folder backends.
	Store = core.Store
)

const (
	// DriverFilesystem is the local directory driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory test driver.
	DriverMemory = core.DriverMemory
)

// ErrNotExist indicates the named file is absent from the shared folder.
var ErrNotExist = core.ErrNotExist

// ErrUnsupported indicates an operation isn't supported by a driver.
var ErrUnsupported = core.ErrUnsupported
