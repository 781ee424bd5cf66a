// Package core defines the shared-folder contract implemented by the infra
// drivers. Call sites should depend on the sharefolder facade package
// instead of importing this one directly.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Driver identifies a shared-folder backend driver.
type Driver string

const (
	// DriverFilesystem is a plain directory, typically one kept in sync by a
	// desktop sync client.
	DriverFilesystem Driver = "fs"
	// DriverS3 is an S3-compatible bucket.
	DriverS3 Driver = "s3"
	// DriverMemory is the in-memory test driver.
	DriverMemory Driver = "memory"
)

// Info describes a file stored in the shared folder. ETag identifies the
// content when the driver can compute it cheaply; it may be empty.
type Info struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	ETag     string    `json:"etag,omitempty"`
	Modified time.Time `json:"modified"`
}

// ErrNotExist indicates the named file is absent from the shared folder.
var ErrNotExist = errors.New("sharefolder: file does not exist")

// ErrUnsupported indicates an operation isn't supported by a driver.
var ErrUnsupported = errors.New("sharefolder: unsupported operation")

// Store is the interface shared-folder backends implement.
//
// Put overwrites: the folder keeps at most one copy of each name and the
// last writer wins. size is the expected byte count of r; drivers use it to
// verify the copy or to size the upload. Pass a negative size when unknown.
type Store interface {
	Driver() Driver
	Put(ctx context.Context, name string, r io.Reader, size int64) (Info, error)
	Get(ctx context.Context, name string) (io.ReadCloser, Info, error)
	Stat(ctx context.Context, name string) (Info, error)
	// Delete removes name from the folder. Deleting an absent name is not an
	// error.
	Delete(ctx context.Context, name string) error
	// SignedURL returns a time-limited download link for name. Drivers
	// without link support return ErrUnsupported.
	SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error)
}

// CleanName validates name and normalizes separators. Names must be relative
// and must not escape the folder root.
func CleanName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("empty name")
	}
	if strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("invalid absolute name %q", name)
	}
	clean := filepath.ToSlash(filepath.Clean(name))
	if clean == ".." || strings.HasPrefix(clean, "../") || strings.Contains(clean, "/../") {
		return "", fmt.Errorf("invalid name %q escapes the folder", name)
	}
	return clean, nil
}
