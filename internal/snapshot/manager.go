// Package snapshot copies the working database to and from the shared
// folder. The whole file is the unit of synchronization: publish overwrites
// the shared copy, pull overwrites the local one, and the last writer wins.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"towerinv/internal/sharefolder"
	"towerinv/pkg/domain"
)

// Name is the well-known snapshot file name in the shared folder.
const Name = "inventory_snapshot.db"

// ErrNoSnapshot reports that the shared folder holds no snapshot yet.
// Office mode treats it as a warning, not a failure.
var ErrNoSnapshot = domain.ErrNotFound{Entity: domain.EntitySnapshot, Key: "in shared folder"}

// Manager publishes the working database to the shared folder and pulls the
// latest published copy back.
type Manager struct {
	workingPath string
	localPath   string
	share       sharefolder.Store
}

// NewManager returns a manager for the database at workingPath backed by
// share. The local snapshot copy lives next to the working file.
func NewManager(workingPath string, share sharefolder.Store) *Manager {
	return &Manager{
		workingPath: workingPath,
		localPath:   filepath.Join(filepath.Dir(workingPath), Name),
		share:       share,
	}
}

// WorkingPath returns the path of the working database.
func (m *Manager) WorkingPath() string { return m.workingPath }

// LocalPath returns the path of the local snapshot copy.
func (m *Manager) LocalPath() string { return m.localPath }

// Publish copies the working database to the local snapshot file, then
// uploads that copy to the shared folder, replacing whatever is there.
// There is no locking: concurrent publishers race and the last one wins.
func (m *Manager) Publish(ctx context.Context) (sharefolder.Info, error) {
	if _, err := os.Stat(m.workingPath); errors.Is(err, iofs.ErrNotExist) {
		return sharefolder.Info{}, domain.ErrNotFound{Entity: "working database", Key: m.workingPath}
	} else if err != nil {
		return sharefolder.Info{}, fmt.Errorf("stat working database: %w", err)
	}
	if err := copyFile(m.workingPath, m.localPath); err != nil {
		return sharefolder.Info{}, fmt.Errorf("copy working database: %w", err)
	}
	f, err := os.Open(m.localPath)
	if err != nil {
		return sharefolder.Info{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()
	fi, err := f.Stat()
	if err != nil {
		return sharefolder.Info{}, fmt.Errorf("stat snapshot: %w", err)
	}
	info, err := m.share.Put(ctx, Name, f, fi.Size())
	if err != nil {
		return sharefolder.Info{}, fmt.Errorf("upload snapshot: %w", err)
	}
	return info, nil
}

// Pull downloads the shared snapshot to target, defaulting to the local
// snapshot path. The file is written atomically so a reader never opens a
// partial copy. Returns the path written.
func (m *Manager) Pull(ctx context.Context, target string) (string, error) {
	if target == "" {
		target = m.localPath
	}
	rc, _, err := m.share.Get(ctx, Name)
	if errors.Is(err, sharefolder.ErrNotExist) {
		return "", ErrNoSnapshot
	}
	if err != nil {
		return "", fmt.Errorf("download snapshot: %w", err)
	}
	defer func() { _ = rc.Close() }()
	if err := writeAtomic(target, rc); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return target, nil
}

// Info describes the snapshot currently in the shared folder, or nil when
// none has been published. Absence is reported without an error.
func (m *Manager) Info(ctx context.Context) (*domain.SnapshotInfo, error) {
	info, err := m.share.Stat(ctx, Name)
	if errors.Is(err, sharefolder.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat shared snapshot: %w", err)
	}
	path := Name
	if r, ok := m.share.(interface{ Root() string }); ok {
		path = filepath.Join(r.Root(), Name)
	}
	return &domain.SnapshotInfo{Path: path, Size: info.Size, Modified: info.Modified}, nil
}

// SignedURL returns a time-limited download link for the shared snapshot on
// drivers that support one.
func (m *Manager) SignedURL(ctx context.Context, expiry time.Duration) (string, error) {
	return m.share.SignedURL(ctx, Name, expiry)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()
	return writeAtomic(dst, in)
}

func writeAtomic(path string, r io.Reader) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
