// Package fs implements the shared-folder contract on a local directory,
// typically one mirrored to other machines by a desktop sync client.
package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"towerinv/internal/sharefolder/core"
)

// Store implements core.Store on a local directory. Writes stream through a
// temp file in the target directory and rename into place, so a sync client
// watching the folder never observes a partially copied file.
type Store struct {
	root string
}

// New returns a directory-backed store rooted at root, creating the
// directory if needed. An empty root defaults to ./sharefolder.
func New(root string) (*Store, error) {
	if root == "" {
		root = "./sharefolder"
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create share root: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Driver() core.Driver { return core.DriverFilesystem }

// Root returns the directory backing the store.
func (s *Store) Root() string { return s.root }

func (s *Store) pathFor(name string) (string, error) {
	clean, err := core.CleanName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

func (s *Store) Put(ctx context.Context, name string, r io.Reader, size int64) (core.Info, error) {
	path, err := s.pathFor(name)
	if err != nil {
		return core.Info{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return core.Info{}, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".put-*")
	if err != nil {
		return core.Info{}, err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	h := sha256.New()
	written, err := io.Copy(io.MultiWriter(tmp, h), r)
	if err != nil {
		_ = tmp.Close()
		return core.Info{}, err
	}
	if size >= 0 && written != size {
		_ = tmp.Close()
		return core.Info{}, fmt.Errorf("short write: copied %d of %d bytes", written, size)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return core.Info{}, err
	}
	if err := tmp.Close(); err != nil {
		return core.Info{}, err
	}
	// Rename replaces any existing file under the same name: last writer
	// wins.
	if err := os.Rename(tmp.Name(), path); err != nil {
		return core.Info{}, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return core.Info{}, err
	}
	return core.Info{Name: name, Size: written, ETag: hex.EncodeToString(h.Sum(nil)), Modified: fi.ModTime().UTC()}, nil
}

func (s *Store) Get(ctx context.Context, name string) (io.ReadCloser, core.Info, error) {
	path, err := s.pathFor(name)
	if err != nil {
		return nil, core.Info{}, err
	}
	f, err := os.Open(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, core.Info{}, core.ErrNotExist
	}
	if err != nil {
		return nil, core.Info{}, err
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, core.Info{}, err
	}
	return f, core.Info{Name: name, Size: fi.Size(), Modified: fi.ModTime().UTC()}, nil
}

func (s *Store) Stat(ctx context.Context, name string) (core.Info, error) {
	path, err := s.pathFor(name)
	if err != nil {
		return core.Info{}, err
	}
	fi, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return core.Info{}, core.ErrNotExist
	}
	if err != nil {
		return core.Info{}, err
	}
	if fi.IsDir() {
		return core.Info{}, core.ErrNotExist
	}
	return core.Info{Name: name, Size: fi.Size(), Modified: fi.ModTime().UTC()}, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	path, err := s.pathFor(name)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	if _, err := core.CleanName(name); err != nil {
		return "", err
	}
	return "", core.ErrUnsupported
}
