// Package memory provides an in-memory shared folder for tests.
package memory

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"

	"towerinv/internal/sharefolder/core"
)

type entry struct {
	data     []byte
	etag     string
	modified time.Time
}

// Store implements core.Store backed by a map.
type Store struct {
	mu    sync.RWMutex
	files map[string]entry
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{files: map[string]entry{}}
}

func (s *Store) Driver() core.Driver { return core.DriverMemory }

func (s *Store) Put(ctx context.Context, name string, r io.Reader, size int64) (core.Info, error) {
	clean, err := core.CleanName(name)
	if err != nil {
		return core.Info{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Info{}, err
	}
	if size >= 0 && int64(len(data)) != size {
		return core.Info{}, fmt.Errorf("short write: copied %d of %d bytes", len(data), size)
	}
	sum := sha256.Sum256(data)
	e := entry{data: data, etag: hex.EncodeToString(sum[:]), modified: time.Now().UTC()}
	s.mu.Lock()
	s.files[clean] = e
	s.mu.Unlock()
	return infoFor(name, e), nil
}

func (s *Store) Get(ctx context.Context, name string) (io.ReadCloser, core.Info, error) {
	clean, err := core.CleanName(name)
	if err != nil {
		return nil, core.Info{}, err
	}
	s.mu.RLock()
	e, ok := s.files[clean]
	s.mu.RUnlock()
	if !ok {
		return nil, core.Info{}, core.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(e.data)), infoFor(name, e), nil
}

func (s *Store) Stat(ctx context.Context, name string) (core.Info, error) {
	clean, err := core.CleanName(name)
	if err != nil {
		return core.Info{}, err
	}
	s.mu.RLock()
	e, ok := s.files[clean]
	s.mu.RUnlock()
	if !ok {
		return core.Info{}, core.ErrNotExist
	}
	return infoFor(name, e), nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	clean, err := core.CleanName(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.files, clean)
	s.mu.Unlock()
	return nil
}

func (s *Store) SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	if _, err := core.CleanName(name); err != nil {
		return "", err
	}
	return "", core.ErrUnsupported
}

func infoFor(name string, e entry) core.Info {
	return core.Info{Name: name, Size: int64(len(e.data)), ETag: e.etag, Modified: e.modified}
}
