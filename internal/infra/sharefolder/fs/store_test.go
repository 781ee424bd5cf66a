package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"towerinv/internal/sharefolder/core"
)

func newTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store
}

func TestStorePutGetStatDelete(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)

	info, err := store.Put(ctx, "inventory_snapshot.db", bytes.NewReader([]byte("hello")), 5)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Name != "inventory_snapshot.db" || info.Size != 5 || info.ETag == "" {
		t.Fatalf("unexpected info %+v", info)
	}
	if info.Modified.IsZero() {
		t.Fatalf("expected modified time")
	}

	rc, got, err := store.Get(ctx, "inventory_snapshot.db")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := rc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if string(b) != "hello" || got.Size != 5 {
		t.Fatalf("unexpected content %q info %+v", b, got)
	}

	st, err := store.Stat(ctx, "inventory_snapshot.db")
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Size != 5 || st.Modified.IsZero() {
		t.Fatalf("unexpected stat %+v", st)
	}

	if err := store.Delete(ctx, "inventory_snapshot.db"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Stat(ctx, "inventory_snapshot.db"); !errors.Is(err, core.ErrNotExist) {
		t.Fatalf("expected ErrNotExist after delete, got %v", err)
	}
	if err := store.Delete(ctx, "inventory_snapshot.db"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestStorePutOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)
	if _, err := store.Put(ctx, "snap.db", bytes.NewReader([]byte("first")), 5); err != nil {
		t.Fatalf("first put: %v", err)
	}
	info, err := store.Put(ctx, "snap.db", bytes.NewReader([]byte("second!")), 7)
	if err != nil {
		t.Fatalf("second put: %v", err)
	}
	if info.Size != 7 {
		t.Fatalf("unexpected size %d", info.Size)
	}
	rc, _, err := store.Get(ctx, "snap.db")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(b) != "second!" {
		t.Fatalf("expected last write to win, got %q", b)
	}
	entries, err := os.ReadDir(store.Root())
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single file in the share, found %d", len(entries))
	}
}

func TestStorePutSizeMismatch(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)
	_, err := store.Put(ctx, "snap.db", strings.NewReader("abc"), 10)
	if err == nil || !strings.Contains(err.Error(), "short write") {
		t.Fatalf("expected short write error, got %v", err)
	}
	if _, err := store.Stat(ctx, "snap.db"); !errors.Is(err, core.ErrNotExist) {
		t.Fatalf("failed put should leave nothing behind, got %v", err)
	}
}

func TestStorePutUnknownSize(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)
	info, err := store.Put(ctx, "snap.db", strings.NewReader("abc"), -1)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Size != 3 {
		t.Fatalf("unexpected size %d", info.Size)
	}
}

func TestStoreNestedNames(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)
	if _, err := store.Put(ctx, "exports/transactions.csv", strings.NewReader("a,b"), 3); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Root(), "exports", "transactions.csv")); err != nil {
		t.Fatalf("expected nested file on disk: %v", err)
	}
}

func TestStoreRejectsBadNames(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)
	for _, name := range []string{"", "/abs.db", "../escape.db"} {
		if _, err := store.Put(ctx, name, strings.NewReader("x"), 1); err == nil {
			t.Fatalf("put %q: expected error", name)
		}
		if _, err := store.Stat(ctx, name); err == nil {
			t.Fatalf("stat %q: expected error", name)
		}
	}
}

func TestStoreMissing(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)
	if _, _, err := store.Get(ctx, "missing.db"); !errors.Is(err, core.ErrNotExist) {
		t.Fatalf("get: expected ErrNotExist, got %v", err)
	}
	if _, err := store.Stat(ctx, "missing.db"); !errors.Is(err, core.ErrNotExist) {
		t.Fatalf("stat: expected ErrNotExist, got %v", err)
	}
}

func TestStoreSignedURLUnsupported(t *testing.T) {
	store := newTempStore(t)
	if _, err := store.SignedURL(context.Background(), "snap.db", 0); !errors.Is(err, core.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestNewCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "share")
	store, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if store.Driver() != core.DriverFilesystem {
		t.Fatalf("unexpected driver %s", store.Driver())
	}
	if store.Root() != root {
		t.Fatalf("unexpected root %s", store.Root())
	}
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		t.Fatalf("expected root directory: %v", err)
	}
}
