package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"towerinv/pkg/domain"
)

func newTempStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "inventory.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestOpenDefaultsAndAccessors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "inventory.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = st.Close() }()
	if st.Path() != path {
		t.Fatalf("expected path %s got %s", path, st.Path())
	}
	if st.DB() == nil {
		t.Fatalf("expected db handle")
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	if _, err := st.CreateTechnician(ctx, domain.Technician{Name: "Ana"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	st2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = st2.Close() }()
	techs, err := st2.ListTechnicians(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(techs) != 1 || techs[0].Name != "Ana" {
		t.Fatalf("unexpected technicians after reopen: %+v", techs)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	st := newTempStore(t)
	var enabled int64
	if err := st.DB().QueryRow(`PRAGMA foreign_keys`).Scan(&enabled); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("expected foreign_keys pragma on, got %d", enabled)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	raw := formatTime(mustParse(t, "2026-03-01T10:30:00Z"))
	if raw != "2026-03-01T10:30:00Z" {
		t.Fatalf("unexpected format: %s", raw)
	}
	ts, err := parseTime(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if formatTime(ts) != raw {
		t.Fatalf("round trip mismatch: %s", formatTime(ts))
	}
}
