// Package sqlite implements the domain persistence contract on a single
// SQLite database file. The file is the unit of snapshot synchronization, so
// the store keeps the default rollback journal (no WAL side files) and caps
// the pool at one connection.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"towerinv/pkg/domain"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// compile-time contract check
var _ domain.Store = (*Store)(nil)

// Store is the SQLite-backed relational store.
type Store struct {
	db    *sql.DB
	path  string
	nowFn func() time.Time
}

// Open creates or opens the database file at path, applying the schema and
// enabling foreign-key enforcement on every connection.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "inventory.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Single writer, single reader: the tracker is a synchronous
	// single-process application and the snapshot copy wants a quiesced file.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, path: path, nowFn: time.Now}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }

// timeLayout is fixed-width UTC so lexical order of stored text equals
// chronological order.
const timeLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// translate maps engine constraint failures onto the domain taxonomy.
// value names the conflicting input for uniqueness violations; key names the
// row for integrity violations.
func translate(entity domain.EntityType, value, key string, err error) error {
	if err == nil {
		return nil
	}
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return domain.ErrAlreadyExists{Entity: entity, Value: value}
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_TRIGGER:
			return integrityErr(entity, key)
		}
	}
	// Fallback for drivers reporting only the primary code in the message.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return domain.ErrAlreadyExists{Entity: entity, Value: value}
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return integrityErr(entity, key)
	}
	return err
}

func integrityErr(entity domain.EntityType, key string) error {
	if key == "" {
		return domain.ErrIntegrity{Entity: entity, Reason: "references a missing row"}
	}
	return domain.ErrIntegrity{Entity: entity, Key: key, Reason: "is referenced by existing records"}
}

// deleteRow runs a single-row delete and maps the outcome: zero rows is
// not-found, foreign-key failure is the integrity error.
func (s *Store) deleteRow(ctx context.Context, entity domain.EntityType, query string, id int64) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return translate(entity, "", fmt.Sprintf("%d", id), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.NotFoundID(entity, id)
	}
	return nil
}

func lastInsertID(res sql.Result) (int64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// nullableID converts an optional reference for storage.
func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func idPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// nullableText stores empty strings as NULL, used for service numbers so the
// UNIQUE constraint binds only non-empty values.
func nullableText(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
