package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"towerinv/pkg/domain"
)

// CreateTechnician inserts a technician; duplicate names surface as the
// domain already-exists error.
func (s *Store) CreateTechnician(ctx context.Context, t domain.Technician) (domain.Technician, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO technicians(name) VALUES(?)`, t.Name)
	if err != nil {
		return domain.Technician{}, translate(domain.EntityTechnician, t.Name, "", err)
	}
	id, err := lastInsertID(res)
	if err != nil {
		return domain.Technician{}, err
	}
	t.ID = id
	return t, nil
}

// GetTechnician fetches one technician by id.
func (s *Store) GetTechnician(ctx context.Context, id int64) (domain.Technician, error) {
	var t domain.Technician
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM technicians WHERE id = ?`, id).
		Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Technician{}, domain.NotFoundID(domain.EntityTechnician, id)
	}
	if err != nil {
		return domain.Technician{}, fmt.Errorf("get technician: %w", err)
	}
	return t, nil
}

// ListTechnicians returns all technicians ordered by name.
func (s *Store) ListTechnicians(ctx context.Context) ([]domain.Technician, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM technicians ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []domain.Technician
	for rows.Next() {
		var t domain.Technician
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateTechnician renames a technician.
func (s *Store) UpdateTechnician(ctx context.Context, t domain.Technician) (domain.Technician, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE technicians SET name = ? WHERE id = ?`, t.Name, t.ID)
	if err != nil {
		return domain.Technician{}, translate(domain.EntityTechnician, t.Name, "", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Technician{}, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.Technician{}, domain.NotFoundID(domain.EntityTechnician, t.ID)
	}
	return t, nil
}

// DeleteTechnician removes a technician; deletes blocked by referencing
// orders or transactions surface as the integrity error.
func (s *Store) DeleteTechnician(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, domain.EntityTechnician, `DELETE FROM technicians WHERE id = ?`, id)
}
