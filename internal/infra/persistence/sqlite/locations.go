package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"towerinv/pkg/domain"
)

// CreateLocation inserts an inventory-holding site; duplicate names surface
// as the domain already-exists error.
func (s *Store) CreateLocation(ctx context.Context, l domain.Location) (domain.Location, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO locations(name, address, apartment_number) VALUES(?,?,?)`,
		l.Name, l.Address, l.Apartment)
	if err != nil {
		return domain.Location{}, translate(domain.EntityLocation, l.Name, "", err)
	}
	id, err := lastInsertID(res)
	if err != nil {
		return domain.Location{}, err
	}
	l.ID = id
	return l, nil
}

// GetLocation fetches one location by id.
func (s *Store) GetLocation(ctx context.Context, id int64) (domain.Location, error) {
	var l domain.Location
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, address, apartment_number FROM locations WHERE id = ?`, id).
		Scan(&l.ID, &l.Name, &l.Address, &l.Apartment)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, domain.NotFoundID(domain.EntityLocation, id)
	}
	if err != nil {
		return domain.Location{}, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// ListLocations returns all locations ordered by name.
func (s *Store) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, address, apartment_number FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Apartment); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdateLocation rewrites a location's fields.
func (s *Store) UpdateLocation(ctx context.Context, l domain.Location) (domain.Location, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE locations SET name = ?, address = ?, apartment_number = ? WHERE id = ?`,
		l.Name, l.Address, l.Apartment, l.ID)
	if err != nil {
		return domain.Location{}, translate(domain.EntityLocation, l.Name, "", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Location{}, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.Location{}, domain.NotFoundID(domain.EntityLocation, l.ID)
	}
	return l, nil
}

// DeleteLocation removes a location unless rows still reference it.
func (s *Store) DeleteLocation(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, domain.EntityLocation, `DELETE FROM locations WHERE id = ?`, id)
}

// CreateLocationDetail inserts a service address.
func (s *Store) CreateLocationDetail(ctx context.Context, d domain.LocationDetail) (domain.LocationDetail, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO location_details(address, apartment_number) VALUES(?,?)`,
		d.Address, d.Apartment)
	if err != nil {
		return domain.LocationDetail{}, fmt.Errorf("create location detail: %w", err)
	}
	id, err := lastInsertID(res)
	if err != nil {
		return domain.LocationDetail{}, err
	}
	d.ID = id
	return d, nil
}

// GetLocationDetail fetches one service address by id.
func (s *Store) GetLocationDetail(ctx context.Context, id int64) (domain.LocationDetail, error) {
	var d domain.LocationDetail
	err := s.db.QueryRowContext(ctx,
		`SELECT id, address, apartment_number FROM location_details WHERE id = ?`, id).
		Scan(&d.ID, &d.Address, &d.Apartment)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.LocationDetail{}, domain.NotFoundID(domain.EntityLocationDetail, id)
	}
	if err != nil {
		return domain.LocationDetail{}, fmt.Errorf("get location detail: %w", err)
	}
	return d, nil
}

// ListLocationDetails returns all service addresses ordered by address.
func (s *Store) ListLocationDetails(ctx context.Context) ([]domain.LocationDetail, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, address, apartment_number FROM location_details ORDER BY address`)
	if err != nil {
		return nil, fmt.Errorf("list location details: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []domain.LocationDetail
	for rows.Next() {
		var d domain.LocationDetail
		if err := rows.Scan(&d.ID, &d.Address, &d.Apartment); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateLocationDetail rewrites a service address.
func (s *Store) UpdateLocationDetail(ctx context.Context, d domain.LocationDetail) (domain.LocationDetail, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE location_details SET address = ?, apartment_number = ? WHERE id = ?`,
		d.Address, d.Apartment, d.ID)
	if err != nil {
		return domain.LocationDetail{}, fmt.Errorf("update location detail: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.LocationDetail{}, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.LocationDetail{}, domain.NotFoundID(domain.EntityLocationDetail, d.ID)
	}
	return d, nil
}

// DeleteLocationDetail removes a service address.
func (s *Store) DeleteLocationDetail(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, domain.EntityLocationDetail, `DELETE FROM location_details WHERE id = ?`, id)
}
