package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"towerinv/pkg/domain"
)

const orderColumns = `so.id, so.service_number, so.address, so.date_created,
	so.technician_id, so.location_id,
	COALESCE(t.name, ''), COALESCE(l.name, '')`

const orderJoins = `FROM service_orders so
	LEFT JOIN technicians t ON t.id = so.technician_id
	LEFT JOIN locations l ON l.id = so.location_id`

// CreateServiceOrder inserts a work ticket. The creation timestamp is
// assigned here; orders are immutable afterwards. Empty service numbers are
// stored as NULL so uniqueness binds only non-empty numbers.
func (s *Store) CreateServiceOrder(ctx context.Context, o domain.ServiceOrder) (domain.ServiceOrder, error) {
	o.CreatedAt = s.nowFn().UTC().Truncate(time.Second)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO service_orders(service_number, address, date_created, technician_id, location_id)
		 VALUES(?,?,?,?,?)`,
		nullableText(o.ServiceNumber), o.Address, formatTime(o.CreatedAt),
		nullableID(o.TechnicianID), nullableID(o.LocationID))
	if err != nil {
		return domain.ServiceOrder{}, translate(domain.EntityServiceOrder, o.ServiceNumber, "", err)
	}
	id, err := lastInsertID(res)
	if err != nil {
		return domain.ServiceOrder{}, err
	}
	o.ID = id
	return s.GetServiceOrder(ctx, id)
}

// GetServiceOrder fetches one order by id with denormalized names.
func (s *Store) GetServiceOrder(ctx context.Context, id int64) (domain.ServiceOrder, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` `+orderJoins+` WHERE so.id = ?`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ServiceOrder{}, domain.NotFoundID(domain.EntityServiceOrder, id)
	}
	if err != nil {
		return domain.ServiceOrder{}, fmt.Errorf("get service order: %w", err)
	}
	return o, nil
}

// GetServiceOrderByNumber fetches one order by its unique service number.
// Callers use the not-found error to decide whether a free-text number links
// a transaction or leaves it unlinked.
func (s *Store) GetServiceOrderByNumber(ctx context.Context, number string) (domain.ServiceOrder, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` `+orderJoins+` WHERE so.service_number = ?`, number)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ServiceOrder{}, domain.ErrNotFound{Entity: domain.EntityServiceOrder, Key: number}
	}
	if err != nil {
		return domain.ServiceOrder{}, fmt.Errorf("get service order by number: %w", err)
	}
	return o, nil
}

// ListServiceOrders returns all orders newest first.
func (s *Store) ListServiceOrders(ctx context.Context) ([]domain.ServiceOrder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+orderColumns+` `+orderJoins+` ORDER BY so.date_created DESC, so.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []domain.ServiceOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(r rowScanner) (domain.ServiceOrder, error) {
	var (
		o      domain.ServiceOrder
		number sql.NullString
		raw    string
		tech   sql.NullInt64
		loc    sql.NullInt64
	)
	if err := r.Scan(&o.ID, &number, &o.Address, &raw, &tech, &loc,
		&o.TechnicianName, &o.LocationName); err != nil {
		return domain.ServiceOrder{}, err
	}
	o.ServiceNumber = number.String
	o.TechnicianID = idPtr(tech)
	o.LocationID = idPtr(loc)
	ts, err := parseTime(raw)
	if err != nil {
		return domain.ServiceOrder{}, fmt.Errorf("parse date_created: %w", err)
	}
	o.CreatedAt = ts
	return o, nil
}
