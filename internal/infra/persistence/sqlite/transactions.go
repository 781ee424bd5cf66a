package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"towerinv/pkg/domain"
)

// AddTransaction appends a stock event and applies its stock delta to the
// referenced item inside one database transaction: both writes commit or
// neither does. Nothing guards against stock going negative.
func (s *Store) AddTransaction(ctx context.Context, in domain.TransactionInput) (tr domain.Transaction, retErr error) {
	if !in.Action.Valid() {
		return domain.Transaction{}, domain.ErrInvalid{
			Field:  "action type",
			Reason: "must be one of: Install, Remove, Repair",
		}
	}
	ts := s.nowFn().UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO transactions(item_id, technician_id, location_id, service_id,
			action_type, quantity, price, timestamp, service_address, service_apartment)
		 VALUES(?,?,?,?,?,?,?,?,?,?)`,
		in.ItemID, in.TechnicianID, in.LocationID, nullableID(in.ServiceOrderID),
		string(in.Action), in.Quantity, in.Price, formatTime(ts),
		in.ServiceAddress, in.ServiceApartment)
	if err != nil {
		retErr = translate(domain.EntityTransaction, "", "", err)
		return domain.Transaction{}, retErr
	}
	id, err := lastInsertID(res)
	if err != nil {
		retErr = err
		return domain.Transaction{}, retErr
	}

	if delta := in.Action.StockDelta(in.Quantity); delta != 0 {
		upd, err := tx.ExecContext(ctx,
			`UPDATE inventory_items SET stock = stock + ? WHERE id = ?`, delta, in.ItemID)
		if err != nil {
			retErr = fmt.Errorf("apply stock delta: %w", err)
			return domain.Transaction{}, retErr
		}
		n, err := upd.RowsAffected()
		if err != nil {
			retErr = fmt.Errorf("rows affected: %w", err)
			return domain.Transaction{}, retErr
		}
		if n == 0 {
			retErr = domain.NotFoundID(domain.EntityInventoryItem, in.ItemID)
			return domain.Transaction{}, retErr
		}
	}

	if err := tx.Commit(); err != nil {
		retErr = fmt.Errorf("commit: %w", err)
		return domain.Transaction{}, retErr
	}

	return domain.Transaction{
		ID:               id,
		ItemID:           in.ItemID,
		TechnicianID:     in.TechnicianID,
		LocationID:       in.LocationID,
		ServiceOrderID:   in.ServiceOrderID,
		Action:           in.Action,
		Quantity:         in.Quantity,
		Price:            in.Price,
		Timestamp:        ts,
		ServiceAddress:   in.ServiceAddress,
		ServiceApartment: in.ServiceApartment,
	}, nil
}

// ListTransactions returns denormalized transaction records newest first.
// Filter fields combine independently; the date range is inclusive on both
// ends.
func (s *Store) ListTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.TransactionRecord, error) {
	query := `SELECT tr.id, tr.item_id, tr.technician_id, tr.location_id, tr.service_id,
		tr.action_type, tr.quantity, tr.price, tr.timestamp,
		tr.service_address, tr.service_apartment,
		i.name, t.name, l.name,
		COALESCE(so.service_number, '` + domain.UnlinkedServiceNumber + `')
	FROM transactions tr
	JOIN inventory_items i ON i.id = tr.item_id
	JOIN technicians t ON t.id = tr.technician_id
	JOIN locations l ON l.id = tr.location_id
	LEFT JOIN service_orders so ON so.id = tr.service_id`

	var (
		conds []string
		args  []any
	)
	if f.TechnicianID != nil {
		conds = append(conds, "tr.technician_id = ?")
		args = append(args, *f.TechnicianID)
	}
	if f.LocationID != nil {
		conds = append(conds, "tr.location_id = ?")
		args = append(args, *f.LocationID)
	}
	if f.ServiceOrderID != nil {
		conds = append(conds, "tr.service_id = ?")
		args = append(args, *f.ServiceOrderID)
	}
	if f.Action != nil {
		conds = append(conds, "tr.action_type = ?")
		args = append(args, string(*f.Action))
	}
	if f.DateFrom != nil {
		conds = append(conds, "tr.timestamp >= ?")
		args = append(args, formatTime(*f.DateFrom))
	}
	if f.DateTo != nil {
		conds = append(conds, "tr.timestamp <= ?")
		args = append(args, formatTime(*f.DateTo))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY tr.timestamp DESC, tr.id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.TransactionRecord
	for rows.Next() {
		var (
			rec     domain.TransactionRecord
			service sql.NullInt64
			action  string
			raw     string
		)
		if err := rows.Scan(&rec.ID, &rec.ItemID, &rec.TechnicianID, &rec.LocationID, &service,
			&action, &rec.Quantity, &rec.Price, &raw,
			&rec.ServiceAddress, &rec.ServiceApartment,
			&rec.ItemName, &rec.TechnicianName, &rec.LocationName,
			&rec.ServiceNumber); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		rec.ServiceOrderID = idPtr(service)
		rec.Action = domain.ActionType(action)
		ts, err := parseTime(raw)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp: %w", err)
		}
		rec.Timestamp = ts
		out = append(out, rec)
	}
	return out, rows.Err()
}

// TransactionSummary aggregates committed transactions per action type.
// Every action type is reported; types with no matching rows carry zeros.
func (s *Store) TransactionSummary(ctx context.Context, f domain.SummaryFilter) (domain.Summary, error) {
	query := `SELECT action_type, COUNT(*), COALESCE(SUM(quantity), 0),
		COALESCE(SUM(price * quantity), 0)
	FROM transactions`

	var (
		conds []string
		args  []any
	)
	if f.TechnicianID != nil {
		conds = append(conds, "technician_id = ?")
		args = append(args, *f.TechnicianID)
	}
	if f.DateFrom != nil {
		conds = append(conds, "timestamp >= ?")
		args = append(args, formatTime(*f.DateFrom))
	}
	if f.DateTo != nil {
		conds = append(conds, "timestamp <= ?")
		args = append(args, formatTime(*f.DateTo))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " GROUP BY action_type"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("transaction summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byAction := map[domain.ActionType]domain.ActionSummary{}
	for rows.Next() {
		var (
			action string
			e      domain.ActionSummary
		)
		if err := rows.Scan(&action, &e.Count, &e.Quantity, &e.Value); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		e.Action = domain.ActionType(action)
		byAction[e.Action] = e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summary := make(domain.Summary, 0, len(domain.ActionTypes()))
	for _, a := range domain.ActionTypes() {
		e, ok := byAction[a]
		if !ok {
			e = domain.ActionSummary{Action: a}
		}
		summary = append(summary, e)
	}
	return summary, nil
}
