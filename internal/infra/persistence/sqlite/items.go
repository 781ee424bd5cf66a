package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"towerinv/pkg/domain"
)

// CreateInventoryItem inserts a stocked item. Item names are not unique;
// stock may start at any value.
func (s *Store) CreateInventoryItem(ctx context.Context, it domain.InventoryItem) (domain.InventoryItem, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO inventory_items(name, description, unit_price, stock) VALUES(?,?,?,?)`,
		it.Name, it.Description, it.UnitPrice, it.Stock)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("create inventory item: %w", err)
	}
	id, err := lastInsertID(res)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	it.ID = id
	return it, nil
}

// GetInventoryItem fetches one item by id.
func (s *Store) GetInventoryItem(ctx context.Context, id int64) (domain.InventoryItem, error) {
	var it domain.InventoryItem
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, unit_price, stock FROM inventory_items WHERE id = ?`, id).
		Scan(&it.ID, &it.Name, &it.Description, &it.UnitPrice, &it.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.InventoryItem{}, domain.NotFoundID(domain.EntityInventoryItem, id)
	}
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("get inventory item: %w", err)
	}
	return it, nil
}

// ListInventoryItems returns all items ordered by name.
func (s *Store) ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, unit_price, stock FROM inventory_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []domain.InventoryItem
	for rows.Next() {
		var it domain.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.UnitPrice, &it.Stock); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// UpdateInventoryItem rewrites an item, including direct stock edits.
func (s *Store) UpdateInventoryItem(ctx context.Context, it domain.InventoryItem) (domain.InventoryItem, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE inventory_items SET name = ?, description = ?, unit_price = ?, stock = ? WHERE id = ?`,
		it.Name, it.Description, it.UnitPrice, it.Stock, it.ID)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("update inventory item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.InventoryItem{}, domain.NotFoundID(domain.EntityInventoryItem, it.ID)
	}
	return it, nil
}

// DeleteInventoryItem removes an item unless transactions still reference it.
func (s *Store) DeleteInventoryItem(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, domain.EntityInventoryItem, `DELETE FROM inventory_items WHERE id = ?`, id)
}
