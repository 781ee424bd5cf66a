package core

import (
	"context"

	"go.uber.org/zap"

	"towerinv/pkg/domain"
)

// ExportTransactions writes the transactions matching the filter to a
// timestamped CSV file and returns its path.
func (s *Service) ExportTransactions(ctx context.Context, f domain.TransactionFilter) (string, error) {
	var (
		path string
		rows int
	)
	err := s.instrument(ctx, "export_transactions", func() error {
		records, err := s.store.ListTransactions(ctx, f)
		if err != nil {
			return err
		}
		rows = len(records)
		path, err = s.exports.Transactions(records)
		return err
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("transactions exported", zap.String("path", path), zap.Int("rows", rows))
	return path, nil
}

// ExportInventory writes the current item list to a timestamped CSV file
// and returns its path.
func (s *Service) ExportInventory(ctx context.Context) (string, error) {
	var (
		path string
		rows int
	)
	err := s.instrument(ctx, "export_inventory", func() error {
		items, err := s.store.ListInventoryItems(ctx)
		if err != nil {
			return err
		}
		rows = len(items)
		path, err = s.exports.Inventory(items)
		return err
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("inventory exported", zap.String("path", path), zap.Int("rows", rows))
	return path, nil
}

// ExportServiceOrders writes all orders to a timestamped CSV file and
// returns its path.
func (s *Service) ExportServiceOrders(ctx context.Context) (string, error) {
	var (
		path string
		rows int
	)
	err := s.instrument(ctx, "export_service_orders", func() error {
		orders, err := s.store.ListServiceOrders(ctx)
		if err != nil {
			return err
		}
		rows = len(orders)
		path, err = s.exports.ServiceOrders(orders)
		return err
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("service orders exported", zap.String("path", path), zap.Int("rows", rows))
	return path, nil
}
