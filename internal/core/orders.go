package core

import (
	"context"

	"go.uber.org/zap"

	"towerinv/internal/validate"
	"towerinv/pkg/domain"
)

// CreateServiceOrder validates and persists a new work ticket. Orders are
// immutable once created.
func (s *Service) CreateServiceOrder(ctx context.Context, o domain.ServiceOrder) (domain.ServiceOrder, error) {
	var created domain.ServiceOrder
	err := s.instrument(ctx, "create_service_order", func() error {
		number, err := validate.NotEmpty("service number", o.ServiceNumber)
		if err != nil {
			return err
		}
		o.ServiceNumber = number
		address, err := validate.NotEmpty("address", o.Address)
		if err != nil {
			return err
		}
		o.Address = address
		if o.TechnicianID != nil {
			if err := validate.ID("technician_id", *o.TechnicianID); err != nil {
				return err
			}
		}
		if o.LocationID != nil {
			if err := validate.ID("location_id", *o.LocationID); err != nil {
				return err
			}
		}
		created, err = s.store.CreateServiceOrder(ctx, o)
		return err
	})
	if err != nil {
		return domain.ServiceOrder{}, err
	}
	s.logger.Info("service order created",
		zap.Int64("id", created.ID),
		zap.String("service_number", created.ServiceNumber))
	return created, nil
}

// GetServiceOrder returns one order by id with denormalized names.
func (s *Service) GetServiceOrder(ctx context.Context, id int64) (domain.ServiceOrder, error) {
	return s.store.GetServiceOrder(ctx, id)
}

// ListServiceOrders returns all orders newest first.
func (s *Service) ListServiceOrders(ctx context.Context) ([]domain.ServiceOrder, error) {
	return s.store.ListServiceOrders(ctx)
}
