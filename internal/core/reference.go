package core

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"towerinv/internal/validate"
	"towerinv/pkg/domain"
)

// CreateTechnician validates and persists a new technician.
func (s *Service) CreateTechnician(ctx context.Context, t domain.Technician) (domain.Technician, error) {
	var created domain.Technician
	err := s.instrument(ctx, "create_technician", func() error {
		name, err := validate.NotEmpty("name", t.Name)
		if err != nil {
			return err
		}
		t.Name = name
		created, err = s.store.CreateTechnician(ctx, t)
		return err
	})
	if err != nil {
		return domain.Technician{}, err
	}
	s.logger.Info("technician created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// GetTechnician returns one technician by id.
func (s *Service) GetTechnician(ctx context.Context, id int64) (domain.Technician, error) {
	return s.store.GetTechnician(ctx, id)
}

// ListTechnicians returns all technicians in name order.
func (s *Service) ListTechnicians(ctx context.Context) ([]domain.Technician, error) {
	return s.store.ListTechnicians(ctx)
}

// UpdateTechnician validates and renames an existing technician.
func (s *Service) UpdateTechnician(ctx context.Context, t domain.Technician) (domain.Technician, error) {
	var updated domain.Technician
	err := s.instrument(ctx, "update_technician", func() error {
		if err := validate.ID("id", t.ID); err != nil {
			return err
		}
		name, err := validate.NotEmpty("name", t.Name)
		if err != nil {
			return err
		}
		t.Name = name
		updated, err = s.store.UpdateTechnician(ctx, t)
		return err
	})
	if err != nil {
		return domain.Technician{}, err
	}
	s.logger.Info("technician updated", zap.Int64("id", updated.ID), zap.String("name", updated.Name))
	return updated, nil
}

// DeleteTechnician removes a technician that no other record references.
func (s *Service) DeleteTechnician(ctx context.Context, id int64) error {
	err := s.instrument(ctx, "delete_technician", func() error {
		if err := validate.ID("id", id); err != nil {
			return err
		}
		return s.store.DeleteTechnician(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("technician deleted", zap.Int64("id", id))
	return nil
}

// CreateLocation validates and persists a new inventory location.
func (s *Service) CreateLocation(ctx context.Context, l domain.Location) (domain.Location, error) {
	var created domain.Location
	err := s.instrument(ctx, "create_location", func() error {
		if err := cleanLocation(&l); err != nil {
			return err
		}
		var err error
		created, err = s.store.CreateLocation(ctx, l)
		return err
	})
	if err != nil {
		return domain.Location{}, err
	}
	s.logger.Info("location created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// GetLocation returns one location by id.
func (s *Service) GetLocation(ctx context.Context, id int64) (domain.Location, error) {
	return s.store.GetLocation(ctx, id)
}

// ListLocations returns all locations in name order.
func (s *Service) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.store.ListLocations(ctx)
}

// UpdateLocation validates and rewrites an existing location.
func (s *Service) UpdateLocation(ctx context.Context, l domain.Location) (domain.Location, error) {
	var updated domain.Location
	err := s.instrument(ctx, "update_location", func() error {
		if err := validate.ID("id", l.ID); err != nil {
			return err
		}
		if err := cleanLocation(&l); err != nil {
			return err
		}
		var err error
		updated, err = s.store.UpdateLocation(ctx, l)
		return err
	})
	if err != nil {
		return domain.Location{}, err
	}
	s.logger.Info("location updated", zap.Int64("id", updated.ID), zap.String("name", updated.Name))
	return updated, nil
}

// DeleteLocation removes a location that no other record references.
func (s *Service) DeleteLocation(ctx context.Context, id int64) error {
	err := s.instrument(ctx, "delete_location", func() error {
		if err := validate.ID("id", id); err != nil {
			return err
		}
		return s.store.DeleteLocation(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("location deleted", zap.Int64("id", id))
	return nil
}

// CreateLocationDetail validates and persists a new service address.
func (s *Service) CreateLocationDetail(ctx context.Context, d domain.LocationDetail) (domain.LocationDetail, error) {
	var created domain.LocationDetail
	err := s.instrument(ctx, "create_location_detail", func() error {
		if err := cleanLocationDetail(&d); err != nil {
			return err
		}
		var err error
		created, err = s.store.CreateLocationDetail(ctx, d)
		return err
	})
	if err != nil {
		return domain.LocationDetail{}, err
	}
	s.logger.Info("location detail created", zap.Int64("id", created.ID), zap.String("address", created.Address))
	return created, nil
}

// GetLocationDetail returns one service address by id.
func (s *Service) GetLocationDetail(ctx context.Context, id int64) (domain.LocationDetail, error) {
	return s.store.GetLocationDetail(ctx, id)
}

// ListLocationDetails returns all service addresses in address order.
func (s *Service) ListLocationDetails(ctx context.Context) ([]domain.LocationDetail, error) {
	return s.store.ListLocationDetails(ctx)
}

// UpdateLocationDetail validates and rewrites an existing service address.
func (s *Service) UpdateLocationDetail(ctx context.Context, d domain.LocationDetail) (domain.LocationDetail, error) {
	var updated domain.LocationDetail
	err := s.instrument(ctx, "update_location_detail", func() error {
		if err := validate.ID("id", d.ID); err != nil {
			return err
		}
		if err := cleanLocationDetail(&d); err != nil {
			return err
		}
		var err error
		updated, err = s.store.UpdateLocationDetail(ctx, d)
		return err
	})
	if err != nil {
		return domain.LocationDetail{}, err
	}
	s.logger.Info("location detail updated", zap.Int64("id", updated.ID), zap.String("address", updated.Address))
	return updated, nil
}

// DeleteLocationDetail removes a service address.
func (s *Service) DeleteLocationDetail(ctx context.Context, id int64) error {
	err := s.instrument(ctx, "delete_location_detail", func() error {
		if err := validate.ID("id", id); err != nil {
			return err
		}
		return s.store.DeleteLocationDetail(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("location detail deleted", zap.Int64("id", id))
	return nil
}

// CreateInventoryItem validates and persists a new stocked item.
func (s *Service) CreateInventoryItem(ctx context.Context, it domain.InventoryItem) (domain.InventoryItem, error) {
	var created domain.InventoryItem
	err := s.instrument(ctx, "create_item", func() error {
		if err := cleanItem(&it); err != nil {
			return err
		}
		var err error
		created, err = s.store.CreateInventoryItem(ctx, it)
		return err
	})
	if err != nil {
		return domain.InventoryItem{}, err
	}
	s.logger.Info("item created", zap.Int64("id", created.ID), zap.String("name", created.Name), zap.Int64("stock", created.Stock))
	return created, nil
}

// GetInventoryItem returns one item by id.
func (s *Service) GetInventoryItem(ctx context.Context, id int64) (domain.InventoryItem, error) {
	return s.store.GetInventoryItem(ctx, id)
}

// ListInventoryItems returns all items in name order.
func (s *Service) ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.store.ListInventoryItems(ctx)
}

// UpdateInventoryItem validates and rewrites an existing item, including its
// stock level.
func (s *Service) UpdateInventoryItem(ctx context.Context, it domain.InventoryItem) (domain.InventoryItem, error) {
	var updated domain.InventoryItem
	err := s.instrument(ctx, "update_item", func() error {
		if err := validate.ID("id", it.ID); err != nil {
			return err
		}
		if err := cleanItem(&it); err != nil {
			return err
		}
		var err error
		updated, err = s.store.UpdateInventoryItem(ctx, it)
		return err
	})
	if err != nil {
		return domain.InventoryItem{}, err
	}
	s.logger.Info("item updated", zap.Int64("id", updated.ID), zap.String("name", updated.Name), zap.Int64("stock", updated.Stock))
	return updated, nil
}

// DeleteInventoryItem removes an item that no transaction references.
func (s *Service) DeleteInventoryItem(ctx context.Context, id int64) error {
	err := s.instrument(ctx, "delete_item", func() error {
		if err := validate.ID("id", id); err != nil {
			return err
		}
		return s.store.DeleteInventoryItem(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("item deleted", zap.Int64("id", id))
	return nil
}

// cleanLocation trims free-text fields and requires a name.
func cleanLocation(l *domain.Location) error {
	name, err := validate.NotEmpty("name", l.Name)
	if err != nil {
		return err
	}
	l.Name = name
	l.Address = strings.TrimSpace(l.Address)
	l.Apartment = strings.TrimSpace(l.Apartment)
	return nil
}

// cleanLocationDetail trims free-text fields and requires an address.
func cleanLocationDetail(d *domain.LocationDetail) error {
	address, err := validate.NotEmpty("address", d.Address)
	if err != nil {
		return err
	}
	d.Address = address
	d.Apartment = strings.TrimSpace(d.Apartment)
	return nil
}

// cleanItem trims free-text fields and rejects negative price and stock.
// Stock may still go negative later through recorded installs.
func cleanItem(it *domain.InventoryItem) error {
	name, err := validate.NotEmpty("name", it.Name)
	if err != nil {
		return err
	}
	it.Name = name
	it.Description = strings.TrimSpace(it.Description)
	if err := validate.NonNegative("unit_price", it.UnitPrice); err != nil {
		return err
	}
	return validate.NonNegativeInt("stock", it.Stock)
}
