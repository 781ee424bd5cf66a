package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"towerinv/internal/validate"
	"towerinv/pkg/domain"
)

// RecordTransactionInput carries a stock event before service-order
// resolution. ServiceNumber is free text: when it matches an existing order
// the transaction links to it, otherwise the typed service address fields
// are kept verbatim on the transaction itself.
type RecordTransactionInput struct {
	ItemID           int64             `json:"item_id" validate:"required,gt=0"`
	TechnicianID     int64             `json:"technician_id" validate:"required,gt=0"`
	LocationID       int64             `json:"location_id" validate:"required,gt=0"`
	Action           domain.ActionType `json:"action" validate:"required,action"`
	Quantity         int64             `json:"quantity" validate:"gte=0"`
	Price            float64           `json:"price" validate:"gte=0"`
	ServiceNumber    string            `json:"service_number"`
	ServiceAddress   string            `json:"service_address"`
	ServiceApartment string            `json:"service_apartment"`
}

// RecordTransaction validates the event, resolves the free-text service
// number against existing orders, and writes the transaction together with
// its stock effect in one store call.
func (s *Service) RecordTransaction(ctx context.Context, in RecordTransactionInput) (domain.Transaction, error) {
	var recorded domain.Transaction
	err := s.instrument(ctx, "record_transaction", func() error {
		if err := validateTransactionInput(in); err != nil {
			return err
		}

		input := domain.TransactionInput{
			ItemID:           in.ItemID,
			TechnicianID:     in.TechnicianID,
			LocationID:       in.LocationID,
			Action:           in.Action,
			Quantity:         in.Quantity,
			Price:            in.Price,
			ServiceAddress:   strings.TrimSpace(in.ServiceAddress),
			ServiceApartment: strings.TrimSpace(in.ServiceApartment),
		}

		number := strings.TrimSpace(in.ServiceNumber)
		if number != "" {
			order, err := s.store.GetServiceOrderByNumber(ctx, number)
			switch {
			case err == nil:
				input.ServiceOrderID = &order.ID
			case domain.IsNotFound(err):
				// Unlinked: the typed address fields carry the destination.
				s.logger.Debug("service number unmatched, recording unlinked",
					zap.String("service_number", number))
			default:
				return fmt.Errorf("resolve service order: %w", err)
			}
		}

		var err error
		recorded, err = s.store.AddTransaction(ctx, input)
		return err
	})
	if err != nil {
		return domain.Transaction{}, err
	}
	s.logger.Info("transaction recorded",
		zap.Int64("id", recorded.ID),
		zap.String("action", string(recorded.Action)),
		zap.Int64("item_id", recorded.ItemID),
		zap.Int64("quantity", recorded.Quantity),
		zap.Bool("linked", recorded.ServiceOrderID != nil))
	return recorded, nil
}

// ListTransactions returns denormalized transaction rows matching the
// filter, newest first.
func (s *Service) ListTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.TransactionRecord, error) {
	return s.store.ListTransactions(ctx, f)
}

// TransactionSummary aggregates matching transactions per action type.
func (s *Service) TransactionSummary(ctx context.Context, f domain.SummaryFilter) (domain.Summary, error) {
	return s.store.TransactionSummary(ctx, f)
}

func validateTransactionInput(in RecordTransactionInput) error {
	if err := validate.ID("item_id", in.ItemID); err != nil {
		return err
	}
	if err := validate.ID("technician_id", in.TechnicianID); err != nil {
		return err
	}
	if err := validate.ID("location_id", in.LocationID); err != nil {
		return err
	}
	if !in.Action.Valid() {
		return domain.ErrInvalid{Field: "action type", Reason: "must be one of: Install, Remove, Repair"}
	}
	if err := validate.NonNegativeInt("quantity", in.Quantity); err != nil {
		return err
	}
	return validate.NonNegative("price", in.Price)
}
