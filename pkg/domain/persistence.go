package domain

import "context"

// Store is the persistence contract implemented by the relational backend.
// Create operations assign identifiers and timestamps and return the stored
// record; implementations translate engine failures into the domain error
// taxonomy (ErrAlreadyExists, ErrIntegrity, ErrNotFound) rather than leaking
// driver errors.
type Store interface {
	CreateTechnician(ctx context.Context, t Technician) (Technician, error)
	GetTechnician(ctx context.Context, id int64) (Technician, error)
	ListTechnicians(ctx context.Context) ([]Technician, error)
	UpdateTechnician(ctx context.Context, t Technician) (Technician, error)
	DeleteTechnician(ctx context.Context, id int64) error

	CreateLocation(ctx context.Context, l Location) (Location, error)
	GetLocation(ctx context.Context, id int64) (Location, error)
	ListLocations(ctx context.Context) ([]Location, error)
	UpdateLocation(ctx context.Context, l Location) (Location, error)
	DeleteLocation(ctx context.Context, id int64) error

	CreateLocationDetail(ctx context.Context, d LocationDetail) (LocationDetail, error)
	GetLocationDetail(ctx context.Context, id int64) (LocationDetail, error)
	ListLocationDetails(ctx context.Context) ([]LocationDetail, error)
	UpdateLocationDetail(ctx context.Context, d LocationDetail) (LocationDetail, error)
	DeleteLocationDetail(ctx context.Context, id int64) error

	CreateInventoryItem(ctx context.Context, it InventoryItem) (InventoryItem, error)
	GetInventoryItem(ctx context.Context, id int64) (InventoryItem, error)
	ListInventoryItems(ctx context.Context) ([]InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, it InventoryItem) (InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, id int64) error

	// Service orders are immutable once created: no update or delete.
	CreateServiceOrder(ctx context.Context, o ServiceOrder) (ServiceOrder, error)
	GetServiceOrder(ctx context.Context, id int64) (ServiceOrder, error)
	GetServiceOrderByNumber(ctx context.Context, number string) (ServiceOrder, error)
	ListServiceOrders(ctx context.Context) ([]ServiceOrder, error)

	// AddTransaction writes the transaction row and applies the stock delta
	// to the referenced item in one atomic unit.
	AddTransaction(ctx context.Context, in TransactionInput) (Transaction, error)
	ListTransactions(ctx context.Context, f TransactionFilter) ([]TransactionRecord, error)
	TransactionSummary(ctx context.Context, f SummaryFilter) (Summary, error)

	Close() error
}
