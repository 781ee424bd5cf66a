// Package domain defines the persistent entities, read models, filters, and
// error taxonomy shared by the tower inventory tracker's storage and service
// layers.
package domain

import "time"

// EntityType identifies the kind of record a store operation acted on. It is
// carried by typed errors so callers can name the entity in messages.
type EntityType string

// Entity type identifiers used in errors and persistence tables.
const (
	// EntityTechnician identifies a field technician record.
	EntityTechnician EntityType = "technician"
	// EntityLocation identifies an inventory-holding site record.
	EntityLocation EntityType = "location"
	// EntityLocationDetail identifies a service address record.
	EntityLocationDetail EntityType = "location_detail"
	// EntityInventoryItem identifies a stocked item record.
	EntityInventoryItem EntityType = "inventory_item"
	// EntityServiceOrder identifies a work ticket record.
	EntityServiceOrder EntityType = "service_order"
	// EntityTransaction identifies an append-only stock event record.
	EntityTransaction EntityType = "transaction"
	// EntitySnapshot identifies the shared database snapshot file.
	EntitySnapshot EntityType = "snapshot"
)

// ActionType enumerates the stock effects a transaction can record.
type ActionType string

// Transaction action types. Install consumes stock, Remove returns it,
// Repair touches none.
const (
	ActionInstall ActionType = "Install"
	ActionRemove  ActionType = "Remove"
	ActionRepair  ActionType = "Repair"
)

// ActionTypes lists the valid action types in display order.
func ActionTypes() []ActionType {
	return []ActionType{ActionInstall, ActionRemove, ActionRepair}
}

// Valid reports whether a is one of the enumerated action types.
func (a ActionType) Valid() bool {
	switch a {
	case ActionInstall, ActionRemove, ActionRepair:
		return true
	}
	return false
}

// StockDelta returns the change applied to an item's stock when a
// transaction with this action records quantity units.
func (a ActionType) StockDelta(quantity int64) int64 {
	switch a {
	case ActionInstall:
		return -quantity
	case ActionRemove:
		return quantity
	}
	return 0
}

// Technician is a field worker referenced by service orders and transactions.
type Technician struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Location is an inventory-holding site.
type Location struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Apartment string `json:"apartment"`
}

// LocationDetail is a service address distinct from inventory locations:
// where work is performed, not where stock lives.
type LocationDetail struct {
	ID        int64  `json:"id"`
	Address   string `json:"address"`
	Apartment string `json:"apartment"`
}

// InventoryItem is a stocked item. Stock is derived state: it always equals
// the initial stock plus the net effect of recorded Install/Remove
// transactions, and nothing stops it from going negative.
type InventoryItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Stock       int64   `json:"stock"`
}

// ServiceOrder is a work ticket grouping transactions under a unique number
// and address. Orders are immutable once created.
type ServiceOrder struct {
	ID            int64     `json:"id"`
	ServiceNumber string    `json:"service_number"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	TechnicianID  *int64    `json:"technician_id"`
	LocationID    *int64    `json:"location_id"`
	// Denormalized on read paths; empty when unassigned.
	TechnicianName string `json:"technician_name"`
	LocationName   string `json:"location_name"`
}

// TransactionInput carries the fields needed to record a transaction.
// ServiceOrderID is resolved by the caller; ServiceAddress and
// ServiceApartment are captured verbatim even when no order is linked.
type TransactionInput struct {
	ItemID           int64      `json:"item_id"`
	TechnicianID     int64      `json:"technician_id"`
	LocationID       int64      `json:"location_id"`
	ServiceOrderID   *int64     `json:"service_order_id"`
	Action           ActionType `json:"action"`
	Quantity         int64      `json:"quantity"`
	Price            float64    `json:"price"`
	ServiceAddress   string     `json:"service_address"`
	ServiceApartment string     `json:"service_apartment"`
}

// Transaction is an append-only stock event as stored. Recording one
// atomically applies the action's stock delta to the referenced item.
type Transaction struct {
	ID               int64      `json:"id"`
	ItemID           int64      `json:"item_id"`
	TechnicianID     int64      `json:"technician_id"`
	LocationID       int64      `json:"location_id"`
	ServiceOrderID   *int64     `json:"service_order_id"`
	Action           ActionType `json:"action"`
	Quantity         int64      `json:"quantity"`
	Price            float64    `json:"price"`
	Timestamp        time.Time  `json:"timestamp"`
	ServiceAddress   string     `json:"service_address"`
	ServiceApartment string     `json:"service_apartment"`
}

// UnlinkedServiceNumber is the display value for transactions recorded
// without a service order reference.
const UnlinkedServiceNumber = "N/A"

// TransactionRecord is the denormalized transaction read model. Names are
// joined in for display; ServiceNumber is UnlinkedServiceNumber when the
// transaction has no order reference.
type TransactionRecord struct {
	Transaction
	ItemName       string `json:"item_name"`
	TechnicianName string `json:"technician_name"`
	LocationName   string `json:"location_name"`
	ServiceNumber  string `json:"service_number"`
}

// TransactionFilter narrows transaction list queries. Nil fields match all
// rows; DateFrom and DateTo bound the timestamp inclusively.
type TransactionFilter struct {
	TechnicianID   *int64
	LocationID     *int64
	ServiceOrderID *int64
	Action         *ActionType
	DateFrom       *time.Time
	DateTo         *time.Time
}

// SummaryFilter narrows the per-action aggregate. Only technician and date
// range are honored.
type SummaryFilter struct {
	TechnicianID *int64
	DateFrom     *time.Time
	DateTo       *time.Time
}

// ActionSummary aggregates committed transactions of one action type.
// Value is the sum of price times quantity over the matched rows.
type ActionSummary struct {
	Action   ActionType `json:"action"`
	Count    int64      `json:"count"`
	Quantity int64      `json:"quantity"`
	Value    float64    `json:"value"`
}

// Summary reports one ActionSummary per action type in display order.
// Types with no matching rows are present with zero values, not absent.
type Summary []ActionSummary

// Find returns the entry for the given action type.
func (s Summary) Find(a ActionType) (ActionSummary, bool) {
	for _, e := range s {
		if e.Action == a {
			return e, true
		}
	}
	return ActionSummary{}, false
}

// SnapshotInfo describes the shared snapshot file without copying it.
type SnapshotInfo struct {
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}
