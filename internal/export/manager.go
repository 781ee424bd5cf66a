// Package export writes inventory reports to timestamped CSV files. The
// column layouts match the sheets the office staff already work with, so
// they are fixed here rather than derived from the types.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"towerinv/pkg/domain"
)

// File name stems for the three report kinds.
const (
	stemTransactions  = "transactions"
	stemInventory     = "inventory"
	stemServiceOrders = "service_orders"
)

const (
	fileStampLayout = "20060102_150405"
	timeLayout      = "2006-01-02 15:04:05"
)

// Manager writes CSV reports into a fixed export directory.
type Manager struct {
	dir   string
	nowFn func() time.Time
}

// NewManager returns a manager writing into dir, creating the directory if
// needed. An empty dir defaults to ./exports.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		dir = "exports"
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	return &Manager{dir: dir, nowFn: time.Now}, nil
}

// Dir returns the export directory.
func (m *Manager) Dir() string { return m.dir }

// Transactions writes the transaction report and returns the file path.
func (m *Manager) Transactions(records []domain.TransactionRecord) (string, error) {
	headers := []string{"Transaction ID", "Timestamp", "Action Type", "Quantity", "Price", "Item Name", "Technician", "Service Number", "Location"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.Timestamp.Format(timeLayout),
			string(r.Action),
			strconv.FormatInt(r.Quantity, 10),
			formatMoney(r.Price),
			r.ItemName,
			r.TechnicianName,
			r.ServiceNumber,
			r.LocationName,
		})
	}
	return m.write(stemTransactions, headers, rows)
}

// Inventory writes the stock report and returns the file path.
func (m *Manager) Inventory(items []domain.InventoryItem) (string, error) {
	headers := []string{"Item ID", "Name", "Description", "Unit Price", "Stock"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			it.Name,
			it.Description,
			formatMoney(it.UnitPrice),
			strconv.FormatInt(it.Stock, 10),
		})
	}
	return m.write(stemInventory, headers, rows)
}

// ServiceOrders writes the work-ticket report and returns the file path.
func (m *Manager) ServiceOrders(orders []domain.ServiceOrder) (string, error) {
	headers := []string{"Service ID", "Service Number", "Address", "Date Created", "Technician", "Location"}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			o.ServiceNumber,
			o.Address,
			o.CreatedAt.Format(timeLayout),
			o.TechnicianName,
			o.LocationName,
		})
	}
	return m.write(stemServiceOrders, headers, rows)
}

func (m *Manager) write(stem string, headers []string, rows [][]string) (string, error) {
	path := filepath.Join(m.dir, fmt.Sprintf("%s_%s.csv", stem, m.nowFn().Format(fileStampLayout)))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	writer := csv.NewWriter(f)
	if err := writer.Write(headers); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write headers: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("flush export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}
	return path, nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
