package sqlite

import (
	"context"
	"testing"
	"time"

	"towerinv/pkg/domain"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return ts
}

// seedBasics creates one technician, location, and item for transaction tests.
func seedBasics(t *testing.T, st *Store) (domain.Technician, domain.Location, domain.InventoryItem) {
	t.Helper()
	ctx := context.Background()
	tech, err := st.CreateTechnician(ctx, domain.Technician{Name: "Ana"})
	if err != nil {
		t.Fatalf("seed technician: %v", err)
	}
	loc, err := st.CreateLocation(ctx, domain.Location{Name: "Depot", Address: "1 Main St"})
	if err != nil {
		t.Fatalf("seed location: %v", err)
	}
	item, err := st.CreateInventoryItem(ctx, domain.InventoryItem{
		Name: "Widget", Description: "standard widget", UnitPrice: 10, Stock: 5,
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return tech, loc, item
}

func countRows(t *testing.T, st *Store, table string) int64 {
	t.Helper()
	var n int64
	if err := st.DB().QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func fixedClock(t *testing.T, st *Store, stamps ...string) {
	t.Helper()
	times := make([]time.Time, len(stamps))
	for i, s := range stamps {
		times[i] = mustParse(t, s)
	}
	i := 0
	st.nowFn = func() time.Time {
		ts := times[i%len(times)]
		i++
		return ts
	}
}
