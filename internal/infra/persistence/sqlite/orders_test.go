package sqlite

import (
	"context"
	"testing"

	"towerinv/pkg/domain"
)

func TestServiceOrderCreateAndGet(t *testing.T) {
	st := newTempStore(t)
	ctx := context.Background()
	tech, loc, _ := seedBasics(t, st)

	created, err := st.CreateServiceOrder(ctx, domain.ServiceOrder{
		ServiceNumber: "SO-1001",
		Address:       "8 Hill St",
		TechnicianID:  &tech.ID,
		LocationID:    &loc.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", created)
	}
	if created.TechnicianName != "Ana" || created.LocationName != "Depot" {
		t.Fatalf("expected denormalized names, got %+v", created)
	}

	got, err := st.GetServiceOrder(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ServiceNumber != "SO-1001" || got.Address != "8 Hill St" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestServiceOrderUnassignedReferences(t *testing.T) {
	st := newTempStore(t)
	ctx := context.Background()

	created, err := st.CreateServiceOrder(ctx, domain.ServiceOrder{
		ServiceNumber: "SO-2002", Address: "3 Bay Rd",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.TechnicianID != nil || created.LocationID != nil {
		t.Fatalf("expected nil references, got %+v", created)
	}
	if created.TechnicianName != "" || created.LocationName != "" {
		t.Fatalf("expected empty names, got %+v", created)
	}
}

func TestServiceOrderDuplicateNumber(t *testing.T) {
	st := newTempStore(t)
	ctx := context.Background()
	if _, err := st.CreateServiceOrder(ctx, domain.ServiceOrder{ServiceNumber: "SO-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	before := countRows(t, st, "service_orders")
	if _, err := st.CreateServiceOrder(ctx, domain.ServiceOrder{ServiceNumber: "SO-1"}); !domain.IsAlreadyExists(err) {
		t.Fatalf("expected already-exists, got %v", err)
	}
	if after := countRows(t, st, "service_orders"); after != before {
		t.Fatalf("row count changed: %d -> %d", before, after)
	}
}

func TestServiceOrderEmptyNumbersDoNotCollide(t *testing.T) {
	st := newTempStore(t)
	ctx := context.Background()
	// Uniqueness binds only non-empty numbers; empty is stored as NULL.
	if _, err := st.CreateServiceOrder(ctx, domain.ServiceOrder{Address: "a"}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := st.CreateServiceOrder(ctx, domain.ServiceOrder{Address: "b"}); err != nil {
		t.Fatalf("create second: %v", err)
	}
}

func TestServiceOrderGetByNumber(t *testing.T) {
	st := newTempStore(t)
	ctx := context.Background()
	if _, err := st.CreateServiceOrder(ctx, domain.ServiceOrder{ServiceNumber: "SO-77"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := st.GetServiceOrderByNumber(ctx, "SO-77")
	if err != nil {
		t.Fatalf("get by number: %v", err)
	}
	if got.ServiceNumber != "SO-77" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if _, err := st.GetServiceOrderByNumber(ctx, "SO-88"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestServiceOrderListNewestFirst(t *testing.T) {
	st := newTempStore(t)
	ctx := context.Background()
	fixedClock(t, st,
		"2026-01-01T08:00:00Z",
		"2026-01-02T08:00:00Z",
		"2026-01-03T08:00:00Z",
	)
	for _, n := range []string{"SO-1", "SO-2", "SO-3"} {
		if _, err := st.CreateServiceOrder(ctx, domain.ServiceOrder{ServiceNumber: n}); err != nil {
			t.Fatalf("create %s: %v", n, err)
		}
	}
	orders, err := st.ListServiceOrders(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"SO-3", "SO-2", "SO-1"}
	for i, n := range want {
		if orders[i].ServiceNumber != n {
			t.Fatalf("position %d: expected %s got %s", i, n, orders[i].ServiceNumber)
		}
	}
}

func TestServiceOrderDanglingTechnician(t *testing.T) {
	st := newTempStore(t)
	ctx := context.Background()
	missing := int64(99)
	if _, err := st.CreateServiceOrder(ctx, domain.ServiceOrder{
		ServiceNumber: "SO-9", TechnicianID: &missing,
	}); !domain.IsIntegrity(err) {
		t.Fatalf("expected integrity error, got %v", err)
	}
}
