package httpapi

import (
	"fmt"
	"net/http"
	"testing"

	"towerinv/internal/config"
	"towerinv/pkg/domain"
)

func TestTechnicianCRUDOverHTTP(t *testing.T) {
	srv := newTestServer(t, config.ModeMaintenance)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/technicians", map[string]string{"name": " Ana "})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d body %s", rec.Code, rec.Body.String())
	}
	var created domain.Technician
	decodeBody(t, rec, &created)
	if created.ID == 0 || created.Name != "Ana" {
		t.Fatalf("created = %+v", created)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/technicians", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status = %d", rec.Code)
	}
	var list []domain.Technician
	decodeBody(t, rec, &list)
	if len(list) != 1 || list[0].Name != "Ana" {
		t.Fatalf("list = %+v", list)
	}

	path := fmt.Sprintf("/api/technicians/%d", created.ID)
	rec = doJSON(t, h, http.MethodPut, path, map[string]string{"name": "Bo"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status = %d body %s", rec.Code, rec.Body.String())
	}
	var updated domain.Technician
	decodeBody(t, rec, &updated)
	if updated.Name != "Bo" {
		t.Fatalf("updated = %+v", updated)
	}

	rec = doJSON(t, h, http.MethodDelete, path, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status = %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodGet, path, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status = %d", rec.Code)
	}
}

func TestCreateTechnicianRejectsBlankName(t *testing.T) {
	srv := newTestServer(t, config.ModeMaintenance)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/technicians", map[string]string{"name": "   "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "create technician" || body["message"] == "" {
		t.Fatalf("body = %+v", body)
	}
}

func TestDuplicateTechnicianConflicts(t *testing.T) {
	srv := newTestServer(t, config.ModeMaintenance)
	h := srv.Handler()

	if rec := doJSON(t, h, http.MethodPost, "/api/technicians", map[string]string{"name": "Ana"}); rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d", rec.Code)
	}
	rec := doJSON(t, h, http.MethodPost, "/api/technicians", map[string]string{"name": "Ana"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate: status = %d body %s", rec.Code, rec.Body.String())
	}
}

func TestGetTechnicianBadID(t *testing.T) {
	srv := newTestServer(t, config.ModeMaintenance)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/technicians/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestItemValidationOverHTTP(t *testing.T) {
	srv := newTestServer(t, config.ModeMaintenance)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/items", map[string]any{
		"name": "Cable", "unit_price": -2.0,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("negative price: status = %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/items", map[string]any{
		"name": "Cable", "unit_price": 2.5, "stock": 7,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d body %s", rec.Code, rec.Body.String())
	}
	var item domain.InventoryItem
	decodeBody(t, rec, &item)
	if item.Stock != 7 || item.UnitPrice != 2.5 {
		t.Fatalf("item = %+v", item)
	}
}

func TestDeleteReferencedTechnicianConflicts(t *testing.T) {
	srv := newTestServer(t, config.ModeMaintenance)
	h := srv.Handler()

	tech := createRef(t, h, "/api/technicians", map[string]any{"name": "Ana"})
	loc := createRef(t, h, "/api/locations", map[string]any{"name": "Depot"})
	item := createRef(t, h, "/api/items", map[string]any{"name": "Widget", "unit_price": 1.0, "stock": 5})

	rec := doJSON(t, h, http.MethodPost, "/api/transactions", map[string]any{
		"item_id": item, "technician_id": tech, "location_id": loc,
		"action": "Repair", "quantity": 1,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("record: status = %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/technicians/%d", tech), nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("delete referenced: status = %d body %s", rec.Code, rec.Body.String())
	}
}

// createRef posts a reference row and returns its id.
func createRef(t *testing.T, h http.Handler, path string, body map[string]any) int64 {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, path, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create %s: status = %d body %s", path, rec.Code, rec.Body.String())
	}
	var out struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, rec, &out)
	if out.ID == 0 {
		t.Fatalf("create %s: no id in %s", path, rec.Body.String())
	}
	return out.ID
}
