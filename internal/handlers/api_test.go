package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"demotrack/internal/catalog"
	"demotrack/internal/models"
	"demotrack/internal/services"
)

func createTestServices() (*services.Ledger, *services.Analytics) {
	cat := catalog.New()
	cat.SetData([]models.DemoRecord{
		{ID: "d1", Date: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), Location: "Virtual", Attendees: 42},
		{ID: "d2", Date: time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC), Location: "Nexus", Attendees: 78},
		{ID: "d3", Date: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Location: "On-site", Attendees: 16},
	})

	ledger := services.NewLedger()
	ledger.SetData(services.SampleCustomers())

	return ledger, services.NewAnalytics(cat, ledger)
}

func createTestAPIHandlers() *APIHandlers {
	ledger, analytics := createTestServices()
	return NewAPIHandlers(ledger, analytics, slog.Default())
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	return response
}

func TestNewAPIHandlers(t *testing.T) {
	ledger, analytics := createTestServices()
	handlers := NewAPIHandlers(ledger, analytics, slog.Default())

	if handlers == nil {
		t.Error("NewAPIHandlers() returned nil")
	}

	if handlers.ledger != ledger {
		t.Error("NewAPIHandlers() should set ledger field")
	}

	if handlers.analytics != analytics {
		t.Error("NewAPIHandlers() should set analytics field")
	}
}

func TestAPIHandlers_HandleListCustomers(t *testing.T) {
	handlers := createTestAPIHandlers()

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	w := httptest.NewRecorder()

	handlers.HandleListCustomers(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected content-type 'application/json', got %q", ct)
	}

	response := decodeEnvelope(t, w)

	if success, ok := response["success"].(bool); !ok || !success {
		t.Error("expected success=true in response")
	}

	data, ok := response["data"].([]interface{})
	if !ok {
		t.Fatal("expected data array in response")
	}
	if len(data) != 2 {
		t.Errorf("expected 2 seeded customers, got %d", len(data))
	}
}

func TestAPIHandlers_HandleCreateCustomer(t *testing.T) {
	handlers := createTestAPIHandlers()

	body := `{"company":"Fresh Co","industry":"Retail","contact_name":"Dana Webb"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	w := httptest.NewRecorder()

	handlers.HandleCreateCustomer(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	response := decodeEnvelope(t, w)

	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected customer object in response")
	}

	if id, _ := data["id"].(string); id == "" {
		t.Error("created customer should carry an id")
	}

	// Status defaults when the caller leaves it out.
	if status, _ := data["status"].(string); status != string(models.StatusProspect) {
		t.Errorf("status = %q, want %q", status, models.StatusProspect)
	}

	revenue, ok := data["revenue"].(map[string]interface{})
	if !ok {
		t.Fatal("expected revenue ledger in response")
	}
	if total, _ := revenue["total_amount"].(float64); total != 0 {
		t.Errorf("new customer total = %f, want 0", total)
	}
}

func TestAPIHandlers_HandleCreateCustomer_Invalid(t *testing.T) {
	handlers := createTestAPIHandlers()

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"missing company", `{"industry":"Retail"}`, http.StatusBadRequest},
		{"malformed json", `{not json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handlers.HandleCreateCustomer(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, w.Code)
			}

			response := decodeEnvelope(t, w)
			if success, _ := response["success"].(bool); success {
				t.Error("expected success=false in error response")
			}
		})
	}
}

func TestAPIHandlers_HandleUpdateCustomer(t *testing.T) {
	handlers := createTestAPIHandlers()

	body := `{"status":"Closed Won","notes":"Signed annual contract"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/customers/1", strings.NewReader(body))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handlers.HandleUpdateCustomer(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	response := decodeEnvelope(t, w)
	data := response["data"].(map[string]interface{})

	if status, _ := data["status"].(string); status != "Closed Won" {
		t.Errorf("status = %q, want %q", status, "Closed Won")
	}

	// Untouched fields survive the merge.
	if company, _ := data["company"].(string); company != "TechCorp Industries" {
		t.Errorf("company = %q, want %q", company, "TechCorp Industries")
	}
}

func TestAPIHandlers_HandleUpdateCustomer_NotFound(t *testing.T) {
	handlers := createTestAPIHandlers()

	req := httptest.NewRequest(http.MethodPatch, "/api/customers/missing-id", strings.NewReader(`{"notes":"x"}`))
	req.SetPathValue("id", "missing-id")
	w := httptest.NewRecorder()

	handlers.HandleUpdateCustomer(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestAPIHandlers_HandleAddDemoRevenue(t *testing.T) {
	handlers := createTestAPIHandlers()

	body := `{"demo_id":"d3","amount":30000,"category":"On-site"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers/2/revenue", strings.NewReader(body))
	req.SetPathValue("id", "2")
	w := httptest.NewRecorder()

	handlers.HandleAddDemoRevenue(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	response := decodeEnvelope(t, w)
	data := response["data"].(map[string]interface{})
	revenue := data["revenue"].(map[string]interface{})

	// Customer 2 is seeded with one 45000 sale.
	if total, _ := revenue["total_amount"].(float64); total != 75000 {
		t.Errorf("total = %f, want 75000", total)
	}

	sales := revenue["sales"].([]interface{})
	last := sales[len(sales)-1].(map[string]interface{})
	if name, _ := last["product_name"].(string); name != "On-site Package" {
		t.Errorf("product name = %q, want %q", name, "On-site Package")
	}
}

func TestAPIHandlers_HandleAddDemoRevenue_Invalid(t *testing.T) {
	handlers := createTestAPIHandlers()

	tests := []struct {
		name     string
		id       string
		body     string
		wantCode int
	}{
		{"missing demo_id", "1", `{"amount":100,"category":"Virtual"}`, http.StatusBadRequest},
		{"missing category", "1", `{"demo_id":"d1","amount":100}`, http.StatusBadRequest},
		{"negative amount", "1", `{"demo_id":"d1","amount":-5,"category":"Virtual"}`, http.StatusBadRequest},
		{"unknown customer", "missing-id", `{"demo_id":"d1","amount":100,"category":"Virtual"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/customers/"+tt.id+"/revenue", strings.NewReader(tt.body))
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handlers.HandleAddDemoRevenue(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}

func TestAPIHandlers_Selection(t *testing.T) {
	handlers := createTestAPIHandlers()

	// Nothing selected yet.
	req := httptest.NewRequest(http.MethodGet, "/api/customers/selected", nil)
	w := httptest.NewRecorder()
	handlers.HandleSelectedCustomer(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d before selection, got %d", http.StatusNotFound, w.Code)
	}

	// Select customer 1.
	req = httptest.NewRequest(http.MethodPost, "/api/customers/1/select", nil)
	req.SetPathValue("id", "1")
	w = httptest.NewRecorder()
	handlers.HandleSelectCustomer(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	// Resolve the selection.
	req = httptest.NewRequest(http.MethodGet, "/api/customers/selected", nil)
	w = httptest.NewRecorder()
	handlers.HandleSelectedCustomer(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d after selection, got %d", http.StatusOK, w.Code)
	}
	response := decodeEnvelope(t, w)
	data := response["data"].(map[string]interface{})
	if id, _ := data["id"].(string); id != "1" {
		t.Errorf("selected id = %q, want %q", id, "1")
	}

	// Clear it again.
	req = httptest.NewRequest(http.MethodDelete, "/api/customers/selected", nil)
	w = httptest.NewRecorder()
	handlers.HandleClearSelection(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/customers/selected", nil)
	w = httptest.NewRecorder()
	handlers.HandleSelectedCustomer(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d after clearing, got %d", http.StatusNotFound, w.Code)
	}
}

func TestAPIHandlers_HandleMetrics(t *testing.T) {
	handlers := createTestAPIHandlers()

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	w := httptest.NewRecorder()

	handlers.HandleMetrics(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=60" {
		t.Errorf("expected cache-control 'public, max-age=60', got %q", cc)
	}

	response := decodeEnvelope(t, w)
	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected metrics object in response")
	}

	if total, _ := data["total_demos"].(float64); total != 3 {
		t.Errorf("total_demos = %f, want 3", total)
	}
	if revenue, _ := data["total_revenue"].(float64); revenue != 270000 {
		t.Errorf("total_revenue = %f, want 270000", revenue)
	}
}

func TestAPIHandlers_HandleCategoryPerformance(t *testing.T) {
	handlers := createTestAPIHandlers()

	req := httptest.NewRequest(http.MethodGet, "/api/category-performance", nil)
	w := httptest.NewRecorder()

	handlers.HandleCategoryPerformance(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=60" {
		t.Errorf("expected cache-control 'public, max-age=60', got %q", cc)
	}

	response := decodeEnvelope(t, w)
	data, ok := response["data"].([]interface{})
	if !ok {
		t.Fatal("expected category array in response")
	}
	if len(data) != 4 {
		t.Errorf("expected 4 categories, got %d", len(data))
	}
}

func TestAPIHandlers_HandleHealth(t *testing.T) {
	handlers := createTestAPIHandlers()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handlers.HandleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	// Health endpoint should NOT have cache-control header
	if cc := w.Header().Get("Cache-Control"); cc != "" {
		t.Errorf("health endpoint should not set cache-control, got %q", cc)
	}

	response := decodeEnvelope(t, w)
	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected health data in response")
	}

	if status, _ := data["status"].(string); status != "healthy" {
		t.Errorf("expected status 'healthy', got %q", status)
	}

	if timestamp, _ := data["timestamp"].(string); timestamp == "" {
		t.Error("expected non-empty timestamp")
	} else if _, err := time.Parse(time.RFC3339, timestamp); err != nil {
		t.Errorf("invalid timestamp format: %v", err)
	}
}

func TestAPIHandlers_HandleStats(t *testing.T) {
	handlers := createTestAPIHandlers()

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()

	handlers.HandleStats(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	response := decodeEnvelope(t, w)
	if success, ok := response["success"].(bool); !ok || !success {
		t.Error("expected success=true in response")
	}
}
