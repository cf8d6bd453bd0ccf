package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"demotrack/internal/errors"
	"demotrack/internal/models"
	"demotrack/internal/observability"
	"demotrack/internal/services"
)

const cacheMaxAge = "public, max-age=60"

type APIHandlers struct {
	ledger    *services.Ledger
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(ledger *services.Ledger, analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		ledger:    ledger,
		analytics: analytics,
		logger:    logger,
	}
}

func (h *APIHandlers) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.ledger.Customers())
}

func (h *APIHandlers) HandleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	var input services.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		errors.WriteError(w, h.logger, errors.BadRequestWrap(err, "Invalid request body"), requestID)
		return
	}

	if input.Company == "" {
		errors.WriteError(w, h.logger, errors.Validation("company is required"), requestID)
		return
	}
	if input.Status == "" {
		input.Status = models.StatusProspect
	}

	profile := h.ledger.AddCustomer(input)
	errors.WriteCreated(w, profile)
}

func (h *APIHandlers) HandleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())
	id := r.PathValue("id")

	var update services.CustomerUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		errors.WriteError(w, h.logger, errors.BadRequestWrap(err, "Invalid request body"), requestID)
		return
	}

	profile, ok := h.ledger.UpdateCustomer(id, update)
	if !ok {
		errors.WriteError(w, h.logger, errors.NotFound("customer not found"), requestID)
		return
	}

	errors.WriteSuccess(w, profile)
}

type addRevenueRequest struct {
	DemoID   string  `json:"demo_id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

func (h *APIHandlers) HandleAddDemoRevenue(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())
	id := r.PathValue("id")

	var req addRevenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, h.logger, errors.BadRequestWrap(err, "Invalid request body"), requestID)
		return
	}

	if req.DemoID == "" {
		errors.WriteError(w, h.logger, errors.Validation("demo_id is required"), requestID)
		return
	}
	if req.Category == "" {
		errors.WriteError(w, h.logger, errors.Validation("category is required"), requestID)
		return
	}
	if req.Amount < 0 {
		errors.WriteError(w, h.logger, errors.Validation("amount must not be negative"), requestID)
		return
	}

	profile, ok := h.ledger.AddDemoRevenue(id, req.DemoID, req.Amount, req.Category)
	if !ok {
		errors.WriteError(w, h.logger, errors.NotFound("customer not found"), requestID)
		return
	}

	errors.WriteCreated(w, profile)
}

func (h *APIHandlers) HandleSelectCustomer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	h.ledger.SelectCustomer(id)

	errors.WriteSuccess(w, map[string]string{"selected_id": id})
}

func (h *APIHandlers) HandleSelectedCustomer(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	profile, ok := h.ledger.SelectedCustomer()
	if !ok {
		errors.WriteError(w, h.logger, errors.NotFound("no customer selected"), requestID)
		return
	}

	errors.WriteSuccess(w, profile)
}

func (h *APIHandlers) HandleClearSelection(w http.ResponseWriter, r *http.Request) {
	h.ledger.ClearSelection()

	errors.WriteSuccess(w, map[string]string{"selected_id": ""})
}

func (h *APIHandlers) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	headers := map[string]string{
		"Cache-Control": cacheMaxAge,
	}

	errors.WriteSuccessWithHeaders(w, h.analytics.Summary(), headers)
}

func (h *APIHandlers) HandleCategoryPerformance(w http.ResponseWriter, r *http.Request) {
	headers := map[string]string{
		"Cache-Control": cacheMaxAge,
	}

	errors.WriteSuccessWithHeaders(w, h.analytics.CategoryPerformance(), headers)
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}
