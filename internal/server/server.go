package server

import (
	"log/slog"
	"net/http"

	"demotrack/internal/handlers"
	"demotrack/internal/services"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(ledger *services.Ledger, analytics *services.Analytics, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(ledger, analytics, logger),
		sseHandlers: handlers.NewSSEHandlers(ledger, analytics, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard routes
	s.mux.HandleFunc("GET /", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/customers", s.apiHandlers.HandleListCustomers)
	s.mux.HandleFunc("POST /api/customers", s.apiHandlers.HandleCreateCustomer)
	s.mux.HandleFunc("GET /api/customers/selected", s.apiHandlers.HandleSelectedCustomer)
	s.mux.HandleFunc("DELETE /api/customers/selected", s.apiHandlers.HandleClearSelection)
	s.mux.HandleFunc("PATCH /api/customers/{id}", s.apiHandlers.HandleUpdateCustomer)
	s.mux.HandleFunc("POST /api/customers/{id}/revenue", s.apiHandlers.HandleAddDemoRevenue)
	s.mux.HandleFunc("POST /api/customers/{id}/select", s.apiHandlers.HandleSelectCustomer)
	s.mux.HandleFunc("GET /api/metrics", s.apiHandlers.HandleMetrics)
	s.mux.HandleFunc("GET /api/category-performance", s.apiHandlers.HandleCategoryPerformance)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/customers", s.sseHandlers.HandleCustomers)
	s.mux.HandleFunc("GET /sse/metrics", s.sseHandlers.HandleMetrics)
	s.mux.HandleFunc("GET /sse/category-performance", s.sseHandlers.HandleCategoryPerformance)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
