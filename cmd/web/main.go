package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"demotrack/internal/catalog"
	"demotrack/internal/config"
	"demotrack/internal/middleware"
	"demotrack/internal/observability"
	"demotrack/internal/server"
	"demotrack/internal/services"
	"demotrack/internal/ui/templates"
	"github.com/joho/godotenv"
)

const (
	renderTimeout      = 10 * time.Second
	catalogLoadTimeout = 30 * time.Second
	cacheMaxAge        = "public, max-age=300"
)

// Template handler functions that can access the template functions
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
	defer cancel()

	w.Header().Set("Cache-Control", cacheMaxAge)
	if err := templates.Dashboard().Render(ctx, w); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func main() {
	// A missing .env is fine; real env vars always win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"config", cfg,
	)

	demoCatalog := catalog.New()
	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	defer cancel()

	if err := demoCatalog.LoadFromCSV(ctx, cfg.Catalog.CSVFile); err != nil {
		logger.Error("failed to load demo catalog", "error", err)
		os.Exit(1)
	}

	ledger := services.NewLedger()
	if cfg.Catalog.SeedSampleData {
		ledger.SetData(services.SampleCustomers())
		logger.Info("ledger seeded with sample customers", "customers", len(ledger.Customers()))
	}

	analytics := services.NewAnalytics(demoCatalog, ledger)

	templateHandlers := &server.TemplateHandlers{
		Dashboard: handleDashboard,
	}

	srv := server.NewServer(ledger, analytics, logger, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
	)

	handler := middlewareChain(srv)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down ledger",
			"stats", ledger.Stats(),
		)
		return nil
	})

	logger.Info("starting graceful server")
	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
