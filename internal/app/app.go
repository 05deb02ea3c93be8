package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/riskibarqy/match-center/external/thesports"
	"github.com/riskibarqy/match-center/internal/config"
	"github.com/riskibarqy/match-center/internal/infrastructure/history"
	"github.com/riskibarqy/match-center/internal/interfaces/httpapi"
	"github.com/riskibarqy/match-center/internal/platform/logging"
	"github.com/riskibarqy/match-center/internal/platform/resilience"
	"github.com/riskibarqy/match-center/internal/usecase"
)

// Components holds the wired pieces both binaries pick from: the API
// server serves the latest batch, the poller drives enrichment cycles.
type Components struct {
	Store      *history.Store
	Enrichment *usecase.EnrichmentService
	Server     *http.Server
}

func Build(cfg config.Config, logger *logging.Logger, accessLogger *slog.Logger) (*Components, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if accessLogger == nil {
		accessLogger = slog.Default()
	}

	store := history.NewStore(cfg.HistoryPath, logger)

	client := thesports.NewClient(thesports.ClientConfig{
		BaseURL:     cfg.TheSportsBaseURL,
		User:        cfg.TheSportsUser,
		Secret:      cfg.TheSportsSecret,
		Timeout:     cfg.TheSportsTimeout,
		MaxRetries:  cfg.TheSportsMaxRetries,
		WorkerCount: cfg.TheSportsWorkerCount,
		Logger:      logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.TheSportsCircuitEnabled,
			FailureThreshold: cfg.TheSportsCircuitFailureCount,
			OpenTimeout:      cfg.TheSportsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.TheSportsCircuitHalfOpenMaxReq,
		},
	})

	enrichment := usecase.NewEnrichmentService(logger, client, store)

	handler := httpapi.NewHandler(store, accessLogger)
	router := httpapi.NewRouter(handler, accessLogger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Components{
		Store:      store,
		Enrichment: enrichment,
		Server:     server,
	}, nil
}
