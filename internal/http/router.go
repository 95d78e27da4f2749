package http

import (
	"net/http"

	"factory-events/internal/aggregators"
	"factory-events/internal/ingestors"
	"factory-events/internal/shared/loggers"
	"factory-events/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// Services groups what the router dispatches to.
type Services struct {
	Ingestion   ingestors.IngestionService
	Stats       aggregators.StatsService
	EventLookup aggregators.EventLookupService
	Readiness   Pinger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services Services, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Post("/events/batch", errorHandlingAdapter(NewIngestBatchHandler(services.Ingestion)))
	router.Get("/events/{eventId}", errorHandlingAdapter(NewEventLookupHandler(services.EventLookup)))
	router.Get("/stats", errorHandlingAdapter(NewMachineStatsHandler(services.Stats)))
	router.Get("/stats/top-defect-lines", errorHandlingAdapter(NewTopDefectLinesHandler(services.Stats)))

	router.Get("/health", errorHandlingAdapter(NewLivenessHandler()))
	router.Get("/ready", errorHandlingAdapter(NewReadinessHandler(services.Readiness)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
