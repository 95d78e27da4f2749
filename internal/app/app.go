package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"factory-events/internal/aggregators"
	"factory-events/internal/archivers"
	"factory-events/internal/events"
	internalhttp "factory-events/internal/http"
	"factory-events/internal/ingestors"
	"factory-events/internal/shared/clocks"
	"factory-events/internal/shared/configs"
	"factory-events/internal/shared/filestorages"
	"factory-events/internal/shared/loggers"
	"factory-events/internal/stores"
	"factory-events/internal/streams"
)

const archiveQueueBuffer = 256

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	eventStore      stores.EventStore
	archiveConsumer streams.BatchArchiveConsumer

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New opens the event store, migrates its schema and wires every component.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := NewLogger(config.Log)
	if err != nil {
		return nil, err
	}

	eventStore, err := stores.NewEventStore(ctx, config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open event store: %w", err)
	}
	if err := eventStore.Migrate(ctx); err != nil {
		_ = eventStore.Close()
		return nil, fmt.Errorf("failed to migrate event store: %w", err)
	}

	// Initialize the raw batch archive
	var (
		archiveProducer = streams.NewNopBatchArchiveProducer()
		archiveConsumer streams.BatchArchiveConsumer
	)
	if config.Archive.Enabled {
		archiveService, err := NewArchiveService(config.Archive)
		if err != nil {
			_ = eventStore.Close()
			return nil, err
		}
		queue := streams.NewPartitionedQueueWithSize[*events.BatchIngestedEvent](config.Archive.Workers, archiveQueueBuffer)
		consumerLogger := appLogger.With().Str(loggers.FieldComponent, "archive_consumer").Logger()
		archiveProducer = streams.NewBatchArchiveProducer(queue)
		archiveConsumer = streams.NewBatchArchiveConsumer(queue, archiveService, consumerLogger)
	}

	// Initialize services
	ingestionService := ingestors.NewIngestionService(
		ingestors.NewEventValidator(),
		ingestors.NewBatchUpserter(eventStore),
		archiveProducer,
		clocks.System,
	)
	statsService := aggregators.NewStatsService(aggregators.NewStatsCalculator(), eventStore)
	lookupService := aggregators.NewEventLookupService(eventStore)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(internalhttp.Services{
		Ingestion:   ingestionService,
		Stats:       statsService,
		EventLookup: lookupService,
		Readiness:   eventStore,
	}, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		server:          server,
		eventStore:      eventStore,
		archiveConsumer: archiveConsumer,
	}, nil
}

// NewLogger builds the application logger tagged with the service name.
func NewLogger(config configs.LogConfig) (loggers.Logger, error) {
	logger, err := loggers.New(config.Level)
	if err != nil {
		return logger, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With().Str(loggers.FieldApp, "factory-events").Logger(), nil
}

// NewArchiveService builds the archive on top of the local file storage.
func NewArchiveService(config configs.ArchiveConfig) (archivers.ArchiveService, error) {
	fileStorage, err := filestorages.NewFileStorage(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize archive storage: %w", err)
	}
	return archivers.NewArchiveService(archivers.NewBatchEncoder(), stores.NewBatchArchiveStore(fileStorage)), nil
}

// Handler exposes the router, mainly for tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts background workers and serves HTTP on the configured port until Shutdown.
func (app *App) Start() error {
	listener, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.server.Addr, err)
	}
	return app.Serve(listener)
}

// Serve is Start on a caller-provided listener.
func (app *App) Serve(listener net.Listener) error {
	app.appLogger.Info().
		Msgf("Starting factory-events service on %s (log_level=%s, database=%s, archive_enabled=%t)",
			listener.Addr(),
			app.config.Log.Level,
			app.config.Database.Driver,
			app.config.Archive.Enabled)

	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	if app.archiveConsumer != nil {
		app.archiveConsumer.Start(app.backgroundCtx)
	}

	return app.server.Serve(listener)
}

// Shutdown stops accepting requests, drains the archive queue and closes the store.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server so no new batches are published
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Drain queued batches, then release the workers
	if app.archiveConsumer != nil {
		app.archiveConsumer.Stop()
		app.appLogger.Info().Msg("Archive consumer stopped")
	}
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}

	// 3) Close the store last
	if err := app.eventStore.Close(); err != nil {
		return fmt.Errorf("event store close failed: %w", err)
	}
	app.appLogger.Info().Msg("Event store closed")
	return nil
}
