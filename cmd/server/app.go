package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/biztime-api/internal/config"
	"github.com/phrazzld/biztime-api/internal/events"
	"github.com/phrazzld/biztime-api/internal/platform/metrics"
	"github.com/phrazzld/biztime-api/internal/platform/postgres"
	"github.com/phrazzld/biztime-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	metrics *metrics.Metrics

	// Event system
	eventEmitter *events.InMemoryEventEmitter
	publisher    *events.KafkaPublisher

	companyService  service.CompanyService
	industryService service.IndustryService
	invoiceService  service.InvoiceService
}

// newApplication wires stores, services and event handlers around an open
// database handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		metrics: metrics.New(),
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLogHandler(logger))
	app.eventEmitter.RegisterHandler(app.metrics)
	if cfg.Events.KafkaEnabled() {
		app.publisher = events.NewKafkaPublisher(
			cfg.Events.KafkaBrokers,
			cfg.Events.KafkaTopic,
			cfg.Events.BufferSize,
			logger,
		)
		app.eventEmitter.RegisterHandler(app.publisher)
		logger.Info("Kafka event publishing enabled", "topic", cfg.Events.KafkaTopic)
	}

	companyStore := postgres.NewPostgresCompanyStore(db, logger)
	industryStore := postgres.NewPostgresIndustryStore(db, logger)
	invoiceStore := postgres.NewPostgresInvoiceStore(db, logger)

	var err error
	app.companyService, err = service.NewCompanyService(companyStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create company service: %w", err)
	}
	app.industryService, err = service.NewIndustryService(industryStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create industry service: %w", err)
	}
	app.invoiceService, err = service.NewInvoiceService(invoiceStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	// The publisher drains its queue, so it must close before the process exits.
	if app.publisher != nil {
		if err := app.publisher.Close(); err != nil {
			app.logger.Error("Error closing Kafka publisher", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
