package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/biztime-api/internal/api"
	apiMiddleware "github.com/phrazzld/biztime-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(app.metrics.Middleware)
	// Inside the metrics middleware so recovered panics are counted as 500s.
	r.Use(middleware.Recoverer)

	api.RegisterRoutes(r, api.Handlers{
		Companies:  api.NewCompanyHandler(app.companyService, app.logger),
		Industries: api.NewIndustryHandler(app.industryService, app.logger),
		Invoices:   api.NewInvoiceHandler(app.invoiceService, app.logger),
	})

	r.Get("/health", api.NewHealthHandler(app.db, 0, app.logger).Health)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
