package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/events"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/store"
)

// InvoiceService provides invoice operations.
type InvoiceService interface {
	// List returns every invoice's id and company code.
	List(ctx context.Context) ([]domain.InvoiceSummary, error)

	// Get returns an invoice with its company.
	Get(ctx context.Context, id int64) (*domain.InvoiceDetail, error)

	// Create bills amt to the company identified by compCode.
	Create(ctx context.Context, compCode string, amt float64) (*domain.Invoice, error)

	// UpdateAmount changes the amount of an invoice. No other field changes.
	UpdateAmount(ctx context.Context, id int64, amt float64) (*domain.Invoice, error)

	// Delete removes an invoice.
	Delete(ctx context.Context, id int64) error
}

type invoiceServiceImpl struct {
	invoices store.InvoiceStore
	emitter  events.EventEmitter
	logger   *slog.Logger
}

// NewInvoiceService creates an InvoiceService.
// It returns an error if a required dependency is nil.
func NewInvoiceService(
	invoices store.InvoiceStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (InvoiceService, error) {
	if invoices == nil {
		return nil, nilDependency("invoice", "invoices")
	}
	if emitter == nil {
		return nil, nilDependency("invoice", "emitter")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &invoiceServiceImpl{
		invoices: invoices,
		emitter:  emitter,
		logger:   logger.With(slog.String("component", "invoice_service")),
	}, nil
}

func (s *invoiceServiceImpl) List(ctx context.Context) ([]domain.InvoiceSummary, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, NewServiceError("invoice", "list", "failed to list invoices", err)
	}
	return invoices, nil
}

func (s *invoiceServiceImpl) Get(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("invoice", "get", "failed to get invoice", err)
	}
	return invoice, nil
}

func (s *invoiceServiceImpl) Create(
	ctx context.Context,
	compCode string,
	amt float64,
) (*domain.Invoice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if compCode == "" {
		return nil, domain.NewValidationError("comp_code", "is required", nil)
	}
	if err := domain.ValidateAmount(amt); err != nil {
		log.Debug("invalid invoice amount", slog.Float64("amt", amt))
		return nil, err
	}

	created, err := s.invoices.Create(ctx, compCode, amt)
	if err != nil {
		return nil, NewServiceError("invoice", "create", "failed to create invoice", err)
	}

	emit(ctx, s.emitter, s.logger, events.InvoiceCreated, events.EntityInvoice,
		strconv.FormatInt(created.ID, 10), created)
	return created, nil
}

func (s *invoiceServiceImpl) UpdateAmount(
	ctx context.Context,
	id int64,
	amt float64,
) (*domain.Invoice, error) {
	if err := domain.ValidateAmount(amt); err != nil {
		return nil, err
	}

	updated, err := s.invoices.UpdateAmount(ctx, id, amt)
	if err != nil {
		return nil, NewServiceError("invoice", "update", "failed to update invoice", err)
	}

	emit(ctx, s.emitter, s.logger, events.InvoiceUpdated, events.EntityInvoice,
		strconv.FormatInt(updated.ID, 10), updated)
	return updated, nil
}

func (s *invoiceServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		return NewServiceError("invoice", "delete", "failed to delete invoice", err)
	}

	emit(ctx, s.emitter, s.logger, events.InvoiceDeleted, events.EntityInvoice,
		strconv.FormatInt(id, 10), nil)
	return nil
}
