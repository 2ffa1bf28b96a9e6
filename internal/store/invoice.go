package store

import (
	"context"

	"github.com/phrazzld/biztime-api/internal/domain"
)

// InvoiceStore defines the interface for invoice persistence.
type InvoiceStore interface {
	// List returns the id and company code of every invoice.
	List(ctx context.Context) ([]domain.InvoiceSummary, error)

	// GetByID returns the invoice joined to its company.
	// Returns ErrInvoiceNotFound if no invoice has the id.
	GetByID(ctx context.Context, id int64) (*domain.InvoiceDetail, error)

	// Create inserts an invoice for compCode; paid, add_date and paid_date
	// take their column defaults.
	// Returns ErrInvalidEntity if the company does not exist or the amount
	// violates the schema.
	Create(ctx context.Context, compCode string, amt float64) (*domain.Invoice, error)

	// UpdateAmount changes the amount of an invoice and returns the full row.
	// Returns ErrInvoiceNotFound if no invoice has the id.
	UpdateAmount(ctx context.Context, id int64, amt float64) (*domain.Invoice, error)

	// Delete removes the invoice.
	// Returns ErrInvoiceNotFound if no invoice has the id.
	Delete(ctx context.Context, id int64) error
}
