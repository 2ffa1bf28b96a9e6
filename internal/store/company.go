package store

import (
	"context"

	"github.com/phrazzld/biztime-api/internal/domain"
)

// CompanyStore defines the interface for company persistence.
type CompanyStore interface {
	// List returns the code and name of every company.
	List(ctx context.Context) ([]domain.CompanySummary, error)

	// GetByCode returns a company with its industry codes and invoice ids.
	// Industries are distinct and in first-seen order; both slices are
	// empty, never nil, when nothing is linked.
	// Returns ErrCompanyNotFound if no company has the code.
	GetByCode(ctx context.Context, code string) (*domain.CompanyDetail, error)

	// Create inserts the company and returns the stored row.
	// Returns ErrCompanyExists if the code is taken.
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)

	// Update writes the description and, when non-nil, the name.
	// Returns ErrCompanyNotFound if no company has the code.
	Update(ctx context.Context, update domain.CompanyUpdate) (*domain.Company, error)

	// Delete removes the company. Invoices and industry associations are
	// removed by ON DELETE CASCADE in the schema.
	// Returns ErrCompanyNotFound if no company has the code.
	Delete(ctx context.Context, code string) error
}
