package store

import (
	"context"

	"github.com/phrazzld/biztime-api/internal/domain"
)

// IndustryStore defines the interface for industry persistence and the
// company association table.
type IndustryStore interface {
	// ListWithCompanies returns every industry with the codes of its
	// associated companies. An industry without associations has an empty
	// CompanyCodes slice.
	ListWithCompanies(ctx context.Context) ([]domain.IndustryWithCompanies, error)

	// Create inserts the industry and returns the stored row.
	// Returns ErrIndustryExists if the code is taken.
	Create(ctx context.Context, industry *domain.Industry) (*domain.Industry, error)

	// Associate links a company to an industry. Repeating a pair inserts
	// another row.
	// Returns ErrIndustryNotFound if the industry does not exist and
	// ErrInvalidEntity if the company does not exist.
	Associate(ctx context.Context, industryCode, companyCode string) (*domain.Association, error)
}
