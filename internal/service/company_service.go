package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/events"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/store"
)

// CompanyService provides company operations.
type CompanyService interface {
	// List returns every company's code and name.
	List(ctx context.Context) ([]domain.CompanySummary, error)

	// Get returns a company with its industry codes and invoice ids.
	Get(ctx context.Context, code string) (*domain.CompanyDetail, error)

	// Create derives the code from name and stores the company.
	Create(ctx context.Context, name string, description *string) (*domain.Company, error)

	// Update writes the description and, when set, the name.
	Update(ctx context.Context, update domain.CompanyUpdate) (*domain.Company, error)

	// Delete removes a company together with its invoices and associations.
	Delete(ctx context.Context, code string) error
}

type companyServiceImpl struct {
	companies store.CompanyStore
	emitter   events.EventEmitter
	logger    *slog.Logger
}

// NewCompanyService creates a CompanyService.
// It returns an error if a required dependency is nil.
func NewCompanyService(
	companies store.CompanyStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (CompanyService, error) {
	if companies == nil {
		return nil, nilDependency("company", "companies")
	}
	if emitter == nil {
		return nil, nilDependency("company", "emitter")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &companyServiceImpl{
		companies: companies,
		emitter:   emitter,
		logger:    logger.With(slog.String("component", "company_service")),
	}, nil
}

func (s *companyServiceImpl) List(ctx context.Context) ([]domain.CompanySummary, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, NewServiceError("company", "list", "failed to list companies", err)
	}
	return companies, nil
}

func (s *companyServiceImpl) Get(ctx context.Context, code string) (*domain.CompanyDetail, error) {
	company, err := s.companies.GetByCode(ctx, code)
	if err != nil {
		return nil, NewServiceError("company", "get", "failed to get company", err)
	}
	return company, nil
}

func (s *companyServiceImpl) Create(
	ctx context.Context,
	name string,
	description *string,
) (*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	company, err := domain.NewCompany(name, description)
	if err != nil {
		log.Debug("invalid company", slog.String("error", err.Error()))
		return nil, err
	}

	created, err := s.companies.Create(ctx, company)
	if err != nil {
		return nil, NewServiceError("company", "create", "failed to create company", err)
	}

	emit(ctx, s.emitter, s.logger, events.CompanyCreated, events.EntityCompany, created.Code, created)
	return created, nil
}

func (s *companyServiceImpl) Update(
	ctx context.Context,
	update domain.CompanyUpdate,
) (*domain.Company, error) {
	if err := update.Normalize(); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Debug("invalid company update", slog.String("error", err.Error()))
		return nil, err
	}

	updated, err := s.companies.Update(ctx, update)
	if err != nil {
		return nil, NewServiceError("company", "update", "failed to update company", err)
	}

	emit(ctx, s.emitter, s.logger, events.CompanyUpdated, events.EntityCompany, updated.Code, updated)
	return updated, nil
}

func (s *companyServiceImpl) Delete(ctx context.Context, code string) error {
	if err := s.companies.Delete(ctx, code); err != nil {
		return NewServiceError("company", "delete", "failed to delete company", err)
	}

	emit(ctx, s.emitter, s.logger, events.CompanyDeleted, events.EntityCompany, code, nil)
	return nil
}
