package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/events"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/store"
)

// IndustryService provides industry and association operations.
type IndustryService interface {
	// List returns every industry with the codes of its companies.
	List(ctx context.Context) ([]domain.IndustryWithCompanies, error)

	// Create normalises code and stores the industry.
	Create(ctx context.Context, code, industry string) (*domain.Industry, error)

	// Associate links companyCode to the industry identified by industryCode.
	Associate(ctx context.Context, industryCode, companyCode string) (*domain.Association, error)
}

type industryServiceImpl struct {
	industries store.IndustryStore
	emitter    events.EventEmitter
	logger     *slog.Logger
}

// NewIndustryService creates an IndustryService.
// It returns an error if a required dependency is nil.
func NewIndustryService(
	industries store.IndustryStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (IndustryService, error) {
	if industries == nil {
		return nil, nilDependency("industry", "industries")
	}
	if emitter == nil {
		return nil, nilDependency("industry", "emitter")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &industryServiceImpl{
		industries: industries,
		emitter:    emitter,
		logger:     logger.With(slog.String("component", "industry_service")),
	}, nil
}

func (s *industryServiceImpl) List(ctx context.Context) ([]domain.IndustryWithCompanies, error) {
	industries, err := s.industries.ListWithCompanies(ctx)
	if err != nil {
		return nil, NewServiceError("industry", "list", "failed to list industries", err)
	}
	return industries, nil
}

func (s *industryServiceImpl) Create(
	ctx context.Context,
	code, name string,
) (*domain.Industry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	industry, err := domain.NewIndustry(code, name)
	if err != nil {
		log.Debug("invalid industry", slog.String("error", err.Error()))
		return nil, err
	}

	created, err := s.industries.Create(ctx, industry)
	if err != nil {
		return nil, NewServiceError("industry", "create", "failed to create industry", err)
	}

	emit(ctx, s.emitter, s.logger, events.IndustryCreated, events.EntityIndustry, created.Code, created)
	return created, nil
}

func (s *industryServiceImpl) Associate(
	ctx context.Context,
	industryCode, companyCode string,
) (*domain.Association, error) {
	if strings.TrimSpace(companyCode) == "" {
		return nil, domain.NewValidationError("company_code", "is required", nil)
	}

	assoc, err := s.industries.Associate(ctx, industryCode, companyCode)
	if err != nil {
		return nil, NewServiceError("industry", "associate", "failed to associate company", err)
	}

	emit(ctx, s.emitter, s.logger, events.IndustryAssociated, events.EntityAssociation,
		assoc.IndustryCode, assoc)
	return assoc, nil
}
