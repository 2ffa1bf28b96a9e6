package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/store"
)

// PostgresIndustryStore implements store.IndustryStore
// using a PostgreSQL database as the storage backend.
type PostgresIndustryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresIndustryStore creates an industry store on db.
// If logger is nil, the default logger is used.
func NewPostgresIndustryStore(db store.DBTX, logger *slog.Logger) *PostgresIndustryStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresIndustryStore{
		db:     db,
		logger: logger.With(slog.String("component", "industry_store")),
	}
}

var _ store.IndustryStore = (*PostgresIndustryStore)(nil)

// ListWithCompanies implements store.IndustryStore.ListWithCompanies.
// Rows of the left join are folded as they are read.
func (s *PostgresIndustryStore) ListWithCompanies(
	ctx context.Context,
) ([]domain.IndustryWithCompanies, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT i.code, i.industry, ci.company_code
		FROM industries i
		LEFT JOIN companies_industries ci ON ci.industry_code = i.code
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list industries", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	grouper := domain.NewIndustryGrouper()
	for rows.Next() {
		var row domain.IndustryCompanyRow
		var companyCode sql.NullString
		if err := rows.Scan(&row.Code, &row.Industry, &companyCode); err != nil {
			log.Error("failed to scan industry row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("industry", "list", "failed to scan row", err)
		}
		row.CompanyCode = nullableString(companyCode)
		grouper.Add(row)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating industry rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("industry", "list", "failed to read rows", err)
	}

	industries := grouper.Result()
	log.Debug("listed industries", slog.Int("count", len(industries)))
	return industries, nil
}

// Create implements store.IndustryStore.Create.
func (s *PostgresIndustryStore) Create(
	ctx context.Context,
	industry *domain.Industry,
) (*domain.Industry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := industry.Validate(); err != nil {
		log.Warn("industry validation failed during create",
			slog.String("error", err.Error()),
			slog.String("industry_code", industry.Code))
		return nil, err
	}

	query := `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
		RETURNING code, industry
	`
	var created domain.Industry
	err := s.db.QueryRowContext(ctx, query, industry.Code, industry.Industry).
		Scan(&created.Code, &created.Industry)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("industry code already exists", slog.String("industry_code", industry.Code))
			return nil, MapUniqueViolation(err, store.ErrIndustryExists)
		}
		log.Error("failed to create industry",
			slog.String("error", err.Error()),
			slog.String("industry_code", industry.Code))
		return nil, MapError(err)
	}

	log.Info("industry created", slog.String("industry_code", created.Code))
	return &created, nil
}

// Associate implements store.IndustryStore.Associate.
// The insert selects from industries so an unknown industry code inserts
// nothing and is reported as not found rather than as a constraint error.
func (s *PostgresIndustryStore) Associate(
	ctx context.Context,
	industryCode, companyCode string,
) (*domain.Association, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("industry_code", industryCode),
		slog.String("company_code", companyCode),
	)

	query := `
		INSERT INTO companies_industries (company_code, industry_code)
		SELECT $1, code FROM industries WHERE code = $2
		RETURNING company_code, industry_code
	`
	var assoc domain.Association
	err := s.db.QueryRowContext(ctx, query, companyCode, industryCode).
		Scan(&assoc.CompanyCode, &assoc.IndustryCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("industry not found for association")
			return nil, store.ErrIndustryNotFound
		}
		if IsForeignKeyViolation(err) {
			log.Warn("association references unknown company")
			return nil, fmt.Errorf("%w: company %q does not exist", store.ErrInvalidEntity, companyCode)
		}
		log.Error("failed to associate company with industry", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("company associated with industry")
	return &assoc, nil
}
