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

// PostgresCompanyStore implements store.CompanyStore
// using a PostgreSQL database as the storage backend.
type PostgresCompanyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCompanyStore creates a company store on db.
// If logger is nil, the default logger is used.
func NewPostgresCompanyStore(db store.DBTX, logger *slog.Logger) *PostgresCompanyStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCompanyStore{
		db:     db,
		logger: logger.With(slog.String("component", "company_store")),
	}
}

var _ store.CompanyStore = (*PostgresCompanyStore)(nil)

// List implements store.CompanyStore.List.
func (s *PostgresCompanyStore) List(ctx context.Context) ([]domain.CompanySummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT code, name FROM companies`)
	if err != nil {
		log.Error("failed to list companies", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	companies := []domain.CompanySummary{}
	for rows.Next() {
		var c domain.CompanySummary
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			log.Error("failed to scan company row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("company", "list", "failed to scan row", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating company rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("company", "list", "failed to read rows", err)
	}

	log.Debug("listed companies", slog.Int("count", len(companies)))
	return companies, nil
}

// GetByCode implements store.CompanyStore.GetByCode.
// It issues one join query for the company and its industries, then one
// query for invoice ids.
func (s *PostgresCompanyStore) GetByCode(
	ctx context.Context,
	code string,
) (*domain.CompanyDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("company_code", code))

	query := `
		SELECT c.code, c.name, c.description, ci.industry_code
		FROM companies c
		LEFT JOIN companies_industries ci ON ci.company_code = c.code
		WHERE c.code = $1
	`
	rows, err := s.db.QueryContext(ctx, query, code)
	if err != nil {
		log.Error("failed to query company", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var detail *domain.CompanyDetail
	var industryCodes []*string
	for rows.Next() {
		var c domain.Company
		var description, industryCode sql.NullString
		if err := rows.Scan(&c.Code, &c.Name, &description, &industryCode); err != nil {
			log.Error("failed to scan company row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("company", "get", "failed to scan row", err)
		}
		if detail == nil {
			c.Description = nullableString(description)
			detail = &domain.CompanyDetail{Company: c}
		}
		industryCodes = append(industryCodes, nullableString(industryCode))
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating company rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("company", "get", "failed to read rows", err)
	}

	if detail == nil {
		log.Debug("company not found")
		return nil, store.ErrCompanyNotFound
	}
	detail.Industries = domain.CollectIndustryCodes(industryCodes)

	invoices, err := s.invoiceIDs(ctx, code)
	if err != nil {
		log.Error("failed to query company invoices", slog.String("error", err.Error()))
		return nil, err
	}
	detail.Invoices = invoices

	log.Debug("company retrieved",
		slog.Int("industries", len(detail.Industries)),
		slog.Int("invoices", len(detail.Invoices)))
	return detail, nil
}

func (s *PostgresCompanyStore) invoiceIDs(ctx context.Context, code string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM invoices WHERE comp_code = $1`, code)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, store.NewStoreError("company", "get", "failed to scan invoice id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("company", "get", "failed to read invoice ids", err)
	}
	return ids, nil
}

// Create implements store.CompanyStore.Create.
func (s *PostgresCompanyStore) Create(
	ctx context.Context,
	company *domain.Company,
) (*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := company.Validate(); err != nil {
		log.Warn("company validation failed during create",
			slog.String("error", err.Error()),
			slog.String("company_code", company.Code))
		return nil, err
	}

	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`
	created, err := scanCompany(s.db.QueryRowContext(
		ctx, query, company.Code, company.Name, company.Description,
	))
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("company code already exists", slog.String("company_code", company.Code))
			return nil, fmt.Errorf("%w: code %q", store.ErrCompanyExists, company.Code)
		}
		log.Error("failed to create company",
			slog.String("error", err.Error()),
			slog.String("company_code", company.Code))
		return nil, MapError(err)
	}

	log.Info("company created", slog.String("company_code", created.Code))
	return created, nil
}

// Update implements store.CompanyStore.Update.
func (s *PostgresCompanyStore) Update(
	ctx context.Context,
	update domain.CompanyUpdate,
) (*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("company_code", update.Code))

	query := `
		UPDATE companies
		SET name = COALESCE($2, name), description = $3
		WHERE code = $1
		RETURNING code, name, description
	`
	updated, err := scanCompany(s.db.QueryRowContext(
		ctx, query, update.Code, update.Name, update.Description,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("company not found for update")
			return nil, store.ErrCompanyNotFound
		}
		log.Error("failed to update company", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("company updated")
	return updated, nil
}

// Delete implements store.CompanyStore.Delete.
func (s *PostgresCompanyStore) Delete(ctx context.Context, code string) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("company_code", code))

	result, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		log.Error("failed to delete company", slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCompanyNotFound); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("company not found for delete")
		} else {
			log.Error("failed to check deleted rows", slog.String("error", err.Error()))
		}
		return err
	}

	log.Info("company deleted")
	return nil
}

func scanCompany(row *sql.Row) (*domain.Company, error) {
	var c domain.Company
	var description sql.NullString
	if err := row.Scan(&c.Code, &c.Name, &description); err != nil {
		return nil, err
	}
	c.Description = nullableString(description)
	return &c, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
