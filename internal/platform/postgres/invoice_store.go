package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/store"
)

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

// PostgresInvoiceStore implements store.InvoiceStore
// using a PostgreSQL database as the storage backend.
type PostgresInvoiceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresInvoiceStore creates an invoice store on db.
// If logger is nil, the default logger is used.
func NewPostgresInvoiceStore(db store.DBTX, logger *slog.Logger) *PostgresInvoiceStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresInvoiceStore{
		db:     db,
		logger: logger.With(slog.String("component", "invoice_store")),
	}
}

var _ store.InvoiceStore = (*PostgresInvoiceStore)(nil)

// List implements store.InvoiceStore.List.
func (s *PostgresInvoiceStore) List(ctx context.Context) ([]domain.InvoiceSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, comp_code FROM invoices`)
	if err != nil {
		log.Error("failed to list invoices", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	invoices := []domain.InvoiceSummary{}
	for rows.Next() {
		var inv domain.InvoiceSummary
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			log.Error("failed to scan invoice row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("invoice", "list", "failed to scan row", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating invoice rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("invoice", "list", "failed to read rows", err)
	}

	log.Debug("listed invoices", slog.Int("count", len(invoices)))
	return invoices, nil
}

// GetByID implements store.InvoiceStore.GetByID.
func (s *PostgresInvoiceStore) GetByID(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("invoice_id", id))

	if !invoiceIDInRange(id) {
		log.Debug("invoice id outside column range")
		return nil, store.ErrInvoiceNotFound
	}

	query := `
		SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date, c.code, c.name, c.description
		FROM invoices i
		INNER JOIN companies c ON c.code = i.comp_code
		WHERE i.id = $1
	`
	var inv domain.InvoiceDetail
	var paidDate sql.NullTime
	var description sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID,
		&inv.Amt,
		&inv.Paid,
		&inv.AddDate,
		&paidDate,
		&inv.Company.Code,
		&inv.Company.Name,
		&description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("invoice not found")
			return nil, store.ErrInvoiceNotFound
		}
		log.Error("failed to get invoice", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	inv.PaidDate = nullableTime(paidDate)
	inv.Company.Description = nullableString(description)

	log.Debug("invoice retrieved")
	return &inv, nil
}

// Create implements store.InvoiceStore.Create.
func (s *PostgresInvoiceStore) Create(
	ctx context.Context,
	compCode string,
	amt float64,
) (*domain.Invoice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("comp_code", compCode))

	if err := domain.ValidateAmount(amt); err != nil {
		log.Warn("invoice validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + invoiceColumns
	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, compCode, amt))
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("invoice references unknown company")
			return nil, fmt.Errorf("%w: company %q does not exist", store.ErrInvalidEntity, compCode)
		}
		log.Error("failed to create invoice", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("invoice created", slog.Int64("invoice_id", inv.ID))
	return inv, nil
}

// UpdateAmount implements store.InvoiceStore.UpdateAmount.
func (s *PostgresInvoiceStore) UpdateAmount(
	ctx context.Context,
	id int64,
	amt float64,
) (*domain.Invoice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("invoice_id", id))

	if err := domain.ValidateAmount(amt); err != nil {
		log.Warn("invoice validation failed during update", slog.String("error", err.Error()))
		return nil, err
	}

	if !invoiceIDInRange(id) {
		log.Debug("invoice id outside column range")
		return nil, store.ErrInvoiceNotFound
	}

	query := `
		UPDATE invoices
		SET amt = $2
		WHERE id = $1
		RETURNING ` + invoiceColumns
	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id, amt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("invoice not found for update")
			return nil, store.ErrInvoiceNotFound
		}
		log.Error("failed to update invoice", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("invoice updated")
	return inv, nil
}

// Delete implements store.InvoiceStore.Delete.
func (s *PostgresInvoiceStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("invoice_id", id))

	if !invoiceIDInRange(id) {
		log.Debug("invoice id outside column range")
		return store.ErrInvoiceNotFound
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete invoice", slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrInvoiceNotFound); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("invoice not found for delete")
		} else {
			log.Error("failed to check deleted rows", slog.String("error", err.Error()))
		}
		return err
	}

	log.Info("invoice deleted")
	return nil
}

// invoiceIDInRange reports whether id fits the serial invoices.id column.
func invoiceIDInRange(id int64) bool {
	return id > 0 && id <= math.MaxInt32
}

func scanInvoice(row *sql.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	var paidDate sql.NullTime
	if err := row.Scan(
		&inv.ID,
		&inv.CompCode,
		&inv.Amt,
		&inv.Paid,
		&inv.AddDate,
		&paidDate,
	); err != nil {
		return nil, err
	}
	inv.PaidDate = nullableTime(paidDate)
	return &inv, nil
}

func nullableTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
