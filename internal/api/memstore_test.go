package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/store"
)

// memDB is an in-memory stand-in for the PostgreSQL schema, with the same
// uniqueness, foreign key and cascade rules.
type memDB struct {
	mu         sync.Mutex
	companies  []domain.Company
	industries []domain.Industry
	assocs     []domain.Association
	invoices   []domain.Invoice
	nextID     int64
	now        time.Time
}

func newMemDB() *memDB {
	return &memDB{nextID: 1, now: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
}

func (db *memDB) companyIndex(code string) int {
	for i, c := range db.companies {
		if c.Code == code {
			return i
		}
	}
	return -1
}

func (db *memDB) industryIndex(code string) int {
	for i, ind := range db.industries {
		if ind.Code == code {
			return i
		}
	}
	return -1
}

func (db *memDB) invoiceIndex(id int64) int {
	for i, inv := range db.invoices {
		if inv.ID == id {
			return i
		}
	}
	return -1
}

type memCompanies struct{ db *memDB }

func (s memCompanies) List(ctx context.Context) ([]domain.CompanySummary, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := make([]domain.CompanySummary, 0, len(s.db.companies))
	for _, c := range s.db.companies {
		out = append(out, domain.CompanySummary{Code: c.Code, Name: c.Name})
	}
	return out, nil
}

func (s memCompanies) GetByCode(ctx context.Context, code string) (*domain.CompanyDetail, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	i := s.db.companyIndex(code)
	if i < 0 {
		return nil, store.ErrCompanyNotFound
	}

	var codes []*string
	for _, a := range s.db.assocs {
		if a.CompanyCode == code {
			industryCode := a.IndustryCode
			codes = append(codes, &industryCode)
		}
	}
	invoices := []int64{}
	for _, inv := range s.db.invoices {
		if inv.CompCode == code {
			invoices = append(invoices, inv.ID)
		}
	}
	return &domain.CompanyDetail{
		Company:    s.db.companies[i],
		Industries: domain.CollectIndustryCodes(codes),
		Invoices:   invoices,
	}, nil
}

func (s memCompanies) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, c := range s.db.companies {
		if c.Code == company.Code || c.Name == company.Name {
			return nil, fmt.Errorf("%w: %s", store.ErrCompanyExists, company.Code)
		}
	}
	s.db.companies = append(s.db.companies, *company)
	created := *company
	return &created, nil
}

func (s memCompanies) Update(ctx context.Context, update domain.CompanyUpdate) (*domain.Company, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	i := s.db.companyIndex(update.Code)
	if i < 0 {
		return nil, store.ErrCompanyNotFound
	}
	if update.Name != nil {
		s.db.companies[i].Name = *update.Name
	}
	s.db.companies[i].Description = update.Description
	updated := s.db.companies[i]
	return &updated, nil
}

func (s memCompanies) Delete(ctx context.Context, code string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	i := s.db.companyIndex(code)
	if i < 0 {
		return store.ErrCompanyNotFound
	}
	s.db.companies = append(s.db.companies[:i], s.db.companies[i+1:]...)

	invoices := s.db.invoices[:0]
	for _, inv := range s.db.invoices {
		if inv.CompCode != code {
			invoices = append(invoices, inv)
		}
	}
	s.db.invoices = invoices

	assocs := s.db.assocs[:0]
	for _, a := range s.db.assocs {
		if a.CompanyCode != code {
			assocs = append(assocs, a)
		}
	}
	s.db.assocs = assocs
	return nil
}

type memIndustries struct{ db *memDB }

func (s memIndustries) ListWithCompanies(ctx context.Context) ([]domain.IndustryWithCompanies, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var rows []domain.IndustryCompanyRow
	for _, ind := range s.db.industries {
		matched := false
		for _, a := range s.db.assocs {
			if a.IndustryCode == ind.Code {
				companyCode := a.CompanyCode
				rows = append(rows, domain.IndustryCompanyRow{
					Code: ind.Code, Industry: ind.Industry, CompanyCode: &companyCode,
				})
				matched = true
			}
		}
		if !matched {
			rows = append(rows, domain.IndustryCompanyRow{Code: ind.Code, Industry: ind.Industry})
		}
	}
	return domain.GroupIndustryRows(rows), nil
}

func (s memIndustries) Create(ctx context.Context, industry *domain.Industry) (*domain.Industry, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.industryIndex(industry.Code) >= 0 {
		return nil, fmt.Errorf("%w: %s", store.ErrIndustryExists, industry.Code)
	}
	s.db.industries = append(s.db.industries, *industry)
	created := *industry
	return &created, nil
}

func (s memIndustries) Associate(ctx context.Context, industryCode, companyCode string) (*domain.Association, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.industryIndex(industryCode) < 0 {
		return nil, store.ErrIndustryNotFound
	}
	if s.db.companyIndex(companyCode) < 0 {
		return nil, fmt.Errorf("%w: unknown company", store.ErrInvalidEntity)
	}
	a := domain.Association{CompanyCode: companyCode, IndustryCode: industryCode}
	s.db.assocs = append(s.db.assocs, a)
	return &a, nil
}

type memInvoices struct{ db *memDB }

func (s memInvoices) List(ctx context.Context) ([]domain.InvoiceSummary, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := make([]domain.InvoiceSummary, 0, len(s.db.invoices))
	for _, inv := range s.db.invoices {
		out = append(out, domain.InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}
	return out, nil
}

func (s memInvoices) GetByID(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	i := s.db.invoiceIndex(id)
	if i < 0 {
		return nil, store.ErrInvoiceNotFound
	}
	inv := s.db.invoices[i]
	company := s.db.companies[s.db.companyIndex(inv.CompCode)]
	return &domain.InvoiceDetail{
		ID:       inv.ID,
		Company:  company,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}, nil
}

func (s memInvoices) Create(ctx context.Context, compCode string, amt float64) (*domain.Invoice, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.companyIndex(compCode) < 0 {
		return nil, fmt.Errorf("%w: unknown company", store.ErrInvalidEntity)
	}
	inv := domain.Invoice{ID: s.db.nextID, CompCode: compCode, Amt: amt, AddDate: s.db.now}
	s.db.nextID++
	s.db.invoices = append(s.db.invoices, inv)
	return &inv, nil
}

func (s memInvoices) UpdateAmount(ctx context.Context, id int64, amt float64) (*domain.Invoice, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	i := s.db.invoiceIndex(id)
	if i < 0 {
		return nil, store.ErrInvoiceNotFound
	}
	s.db.invoices[i].Amt = amt
	updated := s.db.invoices[i]
	return &updated, nil
}

func (s memInvoices) Delete(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	i := s.db.invoiceIndex(id)
	if i < 0 {
		return store.ErrInvoiceNotFound
	}
	s.db.invoices = append(s.db.invoices[:i], s.db.invoices[i+1:]...)
	return nil
}
