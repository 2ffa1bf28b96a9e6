package service

import (
	"context"
	"sync"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockCompanyStore mocks store.CompanyStore
type MockCompanyStore struct {
	mock.Mock
}

func (m *MockCompanyStore) List(ctx context.Context) ([]domain.CompanySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanySummary), args.Error(1)
}

func (m *MockCompanyStore) GetByCode(ctx context.Context, code string) (*domain.CompanyDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyDetail), args.Error(1)
}

func (m *MockCompanyStore) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyStore) Update(ctx context.Context, update domain.CompanyUpdate) (*domain.Company, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyStore) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockIndustryStore mocks store.IndustryStore
type MockIndustryStore struct {
	mock.Mock
}

func (m *MockIndustryStore) ListWithCompanies(ctx context.Context) ([]domain.IndustryWithCompanies, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IndustryWithCompanies), args.Error(1)
}

func (m *MockIndustryStore) Create(ctx context.Context, industry *domain.Industry) (*domain.Industry, error) {
	args := m.Called(ctx, industry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Industry), args.Error(1)
}

func (m *MockIndustryStore) Associate(
	ctx context.Context,
	industryCode, companyCode string,
) (*domain.Association, error) {
	args := m.Called(ctx, industryCode, companyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Association), args.Error(1)
}

// MockInvoiceStore mocks store.InvoiceStore
type MockInvoiceStore struct {
	mock.Mock
}

func (m *MockInvoiceStore) List(ctx context.Context) ([]domain.InvoiceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceSummary), args.Error(1)
}

func (m *MockInvoiceStore) GetByID(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceStore) Create(ctx context.Context, compCode string, amt float64) (*domain.Invoice, error) {
	args := m.Called(ctx, compCode, amt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceStore) UpdateAmount(ctx context.Context, id int64, amt float64) (*domain.Invoice, error) {
	args := m.Called(ctx, id, amt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// recordingEmitter captures emitted events and optionally fails.
type recordingEmitter struct {
	mu     sync.Mutex
	events []*events.EntityEvent
	err    error
}

func (e *recordingEmitter) EmitEvent(_ context.Context, event *events.EntityEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return e.err
}

func (e *recordingEmitter) types() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.events))
	for _, ev := range e.events {
		out = append(out, ev.Type)
	}
	return out
}
