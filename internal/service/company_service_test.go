package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/events"
	"github.com/phrazzld/biztime-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCompanyService(t *testing.T) (CompanyService, *MockCompanyStore, *recordingEmitter) {
	t.Helper()
	companies := &MockCompanyStore{}
	emitter := &recordingEmitter{}
	svc, err := NewCompanyService(companies, emitter, nil)
	require.NoError(t, err)
	return svc, companies, emitter
}

func TestNewCompanyService_NilDependencies(t *testing.T) {
	_, err := NewCompanyService(nil, &recordingEmitter{}, nil)
	assert.ErrorIs(t, err, ErrNilDependency)

	_, err = NewCompanyService(&MockCompanyStore{}, nil, nil)
	assert.ErrorIs(t, err, ErrNilDependency)
}

func TestCompanyService_Create(t *testing.T) {
	svc, companies, emitter := newCompanyService(t)
	ctx := context.Background()
	desc := "Big Blue"

	companies.On("Create", ctx, mock.MatchedBy(func(c *domain.Company) bool {
		return c.Code == "international-business-machines" && c.Name == "International Business Machines"
	})).Return(&domain.Company{
		Code:        "international-business-machines",
		Name:        "International Business Machines",
		Description: &desc,
	}, nil)

	got, err := svc.Create(ctx, "International Business Machines", &desc)
	require.NoError(t, err)
	assert.Equal(t, "international-business-machines", got.Code)
	assert.Equal(t, []string{events.CompanyCreated}, emitter.types())
	assert.Equal(t, "international-business-machines", emitter.events[0].Key)
	companies.AssertExpectations(t)
}

func TestCompanyService_CreateRequiresName(t *testing.T) {
	svc, companies, emitter := newCompanyService(t)

	_, err := svc.Create(context.Background(), "   ", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	companies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, emitter.types())
}

func TestCompanyService_CreateDuplicate(t *testing.T) {
	svc, companies, emitter := newCompanyService(t)

	companies.On("Create", mock.Anything, mock.Anything).Return(nil, store.ErrCompanyExists)

	_, err := svc.Create(context.Background(), "Apple", nil)
	assert.ErrorIs(t, err, store.ErrDuplicate)
	assert.Empty(t, emitter.types(), "failed mutations emit nothing")
}

func TestCompanyService_Get(t *testing.T) {
	svc, companies, _ := newCompanyService(t)

	detail := &domain.CompanyDetail{
		Company:    domain.Company{Code: "apple", Name: "Apple"},
		Industries: []string{"tech"},
		Invoices:   []int64{1},
	}
	companies.On("GetByCode", mock.Anything, "apple").Return(detail, nil)
	companies.On("GetByCode", mock.Anything, "ghost").Return(nil, store.ErrCompanyNotFound)

	got, err := svc.Get(context.Background(), "apple")
	require.NoError(t, err)
	assert.Equal(t, detail, got)

	_, err = svc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrCompanyNotFound)
}

func TestCompanyService_ListWrapsUnexpectedErrors(t *testing.T) {
	svc, companies, _ := newCompanyService(t)

	cause := errors.New("connection refused")
	companies.On("List", mock.Anything).Return(nil, cause)

	_, err := svc.List(context.Background())
	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "list", svcErr.Operation)
	assert.ErrorIs(t, err, cause)
}

func TestCompanyService_UpdateAndDelete(t *testing.T) {
	svc, companies, emitter := newCompanyService(t)
	name := "Apple Inc"
	update := domain.CompanyUpdate{Code: "apple", Name: &name}

	companies.On("Update", mock.Anything, update).
		Return(&domain.Company{Code: "apple", Name: name}, nil)
	companies.On("Delete", mock.Anything, "apple").Return(nil)
	companies.On("Delete", mock.Anything, "ghost").Return(store.ErrCompanyNotFound)

	got, err := svc.Update(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)

	require.NoError(t, svc.Delete(context.Background(), "apple"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "ghost"), store.ErrNotFound)

	assert.Equal(t, []string{events.CompanyUpdated, events.CompanyDeleted}, emitter.types())
}

func TestCompanyService_UpdateRejectsBlankName(t *testing.T) {
	svc, companies, emitter := newCompanyService(t)
	blank := "   "

	_, err := svc.Update(context.Background(), domain.CompanyUpdate{Code: "apple", Name: &blank})
	assert.ErrorIs(t, err, domain.ErrEmptyCompanyName)
	companies.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Empty(t, emitter.types())
}

func TestCompanyService_EmitFailureDoesNotFailRequest(t *testing.T) {
	companies := &MockCompanyStore{}
	emitter := &recordingEmitter{err: errors.New("kafka down")}
	svc, err := NewCompanyService(companies, emitter, nil)
	require.NoError(t, err)

	companies.On("Delete", mock.Anything, "apple").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "apple"))
	assert.Len(t, emitter.types(), 1)
}
