package searchservice_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"locadora/internal/domain"
	apperror "locadora/internal/errors"
	"locadora/internal/inventory"
	"locadora/internal/pkg/filestore"
	"locadora/internal/pkg/logger"
	"locadora/internal/repository/agencyrepo"
	"locadora/internal/service/searchservice"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MockAgencyLister struct {
	mock.Mock
}

func (m *MockAgencyLister) GetAllAgencies(ctx context.Context) ([]domain.Agency, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Agency), args.Error(1)
}

type MockInventorySource struct {
	mock.Mock
}

func (m *MockInventorySource) FetchOffers(ctx context.Context, agency domain.Agency) ([]domain.Offer, error) {
	args := m.Called(ctx, agency)
	return args.Get(0).([]domain.Offer), args.Error(1)
}

type recordedSearch struct {
	agencies, offers int
	err              error
}

type fakeRecorder struct {
	calls []recordedSearch
}

func (f *fakeRecorder) ObserveSearch(agencies, offers int, err error) {
	f.calls = append(f.calls, recordedSearch{agencies, offers, err})
}

func TestSearch_OnlyActiveAgenciesInOrder(t *testing.T) {
	lister := new(MockAgencyLister)
	source := new(MockInventorySource)
	rec := &fakeRecorder{}

	a := domain.Agency{ID: "a", Name: "A", Active: true}
	b := domain.Agency{ID: "b", Name: "B", Active: false}
	c := domain.Agency{ID: "c", Name: "C", Active: true}
	lister.On("GetAllAgencies", mock.Anything).Return([]domain.Agency{a, b, c}, nil)
	source.On("FetchOffers", mock.Anything, a).Return([]domain.Offer{{Name: "a1"}, {Name: "a2"}}, nil).Once()
	source.On("FetchOffers", mock.Anything, c).Return([]domain.Offer{{Name: "c1"}}, nil).Once()

	svc := searchservice.NewService(lister, source, rec, logger.NewNop())
	offers, err := svc.Search(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "c1"}, []string{offers[0].Name, offers[1].Name, offers[2].Name})
	source.AssertNotCalled(t, "FetchOffers", mock.Anything, b)
	source.AssertExpectations(t)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, recordedSearch{agencies: 2, offers: 3}, rec.calls[0])
}

func TestSearch_NoActiveAgenciesReturnsEmptyList(t *testing.T) {
	lister := new(MockAgencyLister)
	source := new(MockInventorySource)
	lister.On("GetAllAgencies", mock.Anything).Return([]domain.Agency{{ID: "x", Active: false}}, nil)

	svc := searchservice.NewService(lister, source, nil, logger.NewNop())
	offers, err := svc.Search(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)
	source.AssertNotCalled(t, "FetchOffers", mock.Anything, mock.Anything)
}

func TestSearch_SingleFailureAbortsWholeSearch(t *testing.T) {
	lister := new(MockAgencyLister)
	source := new(MockInventorySource)
	rec := &fakeRecorder{}

	a := domain.Agency{ID: "a", Name: "Alfa", Active: true}
	b := domain.Agency{ID: "b", Name: "Beta", Active: true}
	c := domain.Agency{ID: "c", Name: "Gama", Active: true}
	lister.On("GetAllAgencies", mock.Anything).Return([]domain.Agency{a, b, c}, nil)
	source.On("FetchOffers", mock.Anything, a).Return([]domain.Offer{{Name: "a1"}}, nil)
	source.On("FetchOffers", mock.Anything, b).Return([]domain.Offer(nil), inventory.ErrUnavailable)

	svc := searchservice.NewService(lister, source, rec, logger.NewNop())
	offers, err := svc.Search(context.Background())

	assert.Nil(t, offers)
	assert.IsType(t, &apperror.InternalError{}, err)
	assert.ErrorIs(t, err, inventory.ErrUnavailable)
	assert.Contains(t, err.Error(), "Beta")
	source.AssertNotCalled(t, "FetchOffers", mock.Anything, c)
	require.Len(t, rec.calls, 1)
	assert.Error(t, rec.calls[0].err)
}

func TestSearch_ClientCancellationIsNotAnAgencyFailure(t *testing.T) {
	lister := new(MockAgencyLister)
	rec := &fakeRecorder{}
	a := domain.Agency{ID: "a", Name: "Alfa", Active: true}
	lister.On("GetAllAgencies", mock.Anything).Return([]domain.Agency{a}, nil)

	// A espera simulada é longa; o cancelamento chega no meio dela.
	source := inventory.NewMockSource(nil, time.Hour, inventory.NoFaults{}, logger.NewNop())
	svc := searchservice.NewService(lister, source, rec, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(20*time.Millisecond, cancel)
	defer timer.Stop()

	offers, err := svc.Search(ctx)

	assert.Nil(t, offers)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, apperror.IsNotFound(err))
	var internalErr *apperror.InternalError
	assert.False(t, errors.As(err, &internalErr), "cancelamento não deve virar falha da locadora")
	require.Len(t, rec.calls, 1)
	assert.ErrorIs(t, rec.calls[0].err, context.Canceled)
}

func TestSearch_ListingFailurePropagates(t *testing.T) {
	lister := new(MockAgencyLister)
	source := new(MockInventorySource)
	listErr := apperror.NewStorageError("Falha ao buscar todas as locadoras", errors.New("permission denied"))
	lister.On("GetAllAgencies", mock.Anything).Return([]domain.Agency(nil), listErr)

	svc := searchservice.NewService(lister, source, nil, logger.NewNop())
	_, err := svc.Search(context.Background())

	assert.Equal(t, listErr, err)
}

// Exemplo de ponta a ponta sobre o arquivo real: uma locadora "Econômico Rio" ativa.
func TestSearch_EconomyExampleOverFileStore(t *testing.T) {
	ctx := context.Background()
	store := filestore.NewStore(filepath.Join(t.TempDir(), "locadoras.json"), logger.NewNop())
	require.NoError(t, store.Write(ctx, filestore.Document{Agencies: []domain.Agency{
		{ID: "1", Name: "Econômico Rio", Active: true},
		{ID: "2", Name: "SUV Parada", Active: false},
	}}))

	repo := agencyrepo.NewFileRepository(store, logger.NewNop())
	source := inventory.NewMockSource(repo, 0, inventory.NoFaults{}, logger.NewNop())
	svc := searchservice.NewService(repo, source, nil, logger.NewNop())

	offers, err := svc.Search(ctx)

	require.NoError(t, err)
	require.Len(t, offers, 3)
	for i, price := range []float64{120, 110, 125} {
		assert.Equal(t, inventory.CategoryEconomy, offers[i].Category)
		assert.Equal(t, price, offers[i].Price)
	}
}
