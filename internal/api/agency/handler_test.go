package agency_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"locadora/internal/api/agency"
	"locadora/internal/domain"
	apperror "locadora/internal/errors"
	"locadora/internal/pkg/filestore"
	"locadora/internal/pkg/logger"
	"locadora/internal/repository/agencyrepo"
	"locadora/internal/service/agencyservice"
)

// newFileBackedRouter monta handler -> serviço -> repositório -> arquivo temporário.
func newFileBackedRouter(t *testing.T) (http.Handler, *filestore.Store) {
	t.Helper()
	log := logger.NewNop()
	store := filestore.NewStore(filepath.Join(t.TempDir(), "locadoras.json"), log)
	svc := agencyservice.NewService(agencyrepo.NewFileRepository(store, log), log)

	r := chi.NewRouter()
	r.Route("/locadoras", agency.NewHandler(svc, log).Routes)
	return r, store
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeAgency(t *testing.T, w *httptest.ResponseRecorder) domain.Agency {
	t.Helper()
	var a domain.Agency
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	return a
}

func TestAgencyLifecycle(t *testing.T) {
	h, _ := newFileBackedRouter(t)

	// Criação
	w := do(t, h, http.MethodPost, "/locadoras", `{"nome":"SUV Center","endereco":"Rua B, 20"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeAgency(t, w)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)
	assert.False(t, created.CreatedAt.IsZero())

	// Listagem
	w = do(t, h, http.MethodGet, "/locadoras", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.Agency
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	// Atualização sem "ativa" mantém o status; ID e criadoEm preservados.
	w = do(t, h, http.MethodPut, "/locadoras/"+created.ID, `{"nome":"SUV Center Norte","endereco":"Rua C, 30"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeAgency(t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "SUV Center Norte", updated.Name)
	assert.Equal(t, "Rua C, 30", updated.Address)
	assert.True(t, updated.Active)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	// Desativação explícita
	w = do(t, h, http.MethodPut, "/locadoras/"+created.ID, `{"nome":"SUV Center Norte","endereco":"Rua C, 30","ativa":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decodeAgency(t, w).Active)

	// Busca
	w = do(t, h, http.MethodGet, "/locadoras/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUV Center Norte", decodeAgency(t, w).Name)

	// Remoção e busca posterior
	w = do(t, h, http.MethodDelete, "/locadoras/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, h, http.MethodGet, "/locadoras/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreate_MissingAddressDoesNotMutate(t *testing.T) {
	h, store := newFileBackedRouter(t)

	w := do(t, h, http.MethodPost, "/locadoras", `{"nome":"Econômico Rio"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Category)
	assert.Contains(t, body.Message, "endereço")

	doc, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Agencies)
}

func TestCreate_MalformedJSON(t *testing.T) {
	h, _ := newFileBackedRouter(t)

	w := do(t, h, http.MethodPost, "/locadoras", `{"nome": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAndUpdate_TrailingDataIsRejected(t *testing.T) {
	h, store := newFileBackedRouter(t)

	for _, body := range []string{
		`{"nome":"a","endereco":"b"} xyz`,
		`{"nome":"a","endereco":"b"}{"nome":"c","endereco":"d"}`,
	} {
		w := do(t, h, http.MethodPost, "/locadoras", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	doc, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Agencies)

	w := do(t, h, http.MethodPost, "/locadoras", `{"nome":"a","endereco":"b"}`+"\n")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeAgency(t, w).ID

	w = do(t, h, http.MethodPut, "/locadoras/"+id, `{"nome":"a2","endereco":"b2"} lixo`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownID_Returns404(t *testing.T) {
	h, _ := newFileBackedRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := do(t, h, method, "/locadoras/nao-existe", "")
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}

	w := do(t, h, http.MethodPut, "/locadoras/nao-existe", `{"nome":"X","endereco":"Y"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList_EmptyIsArray(t *testing.T) {
	h, _ := newFileBackedRouter(t)

	w := do(t, h, http.MethodGet, "/locadoras", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// --- Mock do Serviço para os caminhos de erro interno ---

type MockAgencyService struct {
	mock.Mock
}

func (m *MockAgencyService) CreateAgency(ctx context.Context, input domain.AgencyInput) (domain.Agency, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Agency), args.Error(1)
}

func (m *MockAgencyService) GetAgencyByID(ctx context.Context, id string) (domain.Agency, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Agency), args.Error(1)
}

func (m *MockAgencyService) GetAllAgencies(ctx context.Context) ([]domain.Agency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Agency), args.Error(1)
}

func (m *MockAgencyService) UpdateAgency(ctx context.Context, id string, input domain.AgencyInput) (domain.Agency, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Agency), args.Error(1)
}

func (m *MockAgencyService) DeleteAgency(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGetAll_StorageFailureReturns500WithCause(t *testing.T) {
	svc := new(MockAgencyService)
	svc.On("GetAllAgencies", mock.Anything).
		Return(nil, apperror.NewStorageError("Falha ao listar locadoras", errors.New("permission denied")))

	r := chi.NewRouter()
	r.Route("/locadoras", agency.NewHandler(svc, logger.NewNop()).Routes)

	req := httptest.NewRequest(http.MethodGet, "/locadoras", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Category)
	assert.Contains(t, body.Message, "permission denied")
	svc.AssertExpectations(t)
}

func TestCreate_PassesDecodedInputToService(t *testing.T) {
	svc := new(MockAgencyService)
	inactive := false
	expected := domain.AgencyInput{Name: "Sedan Sul", Address: "Rua D", Active: &inactive}
	svc.On("CreateAgency", mock.Anything, expected).
		Return(domain.Agency{ID: "1", Name: "Sedan Sul", Address: "Rua D"}, nil)

	r := chi.NewRouter()
	r.Route("/locadoras", agency.NewHandler(svc, logger.NewNop()).Routes)

	w := do(t, r, http.MethodPost, "/locadoras", `{"nome":"Sedan Sul","endereco":"Rua D","ativa":false}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}
