package response_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"locadora/internal/api/response"
	"locadora/internal/domain"
	apperror "locadora/internal/errors"
	"locadora/internal/pkg/logger"
)

func TestHandle_Success(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/locadoras", nil)

	response.Handle(w, r, logger.NewNop(), []string{"a"}, nil, http.StatusOK)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `["a"]`, w.Body.String())
}

func TestHandle_NilDataWritesNoBody(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/locadoras/1", nil)

	response.Handle(w, r, logger.NewNop(), nil, nil, http.StatusNoContent)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validação", apperror.NewValidationError("nome obrigatório"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"não encontrado", apperror.NewNotFoundError("locadora 1"), http.StatusNotFound, "NOT_FOUND"},
		{"interno", apperror.NewStorageError("falha", errors.New("disco cheio")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"não tipado", errors.New("boom"), http.StatusInternalServerError, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			response.Error(w, r, logger.NewNop(), tt.err)

			require.Equal(t, tt.status, w.Code)
			var body domain.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.category, body.Category)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestError_ClientCancellationLoggedAsWarn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/pesquisa", nil)

	response.Error(w, r, logger.New(zap.New(core)), fmt.Errorf("pesquisa interrompida: %w", context.Canceled))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}
