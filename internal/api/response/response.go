// Package response centraliza a escrita de respostas JSON e a tradução de erros de serviço.
package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"locadora/internal/domain"
	apperror "locadora/internal/errors"
	"locadora/internal/pkg/logger"
)

// JSON grava data como JSON com o status informado. data nil produz corpo vazio.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Error traduz err para o corpo padronizado {code, category, message}.
// 5xx são logados como Error; 4xx apenas em Debug; cancelamentos do cliente em Warn.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if errors.Is(err, context.Canceled) {
		log.Warn("Requisição cancelada pelo cliente.", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	} else if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	JSON(w, log, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// Handle escreve data com successStatus quando err é nil e o erro padronizado caso contrário.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}
	JSON(w, log, successStatus, data)
}
