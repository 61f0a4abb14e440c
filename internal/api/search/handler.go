package search

import (
	"context"
	"net/http"

	"locadora/internal/api/response"
	"locadora/internal/domain"
	"locadora/internal/pkg/logger"
)

// SearchService é o contrato do agregador de ofertas.
type SearchService interface {
	Search(ctx context.Context) ([]domain.Offer, error)
}

// Handler expõe a pesquisa de veículos.
type Handler struct {
	Service SearchService
	Logger  logger.Logger
}

// NewHandler cria o Handler de pesquisa.
func NewHandler(svc SearchService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// SearchHandler lida com a requisição GET /pesquisa.
// @Summary Pesquisa veículos disponíveis
// @Description Consulta o inventário de cada locadora ativa, em sequência, e concatena as ofertas.
// @Description Se qualquer locadora falhar, a pesquisa inteira retorna 500.
// @Tags pesquisa
// @Produce json
// @Success 200 {array} domain.Offer
// @Failure 429 {string} string "Limite de requisições excedido"
// @Failure 500 {object} domain.ErrorResponse "Falha ao consultar uma locadora"
// @Router /pesquisa [get]
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Service.Search(r.Context())
	response.Handle(w, r, h.Logger, offers, err, http.StatusOK)
}
