package agency

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"locadora/internal/api/response"
	"locadora/internal/domain"
	apperror "locadora/internal/errors"
	"locadora/internal/pkg/logger"
)

// AgencyService define o contrato que o Handler espera da camada de Serviço.
type AgencyService interface {
	CreateAgency(ctx context.Context, input domain.AgencyInput) (domain.Agency, error)
	GetAgencyByID(ctx context.Context, id string) (domain.Agency, error)
	GetAllAgencies(ctx context.Context) ([]domain.Agency, error)
	UpdateAgency(ctx context.Context, id string, input domain.AgencyInput) (domain.Agency, error)
	DeleteAgency(ctx context.Context, id string) error
}

// Handler agrupa os handlers HTTP de locadoras.
type Handler struct {
	Service AgencyService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AgencyService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// Routes registra as rotas de /locadoras no sub-roteador.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.CreateAgencyHandler)
	r.Get("/", h.GetAllAgenciesHandler)
	r.Get("/{id}", h.GetAgencyByIDHandler)
	r.Put("/{id}", h.UpdateAgencyHandler)
	r.Delete("/{id}", h.DeleteAgencyHandler)
}

// CreateAgencyHandler lida com a requisição POST /locadoras.
// @Summary Cadastra uma locadora
// @Description Cria uma locadora. "ativa" é opcional e assume true quando omitido.
// @Tags locadoras
// @Accept json
// @Produce json
// @Param locadora body domain.AgencyInput true "Dados da locadora"
// @Success 201 {object} domain.Agency "Locadora criada com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou campos obrigatórios ausentes"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /locadoras [post]
func (h *Handler) CreateAgencyHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	created, err := h.Service.CreateAgency(r.Context(), input)
	response.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// GetAllAgenciesHandler lida com a requisição GET /locadoras.
// @Summary Lista as locadoras
// @Description Retorna todas as locadoras cadastradas, ativas ou não, na ordem de cadastro.
// @Tags locadoras
// @Produce json
// @Success 200 {array} domain.Agency
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /locadoras [get]
func (h *Handler) GetAllAgenciesHandler(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.Service.GetAllAgencies(r.Context())
	response.Handle(w, r, h.Logger, agencies, err, http.StatusOK)
}

// GetAgencyByIDHandler lida com a requisição GET /locadoras/{id}.
// @Summary Busca uma locadora pelo ID
// @Tags locadoras
// @Produce json
// @Param id path string true "ID da locadora"
// @Success 200 {object} domain.Agency
// @Failure 404 {object} domain.ErrorResponse "Locadora não encontrada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /locadoras/{id} [get]
func (h *Handler) GetAgencyByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.Service.GetAgencyByID(r.Context(), id)
	response.Handle(w, r, h.Logger, found, err, http.StatusOK)
}

// UpdateAgencyHandler lida com a requisição PUT /locadoras/{id}.
// @Summary Atualiza uma locadora
// @Description Substitui nome e endereço. Sem "ativa" no corpo, o status atual é mantido.
// @Tags locadoras
// @Accept json
// @Produce json
// @Param id path string true "ID da locadora"
// @Param locadora body domain.AgencyInput true "Novos dados da locadora"
// @Success 200 {object} domain.Agency
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou campos obrigatórios ausentes"
// @Failure 404 {object} domain.ErrorResponse "Locadora não encontrada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /locadoras/{id} [put]
func (h *Handler) UpdateAgencyHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	updated, err := h.Service.UpdateAgency(r.Context(), id, input)
	response.Handle(w, r, h.Logger, updated, err, http.StatusOK)
}

// DeleteAgencyHandler lida com a requisição DELETE /locadoras/{id}.
// @Summary Remove uma locadora
// @Tags locadoras
// @Param id path string true "ID da locadora"
// @Success 204 "Locadora removida"
// @Failure 404 {object} domain.ErrorResponse "Locadora não encontrada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /locadoras/{id} [delete]
func (h *Handler) DeleteAgencyHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Service.DeleteAgency(r.Context(), id)
	response.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// decodeInput lê o corpo JSON. Em caso de falha já responde 400 e retorna ok=false.
func (h *Handler) decodeInput(w http.ResponseWriter, r *http.Request) (domain.AgencyInput, bool) {
	var input domain.AgencyInput
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&input)
	if err == nil {
		// O corpo deve conter um único objeto JSON, sem dados depois dele.
		if extra := dec.Decode(&struct{}{}); extra != io.EOF {
			err = errors.New("dados extras após o objeto JSON")
		}
	}
	if err != nil {
		h.Logger.Debug("Payload de locadora inválido.", map[string]interface{}{"error": err.Error()})
		response.Error(w, r, h.Logger, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."))
		return domain.AgencyInput{}, false
	}
	return input, true
}
