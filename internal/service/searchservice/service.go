package searchservice

import (
	"context"
	"fmt"

	"locadora/internal/domain"
	apperror "locadora/internal/errors"
	"locadora/internal/pkg/logger"
)

// AgencyLister fornece a lista completa de locadoras.
type AgencyLister interface {
	GetAllAgencies(ctx context.Context) ([]domain.Agency, error)
}

// InventorySource consulta os veículos disponíveis de uma locadora.
type InventorySource interface {
	FetchOffers(ctx context.Context, agency domain.Agency) ([]domain.Offer, error)
}

// Recorder recebe o resultado de cada pesquisa. Implementado pelas métricas Prometheus.
// Pesquisas canceladas chegam com um erro que satisfaz errors.Is(err, context.Canceled)
// ou context.DeadlineExceeded.
type Recorder interface {
	ObserveSearch(agencies, offers int, err error)
}

// Service agrega as ofertas de todas as locadoras ativas.
type Service struct {
	agencies  AgencyLister
	inventory InventorySource
	recorder  Recorder
	logger    logger.Logger
}

// NewService cria o Serviço de Pesquisa. recorder pode ser nil.
func NewService(agencies AgencyLister, inventory InventorySource, recorder Recorder, logger logger.Logger) *Service {
	return &Service{
		agencies:  agencies,
		inventory: inventory,
		recorder:  recorder,
		logger:    logger,
	}
}

// Search consulta, em sequência e na ordem do cadastro, cada locadora ativa e
// concatena as ofertas. A falha de qualquer locadora aborta a pesquisa inteira.
func (s *Service) Search(ctx context.Context) ([]domain.Offer, error) {
	s.logger.Debug("Iniciando pesquisa de veículos.", nil)

	active, err := s.activeAgencies(ctx)
	if err != nil {
		s.record(0, 0, err)
		return nil, err
	}

	results := make([]domain.Offer, 0, len(active)*3)
	for _, agency := range active {
		offers, err := s.inventory.FetchOffers(ctx, agency)
		if err != nil && ctx.Err() != nil {
			// Cliente desconectou ou o prazo acabou: não é falha da locadora.
			s.logger.Warn("Pesquisa interrompida pelo contexto da requisição.", map[string]interface{}{
				"locadora": agency.Name,
				"error":    ctx.Err().Error(),
			})
			s.record(len(active), 0, ctx.Err())
			return nil, fmt.Errorf("pesquisa interrompida: %w", ctx.Err())
		}
		if err != nil {
			s.logger.Error("Erro na pesquisa: falha ao consultar locadora.", err)
			appErr := apperror.NewInternalError(
				fmt.Sprintf("Erro ao buscar veículos disponíveis na locadora %q: %s", agency.Name, err.Error()), err)
			s.record(len(active), 0, appErr)
			return nil, appErr
		}
		results = append(results, offers...)
	}

	s.logger.Info("Pesquisa concluída com sucesso.", map[string]interface{}{"locadoras_ativas": len(active), "total_ofertas": len(results)})
	s.record(len(active), len(results), nil)
	return results, nil
}

func (s *Service) activeAgencies(ctx context.Context) ([]domain.Agency, error) {
	all, err := s.agencies.GetAllAgencies(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar locadoras para a pesquisa.", err)
		return nil, err
	}

	active := make([]domain.Agency, 0, len(all))
	for _, a := range all {
		if a.Active {
			active = append(active, a)
		}
	}
	return active, nil
}

func (s *Service) record(agencies, offers int, err error) {
	if s.recorder != nil {
		s.recorder.ObserveSearch(agencies, offers, err)
	}
}
