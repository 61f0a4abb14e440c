package agencyservice

import (
	"context"
	"strings"

	"locadora/internal/domain"
	apperror "locadora/internal/errors"
	"locadora/internal/pkg/logger"
)

// AgencyRepository define o contrato que o Serviço de Locadoras espera da camada de Persistência.
// Implementado por agencyrepo.FileRepository e agencyrepo.PostgresRepository.
type AgencyRepository interface {
	CreateAgency(ctx context.Context, agency domain.Agency) (domain.Agency, error)
	GetAgencyByID(ctx context.Context, id string) (domain.Agency, error)
	GetAllAgencies(ctx context.Context) ([]domain.Agency, error)
	// UpdateAgency aplica input à locadora id. Com input.Active nil, o status
	// atual é mantido, decidido no mesmo passo atômico da escrita.
	UpdateAgency(ctx context.Context, id string, input domain.AgencyInput) (domain.Agency, error)
	DeleteAgency(ctx context.Context, id string) error
}

// Service implementa as regras de negócio do CRUD de locadoras.
type Service struct {
	repo   AgencyRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Locadoras.
func NewService(repo AgencyRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateAgency valida o payload e cria a locadora. Sem "ativa" no payload, a locadora nasce ativa.
func (s *Service) CreateAgency(ctx context.Context, input domain.AgencyInput) (domain.Agency, error) {
	s.logger.Debug("Iniciando criação de locadora no serviço.", map[string]interface{}{"nome": input.Name})

	if err := validateInput(input); err != nil {
		s.logger.Warn("Falha na validação da locadora.", map[string]interface{}{"nome": input.Name, "error": err.Error()})
		return domain.Agency{}, err
	}

	agency := domain.Agency{
		Name:    strings.TrimSpace(input.Name),
		Address: strings.TrimSpace(input.Address),
		Active:  true,
	}
	if input.Active != nil {
		agency.Active = *input.Active
	}

	created, err := s.repo.CreateAgency(ctx, agency)
	if err != nil {
		s.logger.Error("Falha ao criar locadora no repositório.", err)
		return domain.Agency{}, err
	}

	s.logger.Info("Locadora criada com sucesso.", map[string]interface{}{"id": created.ID, "nome": created.Name})
	return created, nil
}

// GetAgencyByID busca uma locadora pelo ID.
func (s *Service) GetAgencyByID(ctx context.Context, id string) (domain.Agency, error) {
	s.logger.Debug("Iniciando busca de locadora por ID no serviço.", map[string]interface{}{"id": id})

	agency, err := s.repo.GetAgencyByID(ctx, id)
	if err != nil {
		return domain.Agency{}, err // Erros do repositório já são NotFoundError ou InternalError
	}
	return agency, nil
}

// GetAllAgencies lista todas as locadoras cadastradas.
func (s *Service) GetAllAgencies(ctx context.Context) ([]domain.Agency, error) {
	s.logger.Debug("Iniciando busca de todas as locadoras no serviço.", nil)

	agencies, err := s.repo.GetAllAgencies(ctx)
	if err != nil {
		s.logger.Error("Falha ao buscar todas as locadoras no repositório.", err)
		return nil, err
	}
	if agencies == nil {
		agencies = []domain.Agency{}
	}
	return agencies, nil
}

// UpdateAgency substitui os campos de uma locadora existente. O ID vem sempre da URL.
// Sem "ativa" no payload, o status atual é mantido.
func (s *Service) UpdateAgency(ctx context.Context, id string, input domain.AgencyInput) (domain.Agency, error) {
	s.logger.Debug("Iniciando atualização de locadora no serviço.", map[string]interface{}{"id": id, "nome": input.Name})

	if err := validateInput(input); err != nil {
		s.logger.Warn("Falha na validação da locadora para atualização.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Agency{}, err
	}

	input = domain.AgencyInput{
		Name:    strings.TrimSpace(input.Name),
		Address: strings.TrimSpace(input.Address),
		Active:  input.Active,
	}

	updated, err := s.repo.UpdateAgency(ctx, id, input)
	if err != nil {
		s.logger.Error("Falha ao atualizar locadora no repositório.", err)
		return domain.Agency{}, err
	}

	s.logger.Info("Locadora atualizada com sucesso.", map[string]interface{}{"id": updated.ID, "nome": updated.Name})
	return updated, nil
}

// DeleteAgency remove uma locadora.
func (s *Service) DeleteAgency(ctx context.Context, id string) error {
	s.logger.Debug("Iniciando exclusão de locadora no serviço.", map[string]interface{}{"id": id})

	if err := s.repo.DeleteAgency(ctx, id); err != nil {
		s.logger.Error("Falha ao deletar locadora no repositório.", err)
		return err
	}

	s.logger.Info("Locadora deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// validateInput exige nome e endereço; só espaços em branco conta como ausente.
func validateInput(input domain.AgencyInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperror.NewValidationError("O nome da locadora é obrigatório.")
	}
	if strings.TrimSpace(input.Address) == "" {
		return apperror.NewValidationError("O endereço da locadora é obrigatório.")
	}
	return nil
}
