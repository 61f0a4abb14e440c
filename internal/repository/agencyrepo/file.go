package agencyrepo

import (
	"context"
	"fmt"
	"time"

	"locadora/internal/domain"
	"locadora/internal/errors"
	"locadora/internal/pkg/filestore"
	"locadora/internal/pkg/logger"
)

// FileRepository implementa as operações CRUD de locadoras sobre o documento JSON.
// Cada operação lê o documento inteiro, altera a lista em memória e o regrava.
type FileRepository struct {
	store  *filestore.Store
	logger logger.Logger
	now    func() time.Time
}

// NewFileRepository cria e retorna uma nova instância do Repositório de Locadoras em arquivo.
func NewFileRepository(store *filestore.Store, logger logger.Logger) *FileRepository {
	return &FileRepository{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateAgency gera o ID, carimba as datas e acrescenta a locadora ao final da lista.
func (r *FileRepository) CreateAgency(ctx context.Context, agency domain.Agency) (domain.Agency, error) {
	r.logger.Debug("Iniciando CreateAgency no repositório.", map[string]interface{}{"nome": agency.Name})

	err := r.store.Update(ctx, func(doc *filestore.Document) error {
		agency.ID = r.store.GenerateID()
		now := r.now()
		agency.CreatedAt = now
		agency.UpdatedAt = now
		doc.Agencies = append(doc.Agencies, agency)
		return nil
	})
	if err != nil {
		r.logger.Error("Falha ao gravar locadora no arquivo.", err)
		return domain.Agency{}, errors.NewStorageError("Falha ao criar locadora", err)
	}

	r.logger.Info("Locadora criada com sucesso.", map[string]interface{}{"id": agency.ID, "nome": agency.Name})
	return agency, nil
}

// GetAgencyByID busca uma locadora pelo ID.
func (r *FileRepository) GetAgencyByID(ctx context.Context, id string) (domain.Agency, error) {
	r.logger.Debug("Iniciando GetAgencyByID no repositório.", map[string]interface{}{"id": id})

	doc, err := r.store.Read(ctx)
	if err != nil {
		r.logger.Error("Falha ao ler arquivo de locadoras.", err)
		return domain.Agency{}, errors.NewStorageError("Falha ao buscar locadora", err)
	}

	idx := indexOf(doc.Agencies, id)
	if idx < 0 {
		r.logger.Info("Locadora não encontrada.", map[string]interface{}{"id": id})
		return domain.Agency{}, errors.NewNotFoundError(fmt.Sprintf("Locadora com ID %s não encontrada.", id))
	}

	return doc.Agencies[idx], nil
}

// GetAllAgencies retorna todas as locadoras na ordem do arquivo.
func (r *FileRepository) GetAllAgencies(ctx context.Context) ([]domain.Agency, error) {
	r.logger.Debug("Iniciando GetAllAgencies no repositório.", nil)

	doc, err := r.store.Read(ctx)
	if err != nil {
		r.logger.Error("Falha ao ler arquivo de locadoras.", err)
		return nil, errors.NewStorageError("Falha ao buscar todas as locadoras", err)
	}

	r.logger.Info("GetAllAgencies concluído com sucesso.", map[string]interface{}{"total_locadoras": len(doc.Agencies)})
	return doc.Agencies, nil
}

// UpdateAgency substitui nome e endereço da locadora, preservando ID e criadoEm.
// O status só muda quando input.Active vem preenchido; a decisão acontece sob o lock do store.
func (r *FileRepository) UpdateAgency(ctx context.Context, id string, input domain.AgencyInput) (domain.Agency, error) {
	r.logger.Debug("Iniciando UpdateAgency no repositório.", map[string]interface{}{"id": id, "nome": input.Name})

	var updated domain.Agency
	err := r.store.Update(ctx, func(doc *filestore.Document) error {
		idx := indexOf(doc.Agencies, id)
		if idx < 0 {
			return errors.NewNotFoundError(fmt.Sprintf("Locadora com ID %s não encontrada para atualização.", id))
		}
		current := doc.Agencies[idx]
		current.Name = input.Name
		current.Address = input.Address
		if input.Active != nil {
			current.Active = *input.Active
		}
		current.UpdatedAt = r.now()
		doc.Agencies[idx] = current
		updated = current
		return nil
	})
	if err != nil {
		if errors.IsNotFound(err) {
			r.logger.Info("Locadora não encontrada para atualização.", map[string]interface{}{"id": id})
			return domain.Agency{}, err
		}
		r.logger.Error("Falha ao atualizar locadora no arquivo.", err)
		return domain.Agency{}, errors.NewStorageError("Falha ao atualizar locadora", err)
	}

	r.logger.Info("Locadora atualizada com sucesso.", map[string]interface{}{"id": updated.ID, "nome": updated.Name})
	return updated, nil
}

// DeleteAgency remove a locadora da lista.
func (r *FileRepository) DeleteAgency(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando DeleteAgency no repositório.", map[string]interface{}{"id": id})

	err := r.store.Update(ctx, func(doc *filestore.Document) error {
		idx := indexOf(doc.Agencies, id)
		if idx < 0 {
			return errors.NewNotFoundError(fmt.Sprintf("Locadora com ID %s não encontrada para exclusão.", id))
		}
		doc.Agencies = append(doc.Agencies[:idx], doc.Agencies[idx+1:]...)
		return nil
	})
	if err != nil {
		if errors.IsNotFound(err) {
			r.logger.Info("Locadora não encontrada para exclusão.", map[string]interface{}{"id": id})
			return err
		}
		r.logger.Error("Falha ao deletar locadora do arquivo.", err)
		return errors.NewStorageError("Falha ao deletar locadora", err)
	}

	r.logger.Info("Locadora deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func indexOf(agencies []domain.Agency, id string) int {
	for i, a := range agencies {
		if a.ID == id {
			return i
		}
	}
	return -1
}
