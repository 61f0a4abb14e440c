package agencyrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"locadora/internal/domain"
	"locadora/internal/errors"
	"locadora/internal/pkg/idgen"
	"locadora/internal/pkg/logger"
)

// PostgresRepository implementa as mesmas operações do FileRepository sobre a
// tabela locadoras (STORAGE_DRIVER=postgres).
type PostgresRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewPostgresRepository cria e retorna uma nova instância do Repositório de Locadoras no PostgreSQL.
func NewPostgresRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *PostgresRepository {
	return &PostgresRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// CreateAgency insere uma nova locadora no banco de dados.
func (r *PostgresRepository) CreateAgency(ctx context.Context, agency domain.Agency) (domain.Agency, error) {
	r.logger.Debug("Iniciando CreateAgency no repositório.", map[string]interface{}{"nome": agency.Name})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	agency.ID = idgen.New()
	now := time.Now().UTC()
	agency.CreatedAt = now
	agency.UpdatedAt = now

	query := `
        INSERT INTO locadoras (id, nome, endereco, ativa, criado_em, atualizado_em)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, nome, endereco, ativa, criado_em, atualizado_em`

	err := r.DB.QueryRowContext(ctxTimeout, query,
		agency.ID, agency.Name, agency.Address, agency.Active, agency.CreatedAt, agency.UpdatedAt,
	).Scan(
		&agency.ID, &agency.Name, &agency.Address, &agency.Active, &agency.CreatedAt, &agency.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir locadora no DB.", err)
		return domain.Agency{}, errors.NewDBError("Falha ao criar locadora", err)
	}

	r.logger.Info("Locadora criada com sucesso.", map[string]interface{}{"id": agency.ID, "nome": agency.Name})
	return agency, nil
}

// GetAgencyByID busca uma locadora pelo ID.
func (r *PostgresRepository) GetAgencyByID(ctx context.Context, id string) (domain.Agency, error) {
	r.logger.Debug("Iniciando GetAgencyByID no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, nome, endereco, ativa, criado_em, atualizado_em
        FROM locadoras
        WHERE id = $1`

	var agency domain.Agency
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(
		&agency.ID, &agency.Name, &agency.Address, &agency.Active, &agency.CreatedAt, &agency.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		r.logger.Info("Locadora não encontrada.", map[string]interface{}{"id": id})
		return domain.Agency{}, errors.NewNotFoundError(fmt.Sprintf("Locadora com ID %s não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar locadora no DB.", err)
		return domain.Agency{}, errors.NewDBError("Falha ao buscar locadora", err)
	}

	return agency, nil
}

// GetAllAgencies busca todas as locadoras em ordem de criação.
func (r *PostgresRepository) GetAllAgencies(ctx context.Context) ([]domain.Agency, error) {
	r.logger.Debug("Iniciando GetAllAgencies no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, nome, endereco, ativa, criado_em, atualizado_em
        FROM locadoras
        ORDER BY criado_em, id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar GetAllAgencies query.", err)
		return nil, errors.NewDBError("Falha ao buscar todas as locadoras", err)
	}
	defer rows.Close()

	agencies := []domain.Agency{}
	for rows.Next() {
		var agency domain.Agency
		if err := rows.Scan(
			&agency.ID, &agency.Name, &agency.Address, &agency.Active, &agency.CreatedAt, &agency.UpdatedAt,
		); err != nil {
			r.logger.Error("Falha ao mapear locadora na iteração de GetAllAgencies.", err)
			return nil, errors.NewDBError("Falha ao mapear locadoras do DB", err)
		}
		agencies = append(agencies, agency)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de locadoras.", err)
		return nil, errors.NewDBError("Erro após iteração de locadoras", err)
	}

	r.logger.Info("GetAllAgencies concluído com sucesso.", map[string]interface{}{"total_locadoras": len(agencies)})
	return agencies, nil
}

// UpdateAgency atualiza uma locadora existente. Com input.Active nil, o COALESCE
// mantém o status atual na mesma instrução.
func (r *PostgresRepository) UpdateAgency(ctx context.Context, id string, input domain.AgencyInput) (domain.Agency, error) {
	r.logger.Debug("Iniciando UpdateAgency no repositório.", map[string]interface{}{"id": id, "nome": input.Name})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var active sql.NullBool
	if input.Active != nil {
		active = sql.NullBool{Bool: *input.Active, Valid: true}
	}

	query := `
        UPDATE locadoras
        SET nome = $1, endereco = $2, ativa = COALESCE($3, ativa), atualizado_em = $4
        WHERE id = $5
        RETURNING id, nome, endereco, ativa, criado_em, atualizado_em`

	var agency domain.Agency
	err := r.DB.QueryRowContext(ctxTimeout, query,
		input.Name, input.Address, active, time.Now().UTC(), id,
	).Scan(
		&agency.ID, &agency.Name, &agency.Address, &agency.Active, &agency.CreatedAt, &agency.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		r.logger.Info("Locadora não encontrada para atualização.", map[string]interface{}{"id": id})
		return domain.Agency{}, errors.NewNotFoundError(fmt.Sprintf("Locadora com ID %s não encontrada para atualização.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar locadora no DB.", err)
		return domain.Agency{}, errors.NewDBError("Falha ao atualizar locadora", err)
	}

	r.logger.Info("Locadora atualizada com sucesso.", map[string]interface{}{"id": agency.ID, "nome": agency.Name})
	return agency, nil
}

// DeleteAgency remove uma locadora pelo ID.
func (r *PostgresRepository) DeleteAgency(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando DeleteAgency no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM locadoras WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar locadora do DB.", err)
		return errors.NewDBError("Falha ao deletar locadora", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após DeleteAgency.", err)
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	if rowsAffected == 0 {
		r.logger.Info("Locadora não encontrada para exclusão.", map[string]interface{}{"id": id})
		return errors.NewNotFoundError(fmt.Sprintf("Locadora com ID %s não encontrada para exclusão.", id))
	}

	r.logger.Info("Locadora deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}
