package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
)

var _ repository.PeriodoRepository = (*PeriodoRepo)(nil)

// PeriodoRepo implementação de PeriodoRepository (usável com pool ou tx).
type PeriodoRepo struct {
	q Querier
}

// NewPeriodoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPeriodoRepository(q Querier) *PeriodoRepo {
	return &PeriodoRepo{q: q}
}

// Create persiste um novo período; mês/ano duplicado vira ErrDuplicate.
func (r *PeriodoRepo) Create(p *entity.Periodo) error {
	query := `INSERT INTO periodos (id, nome, mes, ano, criado_em) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Nome, p.Mes, p.Ano, p.CriadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert periodo: %w", err)
	}
	return nil
}

// GetByID busca um período por ID.
func (r *PeriodoRepo) GetByID(id string) (*entity.Periodo, error) {
	query := `SELECT id, nome, mes, ano, criado_em FROM periodos WHERE id = $1`
	var p entity.Periodo
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Nome, &p.Mes, &p.Ano, &p.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get periodo: %w", err)
	}
	return &p, nil
}

// List lista do mais recente para o mais antigo.
func (r *PeriodoRepo) List() ([]*entity.Periodo, error) {
	query := `SELECT id, nome, mes, ano, criado_em FROM periodos ORDER BY ano DESC, mes DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list periodos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Periodo
	for rows.Next() {
		var p entity.Periodo
		if err := rows.Scan(&p.ID, &p.Nome, &p.Mes, &p.Ano, &p.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan periodo: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
