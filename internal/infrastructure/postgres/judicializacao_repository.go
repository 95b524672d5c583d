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

var _ repository.JudicializacaoRepository = (*JudicializacaoRepo)(nil)

var colunasJudicializacao = map[string]bool{
	"nr_processo": true,
	"cliente":     true,
	"advogado":    true,
	"produto":     true,
	"qtd":         true,
	"total":       true,
	"data":        true,
	"status":      true,
	"observacoes": true,
}

const judicializacaoCols = `id, periodo_id, nr_processo, cliente, advogado, produto, qtd, total,
	data, status, observacoes, COALESCE(criado_por::text, ''), criado_em`

// JudicializacaoRepo implementação de JudicializacaoRepository.
type JudicializacaoRepo struct {
	q Querier
}

// NewJudicializacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewJudicializacaoRepository(q Querier) *JudicializacaoRepo {
	return &JudicializacaoRepo{q: q}
}

// Create persiste uma nova judicialização.
func (r *JudicializacaoRepo) Create(j *entity.Judicializacao) error {
	query := `
		INSERT INTO judicializacoes (id, periodo_id, nr_processo, cliente, advogado, produto,
			qtd, total, data, status, observacoes, criado_por, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, '')::uuid, $13)`
	_, err := r.q.Exec(context.Background(), query,
		j.ID, j.PeriodoID, j.NrProcesso, j.Cliente, j.Advogado, j.Produto,
		j.Qtd, j.Total, j.Data, j.Status, j.Observacoes, j.CriadoPor, j.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert judicializacao: %w", err)
	}
	return nil
}

// GetByID busca uma judicialização por ID.
func (r *JudicializacaoRepo) GetByID(id string) (*entity.Judicializacao, error) {
	query := `SELECT ` + judicializacaoCols + ` FROM judicializacoes WHERE id = $1`
	var j entity.Judicializacao
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&j.ID, &j.PeriodoID, &j.NrProcesso, &j.Cliente, &j.Advogado, &j.Produto,
		&j.Qtd, &j.Total, &j.Data, &j.Status, &j.Observacoes, &j.CriadoPor, &j.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get judicializacao: %w", err)
	}
	return &j, nil
}

// ListByPeriodo lista as judicializações do período, mais recente primeiro.
func (r *JudicializacaoRepo) ListByPeriodo(periodoID string) ([]*entity.Judicializacao, error) {
	query := `SELECT ` + judicializacaoCols + ` FROM judicializacoes WHERE periodo_id = $1 ORDER BY criado_em DESC`
	rows, err := r.q.Query(context.Background(), query, periodoID)
	if err != nil {
		return nil, fmt.Errorf("list judicializacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Judicializacao
	for rows.Next() {
		var j entity.Judicializacao
		if err := rows.Scan(
			&j.ID, &j.PeriodoID, &j.NrProcesso, &j.Cliente, &j.Advogado, &j.Produto,
			&j.Qtd, &j.Total, &j.Data, &j.Status, &j.Observacoes, &j.CriadoPor, &j.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan judicializacao: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// Update regrava a judicialização inteira.
func (r *JudicializacaoRepo) Update(j *entity.Judicializacao) error {
	query := `
		UPDATE judicializacoes SET nr_processo = $2, cliente = $3, advogado = $4, produto = $5,
			qtd = $6, total = $7, data = $8, status = $9, observacoes = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		j.ID, j.NrProcesso, j.Cliente, j.Advogado, j.Produto,
		j.Qtd, j.Total, j.Data, j.Status, j.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("update judicializacao: %w", err)
	}
	return nil
}

// UpdateField grava um único campo, validado contra a whitelist.
func (r *JudicializacaoRepo) UpdateField(id, campo string, valor any) error {
	if !colunasJudicializacao[campo] {
		return domain.ErrInvalidInput
	}
	query := fmt.Sprintf(`UPDATE judicializacoes SET %s = $2 WHERE id = $1`, campo)
	tag, err := r.q.Exec(context.Background(), query, id, valor)
	if err != nil {
		return fmt.Errorf("update campo %s: %w", campo, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma judicialização por ID.
func (r *JudicializacaoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM judicializacoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete judicializacao: %w", err)
	}
	return nil
}
