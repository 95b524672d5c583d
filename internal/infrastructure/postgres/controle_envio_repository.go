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

var _ repository.ControleEnvioRepository = (*ControleEnvioRepo)(nil)

var colunasControleEnvio = map[string]bool{
	"nome":     true,
	"produto":  true,
	"qtd":      true,
	"data":     true,
	"rastreio": true,
	"status":   true,
}

const controleEnvioCols = `id, periodo_id, nome, produto, qtd, data, rastreio, status,
	COALESCE(criado_por::text, ''), criado_em`

// ControleEnvioRepo implementação de ControleEnvioRepository.
type ControleEnvioRepo struct {
	q Querier
}

// NewControleEnvioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewControleEnvioRepository(q Querier) *ControleEnvioRepo {
	return &ControleEnvioRepo{q: q}
}

// Create persiste um novo envio de cortesia.
func (r *ControleEnvioRepo) Create(e *entity.ControleEnvio) error {
	query := `
		INSERT INTO controle_envios (id, periodo_id, nome, produto, qtd, data, rastreio, status, criado_por, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, '')::uuid, $10)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.PeriodoID, e.Nome, e.Produto, e.Qtd, e.Data, e.Rastreio, e.Status, e.CriadoPor, e.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert controle de envio: %w", err)
	}
	return nil
}

// GetByID busca um envio por ID.
func (r *ControleEnvioRepo) GetByID(id string) (*entity.ControleEnvio, error) {
	query := `SELECT ` + controleEnvioCols + ` FROM controle_envios WHERE id = $1`
	var e entity.ControleEnvio
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.PeriodoID, &e.Nome, &e.Produto, &e.Qtd, &e.Data, &e.Rastreio, &e.Status, &e.CriadoPor, &e.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get controle de envio: %w", err)
	}
	return &e, nil
}

// ListByPeriodo lista os envios do período, mais recente primeiro.
func (r *ControleEnvioRepo) ListByPeriodo(periodoID string) ([]*entity.ControleEnvio, error) {
	query := `SELECT ` + controleEnvioCols + ` FROM controle_envios WHERE periodo_id = $1 ORDER BY criado_em DESC`
	rows, err := r.q.Query(context.Background(), query, periodoID)
	if err != nil {
		return nil, fmt.Errorf("list controle de envios: %w", err)
	}
	defer rows.Close()
	var list []*entity.ControleEnvio
	for rows.Next() {
		var e entity.ControleEnvio
		if err := rows.Scan(
			&e.ID, &e.PeriodoID, &e.Nome, &e.Produto, &e.Qtd, &e.Data, &e.Rastreio, &e.Status, &e.CriadoPor, &e.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan controle de envio: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update regrava o envio inteiro.
func (r *ControleEnvioRepo) Update(e *entity.ControleEnvio) error {
	query := `
		UPDATE controle_envios SET nome = $2, produto = $3, qtd = $4, data = $5, rastreio = $6, status = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, e.ID, e.Nome, e.Produto, e.Qtd, e.Data, e.Rastreio, e.Status)
	if err != nil {
		return fmt.Errorf("update controle de envio: %w", err)
	}
	return nil
}

// UpdateField grava um único campo, validado contra a whitelist.
func (r *ControleEnvioRepo) UpdateField(id, campo string, valor any) error {
	if !colunasControleEnvio[campo] {
		return domain.ErrInvalidInput
	}
	query := fmt.Sprintf(`UPDATE controle_envios SET %s = $2 WHERE id = $1`, campo)
	tag, err := r.q.Exec(context.Background(), query, id, valor)
	if err != nil {
		return fmt.Errorf("update campo %s: %w", campo, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um envio por ID.
func (r *ControleEnvioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM controle_envios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete controle de envio: %w", err)
	}
	return nil
}
