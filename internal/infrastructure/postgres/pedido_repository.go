package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// Colunas aceitas em UpdateField. O nome do campo entra na query por
// interpolação, então tudo que não estiver aqui é recusado antes.
var colunasPedido = map[string]bool{
	"cliente":    true,
	"medico":     true,
	"vendedor":   true,
	"data":       true,
	"produto":    true,
	"qtd":        true,
	"total":      true,
	"rastreio":   true,
	"status":     true,
	"thc_status": true,
}

const pedidoCols = `id, periodo_id, nr_pedido, cliente, medico, vendedor, data, produto, qtd, total,
	rastreio, status, thc_status, COALESCE(criado_por::text, ''), COALESCE(atualizado_por::text, ''),
	criado_em, atualizado_em`

// PedidoRepo implementação de PedidoRepository (usável com pool ou tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create insere o pedido. O índice único (periodo_id, lower(nr_pedido))
// decide corridas de reserva: 23505 vira ErrPedidoJaReservado.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, periodo_id, nr_pedido, cliente, medico, vendedor, data, produto,
			qtd, total, rastreio, status, thc_status, criado_por, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14, '')::uuid, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.PeriodoID, p.NrPedido, p.Cliente, p.Medico, p.Vendedor, p.Data, p.Produto,
		p.Qtd, p.Total, p.Rastreio, p.Status, p.ThcStatus, p.CriadoPor, p.CriadoEm, p.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPedidoJaReservado
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID busca um pedido por ID.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.PeriodoID, &p.NrPedido, &p.Cliente, &p.Medico, &p.Vendedor, &p.Data, &p.Produto,
		&p.Qtd, &p.Total, &p.Rastreio, &p.Status, &p.ThcStatus, &p.CriadoPor, &p.AtualizadoPor,
		&p.CriadoEm, &p.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// FindByNumero busca case-insensitive dentro do período.
func (r *PedidoRepo) FindByNumero(periodoID, nrPedido string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE periodo_id = $1 AND lower(nr_pedido) = lower($2)`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, periodoID, nrPedido).Scan(
		&p.ID, &p.PeriodoID, &p.NrPedido, &p.Cliente, &p.Medico, &p.Vendedor, &p.Data, &p.Produto,
		&p.Qtd, &p.Total, &p.Rastreio, &p.Status, &p.ThcStatus, &p.CriadoPor, &p.AtualizadoPor,
		&p.CriadoEm, &p.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find pedido por numero: %w", err)
	}
	return &p, nil
}

// ListByPeriodo lista os pedidos do período, mais recente primeiro.
func (r *PedidoRepo) ListByPeriodo(periodoID string) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE periodo_id = $1 ORDER BY criado_em DESC`
	rows, err := r.q.Query(context.Background(), query, periodoID)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	return scanPedidos(rows)
}

// ListByStatus lista por status cruzando todos os períodos, mais recente primeiro.
func (r *PedidoRepo) ListByStatus(status string) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE status = $1 ORDER BY criado_em DESC`
	rows, err := r.q.Query(context.Background(), query, status)
	if err != nil {
		return nil, fmt.Errorf("list pedidos por status: %w", err)
	}
	defer rows.Close()
	return scanPedidos(rows)
}

// UpdateField grava um único campo (commit por blur). O nome da coluna é
// validado contra a whitelist antes de entrar na query.
func (r *PedidoRepo) UpdateField(id, campo string, valor any, atualizadoPor string) error {
	if !colunasPedido[campo] {
		return domain.ErrInvalidInput
	}
	query := fmt.Sprintf(`
		UPDATE pedidos SET %s = $2, atualizado_por = NULLIF($3, '')::uuid, atualizado_em = $4
		WHERE id = $1`, campo)
	tag, err := r.q.Exec(context.Background(), query, id, valor, atualizadoPor, time.Now())
	if err != nil {
		return fmt.Errorf("update campo %s: %w", campo, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um pedido por ID.
func (r *PedidoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPedidos(rows pgx.Rows) ([]*entity.Pedido, error) {
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(
			&p.ID, &p.PeriodoID, &p.NrPedido, &p.Cliente, &p.Medico, &p.Vendedor, &p.Data, &p.Produto,
			&p.Qtd, &p.Total, &p.Rastreio, &p.Status, &p.ThcStatus, &p.CriadoPor, &p.AtualizadoPor,
			&p.CriadoEm, &p.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
