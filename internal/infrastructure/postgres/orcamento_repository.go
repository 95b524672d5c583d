package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
)

var _ repository.OrcamentoRepository = (*OrcamentoRepo)(nil)

const orcamentoCols = `id, numero, data, cliente_id, cliente_nome, empresa_nome, empresa_endereco,
	empresa_cidade, empresa_telefone, empresa_email, observacoes, valor_total, status,
	COALESCE(criado_por::text, ''), criado_em`

// OrcamentoRepo implementação de OrcamentoRepository. Segura o pool (não um
// Querier) porque cabeça e itens são gravados na mesma transação.
type OrcamentoRepo struct {
	pool *pgxpool.Pool
}

// NewOrcamentoRepository constrói o adaptador com o pool.
func NewOrcamentoRepository(pool *pgxpool.Pool) *OrcamentoRepo {
	return &OrcamentoRepo{pool: pool}
}

// Create grava cabeça e itens na mesma transação.
func (r *OrcamentoRepo) Create(o *entity.Orcamento) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO orcamentos (id, numero, data, cliente_id, cliente_nome, empresa_nome, empresa_endereco,
			empresa_cidade, empresa_telefone, empresa_email, observacoes, valor_total, status, criado_por, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14, '')::uuid, $15)`
	if _, err := tx.Exec(ctx, query,
		o.ID, o.Numero, o.Data, o.ClienteID, o.ClienteNome, o.EmpresaNome, o.EmpresaEndereco,
		o.EmpresaCidade, o.EmpresaTelefone, o.EmpresaEmail, o.Observacoes, o.ValorTotal, o.Status,
		o.CriadoPor, o.CriadoEm,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert orcamento: %w", err)
	}

	if err := insertItens(ctx, tx, o); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Update regrava a cabeça e substitui os itens na mesma transação.
func (r *OrcamentoRepo) Update(o *entity.Orcamento) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE orcamentos SET data = $2, cliente_id = $3, cliente_nome = $4, empresa_nome = $5,
			empresa_endereco = $6, empresa_cidade = $7, empresa_telefone = $8, empresa_email = $9,
			observacoes = $10, valor_total = $11, status = $12
		WHERE id = $1`
	tag, err := tx.Exec(ctx, query,
		o.ID, o.Data, o.ClienteID, o.ClienteNome, o.EmpresaNome,
		o.EmpresaEndereco, o.EmpresaCidade, o.EmpresaTelefone, o.EmpresaEmail,
		o.Observacoes, o.ValorTotal, o.Status,
	)
	if err != nil {
		return fmt.Errorf("update orcamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM orcamento_itens WHERE orcamento_id = $1`, o.ID); err != nil {
		return fmt.Errorf("delete itens antigos: %w", err)
	}
	if err := insertItens(ctx, tx, o); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertItens(ctx context.Context, tx pgx.Tx, o *entity.Orcamento) error {
	query := `
		INSERT INTO orcamento_itens (id, orcamento_id, descricao, qtd, preco_unitario, preco_total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range o.Itens {
		if _, err := tx.Exec(ctx, query,
			item.ID, o.ID, item.Descricao, item.Qtd, item.PrecoUnitario, item.PrecoTotal,
		); err != nil {
			return fmt.Errorf("insert item de orcamento: %w", err)
		}
	}
	return nil
}

// GetByID busca o orçamento com seus itens.
func (r *OrcamentoRepo) GetByID(id string) (*entity.Orcamento, error) {
	ctx := context.Background()
	query := `SELECT ` + orcamentoCols + ` FROM orcamentos WHERE id = $1`
	var o entity.Orcamento
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Numero, &o.Data, &o.ClienteID, &o.ClienteNome, &o.EmpresaNome, &o.EmpresaEndereco,
		&o.EmpresaCidade, &o.EmpresaTelefone, &o.EmpresaEmail, &o.Observacoes, &o.ValorTotal, &o.Status,
		&o.CriadoPor, &o.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orcamento: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, orcamento_id, descricao, qtd, preco_unitario, preco_total
		FROM orcamento_itens WHERE orcamento_id = $1 ORDER BY descricao`, id)
	if err != nil {
		return nil, fmt.Errorf("list itens de orcamento: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.OrcamentoItem
		if err := rows.Scan(&item.ID, &item.OrcamentoID, &item.Descricao, &item.Qtd, &item.PrecoUnitario, &item.PrecoTotal); err != nil {
			return nil, fmt.Errorf("scan item de orcamento: %w", err)
		}
		o.Itens = append(o.Itens, item)
	}
	return &o, rows.Err()
}

// List devolve as cabeças (sem itens), mais recente primeiro.
func (r *OrcamentoRepo) List() ([]*entity.Orcamento, error) {
	query := `SELECT ` + orcamentoCols + ` FROM orcamentos ORDER BY criado_em DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orcamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Orcamento
	for rows.Next() {
		var o entity.Orcamento
		if err := rows.Scan(
			&o.ID, &o.Numero, &o.Data, &o.ClienteID, &o.ClienteNome, &o.EmpresaNome, &o.EmpresaEndereco,
			&o.EmpresaCidade, &o.EmpresaTelefone, &o.EmpresaEmail, &o.Observacoes, &o.ValorTotal, &o.Status,
			&o.CriadoPor, &o.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan orcamento: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete remove o orçamento; os itens caem por ON DELETE CASCADE.
func (r *OrcamentoRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM orcamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete orcamento: %w", err)
	}
	return nil
}

// CountByMesAno conta orçamentos criados no mês (sequência da numeração).
func (r *OrcamentoRepo) CountByMesAno(mes, ano int) (int, error) {
	query := `
		SELECT COUNT(*) FROM orcamentos
		WHERE EXTRACT(MONTH FROM criado_em) = $1 AND EXTRACT(YEAR FROM criado_em) = $2`
	var count int
	if err := r.pool.QueryRow(context.Background(), query, mes, ano).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orcamentos: %w", err)
	}
	return count, nil
}
