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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteCols = `id, razao_social, cnpj, endereco, cidade, estado, cep, telefone, email, contato, ativo, criado_em`

// ClienteRepo implementação de ClienteRepository (usável com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, razao_social, cnpj, endereco, cidade, estado, cep, telefone, email, contato, ativo, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.RazaoSocial, c.CNPJ, c.Endereco, c.Cidade, c.Estado, c.CEP, c.Telefone, c.Email, c.Contato, c.Ativo, c.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID busca um cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.RazaoSocial, &c.CNPJ, &c.Endereco, &c.Cidade, &c.Estado, &c.CEP, &c.Telefone, &c.Email, &c.Contato, &c.Ativo, &c.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista os clientes por razão social.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes ORDER BY razao_social`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.RazaoSocial, &c.CNPJ, &c.Endereco, &c.Cidade, &c.Estado, &c.CEP, &c.Telefone, &c.Email, &c.Contato, &c.Ativo, &c.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update regrava os dados do cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET razao_social = $2, cnpj = $3, endereco = $4, cidade = $5, estado = $6,
			cep = $7, telefone = $8, email = $9, contato = $10, ativo = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.RazaoSocial, c.CNPJ, c.Endereco, c.Cidade, c.Estado, c.CEP, c.Telefone, c.Email, c.Contato, c.Ativo,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete remove um cliente. FK de orçamentos vira ErrConflict.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
