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

var _ repository.VendedorRepository = (*VendedorRepo)(nil)

// VendedorRepo implementação de VendedorRepository (usável com pool ou tx).
type VendedorRepo struct {
	q Querier
}

// NewVendedorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVendedorRepository(q Querier) *VendedorRepo {
	return &VendedorRepo{q: q}
}

// Create persiste um novo vendedor.
func (r *VendedorRepo) Create(v *entity.Vendedor) error {
	query := `INSERT INTO vendedores (id, nome, ativo, criado_em) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, v.ID, v.Nome, v.Ativo, v.CriadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendedor: %w", err)
	}
	return nil
}

// GetByID busca um vendedor por ID.
func (r *VendedorRepo) GetByID(id string) (*entity.Vendedor, error) {
	query := `SELECT id, nome, ativo, criado_em FROM vendedores WHERE id = $1`
	var v entity.Vendedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(&v.ID, &v.Nome, &v.Ativo, &v.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendedor: %w", err)
	}
	return &v, nil
}

// FindByNome busca case-insensitive por nome exato.
func (r *VendedorRepo) FindByNome(nome string) (*entity.Vendedor, error) {
	query := `SELECT id, nome, ativo, criado_em FROM vendedores WHERE lower(nome) = lower($1)`
	var v entity.Vendedor
	err := r.q.QueryRow(context.Background(), query, nome).Scan(&v.ID, &v.Nome, &v.Ativo, &v.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find vendedor por nome: %w", err)
	}
	return &v, nil
}

// Search busca vendedores ativos por substring do nome (autocomplete).
func (r *VendedorRepo) Search(termo string, limit int) ([]*entity.Vendedor, error) {
	query := `
		SELECT id, nome, ativo, criado_em FROM vendedores
		WHERE ativo AND nome ILIKE '%' || $1 || '%'
		ORDER BY nome LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, termo, limit)
	if err != nil {
		return nil, fmt.Errorf("search vendedores: %w", err)
	}
	defer rows.Close()
	return scanVendedores(rows)
}

// List lista todos os vendedores por nome.
func (r *VendedorRepo) List() ([]*entity.Vendedor, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nome, ativo, criado_em FROM vendedores ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list vendedores: %w", err)
	}
	defer rows.Close()
	return scanVendedores(rows)
}

// Update atualiza nome e ativo.
func (r *VendedorRepo) Update(v *entity.Vendedor) error {
	_, err := r.q.Exec(context.Background(), `UPDATE vendedores SET nome = $2, ativo = $3 WHERE id = $1`, v.ID, v.Nome, v.Ativo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vendedor: %w", err)
	}
	return nil
}

// Delete remove um vendedor por ID.
func (r *VendedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vendedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendedor: %w", err)
	}
	return nil
}

func scanVendedores(rows pgx.Rows) ([]*entity.Vendedor, error) {
	var list []*entity.Vendedor
	for rows.Next() {
		var v entity.Vendedor
		if err := rows.Scan(&v.ID, &v.Nome, &v.Ativo, &v.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan vendedor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
