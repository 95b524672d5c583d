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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação de UsuarioRepository (usável com pool ou tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nome, email, senha_hash, tipo, ativo, criado_em, criado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nome, u.Email, u.SenhaHash, u.Tipo, u.Ativo, u.CriadoEm, u.CriadoPor,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID busca um usuário por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `
		SELECT id, nome, email, senha_hash, tipo, ativo, criado_em, COALESCE(criado_por::text, '')
		FROM usuarios WHERE id = $1`
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Tipo, &u.Ativo, &u.CriadoEm, &u.CriadoPor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// GetByEmail busca um usuário por email (case-insensitive).
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `
		SELECT id, nome, email, senha_hash, tipo, ativo, criado_em, COALESCE(criado_por::text, '')
		FROM usuarios WHERE lower(email) = lower($1)`
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Tipo, &u.Ativo, &u.CriadoEm, &u.CriadoPor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por email: %w", err)
	}
	return &u, nil
}

// Update atualiza email, senha, tipo e ativo.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nome = $2, email = $3, senha_hash = $4, tipo = $5, ativo = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, u.ID, u.Nome, u.Email, u.SenhaHash, u.Tipo, u.Ativo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista todos os usuários por nome.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `
		SELECT id, nome, email, senha_hash, tipo, ativo, criado_em, COALESCE(criado_por::text, '')
		FROM usuarios ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Tipo, &u.Ativo, &u.CriadoEm, &u.CriadoPor); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete remove um usuário por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
