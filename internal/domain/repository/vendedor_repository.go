package repository

import "github.com/jhoicas/controle-pedidos-api/internal/domain/entity"

// VendedorRepository define o porto de persistência para Vendedor.
type VendedorRepository interface {
	Create(vendedor *entity.Vendedor) error
	GetByID(id string) (*entity.Vendedor, error)
	// FindByNome busca case-insensitive por nome exato (pré-checagem de import).
	FindByNome(nome string) (*entity.Vendedor, error)
	// Search busca por prefixo/substring para o autocomplete da entrada de pedidos.
	Search(termo string, limit int) ([]*entity.Vendedor, error)
	List() ([]*entity.Vendedor, error)
	Update(vendedor *entity.Vendedor) error
	Delete(id string) error
}
