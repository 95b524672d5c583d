package repository

import "github.com/jhoicas/controle-pedidos-api/internal/domain/entity"

// ClienteRepository define o porto de persistência para Cliente.
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	// List ordena por razão social.
	List() ([]*entity.Cliente, error)
	Update(c *entity.Cliente) error
	// Delete falha com domain.ErrConflict quando o cliente está vinculado
	// a orçamentos (FK).
	Delete(id string) error
}
