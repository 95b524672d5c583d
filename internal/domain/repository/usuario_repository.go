package repository

import "github.com/jhoicas/controle-pedidos-api/internal/domain/entity"

// UsuarioRepository define o porto de persistência para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	List() ([]*entity.Usuario, error)
	Delete(id string) error
}
