package repository

import "github.com/jhoicas/controle-pedidos-api/internal/domain/entity"

// ControleEnvioRepository define o porto de persistência para ControleEnvio.
type ControleEnvioRepository interface {
	Create(e *entity.ControleEnvio) error
	GetByID(id string) (*entity.ControleEnvio, error)
	ListByPeriodo(periodoID string) ([]*entity.ControleEnvio, error)
	Update(e *entity.ControleEnvio) error
	UpdateField(id, campo string, valor any) error
	Delete(id string) error
}
