package repository

import "github.com/jhoicas/controle-pedidos-api/internal/domain/entity"

// JudicializacaoRepository define o porto de persistência para Judicializacao.
type JudicializacaoRepository interface {
	Create(j *entity.Judicializacao) error
	GetByID(id string) (*entity.Judicializacao, error)
	ListByPeriodo(periodoID string) ([]*entity.Judicializacao, error)
	Update(j *entity.Judicializacao) error
	UpdateField(id, campo string, valor any) error
	Delete(id string) error
}
