package repository

import "github.com/jhoicas/controle-pedidos-api/internal/domain/entity"

// PeriodoRepository define o porto de persistência para Periodo.
// Períodos são imutáveis: não há Update.
type PeriodoRepository interface {
	Create(periodo *entity.Periodo) error
	GetByID(id string) (*entity.Periodo, error)
	// List ordena do mais recente para o mais antigo (ano DESC, mês DESC).
	List() ([]*entity.Periodo, error)
}
