package repository

import "github.com/jhoicas/controle-pedidos-api/internal/domain/entity"

// OrcamentoRepository define o porto de persistência para Orcamento e itens.
type OrcamentoRepository interface {
	// Create grava cabeça e itens na mesma transação.
	Create(o *entity.Orcamento) error
	GetByID(id string) (*entity.Orcamento, error)
	// List devolve as cabeças (sem itens), mais recente primeiro.
	List() ([]*entity.Orcamento, error)
	// Update regrava a cabeça e substitui os itens na mesma transação.
	Update(o *entity.Orcamento) error
	Delete(id string) error
	// CountByMesAno conta orçamentos criados no mês (numeração ORC{YYYY}{MM}{NNN}).
	CountByMesAno(mes, ano int) (int, error)
}
