package repository

import "github.com/jhoicas/controle-pedidos-api/internal/domain/entity"

// PedidoRepository define o porto de persistência para Pedido.
type PedidoRepository interface {
	// Create insere o pedido. Violação do índice único
	// (periodo_id, lower(nr_pedido)) resulta em domain.ErrPedidoJaReservado.
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	// FindByNumero busca case-insensitive dentro do período (pré-checagem
	// otimista da reserva; a garantia real é o índice único).
	FindByNumero(periodoID, nrPedido string) (*entity.Pedido, error)
	ListByPeriodo(periodoID string) ([]*entity.Pedido, error)
	// ListByStatus cruza todos os períodos (lista THC / 2000).
	ListByStatus(status string) ([]*entity.Pedido, error)
	// UpdateField grava um único campo, espelhando o commit por blur da
	// interface. O campo deve pertencer à whitelist de colunas editáveis.
	UpdateField(id, campo string, valor any, atualizadoPor string) error
	Delete(id string) error
}
