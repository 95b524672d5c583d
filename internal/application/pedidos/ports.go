package pedidos

import (
	"context"
	"time"
)

// EdicaoLease é o lease de edição single-writer registrado no servidor.
// Substitui a flag local da interface legada: o detentor fica gravado com
// expiração, então duas sessões independentes nunca acreditam ambas deter
// o mesmo pedido, e uma sessão que morre libera o pedido quando o TTL vence.
type EdicaoLease interface {
	// Iniciar adquire o lease do pedido para o usuário. Falha com
	// domain.ErrEdicaoEmAndamento se o usuário já edita outro pedido e com
	// domain.ErrPedidoBloqueado se outro usuário detém este pedido.
	Iniciar(ctx context.Context, pedidoID, usuarioID string) (expiraEm time.Time, err error)
	// Renovar estende o lease se o usuário ainda o detém.
	Renovar(ctx context.Context, pedidoID, usuarioID string) (expiraEm time.Time, err error)
	// Liberar solta o lease. Compare-and-delete: um lease expirado e
	// readquirido por outro usuário nunca é liberado por um detentor antigo.
	Liberar(ctx context.Context, pedidoID, usuarioID string) error
	// Detentor devolve o usuário que detém o pedido ("" se livre).
	Detentor(ctx context.Context, pedidoID string) (string, error)
	// PedidoDoUsuario devolve o pedido em edição pelo usuário ("" se nenhum).
	PedidoDoUsuario(ctx context.Context, usuarioID string) (string, error)
}

// Notificador publica invalidações de lista para os clientes conectados.
// Estratégia proposital de "invalida tudo": qualquer mudança em pedidos
// dispara o refetch das listas visíveis, sem diff de payload.
type Notificador interface {
	PedidosAlterados(ctx context.Context, acao string)
}
