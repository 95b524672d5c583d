package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/controle-pedidos-api/internal/application/pedidos"
	"github.com/jhoicas/controle-pedidos-api/pkg/logger"
)

var _ pedidos.Notificador = (*Notifier)(nil)

// CanalPedidos é o canal pub/sub de invalidação de listas de pedidos.
// A mensagem é o nome da ação (reserva, atualizacao, exclusao, importacao);
// os clientes refazem o fetch das listas visíveis, sem diff de payload.
const CanalPedidos = "pedidos.changed"

// Notifier publica invalidações no Redis.
type Notifier struct {
	client *redis.Client
	log    *logger.Logger
}

// NewNotifier constrói o notificador.
func NewNotifier(client *redis.Client, log *logger.Logger) *Notifier {
	return &Notifier{client: client, log: log}
}

// PedidosAlterados publica a ação no canal. Falha de publicação não
// interrompe a operação que a originou: o dado já está gravado, e os
// clientes reconectam o SSE com refetch completo de qualquer forma.
func (n *Notifier) PedidosAlterados(ctx context.Context, acao string) {
	if err := n.client.Publish(ctx, CanalPedidos, acao).Err(); err != nil {
		n.log.Warn().Err(err).Str("acao", acao).Msg("falha ao publicar invalidação de pedidos")
	}
}

// Subscribe abre a assinatura do canal de pedidos (consumida pelo SSE).
func Subscribe(ctx context.Context, client *redis.Client) *redis.PubSub {
	return client.Subscribe(ctx, CanalPedidos)
}
