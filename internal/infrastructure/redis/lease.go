package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/controle-pedidos-api/internal/application/pedidos"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
)

var _ pedidos.EdicaoLease = (*LeaseStore)(nil)

// Chaves do lease. O par pedido→usuário e usuário→pedido é mantido em
// duas chaves com o mesmo TTL: a primeira garante exclusividade sobre o
// pedido, a segunda impede o mesmo usuário de editar dois pedidos.
const (
	chavePedido  = "pedido:lease:%s"     // valor: usuarioID
	chaveUsuario = "usuario:editando:%s" // valor: pedidoID
)

// Liberação compare-and-delete: só apaga se o detentor ainda for quem pede.
// Evita que um lease expirado e readquirido por outro usuário seja liberado
// por um detentor antigo.
var scriptLiberar = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	redis.call("DEL", KEYS[1])
	redis.call("DEL", KEYS[2])
	return 1
end
return 0
`)

// LeaseStore implementa o lease de edição sobre Redis (SET NX + TTL).
type LeaseStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaseStore constrói o lease com o TTL configurado.
func NewLeaseStore(client *redis.Client, ttl time.Duration) *LeaseStore {
	return &LeaseStore{client: client, ttl: ttl}
}

// Iniciar adquire o lease do pedido para o usuário.
func (s *LeaseStore) Iniciar(ctx context.Context, pedidoID, usuarioID string) (time.Time, error) {
	// Primeiro a trava por usuário: quem já edita outro pedido é barrado.
	okUsuario, err := s.client.SetNX(ctx, fmt.Sprintf(chaveUsuario, usuarioID), pedidoID, s.ttl).Result()
	if err != nil {
		return time.Time{}, fmt.Errorf("lease usuario: %w", err)
	}
	if !okUsuario {
		atual, err := s.client.Get(ctx, fmt.Sprintf(chaveUsuario, usuarioID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return time.Time{}, fmt.Errorf("lease usuario: %w", err)
		}
		if atual != pedidoID {
			return time.Time{}, domain.ErrEdicaoEmAndamento
		}
		// Reentrada no mesmo pedido: segue para renovar abaixo.
	}

	okPedido, err := s.client.SetNX(ctx, fmt.Sprintf(chavePedido, pedidoID), usuarioID, s.ttl).Result()
	if err != nil {
		return time.Time{}, fmt.Errorf("lease pedido: %w", err)
	}
	if !okPedido {
		detentor, err := s.client.Get(ctx, fmt.Sprintf(chavePedido, pedidoID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return time.Time{}, fmt.Errorf("lease pedido: %w", err)
		}
		if detentor != usuarioID {
			// Outro usuário detém o pedido; desfaz a trava de usuário criada acima.
			if okUsuario {
				_ = s.client.Del(ctx, fmt.Sprintf(chaveUsuario, usuarioID)).Err()
			}
			return time.Time{}, domain.ErrPedidoBloqueado
		}
	}

	return s.renovarTTL(ctx, pedidoID, usuarioID)
}

// Renovar estende o lease se o usuário ainda o detém.
func (s *LeaseStore) Renovar(ctx context.Context, pedidoID, usuarioID string) (time.Time, error) {
	detentor, err := s.Detentor(ctx, pedidoID)
	if err != nil {
		return time.Time{}, err
	}
	if detentor == "" {
		return time.Time{}, domain.ErrSemLease
	}
	if detentor != usuarioID {
		return time.Time{}, domain.ErrPedidoBloqueado
	}
	return s.renovarTTL(ctx, pedidoID, usuarioID)
}

func (s *LeaseStore) renovarTTL(ctx context.Context, pedidoID, usuarioID string) (time.Time, error) {
	if err := s.client.Expire(ctx, fmt.Sprintf(chavePedido, pedidoID), s.ttl).Err(); err != nil {
		return time.Time{}, fmt.Errorf("renovar lease pedido: %w", err)
	}
	if err := s.client.Expire(ctx, fmt.Sprintf(chaveUsuario, usuarioID), s.ttl).Err(); err != nil {
		return time.Time{}, fmt.Errorf("renovar lease usuario: %w", err)
	}
	return time.Now().Add(s.ttl), nil
}

// Liberar solta o lease (compare-and-delete via script Lua).
func (s *LeaseStore) Liberar(ctx context.Context, pedidoID, usuarioID string) error {
	n, err := scriptLiberar.Run(ctx, s.client,
		[]string{fmt.Sprintf(chavePedido, pedidoID), fmt.Sprintf(chaveUsuario, usuarioID)},
		usuarioID,
	).Int()
	if err != nil {
		return fmt.Errorf("liberar lease: %w", err)
	}
	if n == 0 {
		return domain.ErrSemLease
	}
	return nil
}

// Detentor devolve o usuário que detém o pedido ("" se livre).
func (s *LeaseStore) Detentor(ctx context.Context, pedidoID string) (string, error) {
	detentor, err := s.client.Get(ctx, fmt.Sprintf(chavePedido, pedidoID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("detentor do lease: %w", err)
	}
	return detentor, nil
}

// PedidoDoUsuario devolve o pedido em edição pelo usuário ("" se nenhum).
func (s *LeaseStore) PedidoDoUsuario(ctx context.Context, usuarioID string) (string, error) {
	pedidoID, err := s.client.Get(ctx, fmt.Sprintf(chaveUsuario, usuarioID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("pedido do usuario: %w", err)
	}
	return pedidoID, nil
}
