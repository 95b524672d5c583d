package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	infraredis "github.com/jhoicas/controle-pedidos-api/internal/infrastructure/redis"
)

const (
	leaseTTL = 10 * time.Minute

	pedidoA  = "pedido-aaaa"
	pedidoB  = "pedido-bbbb"
	usuaria1 = "usuario-0001"
	usuario2 = "usuario-0002"
)

func novoLease(t *testing.T) (*infraredis.LeaseStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return infraredis.NewLeaseStore(client, leaseTTL), mr
}

func TestIniciar_PedidoLivre(t *testing.T) {
	lease, _ := novoLease(t)
	ctx := context.Background()

	expira, err := lease.Iniciar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(leaseTTL), expira, 2*time.Second)

	detentor, err := lease.Detentor(ctx, pedidoA)
	require.NoError(t, err)
	assert.Equal(t, usuaria1, detentor)
}

// Exclusividade: o segundo usuário não entra enquanto o lease vive.
func TestIniciar_PedidoJaEmEdicao(t *testing.T) {
	lease, _ := novoLease(t)
	ctx := context.Background()

	_, err := lease.Iniciar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)

	_, err = lease.Iniciar(ctx, pedidoA, usuario2)
	assert.ErrorIs(t, err, domain.ErrPedidoBloqueado)

	// A tentativa frustrada não pode deixar o segundo usuário "editando".
	emEdicao, err := lease.PedidoDoUsuario(ctx, usuario2)
	require.NoError(t, err)
	assert.Empty(t, emEdicao, "a trava de usuário da tentativa frustrada deve ser desfeita")
}

// Um pedido em edição por vez por usuário.
func TestIniciar_UsuarioJaEditandoOutroPedido(t *testing.T) {
	lease, _ := novoLease(t)
	ctx := context.Background()

	_, err := lease.Iniciar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)

	_, err = lease.Iniciar(ctx, pedidoB, usuaria1)
	assert.ErrorIs(t, err, domain.ErrEdicaoEmAndamento)
}

// Reentrada: reabrir o mesmo pedido pelo mesmo usuário renova em vez de falhar.
func TestIniciar_ReentradaMesmoUsuario(t *testing.T) {
	lease, _ := novoLease(t)
	ctx := context.Background()

	_, err := lease.Iniciar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)

	expira, err := lease.Iniciar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(leaseTTL), expira, 2*time.Second)
}

func TestRenovar_DetentorEstendeOTTL(t *testing.T) {
	lease, mr := novoLease(t)
	ctx := context.Background()

	_, err := lease.Iniciar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)

	// Meio caminho do TTL; a renovação deve voltar ao TTL cheio.
	mr.FastForward(leaseTTL / 2)
	_, err = lease.Renovar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)

	mr.FastForward(leaseTTL - time.Minute)
	detentor, err := lease.Detentor(ctx, pedidoA)
	require.NoError(t, err)
	assert.Equal(t, usuaria1, detentor, "o lease renovado não pode ter expirado")
}

func TestRenovar_SemLease(t *testing.T) {
	lease, _ := novoLease(t)

	_, err := lease.Renovar(context.Background(), pedidoA, usuaria1)
	assert.ErrorIs(t, err, domain.ErrSemLease)
}

func TestRenovar_OutroDetentor(t *testing.T) {
	lease, _ := novoLease(t)
	ctx := context.Background()

	_, err := lease.Iniciar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)

	_, err = lease.Renovar(ctx, pedidoA, usuario2)
	assert.ErrorIs(t, err, domain.ErrPedidoBloqueado)
}

func TestLiberar_DetentorSolta(t *testing.T) {
	lease, _ := novoLease(t)
	ctx := context.Background()

	_, err := lease.Iniciar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)

	require.NoError(t, lease.Liberar(ctx, pedidoA, usuaria1))

	detentor, err := lease.Detentor(ctx, pedidoA)
	require.NoError(t, err)
	assert.Empty(t, detentor)

	emEdicao, err := lease.PedidoDoUsuario(ctx, usuaria1)
	require.NoError(t, err)
	assert.Empty(t, emEdicao)
}

// Compare-and-delete: quem não detém o lease não consegue liberá-lo.
func TestLiberar_NaoDetentorNaoDerrubaOLease(t *testing.T) {
	lease, _ := novoLease(t)
	ctx := context.Background()

	_, err := lease.Iniciar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)

	err = lease.Liberar(ctx, pedidoA, usuario2)
	assert.ErrorIs(t, err, domain.ErrSemLease)

	detentor, err := lease.Detentor(ctx, pedidoA)
	require.NoError(t, err)
	assert.Equal(t, usuaria1, detentor, "o lease do detentor original deve sobreviver")
}

// Expiração: o TTL vencido devolve o pedido ao estado livre e outro usuário
// consegue adquirir.
func TestLease_ExpiraEOutroAssume(t *testing.T) {
	lease, mr := novoLease(t)
	ctx := context.Background()

	_, err := lease.Iniciar(ctx, pedidoA, usuaria1)
	require.NoError(t, err)

	mr.FastForward(leaseTTL + time.Second)

	_, err = lease.Iniciar(ctx, pedidoA, usuario2)
	require.NoError(t, err, "o lease expirado deve estar disponível")

	detentor, err := lease.Detentor(ctx, pedidoA)
	require.NoError(t, err)
	assert.Equal(t, usuario2, detentor)
}
