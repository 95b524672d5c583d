// Package pedidos implementa o núcleo do sistema: a reserva de números de
// pedido, o lease de edição single-writer e a regra de permissão por campo.
//
// A reserva é otimista: a aplicação pré-checa o número no período, mas a
// garantia real de unicidade é o índice único case-insensitive do banco;
// check-then-insert na aplicação seria corrida.
package pedidos

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
	"github.com/jhoicas/controle-pedidos-api/pkg/brformat"
)

// Campos de pedido editáveis via UpdateField (whitelist).
var camposEditaveis = map[string]bool{
	"cliente":    true,
	"medico":     true,
	"vendedor":   true,
	"data":       true,
	"produto":    true,
	"qtd":        true,
	"total":      true,
	"rastreio":   true,
	"status":     true,
	"thc_status": true,
}

// Campos que um colaborador sem lease pode gravar em qualquer pedido:
// atualização logística do dia a dia, que não exige "dono" da edição.
var camposLivres = map[string]bool{
	"status":   true,
	"rastreio": true,
}

// UseCase casos de uso de pedidos.
type UseCase struct {
	pedidos     repository.PedidoRepository
	lease       EdicaoLease
	notificador Notificador
}

// NewUseCase constrói o caso de uso de pedidos.
func NewUseCase(pedidos repository.PedidoRepository, lease EdicaoLease, notificador Notificador) *UseCase {
	return &UseCase{pedidos: pedidos, lease: lease, notificador: notificador}
}

// Reservar cria um pedido só com o número preenchido, reivindicando o
// número antes do preenchimento dos dados.
//
//  1. Normaliza: trim + maiúsculas; vazio é rejeitado.
//  2. Pré-checagem otimista no período (conveniência de UX).
//  3. Insert da linha quase vazia; violação de unicidade no banco vira
//     domain.ErrPedidoJaReservado; esse é o backstop de correção.
//  4. No sucesso o criador adquire imediatamente o lease de edição.
func (uc *UseCase) Reservar(ctx context.Context, usuario *entity.Usuario, in dto.ReservarPedidoRequest) (*dto.PedidoResponse, error) {
	nr := strings.ToUpper(strings.TrimSpace(in.NrPedido))
	if nr == "" || in.PeriodoID == "" {
		return nil, domain.ErrInvalidInput
	}

	// O lease é single-writer também do lado do usuário: quem já edita um
	// pedido precisa finalizar antes de reservar outro.
	if atual, err := uc.lease.PedidoDoUsuario(ctx, usuario.ID); err != nil {
		return nil, err
	} else if atual != "" {
		return nil, domain.ErrEdicaoEmAndamento
	}

	existente, err := uc.pedidos.FindByNumero(in.PeriodoID, nr)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrPedidoJaExiste
	}

	now := time.Now()
	pedido := &entity.Pedido{
		ID:           uuid.New().String(),
		PeriodoID:    in.PeriodoID,
		NrPedido:     nr,
		Data:         brformat.Today(),
		Qtd:          1,
		Total:        decimal.Zero,
		Status:       entity.StatusEmSeparacao,
		CriadoPor:    usuario.ID,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.pedidos.Create(pedido); err != nil {
		// Outro usuário inseriu no mesmo instante: o índice único decide.
		return nil, err
	}

	// O pedido existe a partir daqui; as outras sessões precisam saber
	// mesmo que a aquisição do lease falhe logo abaixo.
	uc.notificador.PedidosAlterados(ctx, "reserva")

	if _, err := uc.lease.Iniciar(ctx, pedido.ID, usuario.ID); err != nil {
		// Sem lease o criador ainda pode editar campo a campo depois de
		// chamar Iniciar de novo.
		return toPedidoResponse(pedido), nil
	}
	return toPedidoResponse(pedido), nil
}

// IniciarEdicao adquire o lease de edição de um pedido existente.
func (uc *UseCase) IniciarEdicao(ctx context.Context, usuario *entity.Usuario, pedidoID string) (*dto.EdicaoResponse, error) {
	pedido, err := uc.pedidos.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	expira, err := uc.lease.Iniciar(ctx, pedidoID, usuario.ID)
	if err != nil {
		return nil, err
	}
	return &dto.EdicaoResponse{PedidoID: pedidoID, ExpiraEm: expira}, nil
}

// RenovarEdicao estende o lease do detentor.
func (uc *UseCase) RenovarEdicao(ctx context.Context, usuario *entity.Usuario, pedidoID string) (*dto.EdicaoResponse, error) {
	expira, err := uc.lease.Renovar(ctx, pedidoID, usuario.ID)
	if err != nil {
		return nil, err
	}
	return &dto.EdicaoResponse{PedidoID: pedidoID, ExpiraEm: expira}, nil
}

// FinalizarEdicao encerra a edição. O lease só é liberado se o pedido
// passar na regra de completude (cliente e produto preenchidos); caso
// contrário os campos faltantes são devolvidos e o lease permanece.
func (uc *UseCase) FinalizarEdicao(ctx context.Context, usuario *entity.Usuario, pedidoID string) ([]string, error) {
	pedido, err := uc.pedidos.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if faltam := pedido.CamposFaltantes(); len(faltam) > 0 {
		return faltam, domain.ErrCamposIncompletos
	}
	if err := uc.lease.Liberar(ctx, pedidoID, usuario.ID); err != nil {
		return nil, err
	}
	return nil, nil
}

// CancelarEdicao libera o lease incondicionalmente. Não desfaz nada: os
// campos gravados durante a edição já foram commitados um a um (commit
// por blur), então um pedido abandonado no meio pode ficar parcialmente
// preenchido. Inconsistência aceita deste desenho.
func (uc *UseCase) CancelarEdicao(ctx context.Context, usuario *entity.Usuario, pedidoID string) error {
	return uc.lease.Liberar(ctx, pedidoID, usuario.ID)
}

// PodeEditarCampo aplica a regra de permissão por campo, decidida antes de
// qualquer chamada ao banco:
//   - admin grava qualquer campo de qualquer pedido;
//   - o detentor do lease grava qualquer campo do pedido que edita;
//   - colaborador sem lease grava apenas status e rastreio.
func (uc *UseCase) PodeEditarCampo(ctx context.Context, usuario *entity.Usuario, pedidoID, campo string) (bool, error) {
	if usuario.IsAdmin() {
		return true, nil
	}
	if camposLivres[campo] {
		return true, nil
	}
	detentor, err := uc.lease.Detentor(ctx, pedidoID)
	if err != nil {
		return false, err
	}
	return detentor == usuario.ID, nil
}

// AtualizarCampo grava um único campo do pedido (commit por blur). O valor
// cru do JSON é coagido para o tipo da coluna; status fora da enumeração é
// rejeitado. A view local do chamador só reflete após a confirmação.
func (uc *UseCase) AtualizarCampo(ctx context.Context, usuario *entity.Usuario, pedidoID string, in dto.UpdateCampoRequest) error {
	if !camposEditaveis[in.Campo] {
		return domain.ErrInvalidInput
	}

	ok, err := uc.PodeEditarCampo(ctx, usuario, pedidoID, in.Campo)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrSemPermissao
	}

	valor, err := coagirValor(in.Campo, in.Valor)
	if err != nil {
		return err
	}

	if err := uc.pedidos.UpdateField(pedidoID, in.Campo, valor, usuario.ID); err != nil {
		return err
	}
	uc.notificador.PedidosAlterados(ctx, "atualizacao")
	return nil
}

// Excluir remove um pedido. Apenas administradores.
func (uc *UseCase) Excluir(ctx context.Context, usuario *entity.Usuario, pedidoID string) error {
	if !usuario.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := uc.pedidos.Delete(pedidoID); err != nil {
		return err
	}
	uc.notificador.PedidosAlterados(ctx, "exclusao")
	return nil
}

// ListarPorPeriodo devolve os pedidos do período, mais recente primeiro.
func (uc *UseCase) ListarPorPeriodo(periodoID string) ([]dto.PedidoResponse, error) {
	list, err := uc.pedidos.ListByPeriodo(periodoID)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(list), nil
}

// ListarTHC devolve os pedidos THC / 2000 de todos os períodos, com o
// prazo de embarque calculado (data + 16 dias).
func (uc *UseCase) ListarTHC() ([]dto.PedidoResponse, error) {
	list, err := uc.pedidos.ListByStatus(entity.StatusTHC)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(list), nil
}

// coagirValor converte o valor cru do JSON para o tipo da coluna.
func coagirValor(campo string, valor any) (any, error) {
	switch campo {
	case "status":
		s, _ := valor.(string)
		if !entity.IsPedidoStatus(s) {
			return nil, domain.ErrInvalidInput
		}
		return s, nil
	case "thc_status":
		s, _ := valor.(string)
		if s != "" && !entity.IsThcStatus(s) {
			return nil, domain.ErrInvalidInput
		}
		return s, nil
	case "data":
		s, _ := valor.(string)
		return brformat.NormalizeDate(s), nil
	case "qtd":
		switch v := valor.(type) {
		case float64:
			return int(v), nil
		case int:
			return v, nil
		case string:
			d := brformat.ParseCurrency(v)
			return int(d.IntPart()), nil
		default:
			return nil, domain.ErrInvalidInput
		}
	case "total":
		switch v := valor.(type) {
		case float64:
			return decimal.NewFromFloat(v), nil
		case string:
			return brformat.ParseCurrency(v), nil
		default:
			return nil, domain.ErrInvalidInput
		}
	default:
		s, ok := valor.(string)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		return s, nil
	}
}

func toPedidoResponses(list []*entity.Pedido) []dto.PedidoResponse {
	out := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPedidoResponse(p))
	}
	return out
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:           p.ID,
		PeriodoID:    p.PeriodoID,
		NrPedido:     p.NrPedido,
		Cliente:      p.Cliente,
		Medico:       p.Medico,
		Vendedor:     p.Vendedor,
		Data:         p.Data,
		Produto:      p.Produto,
		Qtd:          p.Qtd,
		Total:        p.Total.StringFixed(2),
		Rastreio:     p.Rastreio,
		Status:       p.Status,
		ThcStatus:    p.ThcStatus,
		CriadoEm:     p.CriadoEm,
		AtualizadoEm: p.AtualizadoEm,
	}
	if p.Status == entity.StatusTHC {
		if prazo, err := p.PrazoEnvioTHC(); err == nil {
			resp.PrazoTHC = prazo
		}
	}
	return resp
}
