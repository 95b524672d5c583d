package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/application/pedidos"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
)

// PedidoHandler trata pedidos: listagem, reserva, edição campo a campo e o
// ciclo do lease de edição.
type PedidoHandler struct {
	uc *pedidos.UseCase
}

// NewPedidoHandler constrói o handler.
func NewPedidoHandler(uc *pedidos.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// ListByPeriodo GET /api/periodos/:id/pedidos
func (h *PedidoHandler) ListByPeriodo(c *fiber.Ctx) error {
	list, err := h.uc.ListarPorPeriodo(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListTHC GET /api/pedidos/thc
func (h *PedidoHandler) ListTHC(c *fiber.Ctx) error {
	list, err := h.uc.ListarTHC()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Reservar POST /api/pedidos/reservar
func (h *PedidoHandler) Reservar(c *fiber.Ctx) error {
	var in dto.ReservarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Reservar(c.Context(), usuarioAtual(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número do pedido e período são obrigatórios"})
		case domain.ErrEdicaoEmAndamento:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EDICAO_EM_ANDAMENTO", Message: "finalize a edição do pedido atual primeiro"})
		case domain.ErrPedidoJaExiste:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PEDIDO_EXISTE", Message: "já existe um pedido com este número no período"})
		case domain.ErrPedidoJaReservado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PEDIDO_RESERVADO", Message: "pedido reservado por outro usuário"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AtualizarCampo PATCH /api/pedidos/:id/campo
func (h *PedidoHandler) AtualizarCampo(c *fiber.Ctx) error {
	var in dto.UpdateCampoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.AtualizarCampo(c.Context(), usuarioAtual(c), c.Params("id"), in); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo ou valor inválido"})
		case domain.ErrSemPermissao:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SEM_PERMISSAO", Message: "sem permissão para editar este campo"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "campo atualizado"})
}

// IniciarEdicao POST /api/pedidos/:id/edicao
func (h *PedidoHandler) IniciarEdicao(c *fiber.Ctx) error {
	resp, err := h.uc.IniciarEdicao(c.Context(), usuarioAtual(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		case domain.ErrEdicaoEmAndamento:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EDICAO_EM_ANDAMENTO", Message: "finalize a edição do pedido atual primeiro"})
		case domain.ErrPedidoBloqueado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PEDIDO_BLOQUEADO", Message: "pedido em edição por outro usuário"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// RenovarEdicao PUT /api/pedidos/:id/edicao
func (h *PedidoHandler) RenovarEdicao(c *fiber.Ctx) error {
	resp, err := h.uc.RenovarEdicao(c.Context(), usuarioAtual(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrSemLease:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SEM_LEASE", Message: "nenhuma edição em andamento para este pedido"})
		case domain.ErrPedidoBloqueado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PEDIDO_BLOQUEADO", Message: "pedido em edição por outro usuário"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// FinalizarEdicao POST /api/pedidos/:id/edicao/finalizar
func (h *PedidoHandler) FinalizarEdicao(c *fiber.Ctx) error {
	faltam, err := h.uc.FinalizarEdicao(c.Context(), usuarioAtual(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrCamposIncompletos:
			// 422: o lease permanece com o usuário até completar os campos.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.FinalizarEdicaoResponse{
				Mensagem:        "preencha pelo menos cliente e produto",
				CamposFaltantes: faltam,
			})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		case domain.ErrSemLease:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SEM_LEASE", Message: "nenhuma edição em andamento para este pedido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FinalizarEdicaoResponse{Mensagem: "edição finalizada"})
}

// CancelarEdicao DELETE /api/pedidos/:id/edicao
func (h *PedidoHandler) CancelarEdicao(c *fiber.Ctx) error {
	if err := h.uc.CancelarEdicao(c.Context(), usuarioAtual(c), c.Params("id")); err != nil {
		if err == domain.ErrSemLease {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SEM_LEASE", Message: "nenhuma edição em andamento para este pedido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "edição cancelada"})
}

// Delete DELETE /api/pedidos/:id (admin)
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Context(), usuarioAtual(c), c.Params("id")); err != nil {
		switch err {
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "apenas administradores"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "pedido removido"})
}
