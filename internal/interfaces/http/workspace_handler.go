package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/application/usecase"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
)

// WorkspaceHandler trata o mural pessoal: post-its, listas e tarefas.
// Todo acesso é restrito ao dono; o usuário vem do token.
type WorkspaceHandler struct {
	uc *usecase.WorkspaceUseCase
}

// NewWorkspaceHandler constrói o handler.
func NewWorkspaceHandler(uc *usecase.WorkspaceUseCase) *WorkspaceHandler {
	return &WorkspaceHandler{uc: uc}
}

func (h *WorkspaceHandler) erroWorkspace(c *fiber.Ctx, err error, recurso string) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: recurso + " não encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "o mural é pessoal"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// CreatePostIt POST /api/postits
func (h *WorkspaceHandler) CreatePostIt(c *fiber.Ctx) error {
	var in dto.PostItRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.CreatePostIt(GetUserID(c), in)
	if err != nil {
		return h.erroWorkspace(c, err, "post-it")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListPostIts GET /api/postits
func (h *WorkspaceHandler) ListPostIts(c *fiber.Ctx) error {
	list, err := h.uc.ListPostIts(GetUserID(c))
	if err != nil {
		return h.erroWorkspace(c, err, "post-it")
	}
	return c.JSON(list)
}

// UpdatePostIt PUT /api/postits/:id
func (h *WorkspaceHandler) UpdatePostIt(c *fiber.Ctx) error {
	var in dto.PostItRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.UpdatePostIt(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return h.erroWorkspace(c, err, "post-it")
	}
	return c.JSON(resp)
}

// DeletePostIt DELETE /api/postits/:id
func (h *WorkspaceHandler) DeletePostIt(c *fiber.Ctx) error {
	if err := h.uc.DeletePostIt(GetUserID(c), c.Params("id")); err != nil {
		return h.erroWorkspace(c, err, "post-it")
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "post-it removido"})
}

// CreateLista POST /api/listas
func (h *WorkspaceHandler) CreateLista(c *fiber.Ctx) error {
	var in dto.ListaTarefasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.CreateLista(GetUserID(c), in)
	if err != nil {
		return h.erroWorkspace(c, err, "lista")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListListas GET /api/listas
func (h *WorkspaceHandler) ListListas(c *fiber.Ctx) error {
	list, err := h.uc.ListListas(GetUserID(c))
	if err != nil {
		return h.erroWorkspace(c, err, "lista")
	}
	return c.JSON(list)
}

// UpdateLista PUT /api/listas/:id
func (h *WorkspaceHandler) UpdateLista(c *fiber.Ctx) error {
	var in dto.ListaTarefasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.UpdateLista(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return h.erroWorkspace(c, err, "lista")
	}
	return c.JSON(resp)
}

// DeleteLista DELETE /api/listas/:id
func (h *WorkspaceHandler) DeleteLista(c *fiber.Ctx) error {
	if err := h.uc.DeleteLista(GetUserID(c), c.Params("id")); err != nil {
		return h.erroWorkspace(c, err, "lista")
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "lista removida"})
}

// CreateTarefa POST /api/tarefas
func (h *WorkspaceHandler) CreateTarefa(c *fiber.Ctx) error {
	var in dto.TarefaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.CreateTarefa(GetUserID(c), in)
	if err != nil {
		return h.erroWorkspace(c, err, "tarefa")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTarefas GET /api/tarefas
func (h *WorkspaceHandler) ListTarefas(c *fiber.Ctx) error {
	list, err := h.uc.ListTarefas(GetUserID(c))
	if err != nil {
		return h.erroWorkspace(c, err, "tarefa")
	}
	return c.JSON(list)
}

// UpdateTarefa PUT /api/tarefas/:id
func (h *WorkspaceHandler) UpdateTarefa(c *fiber.Ctx) error {
	var in dto.TarefaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.UpdateTarefa(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return h.erroWorkspace(c, err, "tarefa")
	}
	return c.JSON(resp)
}

// DeleteTarefa DELETE /api/tarefas/:id
func (h *WorkspaceHandler) DeleteTarefa(c *fiber.Ctx) error {
	if err := h.uc.DeleteTarefa(GetUserID(c), c.Params("id")); err != nil {
		return h.erroWorkspace(c, err, "tarefa")
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "tarefa removida"})
}
