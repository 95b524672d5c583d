package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/application/importacao"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
)

// ImportacaoHandler trata a importação CSV de pedidos e vendedores.
// O arquivo vem como multipart (campo "arquivo") ou como corpo bruto.
type ImportacaoHandler struct {
	uc *importacao.UseCase
}

// NewImportacaoHandler constrói o handler.
func NewImportacaoHandler(uc *importacao.UseCase) *ImportacaoHandler {
	return &ImportacaoHandler{uc: uc}
}

// arquivoCSV extrai o conteúdo do upload (multipart "arquivo" ou corpo bruto).
func arquivoCSV(c *fiber.Ctx) ([]byte, error) {
	if fh, err := c.FormFile("arquivo"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return c.Body(), nil
}

// PreviewPedidos POST /api/importacao/pedidos/preview
func (h *ImportacaoHandler) PreviewPedidos(c *fiber.Ctx) error {
	conteudo, err := arquivoCSV(c)
	if err != nil || len(conteudo) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "arquivo CSV obrigatório"})
	}
	resp, err := h.uc.PreviewPedidos(bytes.NewReader(conteudo))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CSV_INVALIDO", Message: err.Error()})
	}
	return c.JSON(resp)
}

// ImportarPedidos POST /api/importacao/pedidos?periodo_id=...
func (h *ImportacaoHandler) ImportarPedidos(c *fiber.Ctx) error {
	periodoID := c.Query("periodo_id")
	conteudo, err := arquivoCSV(c)
	if err != nil || len(conteudo) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "arquivo CSV obrigatório"})
	}
	resp, err := h.uc.ImportarPedidos(c.Context(), usuarioAtual(c), periodoID, bytes.NewReader(conteudo))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_id é obrigatório"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CSV_INVALIDO", Message: err.Error()})
	}
	return c.JSON(resp)
}

// PreviewVendedores POST /api/importacao/vendedores/preview
func (h *ImportacaoHandler) PreviewVendedores(c *fiber.Ctx) error {
	conteudo, err := arquivoCSV(c)
	if err != nil || len(conteudo) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "arquivo CSV obrigatório"})
	}
	resp, err := h.uc.PreviewVendedores(bytes.NewReader(conteudo))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CSV_INVALIDO", Message: err.Error()})
	}
	return c.JSON(resp)
}

// ImportarVendedores POST /api/importacao/vendedores
func (h *ImportacaoHandler) ImportarVendedores(c *fiber.Ctx) error {
	conteudo, err := arquivoCSV(c)
	if err != nil || len(conteudo) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "arquivo CSV obrigatório"})
	}
	resp, err := h.uc.ImportarVendedores(c.Context(), bytes.NewReader(conteudo))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CSV_INVALIDO", Message: err.Error()})
	}
	return c.JSON(resp)
}

// TemplatePedidos GET /api/importacao/pedidos/template
func (h *ImportacaoHandler) TemplatePedidos(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="template-pedidos.csv"`)
	return c.Send(importacao.TemplatePedidosCSV())
}

// TemplateVendedores GET /api/importacao/vendedores/template
func (h *ImportacaoHandler) TemplateVendedores(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="template-vendedores.csv"`)
	return c.Send(importacao.TemplateVendedoresCSV())
}
