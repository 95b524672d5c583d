package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/pkg/jwt"
)

// Locals keys preenchidas pelo middleware de autenticação.
const (
	LocalUserID = "user_id"
	LocalNome   = "nome"
	LocalTipo   = "tipo"
)

// AuthMiddleware valida o Bearer Token JWT e grava usuário, nome e tipo em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, nome, tipo, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalNome, nome)
		c.Locals(LocalTipo, tipo)
		return c.Next()
	}
}

// RequireAdmin barra usuários que não sejam administradores. Usar depois de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetTipo(c) != entity.TipoAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "apenas administradores"})
		}
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetNome devolve o nome do usuário do contexto.
func GetNome(c *fiber.Ctx) string {
	v := c.Locals(LocalNome)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTipo devolve o tipo do usuário do contexto (admin | colaborador).
func GetTipo(c *fiber.Ctx) string {
	v := c.Locals(LocalTipo)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// usuarioAtual monta a entidade do usuário autenticado a partir dos claims,
// sem ida ao banco. Suficiente para as regras de permissão (ID e tipo).
func usuarioAtual(c *fiber.Ctx) *entity.Usuario {
	return &entity.Usuario{
		ID:   GetUserID(c),
		Nome: GetNome(c),
		Tipo: GetTipo(c),
	}
}
