package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	apphttp "github.com/jhoicas/controle-pedidos-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/controle-pedidos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testNome      = "Usuária de Teste"
	testIssuer    = "controle-pedidos-test"
	testExpMin    = 60
)

// buildTestApp monta um app Fiber mínimo com uma rota protegida por
// AuthMiddleware + RequireAdmin e um handler que devolve 200 se passar.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"tipo": apphttp.GetTipo(c),
			})
		},
	)
	return app
}

// tokenParaTipo gera um JWT com o tipo indicado.
func tokenParaTipo(t *testing.T, tipo string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testNome, tipo, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara GET /admin e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: admin acessa rota de admin → HTTP 200.
func TestRequireAdmin_AdminAcessa(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenParaTipo(t, entity.TipoAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin deve acessar rota restrita a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.TipoAdmin, body["tipo"])
}

// Caso 2: colaborador barrado em rota de admin → HTTP 403.
func TestRequireAdmin_ColaboradorBloqueado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenParaTipo(t, entity.TipoColaborador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"a resposta de erro deve incluir o código FORBIDDEN")
}

// Caso 3: sem header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SemHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 4: token malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: header sem o prefixo Bearer → HTTP 401.
func TestAuthMiddleware_SemPrefixoBearer_Retorna401(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testNome, entity.TipoAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, tok) // sem "Bearer "
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Extração de claims
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"nome":    apphttp.GetNome(c),
			"tipo":    apphttp.GetTipo(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenParaTipo(t, entity.TipoColaborador))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testNome, body["nome"])
	assert.Equal(t, entity.TipoColaborador, body["tipo"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes pkg/jwt: integridade do generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testNome, entity.TipoColaborador, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, nome, tipo, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testNome, nome)
	assert.Equal(t, entity.TipoColaborador, tipo)
}

func TestJWT_TokenExpirado_RetornaErro(t *testing.T) {
	// Token com expiração -1 minuto (já expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testNome, entity.TipoAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretIncorreto_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testNome, entity.TipoAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}
