package http

import (
	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/controle-pedidos-api/internal/application/auth"
	"github.com/jhoicas/controle-pedidos-api/internal/application/importacao"
	"github.com/jhoicas/controle-pedidos-api/internal/application/orcamentos"
	"github.com/jhoicas/controle-pedidos-api/internal/application/pedidos"
	"github.com/jhoicas/controle-pedidos-api/internal/application/usecase"
	"github.com/jhoicas/controle-pedidos-api/pkg/logger"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	PedidoUC         *pedidos.UseCase
	ImportacaoUC     *importacao.UseCase
	OrcamentoUC      *orcamentos.UseCase
	VendedorUC       *usecase.VendedorUseCase
	PeriodoUC        *usecase.PeriodoUseCase
	JudicializacaoUC *usecase.JudicializacaoUseCase
	ControleEnvioUC  *usecase.ControleEnvioUseCase
	ClienteUC        *usecase.ClienteUseCase
	WorkspaceUC      *usecase.WorkspaceUseCase
	Redis            *goredis.Client
	Log              *logger.Logger
	JWTSecret        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Usuários (somente admin)
	usuarios := protected.Group("/usuarios", RequireAdmin())
	usuarios.Post("/", authHandler.CreateUsuario)
	usuarios.Get("/", authHandler.ListUsuarios)
	usuarios.Put("/:id", authHandler.UpdateUsuario)
	usuarios.Patch("/:id/ativo", authHandler.ToggleAtivo)
	usuarios.Delete("/:id", authHandler.DeleteUsuario)

	// Períodos
	periodos := protected.Group("/periodos")
	periodoHandler := NewPeriodoHandler(deps.PeriodoUC)
	periodos.Post("/", periodoHandler.Create)
	periodos.Get("/", periodoHandler.List)
	periodos.Get("/atual", periodoHandler.Atual)
	periodos.Get("/:id", periodoHandler.Get)

	// Pedidos
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	periodos.Get("/:id/pedidos", pedidoHandler.ListByPeriodo)
	pedidosGroup := protected.Group("/pedidos")
	pedidosGroup.Get("/thc", pedidoHandler.ListTHC)
	pedidosGroup.Post("/reservar", pedidoHandler.Reservar)
	pedidosGroup.Patch("/:id/campo", pedidoHandler.AtualizarCampo)
	pedidosGroup.Post("/:id/edicao", pedidoHandler.IniciarEdicao)
	pedidosGroup.Put("/:id/edicao", pedidoHandler.RenovarEdicao)
	pedidosGroup.Post("/:id/edicao/finalizar", pedidoHandler.FinalizarEdicao)
	pedidosGroup.Delete("/:id/edicao", pedidoHandler.CancelarEdicao)
	pedidosGroup.Delete("/:id", RequireAdmin(), pedidoHandler.Delete)

	// Importação CSV
	imp := protected.Group("/importacao")
	importacaoHandler := NewImportacaoHandler(deps.ImportacaoUC)
	imp.Post("/pedidos/preview", importacaoHandler.PreviewPedidos)
	imp.Post("/pedidos", importacaoHandler.ImportarPedidos)
	imp.Get("/pedidos/template", importacaoHandler.TemplatePedidos)
	imp.Post("/vendedores/preview", importacaoHandler.PreviewVendedores)
	imp.Post("/vendedores", importacaoHandler.ImportarVendedores)
	imp.Get("/vendedores/template", importacaoHandler.TemplateVendedores)

	// Vendedores
	vendedores := protected.Group("/vendedores")
	vendedorHandler := NewVendedorHandler(deps.VendedorUC)
	vendedores.Post("/", vendedorHandler.Create)
	vendedores.Get("/", vendedorHandler.List)
	vendedores.Get("/busca", vendedorHandler.Search)
	vendedores.Patch("/:id/ativo", vendedorHandler.ToggleAtivo)
	vendedores.Delete("/:id", vendedorHandler.Delete)

	// Judicializações
	judicializacaoHandler := NewJudicializacaoHandler(deps.JudicializacaoUC)
	periodos.Get("/:id/judicializacoes", judicializacaoHandler.ListByPeriodo)
	judicializacoes := protected.Group("/judicializacoes")
	judicializacoes.Post("/", judicializacaoHandler.Create)
	judicializacoes.Put("/:id", judicializacaoHandler.Update)
	judicializacoes.Patch("/:id/status", judicializacaoHandler.UpdateStatus)
	judicializacoes.Delete("/:id", judicializacaoHandler.Delete)

	// Controle de envios (cortesias)
	controleEnvioHandler := NewControleEnvioHandler(deps.ControleEnvioUC)
	periodos.Get("/:id/envios", controleEnvioHandler.ListByPeriodo)
	envios := protected.Group("/envios")
	envios.Post("/", controleEnvioHandler.Create)
	envios.Put("/:id", controleEnvioHandler.Update)
	envios.Patch("/:id/status", controleEnvioHandler.UpdateStatus)
	envios.Delete("/:id", controleEnvioHandler.Delete)

	// Clientes de orçamento
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.Get)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Orçamentos
	orcs := protected.Group("/orcamentos")
	orcamentoHandler := NewOrcamentoHandler(deps.OrcamentoUC)
	orcs.Post("/", orcamentoHandler.Create)
	orcs.Get("/", orcamentoHandler.List)
	orcs.Get("/:id", orcamentoHandler.Get)
	orcs.Put("/:id", orcamentoHandler.Update)
	orcs.Delete("/:id", orcamentoHandler.Delete)
	orcs.Post("/:id/pdf", orcamentoHandler.GerarPDF)

	// Mural pessoal
	workspaceHandler := NewWorkspaceHandler(deps.WorkspaceUC)
	postits := protected.Group("/postits")
	postits.Post("/", workspaceHandler.CreatePostIt)
	postits.Get("/", workspaceHandler.ListPostIts)
	postits.Put("/:id", workspaceHandler.UpdatePostIt)
	postits.Delete("/:id", workspaceHandler.DeletePostIt)
	listas := protected.Group("/listas")
	listas.Post("/", workspaceHandler.CreateLista)
	listas.Get("/", workspaceHandler.ListListas)
	listas.Put("/:id", workspaceHandler.UpdateLista)
	listas.Delete("/:id", workspaceHandler.DeleteLista)
	tarefas := protected.Group("/tarefas")
	tarefas.Post("/", workspaceHandler.CreateTarefa)
	tarefas.Get("/", workspaceHandler.ListTarefas)
	tarefas.Put("/:id", workspaceHandler.UpdateTarefa)
	tarefas.Delete("/:id", workspaceHandler.DeleteTarefa)

	// Stream de eventos (SSE)
	eventosHandler := NewEventosHandler(deps.Redis, deps.Log)
	protected.Get("/eventos", eventosHandler.Stream)
}
