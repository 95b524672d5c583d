package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/controle-pedidos-api/internal/application/auth"
	"github.com/jhoicas/controle-pedidos-api/internal/application/importacao"
	"github.com/jhoicas/controle-pedidos-api/internal/application/orcamentos"
	"github.com/jhoicas/controle-pedidos-api/internal/application/pedidos"
	"github.com/jhoicas/controle-pedidos-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/controle-pedidos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/controle-pedidos-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/controle-pedidos-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/controle-pedidos-api/internal/interfaces/http"
	"github.com/jhoicas/controle-pedidos-api/pkg/config"
	"github.com/jhoicas/controle-pedidos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("aplicar migrations")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão a Redis")
	}
	defer redisClient.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	periodoRepo := postgres.NewPeriodoRepository(pool)
	vendedorRepo := postgres.NewVendedorRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	judicializacaoRepo := postgres.NewJudicializacaoRepository(pool)
	controleEnvioRepo := postgres.NewControleEnvioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	orcamentoRepo := postgres.NewOrcamentoRepository(pool)
	postitRepo := postgres.NewPostItRepository(pool)
	tarefaRepo := postgres.NewTarefaRepository(pool)

	lease := infraredis.NewLeaseStore(redisClient, cfg.Edicao.LeaseTTL)
	notifier := infraredis.NewNotifier(redisClient, log)

	authUC := auth.NewUseCase(usuarioRepo, cfg)
	pedidoUC := pedidos.NewUseCase(pedidoRepo, lease, notifier)
	importacaoUC := importacao.NewUseCase(pedidoRepo, vendedorRepo, notifier)
	pdfGenerator := infrapdf.NewMarotoOrcamentoGenerator()
	orcamentoUC := orcamentos.NewUseCase(orcamentoRepo, clienteRepo, pdfGenerator, cfg.Empresa)
	vendedorUC := usecase.NewVendedorUseCase(vendedorRepo)
	periodoUC := usecase.NewPeriodoUseCase(periodoRepo)
	judicializacaoUC := usecase.NewJudicializacaoUseCase(judicializacaoRepo)
	controleEnvioUC := usecase.NewControleEnvioUseCase(controleEnvioRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	workspaceUC := usecase.NewWorkspaceUseCase(postitRepo, tarefaRepo)

	// O período do mês corrente nasce com o servidor, não com o primeiro acesso.
	if _, err := periodoUC.GarantirAtual(); err != nil {
		log.Error().Err(err).Msg("garantir período corrente")
	}

	// Sem WriteTimeout: o stream SSE de /api/eventos mantém a resposta aberta.
	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Controle de Pedidos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		PedidoUC:         pedidoUC,
		ImportacaoUC:     importacaoUC,
		OrcamentoUC:      orcamentoUC,
		VendedorUC:       vendedorUC,
		PeriodoUC:        periodoUC,
		JudicializacaoUC: judicializacaoUC,
		ControleEnvioUC:  controleEnvioUC,
		ClienteUC:        clienteUC,
		WorkspaceUC:      workspaceUC,
		Redis:            redisClient,
		Log:              log,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
