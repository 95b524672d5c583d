package http

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/controle-pedidos-api/internal/infrastructure/redis"
	"github.com/jhoicas/controle-pedidos-api/pkg/logger"
)

// EventosHandler expõe o stream SSE de invalidação de pedidos.
// Cada mensagem é o nome da ação; o cliente refaz o fetch ao recebê-la.
type EventosHandler struct {
	client *goredis.Client
	log    *logger.Logger
}

// NewEventosHandler constrói o handler.
func NewEventosHandler(client *goredis.Client, log *logger.Logger) *EventosHandler {
	return &EventosHandler{client: client, log: log}
}

// Stream GET /api/eventos
func (h *EventosHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	client := h.client
	log := h.log
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub := redis.Subscribe(ctx, client)
		defer sub.Close()

		// Heartbeat mantém proxies intermediários com a conexão aberta.
		ticker := time.NewTicker(25 * time.Second)
		defer ticker.Stop()

		fmt.Fprint(w, ": conectado\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				fmt.Fprintf(w, "data: %s\n\n", msg.Payload)
				if err := w.Flush(); err != nil {
					return
				}
			case <-ticker.C:
				fmt.Fprint(w, ": ping\n\n")
				if err := w.Flush(); err != nil {
					log.Info().Msg("cliente SSE desconectado")
					return
				}
			}
		}
	}))
	return nil
}
