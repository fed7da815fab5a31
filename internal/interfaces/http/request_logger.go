package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-estoque/pkg/logger"
)

// HTTPObserver recibe cada petición terminada (lo implementa metrics.Prometheus).
type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, elapsed time.Duration)
}

// RequestLogger registra cada petición con zerolog y, si hay observer, alimenta las métricas.
func RequestLogger(log *logger.Logger, observer HTTPObserver) fiber.Handler {
	zl := log.Component("http").Zerolog()
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		if observer != nil {
			observer.ObserveHTTP(c.Method(), path, status, elapsed)
		}

		ev := zl.Info()
		if status >= fiber.StatusInternalServerError {
			ev = zl.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", path).
			Int("status", status).
			Dur("latency", elapsed).
			Int64("usuario_id", GetUserID(c)).
			Msg("request")
		return err
	}
}
