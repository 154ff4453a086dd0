package http

import (
	"time"

	"portfolio-builder/pkg/apierr"

	"github.com/gofiber/fiber/v2"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// NewApp builds the fiber app with the shared middleware and every route.
func NewApp(h *Handler, log *zap.Logger, bodyLimitMB int) *fiber.App {
	if bodyLimitMB <= 0 {
		bodyLimitMB = 4
	}
	app := fiber.New(fiber.Config{
		AppName:               "portfolio-builder",
		BodyLimit:             bodyLimitMB * 1024 * 1024,
		ErrorHandler:          apierr.Handler(log),
		DisableStartupMessage: true,
	})
	app.Use(recoverMiddleware.New())
	app.Use(requestid.New())
	app.Use(requestLogger(log))
	h.Register(app)
	return app
}

func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(interface{ StatusCode() int }); ok {
				status = fe.StatusCode()
			} else if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		log.Debug("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Any("request_id", c.Locals("requestid")))
		return err
	}
}
