package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"brewery/internal/logging"
)

// Logger is a middleware that writes one structured access log line per request
// with request_id, method, path, status and latency (milliseconds).
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		logger.Info("http_request",
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		)

		return err
	}
}

// LoggerWithWriter is Logger backed by a dedicated JSON sink.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logging.NewWithWriter(w, zap.InfoLevel, loc))
}
