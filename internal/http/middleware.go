package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"chatscan/backend/internal/logger"
)

// RequestLoggerMiddleware logs one line per request. Server errors log
// at error level, client errors at warn, the rest at debug.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			args := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration", time.Since(start).String(),
				"remote_ip", c.RealIP(),
			}

			switch {
			case status >= 500:
				logger.Error("request", args...)
			case status >= 400:
				logger.Warn("request", args...)
			default:
				logger.Debug("request", args...)
			}
			return err
		}
	}
}
