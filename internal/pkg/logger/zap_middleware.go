package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ActorKey is the echo context key holding the authenticated admin username
const ActorKey = "admin_username"

// ZapEchoMiddleware logs every HTTP exchange through the given Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path

			err := next(c)
			if err != nil {
				// let echo's error handler write the status before we read it
				c.Error(err)
			}

			actor := "anonymous"
			if username, ok := c.Get(ActorKey).(string); ok && username != "" {
				actor = username
			}

			logger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				actor,
				c.Response().Header().Get(echo.HeaderXRequestID),
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
