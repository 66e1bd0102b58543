package middleware

import (
	"errors"
	"net/http"

	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/utils"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders every unhandled error as {"error": "..."}
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch status {
		case http.StatusMethodNotAllowed:
			message = "Method not allowed"
		case http.StatusNotFound:
			message = "Not found"
		case http.StatusRequestEntityTooLarge:
			message = "Request entity too large"
		default:
			if m, ok := he.Message.(string); ok && status < http.StatusInternalServerError {
				message = m
			} else {
				message = http.StatusText(status)
			}
		}
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Unhandled request error", logger.Err(err))
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = utils.ErrorResponseHandler(c, status, message)
}
