package middleware

import (
	"context"
	"strings"

	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/kioracare/kiora-backend/internal/utils"
	"github.com/labstack/echo/v4"
)

// AdminSessionKey is the echo context key holding the verified *models.AdminSession
const AdminSessionKey = "admin_session"

// SessionVerifier checks a raw bearer token and returns the session it represents
type SessionVerifier interface {
	VerifyToken(ctx context.Context, token string) (*models.AdminSession, error)
}

// AdminAuthMiddleware rejects any request without a valid bearer token.
// Every failure answers the same 401 body.
func AdminAuthMiddleware(verifier SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}

			session, err := verifier.VerifyToken(c.Request().Context(), token)
			if err != nil {
				logger.DebugCtx(c.Request().Context(), "Admin token rejected", logger.Err(err))
				return utils.UnauthorizedResponse(c, "")
			}

			c.Set(AdminSessionKey, session)
			c.Set(logger.ActorKey, session.Username)

			return next(c)
		}
	}
}

// GetAdminSession returns the session stored by AdminAuthMiddleware
func GetAdminSession(c echo.Context) *models.AdminSession {
	if session, ok := c.Get(AdminSessionKey).(*models.AdminSession); ok {
		return session
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
