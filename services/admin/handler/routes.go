package handler

import (
	"github.com/kioracare/kiora-backend/internal/pkg/middleware"
	"github.com/kioracare/kiora-backend/services/admin"
	"github.com/kioracare/kiora-backend/services/admin/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the protocol handlers of the admin service
type Handler struct {
	adminHandler *http.AdminHandler
	verifier     middleware.SessionVerifier
}

// NewHandler creates and initializes all handlers
func NewHandler(adminHandler *http.AdminHandler, adminUC admin.AdminUC) *Handler {
	return &Handler{
		adminHandler: adminHandler,
		verifier:     adminUC,
	}
}

// RegisterRoutes registers the admin routes. Everything except login needs a bearer token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	adminGroup := e.Group("/api/admin")
	adminGroup.POST("/login", h.adminHandler.Login)

	authenticated := middleware.AdminAuthMiddleware(h.verifier)
	adminGroup.GET("/submissions", h.adminHandler.ListSubmissions, authenticated)
	adminGroup.POST("/logout", h.adminHandler.Logout, authenticated)
}
