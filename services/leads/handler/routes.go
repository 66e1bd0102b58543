package handler

import (
	"github.com/kioracare/kiora-backend/services/leads/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the protocol handlers of the lead service
type Handler struct {
	leadHandler *http.LeadHandler
	rateLimiter echo.MiddlewareFunc
}

// NewHandler creates and initializes all handlers. rateLimiter may be nil.
func NewHandler(leadHandler *http.LeadHandler, rateLimiter echo.MiddlewareFunc) *Handler {
	return &Handler{
		leadHandler: leadHandler,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers the public intake route
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	var mw []echo.MiddlewareFunc
	if h.rateLimiter != nil {
		mw = append(mw, h.rateLimiter)
	}

	api := e.Group("/api")
	api.POST("/send-contact-email", h.leadHandler.SendContactEmail, mw...)
}
