package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/middleware"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/kioracare/kiora-backend/internal/utils"
	"github.com/kioracare/kiora-backend/services/admin"
	"github.com/labstack/echo/v4"
)

// LoginFailureResponse is the body of a rejected login
type LoginFailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// LogoutResponse acknowledges a logout
type LogoutResponse struct {
	Success bool `json:"success"`
}

// AdminHandler handles HTTP requests for the admin dashboard
type AdminHandler struct {
	adminUC admin.AdminUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUC admin.AdminUC) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
	}
}

// Login exchanges the admin credential for a bearer token
func (h *AdminHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.adminUC.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, LoginFailureResponse{
				Success: false,
				Error:   "Invalid credentials",
			})
		}
		logger.ErrorCtx(ctx, "Admin login failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return c.JSON(http.StatusOK, resp)
}

// ListSubmissions returns stored submissions of one form type
func (h *AdminHandler) ListSubmissions(c echo.Context) error {
	ctx := c.Request().Context()

	formType := models.FormType(c.QueryParam("form_type"))
	if !formType.Valid() {
		return utils.BadRequestResponse(c, "form_type must be one of: contact, schedule-test")
	}

	limit, err := intQueryParam(c, "limit")
	if err != nil {
		return utils.BadRequestResponse(c, "limit must be a number")
	}
	offset, err := intQueryParam(c, "offset")
	if err != nil {
		return utils.BadRequestResponse(c, "offset must be a number")
	}

	list, err := h.adminUC.ListSubmissions(ctx, models.SubmissionQuery{
		FormType: formType,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		if errors.Is(err, models.ErrPersistenceDisabled) {
			return utils.ServiceUnavailableResponse(c, "Submission storage is not configured")
		}
		logger.ErrorCtx(ctx, "Failed to list submissions", logger.Err(err), logger.FormType(string(formType)))
		return utils.InternalServerErrorResponse(c, "Failed to load submissions")
	}

	return c.JSON(http.StatusOK, list)
}

// Logout revokes the caller's session
func (h *AdminHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.adminUC.Logout(ctx, middleware.GetAdminSession(c)); err != nil {
		logger.ErrorCtx(ctx, "Failed to revoke admin session", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return c.JSON(http.StatusOK, LogoutResponse{Success: true})
}

func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
