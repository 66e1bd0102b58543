package http

import (
	"errors"
	"net/http"

	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/kioracare/kiora-backend/internal/utils"
	"github.com/kioracare/kiora-backend/services/leads"
	"github.com/labstack/echo/v4"
)

// LeadHandler handles HTTP requests for lead intake
type LeadHandler struct {
	leadUC leads.LeadUC
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadUC leads.LeadUC) *LeadHandler {
	return &LeadHandler{
		leadUC: leadUC,
	}
}

// SendContactEmail accepts a contact or schedule-test form submission
func (h *LeadHandler) SendContactEmail(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(ctx, "Invalid request payload for contact email",
			logger.Err(err),
			logger.String("endpoint", "SendContactEmail"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	sub, err := h.leadUC.Submit(ctx, &req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			return utils.ValidationErrorResponse(c, verr.Details)
		case errors.Is(err, models.ErrMailerNotConfigured):
			return utils.InternalServerErrorResponse(c, "Server configuration error")
		case errors.Is(err, models.ErrPersistence):
			logger.ErrorCtx(ctx, "Failed to save submission", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to save submission")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to send email")
		}
	}

	if sub != nil {
		logger.InfoCtx(ctx, "Lead accepted",
			logger.SubmissionID(sub.ID),
			logger.FormType(string(sub.FormType)))
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "Email sent successfully")
}
