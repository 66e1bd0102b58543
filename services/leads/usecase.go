package leads

import (
	"context"

	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kioracare/kiora-backend/services/leads LeadUC

// LeadUC defines the lead intake business logic
type LeadUC interface {
	// Submit validates req, stores it when persistence is enabled and emails
	// the notification. The returned submission is nil when nothing was stored.
	Submit(ctx context.Context, req *models.ContactRequest) (*models.Submission, error)
	// Resend re-renders and re-sends the notification of a stored submission
	Resend(ctx context.Context, submissionID int64) error
}
