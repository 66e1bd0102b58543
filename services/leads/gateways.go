package leads

import (
	"context"

	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kioracare/kiora-backend/services/leads LeadGW

// LeadGW defines the outbound side of lead intake
type LeadGW interface {
	// SendNotification emails an HTML notification to the configured recipient
	SendNotification(ctx context.Context, subject, html string) error
	// PublishNotificationFailed queues a stored submission for a later resend
	PublishNotificationFailed(ctx context.Context, event *models.LeadEvent) error
}
