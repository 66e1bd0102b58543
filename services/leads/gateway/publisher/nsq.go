package gateway_publisher

import (
	"context"
	"fmt"

	"github.com/kioracare/kiora-backend/internal/pkg/constants"
	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

// Publisher is the subset of the NSQ producer the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// NSQGateway publishes lead events to NSQ
type NSQGateway struct {
	publisher Publisher
}

// NewNSQGateway creates a new NSQ gateway. A nil publisher disables publishing.
func NewNSQGateway(publisher Publisher) *NSQGateway {
	return &NSQGateway{publisher: publisher}
}

// PublishNotificationFailed queues a submission for the notifier worker
func (g *NSQGateway) PublishNotificationFailed(ctx context.Context, event *models.LeadEvent) error {
	if g.publisher == nil {
		logger.DebugCtx(ctx, "NSQ disabled, resend not queued", logger.SubmissionID(event.SubmissionID))
		return nil
	}

	if err := g.publisher.Publish(constants.TopicLeadNotificationFailed, event); err != nil {
		return fmt.Errorf("failed to publish notification failed event: %w", err)
	}

	logger.InfoCtx(ctx, "Queued notification resend",
		logger.SubmissionID(event.SubmissionID),
		logger.String("reason", event.Reason))
	return nil
}
