package nsq

import (
	"context"
	"errors"
	"fmt"

	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	nsqpkg "github.com/kioracare/kiora-backend/internal/pkg/nsq"
	"github.com/kioracare/kiora-backend/internal/pkg/retry"
	"github.com/kioracare/kiora-backend/services/leads"
)

// NotificationHandler resends lead notifications that failed at intake
type NotificationHandler struct {
	leadUC  leads.LeadUC
	retrier *retry.Retrier
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(leadUC leads.LeadUC, retrier *retry.Retrier) *NotificationHandler {
	return &NotificationHandler{
		leadUC:  leadUC,
		retrier: retrier,
	}
}

// Retryable reports whether a resend error can succeed on a later attempt
func Retryable(err error) bool {
	return !errors.Is(err, models.ErrSubmissionNotFound) &&
		!errors.Is(err, models.ErrPersistenceDisabled) &&
		!errors.Is(err, models.ErrMailerNotConfigured)
}

// HandleNotificationFailed processes one lead.notification.failed message.
// Returning an error hands the message back to NSQ for requeue.
func (h *NotificationHandler) HandleNotificationFailed(ctx context.Context, body []byte) error {
	var event models.LeadEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		// a poison message is dropped, requeueing cannot fix it
		logger.Error("Dropping malformed lead event", logger.Err(err))
		return nil
	}

	err := h.retrier.Execute(ctx, func(ctx context.Context) error {
		return h.leadUC.Resend(ctx, event.SubmissionID)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrSubmissionNotFound):
		logger.Warn("Submission not found, acknowledging lead event", logger.SubmissionID(event.SubmissionID))
		return nil
	case !Retryable(err):
		// the row stays visible in the admin listing
		logger.Error("Notifier cannot send, acknowledging lead event",
			logger.SubmissionID(event.SubmissionID),
			logger.String("reason", event.Reason),
			logger.Err(err))
		return nil
	default:
		return fmt.Errorf("resend submission %d: %w", event.SubmissionID, err)
	}
}
