package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

// Submit validates, persists, then notifies. A failed write does not stop the
// email, so the lead still reaches the inbox while the database is down.
func (uc *LeadUC) Submit(ctx context.Context, req *models.ContactRequest) (*models.Submission, error) {
	req.Normalize()
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}

	sub := req.ToSubmission()
	sub.CreatedAt = models.Now()

	persisted := false
	var persistErr error
	if uc.submissionRepo != nil {
		if err := uc.submissionRepo.Create(ctx, sub); err != nil {
			persistErr = fmt.Errorf("%w: %v", models.ErrPersistence, err)
			logger.ErrorCtx(ctx, "Failed to store lead submission, sending notification anyway",
				logger.FormType(string(sub.FormType)),
				logger.Err(err))
		} else {
			persisted = true
			logger.InfoCtx(ctx, "Stored lead submission",
				logger.SubmissionID(sub.ID),
				logger.FormType(string(sub.FormType)))
		}
	}

	if err := uc.notify(ctx, sub); err != nil {
		if persistErr != nil {
			return nil, fmt.Errorf("%w (notification also failed: %v)", persistErr, err)
		}
		if persisted {
			uc.queueResend(ctx, sub, err)
		}
		return nil, err
	}

	if !persisted {
		return nil, nil
	}
	return sub, nil
}

// Resend loads a stored submission and emails its notification again
func (uc *LeadUC) Resend(ctx context.Context, submissionID int64) error {
	if uc.submissionRepo == nil {
		return models.ErrPersistenceDisabled
	}

	sub, err := uc.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return fmt.Errorf("failed to load submission %d: %w", submissionID, err)
	}

	if err := uc.notify(ctx, sub); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Resent lead notification", logger.SubmissionID(sub.ID))
	return nil
}

func (uc *LeadUC) notify(ctx context.Context, sub *models.Submission) error {
	html, err := RenderNotification(sub)
	if err != nil {
		return err
	}

	if err := uc.leadGW.SendNotification(ctx, uc.subject(sub.FormType), html); err != nil {
		logger.ErrorCtx(ctx, "Failed to send lead notification",
			logger.SubmissionID(sub.ID),
			logger.FormType(string(sub.FormType)),
			logger.Err(err))
		return err
	}
	return nil
}

func (uc *LeadUC) subject(formType models.FormType) string {
	if formType == models.FormTypeScheduleTest && uc.cfg.Mail.ScheduleSubject != "" {
		return uc.cfg.Mail.ScheduleSubject
	}
	return uc.cfg.Mail.ContactSubject
}

// queueResend publishes a retry event. A publish failure is logged only, the
// submission stays stored either way.
func (uc *LeadUC) queueResend(ctx context.Context, sub *models.Submission, cause error) {
	reason := "delivery"
	if errors.Is(cause, models.ErrMailerNotConfigured) {
		reason = "mailer_not_configured"
	}

	event := &models.LeadEvent{
		SubmissionID: sub.ID,
		FormType:     sub.FormType,
		Reason:       reason,
		OccurredAt:   models.Now(),
	}
	if err := uc.leadGW.PublishNotificationFailed(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to queue notification resend",
			logger.SubmissionID(sub.ID),
			logger.Err(err))
	}
}
