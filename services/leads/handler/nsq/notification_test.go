package nsq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/kioracare/kiora-backend/internal/pkg/retry"
	"github.com/kioracare/kiora-backend/services/leads/mocks"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(ctrl *gomock.Controller) (*NotificationHandler, *mocks.MockLeadUC) {
	mockLeadUC := mocks.NewMockLeadUC(ctrl)
	retrier := retry.New(retry.Config{
		MaxAttempts:   3,
		BaseDelay:     time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		Multiplier:    2,
		RetryableFunc: Retryable,
	}, logger.NewNopLogger())
	return NewNotificationHandler(mockLeadUC, retrier), mockLeadUC
}

const eventBody = `{"submission_id":12,"form_type":"contact","reason":"delivery","occurred_at":"2025-03-01T10:00:00Z"}`

func TestHandleNotificationFailed_Resent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockLeadUC := newTestHandler(ctrl)
	mockLeadUC.EXPECT().Resend(gomock.Any(), int64(12)).Return(nil)

	assert.NoError(t, handler.HandleNotificationFailed(context.Background(), []byte(eventBody)))
}

func TestHandleNotificationFailed_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockLeadUC := newTestHandler(ctrl)
	gomock.InOrder(
		mockLeadUC.EXPECT().Resend(gomock.Any(), int64(12)).Return(models.ErrMailDelivery),
		mockLeadUC.EXPECT().Resend(gomock.Any(), int64(12)).Return(nil),
	)

	assert.NoError(t, handler.HandleNotificationFailed(context.Background(), []byte(eventBody)))
}

func TestHandleNotificationFailed_ExhaustedRequeues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockLeadUC := newTestHandler(ctrl)
	mockLeadUC.EXPECT().Resend(gomock.Any(), int64(12)).Return(models.ErrMailDelivery).Times(3)

	err := handler.HandleNotificationFailed(context.Background(), []byte(eventBody))

	assert.ErrorIs(t, err, models.ErrMailDelivery)
}

func TestHandleNotificationFailed_UnknownSubmissionAcked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockLeadUC := newTestHandler(ctrl)
	mockLeadUC.EXPECT().Resend(gomock.Any(), int64(12)).Return(models.ErrSubmissionNotFound).Times(1)

	assert.NoError(t, handler.HandleNotificationFailed(context.Background(), []byte(eventBody)))
}

func TestHandleNotificationFailed_PermanentErrorsAcked(t *testing.T) {
	for _, permanent := range []error{models.ErrMailerNotConfigured, models.ErrPersistenceDisabled} {
		t.Run(permanent.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler, mockLeadUC := newTestHandler(ctrl)
			mockLeadUC.EXPECT().Resend(gomock.Any(), int64(12)).Return(permanent).Times(1)

			assert.NoError(t, handler.HandleNotificationFailed(context.Background(), []byte(eventBody)))
		})
	}
}

func TestHandleNotificationFailed_MalformedDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestHandler(ctrl)

	assert.NoError(t, handler.HandleNotificationFailed(context.Background(), []byte(`not json`)))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(models.ErrMailDelivery))
	assert.True(t, Retryable(errors.New("timeout")))
	assert.False(t, Retryable(models.ErrSubmissionNotFound))
	assert.False(t, Retryable(models.ErrMailerNotConfigured))
	assert.False(t, Retryable(models.ErrPersistenceDisabled))
}
