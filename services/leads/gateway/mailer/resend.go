package gateway_mailer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/resend/resend-go/v2"
)

// ResendMailer delivers notification emails through the Resend API
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
}

// Option customizes a ResendMailer
type Option func(*ResendMailer)

// WithBaseURL points the client at another API root, used by tests
func WithBaseURL(baseURL *url.URL) Option {
	return func(m *ResendMailer) {
		if m.client != nil {
			m.client.BaseURL = baseURL
		}
	}
}

// NewResendMailer creates a mailer. Without an API key, sender or recipient the
// mailer is built unconfigured and every send fails with models.ErrMailerNotConfigured.
func NewResendMailer(cfg models.MailConfig, opts ...Option) *ResendMailer {
	m := &ResendMailer{
		from: cfg.From,
		to:   cfg.To,
	}

	if cfg.APIKey != "" && cfg.From != "" && cfg.To != "" {
		m.client = resend.NewCustomClient(&http.Client{Timeout: cfg.Timeout}, cfg.APIKey)
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Configured reports whether an API key, sender and recipient were supplied
func (m *ResendMailer) Configured() bool {
	return m.client != nil
}

// Send emails html to the configured recipient and returns the provider message id
func (m *ResendMailer) Send(ctx context.Context, subject, html string) (string, error) {
	if m.client == nil {
		logger.ErrorCtx(ctx, "RESEND_API_KEY, MAIL_FROM or MAIL_TO is not set")
		return "", models.ErrMailerNotConfigured
	}

	resp, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		// the caller went away, the provider did not fail
		if errors.Is(ctx.Err(), context.Canceled) {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", models.ErrMailDelivery, err)
	}

	logger.InfoCtx(ctx, "Notification email sent", logger.String("message_id", resp.Id))
	return resp.Id, nil
}
