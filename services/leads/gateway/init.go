package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/kioracare/kiora-backend/internal/pkg/circuitbreaker"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	nsqpkg "github.com/kioracare/kiora-backend/internal/pkg/nsq"
	"github.com/kioracare/kiora-backend/services/leads"
	gateway_mailer "github.com/kioracare/kiora-backend/services/leads/gateway/mailer"
	gateway_publisher "github.com/kioracare/kiora-backend/services/leads/gateway/publisher"
)

type mailSender interface {
	Send(ctx context.Context, subject, html string) (string, error)
}

// LeadGW combines the mail and NSQ gateways of the lead service
type LeadGW struct {
	mailer     mailSender
	breaker    *circuitbreaker.Breaker
	nsqGateway *gateway_publisher.NSQGateway
}

// NewLeadGW creates the lead gateway. producer may be nil when NSQ is disabled.
func NewLeadGW(mailCfg models.MailConfig, producer *nsqpkg.Producer) leads.LeadGW {
	var publisher gateway_publisher.Publisher
	if producer != nil {
		publisher = producer
	}

	return newLeadGW(gateway_mailer.NewResendMailer(mailCfg), publisher, newMailBreaker(mailCfg))
}

func newLeadGW(mailer mailSender, publisher gateway_publisher.Publisher, breaker *circuitbreaker.Breaker) *LeadGW {
	return &LeadGW{
		mailer:     mailer,
		breaker:    breaker,
		nsqGateway: gateway_publisher.NewNSQGateway(publisher),
	}
}

// newMailBreaker trips only on provider failures; a missing API key is a
// configuration problem and never reaches the provider.
func newMailBreaker(cfg models.MailConfig) *circuitbreaker.Breaker {
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             "resend",
		FailureThreshold: cfg.BreakerFailures,
		Cooldown:         cfg.BreakerCooldown,
		IsFailure: func(err error) bool {
			return errors.Is(err, models.ErrMailDelivery)
		},
	})
}

// SendNotification emails the rendered notification
func (g *LeadGW) SendNotification(ctx context.Context, subject, html string) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		_, err := g.mailer.Send(ctx, subject, html)
		return err
	})
	if errors.Is(err, circuitbreaker.ErrOpen) {
		return fmt.Errorf("%w: %v", models.ErrMailDelivery, err)
	}
	return err
}

// PublishNotificationFailed queues a resend for the notifier
func (g *LeadGW) PublishNotificationFailed(ctx context.Context, event *models.LeadEvent) error {
	return g.nsqGateway.PublishNotificationFailed(ctx, event)
}
