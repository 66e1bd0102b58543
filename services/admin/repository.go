package admin

import (
	"context"
	"time"

	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kioracare/kiora-backend/services/admin SessionRepo

// SessionRepo registers issued admin tokens so they can be revoked
type SessionRepo interface {
	SaveSession(ctx context.Context, session *models.AdminSession, ttl time.Duration) error
	SessionExists(ctx context.Context, sessionID string) (bool, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
