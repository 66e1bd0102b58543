package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/kioracare/kiora-backend/internal/pkg/constants"
	"github.com/kioracare/kiora-backend/internal/pkg/database"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

// SessionRepo keeps issued admin token ids in Redis until they expire or are revoked
type SessionRepo struct {
	redisClient *database.RedisClient
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(redisClient *database.RedisClient) *SessionRepo {
	return &SessionRepo{
		redisClient: redisClient,
	}
}

// SaveSession registers a session for ttl
func (r *SessionRepo) SaveSession(ctx context.Context, session *models.AdminSession, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyAdminSession, session.ID)
	if err := r.redisClient.Set(ctx, key, session.Username, ttl); err != nil {
		return fmt.Errorf("failed to save admin session: %w", err)
	}
	return nil
}

// SessionExists reports whether a session is still registered
func (r *SessionRepo) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyAdminSession, sessionID)
	exists, err := r.redisClient.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check admin session: %w", err)
	}
	return exists, nil
}

// DeleteSession revokes a session. Deleting an unknown session is not an error.
func (r *SessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constants.KeyAdminSession, sessionID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete admin session: %w", err)
	}
	return nil
}
