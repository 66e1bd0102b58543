package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/kioracare/kiora-backend/internal/pkg/jwt"
	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the admin credential and issues a bearer token
func (uc *AdminUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(uc.cfg.Admin.Username)) == 1
	// compare the password even for a wrong username
	passwordErr := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(req.Password))

	if !usernameOK || passwordErr != nil || uc.cfg.Admin.Username == "" {
		logger.WarnCtx(ctx, "Admin login rejected", logger.String("username", req.Username))
		return nil, models.ErrInvalidCredentials
	}

	token, claims, err := jwt.GenerateToken(uc.cfg.Admin.Username, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := &models.AdminSession{
		ID:        claims.ID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}

	if uc.sessionRepo != nil {
		ttl := time.Duration(uc.cfg.JWT.Expiration) * time.Minute
		if err := uc.sessionRepo.SaveSession(ctx, session, ttl); err != nil {
			return nil, err
		}
	}

	logger.InfoCtx(ctx, "Admin logged in", logger.String("session_id", session.ID))

	return &models.AuthResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// VerifyToken checks signature, expiry and, when Redis is enabled, that the
// session has not been revoked
func (uc *AdminUC) VerifyToken(ctx context.Context, token string) (*models.AdminSession, error) {
	claims, err := jwt.ValidateToken(token, uc.cfg.JWT.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}
	if claims.Username != uc.cfg.Admin.Username {
		return nil, models.ErrInvalidToken
	}

	if uc.sessionRepo != nil {
		exists, err := uc.sessionRepo.SessionExists(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: session revoked", models.ErrInvalidToken)
		}
	}

	return &models.AdminSession{
		ID:        claims.ID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

// Logout revokes the session. Without Redis tokens simply run to expiry.
func (uc *AdminUC) Logout(ctx context.Context, session *models.AdminSession) error {
	if uc.sessionRepo == nil || session == nil {
		return nil
	}

	if err := uc.sessionRepo.DeleteSession(ctx, session.ID); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Admin logged out", logger.String("session_id", session.ID))
	return nil
}
