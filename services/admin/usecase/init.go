package usecase

import (
	"fmt"

	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/kioracare/kiora-backend/services/admin"
	"github.com/kioracare/kiora-backend/services/leads"
	"golang.org/x/crypto/bcrypt"
)

type AdminUC struct {
	sessionRepo    admin.SessionRepo
	submissionRepo leads.SubmissionRepo
	cfg            *models.Config
	passwordHash   []byte
}

// NewAdminUC creates a new admin usecase instance. sessionRepo is nil when
// Redis is disabled and submissionRepo is nil when persistence is disabled.
// A plain ADMIN_PASSWORD is hashed once here so logins always go through bcrypt.
func NewAdminUC(
	sessionRepo admin.SessionRepo,
	submissionRepo leads.SubmissionRepo,
	cfg *models.Config,
) (*AdminUC, error) {
	uc := &AdminUC{
		sessionRepo:    sessionRepo,
		submissionRepo: submissionRepo,
		cfg:            cfg,
	}

	switch {
	case cfg.Admin.PasswordHash != "":
		uc.passwordHash = []byte(cfg.Admin.PasswordHash)
	case cfg.Admin.Password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		uc.passwordHash = hash
	default:
		logger.Warn("No admin password configured, admin login is disabled")
	}

	return uc, nil
}
