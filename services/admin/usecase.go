package admin

import (
	"context"

	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kioracare/kiora-backend/services/admin AdminUC

// AdminUC defines the admin access business logic
type AdminUC interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	VerifyToken(ctx context.Context, token string) (*models.AdminSession, error)
	ListSubmissions(ctx context.Context, query models.SubmissionQuery) (*models.SubmissionList, error)
	Logout(ctx context.Context, session *models.AdminSession) error
}
