package leads

import (
	"context"

	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kioracare/kiora-backend/services/leads SubmissionRepo

// SubmissionRepo defines the append-only submission store
type SubmissionRepo interface {
	Create(ctx context.Context, submission *models.Submission) error
	List(ctx context.Context, query models.SubmissionQuery) ([]*models.Submission, error)
	GetByID(ctx context.Context, id int64) (*models.Submission, error)
}
