package usecase

import (
	"context"
	"fmt"

	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ListSubmissions returns one page of submissions, newest first
func (uc *AdminUC) ListSubmissions(ctx context.Context, query models.SubmissionQuery) (*models.SubmissionList, error) {
	if uc.submissionRepo == nil {
		return nil, models.ErrPersistenceDisabled
	}

	if query.Limit <= 0 {
		query.Limit = defaultPageSize
	}
	if query.Limit > maxPageSize {
		query.Limit = maxPageSize
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	submissions, err := uc.submissionRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}

	return &models.SubmissionList{Data: submissions}, nil
}
