package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

const submissionColumns = `id, form_type, user_type, full_name, email_address, phone_number,
		gender, address, city, state, pincode, map_location, message,
		selected_plan, scheduled_date, scheduled_time, agree_to_contact, created_at`

// SubmissionRepo stores lead submissions in PostgreSQL
type SubmissionRepo struct {
	db *sqlx.DB
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *sqlx.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

// Create inserts a submission and fills in its generated id and created_at
func (r *SubmissionRepo) Create(ctx context.Context, sub *models.Submission) error {
	query := `
		INSERT INTO submissions (
			form_type, user_type, full_name, email_address, phone_number,
			gender, address, city, state, pincode, map_location, message,
			selected_plan, scheduled_date, scheduled_time, agree_to_contact
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		sub.FormType,
		sub.UserType,
		sub.FullName,
		sub.EmailAddress,
		sub.PhoneNumber,
		sub.Gender,
		sub.Address,
		sub.City,
		sub.State,
		sub.Pincode,
		sub.MapLocation,
		sub.Message,
		sub.SelectedPlan,
		sub.ScheduledDate,
		sub.ScheduledTime,
		sub.AgreeToContact,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// List returns submissions of one form type, newest first
func (r *SubmissionRepo) List(ctx context.Context, q models.SubmissionQuery) ([]*models.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE form_type = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	submissions := []*models.Submission{}
	if err := r.db.SelectContext(ctx, &submissions, query, q.FormType, q.Limit, q.Offset); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return submissions, nil
}

// GetByID loads one submission
func (r *SubmissionRepo) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`

	var sub models.Submission
	if err := r.db.GetContext(ctx, &sub, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &sub, nil
}
