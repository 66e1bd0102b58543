package usecase

import (
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/kioracare/kiora-backend/internal/pkg/validation"
	"github.com/kioracare/kiora-backend/services/leads"
)

type LeadUC struct {
	submissionRepo leads.SubmissionRepo
	leadGW         leads.LeadGW
	validator      *validation.Validator
	cfg            *models.Config
}

// NewLeadUC creates a new lead usecase instance. submissionRepo is nil when
// persistence is disabled.
func NewLeadUC(
	submissionRepo leads.SubmissionRepo,
	leadGW leads.LeadGW,
	validator *validation.Validator,
	cfg *models.Config,
) *LeadUC {
	return &LeadUC{
		submissionRepo: submissionRepo,
		leadGW:         leadGW,
		validator:      validator,
		cfg:            cfg,
	}
}
