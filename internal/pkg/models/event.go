package models

import "time"

// LeadEvent is published when a persisted submission could not be emailed
type LeadEvent struct {
	SubmissionID int64     `json:"submission_id"`
	FormType     FormType  `json:"form_type"`
	Reason       string    `json:"reason"`
	OccurredAt   time.Time `json:"occurred_at"`
}
