package models

import (
	"errors"
	"strings"
)

var (
	// ErrValidation marks client-fixable payload problems
	ErrValidation = errors.New("validation error")
	// ErrMailerNotConfigured means the email provider credential is missing
	ErrMailerNotConfigured = errors.New("mailer is not configured")
	// ErrMailDelivery means the email provider rejected or failed the call
	ErrMailDelivery = errors.New("mail delivery failed")
	// ErrPersistence means the submission store failed
	ErrPersistence = errors.New("persistence failed")
	// ErrPersistenceDisabled means no submission store is configured
	ErrPersistenceDisabled = errors.New("persistence is disabled")
	// ErrSubmissionNotFound means no submission has the requested id
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrInvalidCredentials is returned for any failed admin login
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for missing, malformed, expired or revoked tokens
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError lists every violated field of a payload
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Details, "; ")
}

// Unwrap lets errors.Is match ErrValidation
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
