package usecase

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReasonRequired    = errors.New("rejection reason is required")
	ErrNoteRequired      = errors.New("note is required")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrSubmissionFailed  = errors.New("booking submission failed")
	ErrInvalidState      = errors.New("operation not allowed in current state")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidFolder     = errors.New("invalid upload folder")
)

// ValidationError carries per-field messages
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
