package usecase

import (
	"errors"
	"fmt"
)

// Error kinds returned by lifecycle operations. Specific errors wrap one of these,
// so the HTTP boundary can translate with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrUnauthorizedAccess = errors.New("unauthorized access")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("concurrent modification")
)

var (
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	ErrQuoteNotFound   = fmt.Errorf("quote %w", ErrNotFound)
	ErrServiceNotFound = fmt.Errorf("service %w", ErrNotFound)
	ErrInvoiceNotFound = fmt.Errorf("invoice %w", ErrNotFound)

	ErrInvalidProjectID  = fmt.Errorf("%w: invalid project id", ErrValidation)
	ErrInvalidServiceID  = fmt.Errorf("%w: invalid service id", ErrValidation)
	ErrInvalidInvoiceID  = fmt.Errorf("%w: invalid invoice id", ErrValidation)
	ErrInvalidProgress   = fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrMissingActor      = fmt.Errorf("%w: missing actor id", ErrValidation)
	ErrServiceDuplicated = fmt.Errorf("%w: a service already exists for this appointment", ErrInvalidOperation)
)

// invalidOperation builds an ErrInvalidOperation carrying a human readable reason.
func invalidOperation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ExternalCallError describes a failed call to an external collaborator.
// It is produced and consumed inside SideEffectDispatcher and never reaches callers.
type ExternalCallError struct {
	Collaborator string
	Operation    string
	Target       string
	Err          error
}

func (e *ExternalCallError) Error() string {
	return fmt.Sprintf("%s %s %s: %v", e.Collaborator, e.Operation, e.Target, e.Err)
}

func (e *ExternalCallError) Unwrap() error {
	return e.Err
}
