package interfaces

import "errors"

// Storage and collaborator failures that use cases must be able to tell apart.
var (
	// ErrVersionConflict is returned by a compare-and-swap write whose expected
	// version no longer matches the stored one.
	ErrVersionConflict = errors.New("version conflict")
	// ErrDuplicateInvoiceNumber is returned when the invoice number is already taken.
	ErrDuplicateInvoiceNumber = errors.New("duplicate invoice number")
	// ErrDuplicateAppointment is returned when a service already exists for the appointment.
	ErrDuplicateAppointment = errors.New("duplicate appointment")
	// ErrCollaboratorRejected marks a 4xx answer from an external service; retrying
	// the same call will not help.
	ErrCollaboratorRejected = errors.New("collaborator rejected request")
)
