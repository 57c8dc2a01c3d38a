package interfaces

import (
	"context"
	"mecanica_projects/internal/domain/entities"
	"time"
)

// IAppointmentClient talks to the Appointment service on behalf of an actor.
// 4xx answers are wrapped with ErrCollaboratorRejected.

type IAppointmentClient interface {
	CancelAppointment(ctx context.Context, appointmentID, actorID string) error
	ConfirmAppointment(ctx context.Context, appointmentID, actorID string) error
}

// INotificationClient fires structured notifications at the Notification service.

type INotificationClient interface {
	SendNotification(ctx context.Context, n entities.Notification) error
}

// IDispatchMetrics records the outcome of every side-effect call.

type IDispatchMetrics interface {
	ObserveDispatch(intent string, outcome string, elapsed time.Duration)
}
