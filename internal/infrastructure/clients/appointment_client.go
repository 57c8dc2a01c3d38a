package clients

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"
)

const appointmentStatusConfirmed = "CONFIRMED"

// AppointmentClient calls the Appointment service as the acting user with ADMIN
// privileges, as that service only lets staff change appointment state.
type AppointmentClient struct {
	client serviceClient
}

var _ interfaces.IAppointmentClient = (*AppointmentClient)(nil)

func NewAppointmentClient(baseURL string, timeout time.Duration) *AppointmentClient {
	return &AppointmentClient{client: newServiceClient(baseURL, timeout)}
}

func (c *AppointmentClient) CancelAppointment(ctx context.Context, appointmentID, actorID string) error {
	log.Printf("[appointment][client] cancel appointment_id=%s actor_id=%s", appointmentID, actorID)
	return c.client.do(ctx, http.MethodDelete, appointmentPath(appointmentID), actorHeaders(actorID), nil)
}

func (c *AppointmentClient) ConfirmAppointment(ctx context.Context, appointmentID, actorID string) error {
	log.Printf("[appointment][client] confirm appointment_id=%s actor_id=%s", appointmentID, actorID)
	body := map[string]string{"newStatus": appointmentStatusConfirmed}
	return c.client.do(ctx, http.MethodPatch, appointmentPath(appointmentID)+"/status", actorHeaders(actorID), body)
}

func appointmentPath(appointmentID string) string {
	return "/api/appointments/" + url.PathEscape(appointmentID)
}

func actorHeaders(actorID string) map[string]string {
	return map[string]string{
		HeaderUserSubject: actorID,
		HeaderUserRoles:   string(entities.RoleAdmin),
	}
}
