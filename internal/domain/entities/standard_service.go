package entities

import (
	"strings"
	"time"
)

type ServiceStatus string

const (
	ServiceStatusCreated    ServiceStatus = "CREATED"
	ServiceStatusInProgress ServiceStatus = "IN_PROGRESS"
	ServiceStatusOnHold     ServiceStatus = "ON_HOLD"
	ServiceStatusCompleted  ServiceStatus = "COMPLETED"
	ServiceStatusCancelled  ServiceStatus = "CANCELLED"
)

// ParseServiceStatus is case-insensitive. ok is false for unknown values.
func ParseServiceStatus(raw string) (ServiceStatus, bool) {
	s := ServiceStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case ServiceStatusCreated, ServiceStatusInProgress, ServiceStatusOnHold, ServiceStatusCompleted, ServiceStatusCancelled:
		return s, true
	}
	return "", false
}

// StandardService is an appointment-derived job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - uniqueness marker item "appointment#<appointment_id>" keeps appointment_id unique
type StandardService struct {
	ID                  string        `json:"id"`
	AppointmentID       string        `json:"appointment_id"`
	CustomerID          string        `json:"customer_id"`
	AssignedEmployeeIDs []string      `json:"assigned_employee_ids"`
	Status              ServiceStatus `json:"status"`
	Progress            int           `json:"progress"`
	HoursLogged         float64       `json:"hours_logged"`
	EstimatedCompletion time.Time     `json:"estimated_completion"`
	Version             int64         `json:"version"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// ServiceNote is an append-only work note attached to a service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_id-index): service_id
type ServiceNote struct {
	ID              string    `json:"id"`
	ServiceID       string    `json:"service_id"`
	EmployeeID      string    `json:"employee_id"`
	Note            string    `json:"note"`
	CustomerVisible bool      `json:"customer_visible"`
	CreatedAt       time.Time `json:"created_at"`
}

// ServicePhoto holds the metadata of a progress photo. The file itself lives in an
// external store; PhotoURL is the opaque location it produced.
type ServicePhoto struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	EmployeeID  string    `json:"employee_id"`
	FileName    string    `json:"file_name"`
	PhotoURL    string    `json:"photo_url"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
