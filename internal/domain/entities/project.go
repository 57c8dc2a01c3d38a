package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus represents the lifecycle of a custom-modification project.
//
// Terminal states: COMPLETED, REJECTED, CANCELLED.

type ProjectStatus string

const (
	ProjectStatusRequested          ProjectStatus = "REQUESTED"
	ProjectStatusPendingAdminReview ProjectStatus = "PENDING_ADMIN_REVIEW"
	ProjectStatusQuoted             ProjectStatus = "QUOTED"
	ProjectStatusApproved           ProjectStatus = "APPROVED"
	ProjectStatusInProgress         ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted          ProjectStatus = "COMPLETED"
	ProjectStatusRejected           ProjectStatus = "REJECTED"
	ProjectStatusCancelled          ProjectStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition may leave this status.
func (s ProjectStatus) IsTerminal() bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusRejected, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project is a customer-initiated modification request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Budget mirrors the total of the project's Quote once one is submitted; before that
// it holds the customer's requested budget.
//
// Version is incremented on every write and checked on update (compare-and-swap).
type Project struct {
	ID                    string          `json:"id"`
	CustomerID            string          `json:"customer_id"`
	VehicleID             string          `json:"vehicle_id"`
	ProjectType           string          `json:"project_type"`
	Description           string          `json:"description"`
	DesiredCompletionDate string          `json:"desired_completion_date,omitempty"`
	Budget                decimal.Decimal `json:"budget"`
	Status                ProjectStatus   `json:"status"`
	Progress              int             `json:"progress"`
	AppointmentID         string          `json:"appointment_id,omitempty"`
	Version               int64           `json:"version"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// HasAppointment reports whether the project is linked to an external appointment.
func (p Project) HasAppointment() bool {
	return p.AppointmentID != ""
}
