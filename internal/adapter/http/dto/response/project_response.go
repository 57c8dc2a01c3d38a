package response

import (
	"time"

	"mecanica_projects/internal/domain/entities"
)

type ProjectResponse struct {
	ID                    string    `json:"id"`
	CustomerID            string    `json:"customer_id"`
	VehicleID             string    `json:"vehicle_id"`
	ProjectType           string    `json:"project_type"`
	Description           string    `json:"description"`
	DesiredCompletionDate string    `json:"desired_completion_date,omitempty"`
	Budget                string    `json:"budget"`
	Status                string    `json:"status"`
	Progress              int       `json:"progress"`
	AppointmentID         string    `json:"appointment_id,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                    p.ID,
		CustomerID:            p.CustomerID,
		VehicleID:             p.VehicleID,
		ProjectType:           p.ProjectType,
		Description:           p.Description,
		DesiredCompletionDate: p.DesiredCompletionDate,
		Budget:                p.Budget.StringFixed(2),
		Status:                string(p.Status),
		Progress:              p.Progress,
		AppointmentID:         p.AppointmentID,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

type QuoteResponse struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	LaborCost     string    `json:"labor_cost"`
	PartsCost     string    `json:"parts_cost"`
	TotalCost     string    `json:"total_cost"`
	EstimatedDays int       `json:"estimated_days"`
	Breakdown     string    `json:"breakdown,omitempty"`
	SubmittedBy   string    `json:"submitted_by"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		ProjectID:     q.ProjectID,
		LaborCost:     q.LaborCost.StringFixed(2),
		PartsCost:     q.PartsCost.StringFixed(2),
		TotalCost:     q.TotalCost.StringFixed(2),
		EstimatedDays: q.EstimatedDays,
		Breakdown:     q.Breakdown,
		SubmittedBy:   q.SubmittedBy,
		SubmittedAt:   q.SubmittedAt,
	}
}
