package response

import (
	"time"

	"mecanica_projects/internal/domain/entities"
)

type ServiceResponse struct {
	ID                  string    `json:"id"`
	AppointmentID       string    `json:"appointment_id"`
	CustomerID          string    `json:"customer_id"`
	AssignedEmployeeIDs []string  `json:"assigned_employee_ids"`
	Status              string    `json:"status"`
	Progress            int       `json:"progress"`
	HoursLogged         float64   `json:"hours_logged"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromService(s entities.StandardService) ServiceResponse {
	employees := s.AssignedEmployeeIDs
	if employees == nil {
		employees = []string{}
	}
	return ServiceResponse{
		ID:                  s.ID,
		AppointmentID:       s.AppointmentID,
		CustomerID:          s.CustomerID,
		AssignedEmployeeIDs: employees,
		Status:              string(s.Status),
		Progress:            s.Progress,
		HoursLogged:         s.HoursLogged,
		EstimatedCompletion: s.EstimatedCompletion,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func FromServices(ss []entities.StandardService) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromService(s))
	}
	return out
}

type NoteResponse struct {
	ID              string    `json:"id"`
	ServiceID       string    `json:"service_id"`
	EmployeeID      string    `json:"employee_id"`
	Note            string    `json:"note"`
	CustomerVisible bool      `json:"customer_visible"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromNotes(ns []entities.ServiceNote) []NoteResponse {
	out := make([]NoteResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNote(n))
	}
	return out
}

func FromNote(n entities.ServiceNote) NoteResponse {
	return NoteResponse{
		ID:              n.ID,
		ServiceID:       n.ServiceID,
		EmployeeID:      n.EmployeeID,
		Note:            n.Note,
		CustomerVisible: n.CustomerVisible,
		CreatedAt:       n.CreatedAt,
	}
}

type PhotoResponse struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	EmployeeID  string    `json:"employee_id"`
	FileName    string    `json:"file_name"`
	PhotoURL    string    `json:"photo_url"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func FromPhotos(ps []entities.ServicePhoto) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, PhotoResponse{
			ID:          p.ID,
			ServiceID:   p.ServiceID,
			EmployeeID:  p.EmployeeID,
			FileName:    p.FileName,
			PhotoURL:    p.PhotoURL,
			Description: p.Description,
			UploadedAt:  p.UploadedAt,
		})
	}
	return out
}
