package request

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidServiceStatus = errors.New("invalid service status")
)

type CreateServiceRequest struct {
	AppointmentID       string   `json:"appointment_id" binding:"required"`
	CustomerID          string   `json:"customer_id" binding:"required"`
	AssignedEmployeeIDs []string `json:"assigned_employee_ids"`
	EstimatedHours      *float64 `json:"estimated_hours" binding:"required"`
}

func (r CreateServiceRequest) ToCommand() usecase.NewServiceCommand {
	cmd := usecase.NewServiceCommand{
		AppointmentID:       strings.TrimSpace(r.AppointmentID),
		CustomerID:          strings.TrimSpace(r.CustomerID),
		AssignedEmployeeIDs: r.AssignedEmployeeIDs,
	}
	if r.EstimatedHours != nil {
		cmd.EstimatedHours = *r.EstimatedHours
	}
	return cmd
}

// UpdateServiceRequest is a partial update: absent fields are left untouched.
type UpdateServiceRequest struct {
	Status              *string    `json:"status"`
	Progress            *int       `json:"progress"`
	EstimatedCompletion *time.Time `json:"estimated_completion"`
	Notes               string     `json:"notes"`
}

func (r UpdateServiceRequest) ToCommand() (usecase.UpdateServiceCommand, error) {
	cmd := usecase.UpdateServiceCommand{
		Progress:            r.Progress,
		EstimatedCompletion: r.EstimatedCompletion,
		Note:                r.Notes,
	}
	if r.Status != nil {
		status, ok := entities.ParseServiceStatus(*r.Status)
		if !ok {
			return usecase.UpdateServiceCommand{}, ErrInvalidServiceStatus
		}
		cmd.Status = &status
	}
	return cmd, nil
}

// ChargeRequest is an extra invoice line. Quantity defaults to 1 and Amount to
// UnitPrice x Quantity.
type ChargeRequest struct {
	Description string           `json:"description" binding:"required"`
	Quantity    int              `json:"quantity" binding:"gte=0"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Amount      *decimal.Decimal `json:"amount"`
}

type CompletionRequest struct {
	FinalNotes        string           `json:"final_notes" binding:"max=2000"`
	ActualCost        *decimal.Decimal `json:"actual_cost" binding:"required"`
	AdditionalCharges []ChargeRequest  `json:"additional_charges" binding:"dive"`
}

func (r CompletionRequest) ToCommand() usecase.CompleteServiceCommand {
	cmd := usecase.CompleteServiceCommand{CompletionNotes: strings.TrimSpace(r.FinalNotes)}
	if r.ActualCost != nil {
		cmd.ActualCost = *r.ActualCost
	}
	for _, c := range r.AdditionalCharges {
		qty := c.Quantity
		if qty == 0 {
			qty = 1
		}
		amount := c.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
		if c.Amount != nil {
			amount = *c.Amount
		}
		cmd.AdditionalCharges = append(cmd.AdditionalCharges, usecase.ChargeItem{
			Description: strings.TrimSpace(c.Description),
			Quantity:    qty,
			UnitPrice:   c.UnitPrice,
			Amount:      amount,
		})
	}
	return cmd
}

// NoteRequest accepts either customer_visible or its inverse is_internal. Notes are
// internal unless one of them says otherwise.
type NoteRequest struct {
	Note            string `json:"note" binding:"required"`
	CustomerVisible *bool  `json:"customer_visible"`
	IsInternal      *bool  `json:"is_internal"`
}

func (r NoteRequest) ToCommand() usecase.NewNoteCommand {
	visible := false
	switch {
	case r.CustomerVisible != nil:
		visible = *r.CustomerVisible
	case r.IsInternal != nil:
		visible = !*r.IsInternal
	}
	return usecase.NewNoteCommand{Note: r.Note, CustomerVisible: visible}
}

type PhotoRequest struct {
	FileName    string `json:"file_name"`
	PhotoURL    string `json:"photo_url" binding:"required"`
	Description string `json:"description"`
}

type PhotosRequest struct {
	Photos []PhotoRequest `json:"photos" binding:"required,min=1,dive"`
}

func (r PhotosRequest) ToUploads() []usecase.PhotoUpload {
	out := make([]usecase.PhotoUpload, 0, len(r.Photos))
	for _, p := range r.Photos {
		out = append(out, usecase.PhotoUpload{FileName: p.FileName, PhotoURL: p.PhotoURL, Description: p.Description})
	}
	return out
}

// UploadedPhotoURL is where a multipart upload is recorded as stored.
func UploadedPhotoURL(serviceID, fileName string) string {
	return "/uploads/service-photos/" + url.PathEscape(serviceID) + "/" + url.PathEscape(fileName)
}
