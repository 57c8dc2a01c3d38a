package request

import (
	"strings"

	"mecanica_projects/internal/usecase"

	"github.com/shopspring/decimal"
)

// ProjectRequest is the customer's modification request.
type ProjectRequest struct {
	VehicleID             string           `json:"vehicle_id" binding:"required"`
	ProjectType           string           `json:"project_type" binding:"required"`
	Description           string           `json:"description" binding:"required,min=10,max=2000"`
	DesiredCompletionDate string           `json:"desired_completion_date"`
	Budget                *decimal.Decimal `json:"budget"`
	AppointmentID         string           `json:"appointment_id"`
}

func (r ProjectRequest) ToCommand() usecase.NewProjectCommand {
	cmd := usecase.NewProjectCommand{
		VehicleID:             strings.TrimSpace(r.VehicleID),
		ProjectType:           strings.TrimSpace(r.ProjectType),
		Description:           strings.TrimSpace(r.Description),
		DesiredCompletionDate: strings.TrimSpace(r.DesiredCompletionDate),
		AppointmentID:         strings.TrimSpace(r.AppointmentID),
	}
	if r.Budget != nil {
		cmd.Budget = *r.Budget
	}
	return cmd
}

type QuoteRequest struct {
	QuoteAmount   *decimal.Decimal `json:"quote_amount" binding:"required"`
	EstimatedDays int              `json:"estimated_days" binding:"gte=0"`
	Notes         string           `json:"notes"`
}

func (r QuoteRequest) ToCommand() usecase.SubmitQuoteCommand {
	cmd := usecase.SubmitQuoteCommand{EstimatedDays: r.EstimatedDays, Notes: strings.TrimSpace(r.Notes)}
	if r.QuoteAmount != nil {
		cmd.Amount = *r.QuoteAmount
	}
	return cmd
}

// RejectionRequest is optional on every rejection route; an empty body means no reason.
type RejectionRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}
