package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the labor/parts breakdown submitted for a Project.
//
// Storage model (DynamoDB):
//   - PK: project_id (at most one quote per project)
type Quote struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	LaborCost     decimal.Decimal `json:"labor_cost"`
	PartsCost     decimal.Decimal `json:"parts_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	EstimatedDays int             `json:"estimated_days"`
	Breakdown     string          `json:"breakdown,omitempty"`
	SubmittedBy   string          `json:"submitted_by"`
	SubmittedAt   time.Time       `json:"submitted_at"`
}
