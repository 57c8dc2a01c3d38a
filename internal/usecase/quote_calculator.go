package usecase

import (
	"mecanica_projects/internal/domain/entities"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultEstimatedDays is used when a quote does not carry its own estimate.
const DefaultEstimatedDays = 14

var (
	laborShare = decimal.RequireFromString("0.6")
	partsShare = decimal.RequireFromString("0.4")
)

// QuoteCalculator splits a project budget into labor and parts.
type QuoteCalculator struct{}

// Calculate builds the quote for total. estimatedDays <= 0 selects DefaultEstimatedDays.
func (QuoteCalculator) Calculate(projectID string, total decimal.Decimal, estimatedDays int, breakdown, submittedBy string, now time.Time) entities.Quote {
	if estimatedDays <= 0 {
		estimatedDays = DefaultEstimatedDays
	}
	return entities.Quote{
		ID:            uuid.NewString(),
		ProjectID:     projectID,
		LaborCost:     total.Mul(laborShare),
		PartsCost:     total.Mul(partsShare),
		TotalCost:     total,
		EstimatedDays: estimatedDays,
		Breakdown:     breakdown,
		SubmittedBy:   submittedBy,
		SubmittedAt:   now,
	}
}
