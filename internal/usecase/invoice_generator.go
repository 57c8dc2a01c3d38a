package usecase

import (
	"fmt"
	"mecanica_projects/internal/domain/entities"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRate is applied to the whole invoice subtotal.
var TaxRate = decimal.RequireFromString("0.15")

const invoiceNumberLayout = "20060102150405"

// ChargeItem is an extra line billed on top of the service's actual cost.
type ChargeItem struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// InvoiceGenerator derives the invoice of a completed service.
//
// The invoice number has one-second granularity, so two completions within the same
// second produce the same base number. Uniqueness is enforced by storage; callers
// retry with a higher attempt to get a suffixed number.
type InvoiceGenerator struct{}

// Number returns "INV-yyyyMMddHHmmss" for attempt 0 and "INV-yyyyMMddHHmmss-<n>" with
// n = attempt+1 afterwards.
func (InvoiceGenerator) Number(now time.Time, attempt int) string {
	base := "INV-" + now.Format(invoiceNumberLayout)
	if attempt <= 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, attempt+1)
}

// Generate builds a PENDING invoice: one base item for actualCost plus one item per
// charge, subtotal = actualCost + sum(charge.Amount), tax = subtotal * TaxRate,
// total = subtotal + tax.
func (g InvoiceGenerator) Generate(svc entities.StandardService, actualCost decimal.Decimal, charges []ChargeItem, now time.Time, attempt int) entities.Invoice {
	items := make([]entities.InvoiceItem, 0, len(charges)+1)
	items = append(items, entities.InvoiceItem{
		ID:          uuid.NewString(),
		Description: "Service Completion - " + svc.AppointmentID,
		Quantity:    1,
		UnitPrice:   actualCost,
		Amount:      actualCost,
	})

	subtotal := actualCost
	for _, c := range charges {
		items = append(items, entities.InvoiceItem{
			ID:          uuid.NewString(),
			Description: c.Description,
			Quantity:    c.Quantity,
			UnitPrice:   c.UnitPrice,
			Amount:      c.Amount,
		})
		subtotal = subtotal.Add(c.Amount)
	}

	tax := subtotal.Mul(TaxRate)
	return entities.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: g.Number(now, attempt),
		ServiceID:     svc.ID,
		CustomerID:    svc.CustomerID,
		Items:         items,
		Subtotal:      subtotal,
		TaxAmount:     tax,
		TotalAmount:   subtotal.Add(tax),
		Status:        entities.InvoiceStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
