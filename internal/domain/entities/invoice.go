package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "PENDING"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// Invoice is the tax-inclusive bill generated when a service is completed.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_id-index): service_id
//   - uniqueness marker item "invoice_number#<number>" keeps invoice_number unique
//
// Items are embedded in the invoice item, so their lifetime is bound to it.
// After creation only Status, PaidAt and PaymentReference change.
type Invoice struct {
	ID               string          `json:"id"`
	InvoiceNumber    string          `json:"invoice_number"`
	ServiceID        string          `json:"service_id"`
	CustomerID       string          `json:"customer_id"`
	Items            []InvoiceItem   `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Status           InvoiceStatus   `json:"status"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type InvoiceItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}
