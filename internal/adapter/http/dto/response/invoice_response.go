package response

import (
	"time"

	"mecanica_projects/internal/domain/entities"
)

// InvoiceResponse renders amounts with two decimal places.
type InvoiceResponse struct {
	ID               string                `json:"id"`
	InvoiceNumber    string                `json:"invoice_number"`
	ServiceID        string                `json:"service_id"`
	CustomerID       string                `json:"customer_id"`
	Items            []InvoiceItemResponse `json:"items"`
	Subtotal         string                `json:"subtotal"`
	TaxAmount        string                `json:"tax_amount"`
	TotalAmount      string                `json:"total_amount"`
	Status           string                `json:"status"`
	PaidAt           *time.Time            `json:"paid_at,omitempty"`
	PaymentReference string                `json:"payment_reference,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

type InvoiceItemResponse struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Amount      string `json:"amount"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			Amount:      it.Amount.StringFixed(2),
		})
	}
	return InvoiceResponse{
		ID:               inv.ID,
		InvoiceNumber:    inv.InvoiceNumber,
		ServiceID:        inv.ServiceID,
		CustomerID:       inv.CustomerID,
		Items:            items,
		Subtotal:         inv.Subtotal.StringFixed(2),
		TaxAmount:        inv.TaxAmount.StringFixed(2),
		TotalAmount:      inv.TotalAmount.StringFixed(2),
		Status:           string(inv.Status),
		PaidAt:           inv.PaidAt,
		PaymentReference: inv.PaymentReference,
		CreatedAt:        inv.CreatedAt,
	}
}
