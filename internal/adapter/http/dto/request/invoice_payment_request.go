package request

import "encoding/json"

// InvoicePaymentRequest is the payload of the pay-invoice route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas;
// a body without the envelope is taken as the payload itself.

type InvoicePaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
