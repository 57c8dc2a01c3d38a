package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "mecanica_projects/internal/adapter/http/dto/response"
	"mecanica_projects/internal/usecase"
	"mecanica_projects/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices and their payment.

type InvoiceHandler struct {
	usecase  usecase.IInvoicePaymentUseCase
	mockMode bool
}

// NewInvoiceHandler builds the handler. In mock mode an unreadable payment payload
// falls back to an empty one.
func NewInvoiceHandler(uc usecase.IInvoicePaymentUseCase, mockMode bool) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, mockMode: mockMode}
}

// GetInvoice godoc
// @Summary  Get an invoice
// @Tags     invoices
// @Produce  json
// @Param    invoice_id path string true "Invoice ID"
// @Success  200 {object} response.InvoiceResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	inv, err := h.usecase.GetInvoice(c.Request.Context(), actor, c.Param("invoice_id"))
	if err != nil {
		writeError(c, mapInvoicePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// PayInvoice godoc
// @Summary  Pay a PENDING invoice through Mercado Pago (owning customer)
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    invoice_id path string true "Invoice ID"
// @Param    body body request.InvoicePaymentRequest true "Mercado Pago payload, optionally wrapped in mp_payload"
// @Success  200 {object} response.InvoiceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /invoices/{invoice_id}/pay [post]
func (h *InvoiceHandler) PayInvoice(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	invoiceID := c.Param("invoice_id")
	log.Printf("[invoice][handler] pay start invoice_id=%s actor_id=%s", invoiceID, actor.ID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Printf("[invoice][handler] invalid payload invoice_id=%s err=%v", invoiceID, err)
			writeError(c, errInvalidPayload)
			return
		}
		log.Printf("[invoice][handler] payload invalid in mock mode; fallback to empty payload invoice_id=%s err=%v", invoiceID, err)
		mpPayload = json.RawMessage("{}")
	}

	paid, err := h.usecase.PayInvoice(c.Request.Context(), actor, invoiceID, mpPayload)
	if err != nil {
		log.Printf("[invoice][handler] pay failed invoice_id=%s err=%v", invoiceID, err)
		writeError(c, mapInvoicePaymentError(err))
		return
	}
	log.Printf("[invoice][handler] pay success invoice_id=%s payment_reference=%s", paid.ID, paid.PaymentReference)
	c.JSON(http.StatusOK, response.FromInvoice(paid))
}

// readMPPayload accepts either {"mp_payload": {...}} or the Mercado Pago payload itself.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return mapLifecycleError(err)
	}
}
