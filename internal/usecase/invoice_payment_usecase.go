package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMPPayload               = fmt.Errorf("%w: invalid mercado pago payload", ErrValidation)
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const providerStatusApproved = "approved"

// paymentClaimTTL bounds how long an abandoned claim blocks new payment attempts.
const paymentClaimTTL = 2 * time.Minute

// PaymentSettings tunes how Mercado Pago payloads are completed before sending.
type PaymentSettings struct {
	// Mock relaxes payload validation; the gateway answers on its own in mock mode.
	Mock            bool
	SandboxToken    bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IInvoicePaymentUseCase settles PENDING invoices through the payment gateway.
//
// Only Status, PaidAt and PaymentReference are written. The invoice is claimed before
// the provider is called, so a concurrent payment of the same invoice fails with
// ErrConflict without charging the customer.
type IInvoicePaymentUseCase interface {
	GetInvoice(ctx context.Context, actor entities.Actor, invoiceID string) (entities.Invoice, error)
	PayInvoice(ctx context.Context, actor entities.Actor, invoiceID string, mpPayload json.RawMessage) (entities.Invoice, error)
}

type InvoicePaymentUseCase struct {
	repo     interfaces.IInvoiceRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
	guard    AccessGuard
	now      func() time.Time
	claimID  func() string
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{
		repo:     repo,
		gateway:  gateway,
		settings: settings,
		guard:    NewAccessGuard(),
		now:      func() time.Time { return time.Now().UTC() },
		claimID:  uuid.NewString,
	}
}

func (u *InvoicePaymentUseCase) GetInvoice(ctx context.Context, actor entities.Actor, invoiceID string) (entities.Invoice, error) {
	inv, err := u.load(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := u.guard.CanView(actor, inv.CustomerID, ErrInvoiceNotFound); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (u *InvoicePaymentUseCase) PayInvoice(ctx context.Context, actor entities.Actor, invoiceID string, mpPayload json.RawMessage) (entities.Invoice, error) {
	log.Printf("[invoice][usecase] pay start raw_invoice_id=%q payload_len=%d", invoiceID, len(mpPayload))
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.settings.Mock {
			log.Printf("[invoice][usecase] invalid payload invoice_id=%s", invoiceID)
			return entities.Invoice{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[invoice][usecase] gateway not configured invoice_id=%s", invoiceID)
		return entities.Invoice{}, ErrPaymentGatewayNotConfigured
	}

	inv, err := u.load(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := u.guard.CanAct(actor, ActionPayInvoice, inv.CustomerID); err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusPending {
		return entities.Invoice{}, invalidOperation("can only pay PENDING invoices. Current status: %s", inv.Status)
	}

	payload, err := u.buildPayload(inv, mpPayload)
	if err != nil {
		return entities.Invoice{}, err
	}

	claimID := u.claimID()
	now := u.now()
	claimed, err := u.repo.ClaimPayment(ctx, inv.ID, claimID, now, now.Add(paymentClaimTTL))
	if err != nil {
		log.Printf("[invoice][usecase] claim failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, err
	}
	if !claimed {
		log.Printf("[invoice][usecase] payment already in progress invoice_id=%s", inv.ID)
		return entities.Invoice{}, fmt.Errorf("%w: invoice %s is already being paid", ErrConflict, inv.ID)
	}

	log.Printf("[invoice][usecase] calling payment gateway invoice_id=%s amount=%s", inv.ID, inv.TotalAmount.StringFixed(2))
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[invoice][usecase] payment gateway failed invoice_id=%s err=%v", inv.ID, err)
		u.release(ctx, inv.ID, claimID)
		return entities.Invoice{}, classifyGatewayError(err)
	}
	if !strings.EqualFold(providerStatus, providerStatusApproved) {
		log.Printf("[invoice][usecase] payment not approved invoice_id=%s provider_payment_id=%s provider_status=%s", inv.ID, providerPaymentID, providerStatus)
		u.release(ctx, inv.ID, claimID)
		return entities.Invoice{}, invalidOperation("payment was not approved by the provider (status: %s)", providerStatus)
	}

	paid, err := u.repo.MarkPaid(ctx, inv.ID, claimID, u.now(), providerPaymentID)
	if err != nil {
		log.Printf("[invoice][usecase] mark paid failed invoice_id=%s provider_payment_id=%s err=%v", inv.ID, providerPaymentID, err)
		return entities.Invoice{}, err
	}
	if paid.ID == "" {
		log.Printf("[invoice][usecase] claim lost before confirmation invoice_id=%s provider_payment_id=%s", inv.ID, providerPaymentID)
		return entities.Invoice{}, fmt.Errorf("%w: invoice %s is no longer pending", ErrConflict, inv.ID)
	}
	log.Printf("[invoice][usecase] pay success invoice_id=%s provider_payment_id=%s", paid.ID, providerPaymentID)
	return paid, nil
}

// release frees the claim after a failed attempt. A claim that cannot be released
// expires after paymentClaimTTL.
func (u *InvoicePaymentUseCase) release(ctx context.Context, invoiceID, claimID string) {
	if err := u.repo.ReleasePaymentClaim(context.WithoutCancel(ctx), invoiceID, claimID); err != nil {
		log.Printf("[invoice][usecase] release claim failed invoice_id=%s err=%v", invoiceID, err)
	}
}

// buildPayload links the provider payment to the invoice. The amount always comes
// from the stored invoice.
func (u *InvoicePaymentUseCase) buildPayload(inv entities.Invoice, raw json.RawMessage) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(raw, &req); err != nil || req == nil {
		if !u.settings.Mock {
			log.Printf("[invoice][usecase] payload is not an object invoice_id=%s", inv.ID)
			return nil, ErrInvalidMPPayload
		}
		req = map[string]any{}
	}

	if !u.settings.Mock {
		if !hasNonEmptyString(req, "payment_method_id") {
			log.Printf("[invoice][usecase] missing payment_method_id invoice_id=%s", inv.ID)
			return nil, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(req)
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			log.Printf("[invoice][usecase] missing/invalid payer invoice_id=%s", inv.ID)
			return nil, ErrInvalidMPPayload
		}
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = inv.InvoiceNumber
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	req["transaction_amount"] = inv.TotalAmount.Round(2).InexactFloat64()

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (u *InvoicePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.settings.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.settings.SandboxToken {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email, which is
// what the sandbox accepts.
func (u *InvoicePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.settings.SandboxToken {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.settings.TestPayerUserID)
	email := strings.TrimSpace(u.settings.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Printf("[invoice][usecase] mapped sandbox payer user_id to payer.email")
}

func (u *InvoicePaymentUseCase) load(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		log.Printf("[invoice][usecase] invoice not found invoice_id=%s", invoiceID)
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}
