package interfaces

import (
	"context"
	"mecanica_projects/internal/domain/entities"
	"time"
)

// IServiceRepository abstracts DynamoDB persistence for the service aggregate
// (StandardService + ServiceNote + Invoice).
//
// Writes touching several items of the aggregate are a single transaction:
//   - Create fails with ErrDuplicateAppointment when the appointment already has a service.
//   - Update appends newNotes and CAS-updates the service.
//   - Complete CAS-updates the service, appends notes and creates the invoice; it fails
//     with ErrDuplicateInvoiceNumber when the invoice number is taken.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.StandardService) (entities.StandardService, error)
	GetByID(ctx context.Context, id string) (entities.StandardService, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.StandardService, error)
	ListAll(ctx context.Context) ([]entities.StandardService, error)
	Update(ctx context.Context, s entities.StandardService, newNotes []entities.ServiceNote) (entities.StandardService, error)
	Complete(ctx context.Context, s entities.StandardService, newNotes []entities.ServiceNote, inv entities.Invoice) (entities.StandardService, error)
}

type IServiceNoteRepository interface {
	Create(ctx context.Context, n entities.ServiceNote) (entities.ServiceNote, error)
	ListByServiceID(ctx context.Context, serviceID string, customerVisibleOnly bool) ([]entities.ServiceNote, error)
}

type IServicePhotoRepository interface {
	Create(ctx context.Context, p entities.ServicePhoto) (entities.ServicePhoto, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.ServicePhoto, error)
}

// IInvoiceRepository reads invoices and records their payment.
//
// A payment first claims the PENDING invoice with ClaimPayment, so only one caller
// reaches the provider at a time. ClaimPayment reports false when the invoice is not
// PENDING or another unexpired claim holds it. MarkPaid only succeeds while the
// invoice is PENDING and still held by claimID; otherwise it returns a zero Invoice.

type IInvoiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Invoice, error)
	ClaimPayment(ctx context.Context, id, claimID string, now, expiresAt time.Time) (bool, error)
	ReleasePaymentClaim(ctx context.Context, id, claimID string) error
	MarkPaid(ctx context.Context, id, claimID string, paidAt time.Time, paymentReference string) (entities.Invoice, error)
}
