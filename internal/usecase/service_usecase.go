package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxInvoiceNumberAttempts bounds the regeneration of a colliding invoice number.
const MaxInvoiceNumberAttempts = 5

const completionNotePrefix = "Service completed."

type NewServiceCommand struct {
	AppointmentID       string
	CustomerID          string
	AssignedEmployeeIDs []string
	EstimatedHours      float64
}

// UpdateServiceCommand only applies non-nil fields. A non-empty Note is appended as a
// customer-visible note.
type UpdateServiceCommand struct {
	Status              *entities.ServiceStatus
	Progress            *int
	EstimatedCompletion *time.Time
	Note                string
}

type CompleteServiceCommand struct {
	ActualCost        decimal.Decimal
	AdditionalCharges []ChargeItem
	CompletionNotes   string
}

type NewNoteCommand struct {
	Note            string
	CustomerVisible bool
}

type PhotoUpload struct {
	FileName    string
	PhotoURL    string
	Description string
}

// IServiceUseCase is the StandardService lifecycle.
//
// CREATED services are edited through UpdateService with no ordering constraint and
// reach COMPLETED through CompleteService, which issues one invoice per call.

type IServiceUseCase interface {
	CreateService(ctx context.Context, actor entities.Actor, cmd NewServiceCommand) (entities.StandardService, error)
	ListServices(ctx context.Context, actor entities.Actor, statusFilter string) ([]entities.StandardService, error)
	GetService(ctx context.Context, actor entities.Actor, serviceID string) (entities.StandardService, error)
	UpdateService(ctx context.Context, actor entities.Actor, serviceID string, cmd UpdateServiceCommand) (entities.StandardService, error)
	CompleteService(ctx context.Context, actor entities.Actor, serviceID string, cmd CompleteServiceCommand) (entities.Invoice, error)
	AddNote(ctx context.Context, actor entities.Actor, serviceID string, cmd NewNoteCommand) (entities.ServiceNote, error)
	ListNotes(ctx context.Context, actor entities.Actor, serviceID string) ([]entities.ServiceNote, error)
	UploadPhotos(ctx context.Context, actor entities.Actor, serviceID string, uploads []PhotoUpload) ([]entities.ServicePhoto, error)
	ListPhotos(ctx context.Context, actor entities.Actor, serviceID string) ([]entities.ServicePhoto, error)
	GetServiceInvoice(ctx context.Context, actor entities.Actor, serviceID string) (entities.Invoice, error)
}

type ServiceUseCase struct {
	repo      interfaces.IServiceRepository
	notes     interfaces.IServiceNoteRepository
	photos    interfaces.IServicePhotoRepository
	invoices  interfaces.IInvoiceRepository
	guard     AccessGuard
	generator InvoiceGenerator
	now       func() time.Time
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, notes interfaces.IServiceNoteRepository, photos interfaces.IServicePhotoRepository, invoices interfaces.IInvoiceRepository) *ServiceUseCase {
	return &ServiceUseCase{
		repo:     repo,
		notes:    notes,
		photos:   photos,
		invoices: invoices,
		guard:    NewAccessGuard(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ServiceUseCase) CreateService(ctx context.Context, actor entities.Actor, cmd NewServiceCommand) (entities.StandardService, error) {
	if err := u.guard.CanAct(actor, ActionCreateService, ""); err != nil {
		return entities.StandardService{}, err
	}
	cmd.AppointmentID = strings.TrimSpace(cmd.AppointmentID)
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	if cmd.AppointmentID == "" || cmd.CustomerID == "" {
		return entities.StandardService{}, validationError("appointment_id and customer_id are required")
	}
	if cmd.EstimatedHours < 0 {
		return entities.StandardService{}, validationError("estimated_hours must not be negative")
	}

	employees := uniqueIDs(cmd.AssignedEmployeeIDs)
	if len(employees) == 0 && actor.ID != "" {
		employees = []string{actor.ID}
	}

	now := u.now()
	s := entities.StandardService{
		ID:                  uuid.NewString(),
		AppointmentID:       cmd.AppointmentID,
		CustomerID:          cmd.CustomerID,
		AssignedEmployeeIDs: employees,
		Status:              entities.ServiceStatusCreated,
		Progress:            0,
		EstimatedCompletion: now.Add(time.Duration(cmd.EstimatedHours * float64(time.Hour))),
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateAppointment) {
			log.Printf("[service][usecase] duplicated appointment appointment_id=%s", cmd.AppointmentID)
			return entities.StandardService{}, ErrServiceDuplicated
		}
		return entities.StandardService{}, err
	}
	log.Printf("[service][usecase] created service_id=%s appointment_id=%s", created.ID, created.AppointmentID)
	return created, nil
}

func (u *ServiceUseCase) ListServices(ctx context.Context, actor entities.Actor, statusFilter string) ([]entities.StandardService, error) {
	var (
		out []entities.StandardService
		err error
	)
	switch {
	case actor.Roles.IsStaff():
		out, err = u.repo.ListAll(ctx)
	case actor.Roles.Has(entities.RoleCustomer):
		out, err = u.repo.ListByCustomerID(ctx, actor.ID)
	default:
		return nil, ErrUnauthorizedAccess
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(statusFilter) == "" {
		return out, nil
	}
	status, ok := entities.ParseServiceStatus(statusFilter)
	if !ok {
		log.Printf("[service][usecase] ignoring invalid status filter status=%q", statusFilter)
		return out, nil
	}
	filtered := make([]entities.StandardService, 0, len(out))
	for _, s := range out {
		if s.Status == status {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (u *ServiceUseCase) GetService(ctx context.Context, actor entities.Actor, serviceID string) (entities.StandardService, error) {
	s, err := u.load(ctx, serviceID)
	if err != nil {
		return entities.StandardService{}, err
	}
	if err := u.guard.CanView(actor, s.CustomerID, ErrServiceNotFound); err != nil {
		return entities.StandardService{}, err
	}
	return s, nil
}

func (u *ServiceUseCase) UpdateService(ctx context.Context, actor entities.Actor, serviceID string, cmd UpdateServiceCommand) (entities.StandardService, error) {
	if err := u.guard.CanAct(actor, ActionUpdateService, ""); err != nil {
		return entities.StandardService{}, err
	}
	if cmd.Progress != nil && (*cmd.Progress < 0 || *cmd.Progress > 100) {
		return entities.StandardService{}, ErrInvalidProgress
	}
	s, err := u.load(ctx, serviceID)
	if err != nil {
		return entities.StandardService{}, err
	}

	if cmd.Status != nil {
		s.Status = *cmd.Status
	}
	if cmd.Progress != nil {
		s.Progress = *cmd.Progress
	}
	if cmd.EstimatedCompletion != nil {
		s.EstimatedCompletion = cmd.EstimatedCompletion.UTC()
	}
	now := u.now()
	s.UpdatedAt = now

	var newNotes []entities.ServiceNote
	if note := strings.TrimSpace(cmd.Note); note != "" {
		newNotes = append(newNotes, u.newNote(s.ID, actor.ID, note, true, now))
	}

	updated, err := u.repo.Update(ctx, s, newNotes)
	if err != nil {
		return entities.StandardService{}, u.writeError(s.ID, err)
	}
	log.Printf("[service][usecase] updated service_id=%s status=%s progress=%d notes=%d", updated.ID, updated.Status, updated.Progress, len(newNotes))
	return updated, nil
}

// CompleteService forces COMPLETED/100, appends a customer-visible completion note and
// issues a new invoice. Calling it again on a completed service issues another invoice.
func (u *ServiceUseCase) CompleteService(ctx context.Context, actor entities.Actor, serviceID string, cmd CompleteServiceCommand) (entities.Invoice, error) {
	if err := u.guard.CanAct(actor, ActionCompleteService, ""); err != nil {
		return entities.Invoice{}, err
	}
	if cmd.ActualCost.IsNegative() {
		return entities.Invoice{}, validationError("actual_cost must not be negative")
	}
	for _, c := range cmd.AdditionalCharges {
		if c.Amount.IsNegative() || c.Quantity < 0 {
			return entities.Invoice{}, validationError("additional charges must not be negative")
		}
	}
	s, err := u.load(ctx, serviceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if s.Status == entities.ServiceStatusCompleted {
		log.Printf("[service][usecase] completing an already completed service service_id=%s", s.ID)
	}

	now := u.now()
	s.Status = entities.ServiceStatusCompleted
	s.Progress = 100
	s.UpdatedAt = now

	noteText := completionNotePrefix
	if extra := strings.TrimSpace(cmd.CompletionNotes); extra != "" {
		noteText += " " + extra
	}
	notes := []entities.ServiceNote{u.newNote(s.ID, actor.ID, noteText, true, now)}

	for attempt := 0; attempt < MaxInvoiceNumberAttempts; attempt++ {
		inv := u.generator.Generate(s, cmd.ActualCost, cmd.AdditionalCharges, now, attempt)
		_, err := u.repo.Complete(ctx, s, notes, inv)
		if errors.Is(err, interfaces.ErrDuplicateInvoiceNumber) {
			log.Printf("[service][usecase] invoice number taken service_id=%s invoice_number=%s attempt=%d", s.ID, inv.InvoiceNumber, attempt)
			continue
		}
		if err != nil {
			return entities.Invoice{}, u.writeError(s.ID, err)
		}
		log.Printf("[service][usecase] completed service_id=%s invoice_id=%s invoice_number=%s total=%s", s.ID, inv.ID, inv.InvoiceNumber, inv.TotalAmount.StringFixed(2))
		return inv, nil
	}
	return entities.Invoice{}, fmt.Errorf("%w: could not allocate a unique invoice number for service %s", ErrConflict, s.ID)
}

func (u *ServiceUseCase) AddNote(ctx context.Context, actor entities.Actor, serviceID string, cmd NewNoteCommand) (entities.ServiceNote, error) {
	if err := u.guard.CanAct(actor, ActionAddNote, ""); err != nil {
		return entities.ServiceNote{}, err
	}
	text := strings.TrimSpace(cmd.Note)
	if text == "" {
		return entities.ServiceNote{}, validationError("note is required")
	}
	s, err := u.load(ctx, serviceID)
	if err != nil {
		return entities.ServiceNote{}, err
	}
	return u.notes.Create(ctx, u.newNote(s.ID, actor.ID, text, cmd.CustomerVisible, u.now()))
}

func (u *ServiceUseCase) ListNotes(ctx context.Context, actor entities.Actor, serviceID string) ([]entities.ServiceNote, error) {
	s, err := u.GetService(ctx, actor, serviceID)
	if err != nil {
		return nil, err
	}
	return u.notes.ListByServiceID(ctx, s.ID, !actor.Roles.IsStaff())
}

func (u *ServiceUseCase) UploadPhotos(ctx context.Context, actor entities.Actor, serviceID string, uploads []PhotoUpload) ([]entities.ServicePhoto, error) {
	if err := u.guard.CanAct(actor, ActionUploadPhotos, ""); err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, validationError("at least one photo is required")
	}
	for _, up := range uploads {
		if strings.TrimSpace(up.PhotoURL) == "" {
			return nil, validationError("photo_url is required")
		}
	}
	s, err := u.load(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := make([]entities.ServicePhoto, 0, len(uploads))
	for _, up := range uploads {
		created, err := u.photos.Create(ctx, entities.ServicePhoto{
			ID:          uuid.NewString(),
			ServiceID:   s.ID,
			EmployeeID:  actor.ID,
			FileName:    strings.TrimSpace(up.FileName),
			PhotoURL:    strings.TrimSpace(up.PhotoURL),
			Description: strings.TrimSpace(up.Description),
			UploadedAt:  now,
		})
		if err != nil {
			log.Printf("[service][usecase] photo create failed service_id=%s err=%v", s.ID, err)
			return nil, err
		}
		out = append(out, created)
	}
	log.Printf("[service][usecase] photos uploaded service_id=%s count=%d", s.ID, len(out))
	return out, nil
}

func (u *ServiceUseCase) ListPhotos(ctx context.Context, actor entities.Actor, serviceID string) ([]entities.ServicePhoto, error) {
	s, err := u.GetService(ctx, actor, serviceID)
	if err != nil {
		return nil, err
	}
	return u.photos.ListByServiceID(ctx, s.ID)
}

// GetServiceInvoice returns the most recent invoice of the service.
func (u *ServiceUseCase) GetServiceInvoice(ctx context.Context, actor entities.Actor, serviceID string) (entities.Invoice, error) {
	s, err := u.GetService(ctx, actor, serviceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	invs, err := u.invoices.ListByServiceID(ctx, s.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(invs) == 0 {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	sort.SliceStable(invs, func(i, j int) bool { return invs[i].CreatedAt.After(invs[j].CreatedAt) })
	return invs[0], nil
}

func (u *ServiceUseCase) newNote(serviceID, employeeID, text string, visible bool, now time.Time) entities.ServiceNote {
	return entities.ServiceNote{
		ID:              uuid.NewString(),
		ServiceID:       serviceID,
		EmployeeID:      employeeID,
		Note:            text,
		CustomerVisible: visible,
		CreatedAt:       now,
	}
}

func (u *ServiceUseCase) load(ctx context.Context, serviceID string) (entities.StandardService, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.StandardService{}, ErrInvalidServiceID
	}
	s, err := u.repo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.StandardService{}, err
	}
	if s.ID == "" {
		log.Printf("[service][usecase] service not found service_id=%s", serviceID)
		return entities.StandardService{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) writeError(serviceID string, err error) error {
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return fmt.Errorf("%w: service %s was modified concurrently", ErrConflict, serviceID)
	}
	return err
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
