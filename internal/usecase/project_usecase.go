package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewProjectCommand carries a customer's modification request.
type NewProjectCommand struct {
	VehicleID             string
	ProjectType           string
	Description           string
	DesiredCompletionDate string
	Budget                decimal.Decimal
	AppointmentID         string
}

// SubmitQuoteCommand carries a staff quote. EstimatedDays <= 0 selects the default.
type SubmitQuoteCommand struct {
	Amount        decimal.Decimal
	EstimatedDays int
	Notes         string
}

// IProjectUseCase is the Project lifecycle.
//
// Transitions:
//   - SubmitQuote:    REQUESTED -> QUOTED (staff)
//   - AcceptQuote:    QUOTED -> APPROVED (owning customer)
//   - RejectQuote:    QUOTED -> REJECTED (owning customer)
//   - ApproveProject: REQUESTED|PENDING_ADMIN_REVIEW -> APPROVED (admin)
//   - RejectProject:  REQUESTED|PENDING_ADMIN_REVIEW|QUOTED -> REJECTED (admin)
//   - UpdateProgress: APPROVED|IN_PROGRESS -> IN_PROGRESS|COMPLETED (staff)

type IProjectUseCase interface {
	RequestProject(ctx context.Context, actor entities.Actor, cmd NewProjectCommand) (entities.Project, error)
	ListProjects(ctx context.Context, actor entities.Actor) ([]entities.Project, error)
	GetProject(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error)
	GetQuote(ctx context.Context, actor entities.Actor, projectID string) (entities.Quote, error)
	SubmitQuote(ctx context.Context, actor entities.Actor, projectID string, cmd SubmitQuoteCommand) (entities.Project, error)
	AcceptQuote(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error)
	RejectQuote(ctx context.Context, actor entities.Actor, projectID string, reason string) (entities.Project, error)
	ApproveProject(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error)
	RejectProject(ctx context.Context, actor entities.Actor, projectID string, reason string) (entities.Project, error)
	UpdateProgress(ctx context.Context, actor entities.Actor, projectID string, progress int) (entities.Project, error)
}

type ProjectUseCase struct {
	repo       interfaces.IProjectRepository
	quotes     interfaces.IQuoteRepository
	dispatcher ISideEffectDispatcher
	guard      AccessGuard
	calculator QuoteCalculator
	now        func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, quotes interfaces.IQuoteRepository, dispatcher ISideEffectDispatcher) *ProjectUseCase {
	if dispatcher == nil {
		dispatcher = NewSideEffectDispatcher(nil, nil, nil, DispatcherConfig{})
	}
	return &ProjectUseCase{
		repo:       repo,
		quotes:     quotes,
		dispatcher: dispatcher,
		guard:      NewAccessGuard(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *ProjectUseCase) RequestProject(ctx context.Context, actor entities.Actor, cmd NewProjectCommand) (entities.Project, error) {
	if err := u.guard.CanAct(actor, ActionRequestProject, actor.ID); err != nil {
		return entities.Project{}, err
	}
	if strings.TrimSpace(actor.ID) == "" {
		return entities.Project{}, ErrMissingActor
	}
	cmd.VehicleID = strings.TrimSpace(cmd.VehicleID)
	cmd.ProjectType = strings.TrimSpace(cmd.ProjectType)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if cmd.VehicleID == "" || cmd.ProjectType == "" || cmd.Description == "" {
		return entities.Project{}, validationError("vehicle_id, project_type and description are required")
	}
	if cmd.Budget.IsNegative() {
		return entities.Project{}, ErrInvalidAmount
	}

	now := u.now()
	p := entities.Project{
		ID:                    uuid.NewString(),
		CustomerID:            actor.ID,
		VehicleID:             cmd.VehicleID,
		ProjectType:           cmd.ProjectType,
		Description:           cmd.Description,
		DesiredCompletionDate: strings.TrimSpace(cmd.DesiredCompletionDate),
		Budget:                cmd.Budget,
		Status:                entities.ProjectStatusRequested,
		Progress:              0,
		AppointmentID:         strings.TrimSpace(cmd.AppointmentID),
		Version:               1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[project][usecase] create failed customer_id=%s err=%v", actor.ID, err)
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] created project_id=%s customer_id=%s", created.ID, actor.ID)
	return created, nil
}

func (u *ProjectUseCase) ListProjects(ctx context.Context, actor entities.Actor) ([]entities.Project, error) {
	if actor.Roles.IsStaff() {
		return u.repo.ListAll(ctx)
	}
	if actor.Roles.Has(entities.RoleCustomer) {
		return u.repo.ListByCustomerID(ctx, actor.ID)
	}
	return nil, ErrUnauthorizedAccess
}

func (u *ProjectUseCase) GetProject(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
	p, err := u.load(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if err := u.guard.CanView(actor, p.CustomerID, ErrProjectNotFound); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (u *ProjectUseCase) GetQuote(ctx context.Context, actor entities.Actor, projectID string) (entities.Quote, error) {
	p, err := u.GetProject(ctx, actor, projectID)
	if err != nil {
		return entities.Quote{}, err
	}
	q, err := u.quotes.GetByProjectID(ctx, p.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ProjectID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *ProjectUseCase) SubmitQuote(ctx context.Context, actor entities.Actor, projectID string, cmd SubmitQuoteCommand) (entities.Project, error) {
	if err := u.guard.CanAct(actor, ActionSubmitQuote, ""); err != nil {
		return entities.Project{}, err
	}
	if !cmd.Amount.IsPositive() {
		return entities.Project{}, ErrInvalidAmount
	}
	p, err := u.load(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] submit-quote start project_id=%s actor_id=%s amount=%s", p.ID, actor.ID, cmd.Amount)

	if p.Status != entities.ProjectStatusRequested {
		return entities.Project{}, invalidOperation("can only quote projects in REQUESTED status. Current status: %s", p.Status)
	}

	now := u.now()
	q := u.calculator.Calculate(p.ID, cmd.Amount, cmd.EstimatedDays, strings.TrimSpace(cmd.Notes), actor.ID, now)
	p.Budget = q.TotalCost
	p.Status = entities.ProjectStatusQuoted
	p.UpdatedAt = now

	updated, err := u.repo.UpdateWithQuote(ctx, p, q)
	if err != nil {
		return entities.Project{}, u.writeError(p.ID, err)
	}
	log.Printf("[project][usecase] submit-quote success project_id=%s quote_id=%s", p.ID, q.ID)
	return updated, nil
}

func (u *ProjectUseCase) AcceptQuote(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
	p, err := u.load(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if err := u.guard.CanAct(actor, ActionAcceptQuote, p.CustomerID); err != nil {
		return entities.Project{}, err
	}
	if p.Status != entities.ProjectStatusQuoted {
		return entities.Project{}, invalidOperation("can only accept projects in QUOTED status. Current status: %s", p.Status)
	}
	return u.transition(ctx, p, entities.ProjectStatusApproved, "accept-quote")
}

func (u *ProjectUseCase) RejectQuote(ctx context.Context, actor entities.Actor, projectID string, reason string) (entities.Project, error) {
	p, err := u.load(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if err := u.guard.CanAct(actor, ActionRejectQuote, p.CustomerID); err != nil {
		return entities.Project{}, err
	}
	if p.Status != entities.ProjectStatusQuoted {
		return entities.Project{}, invalidOperation("can only reject projects in QUOTED status. Current status: %s", p.Status)
	}
	log.Printf("[project][usecase] reject-quote project_id=%s customer_id=%s reason=%q", p.ID, actor.ID, reason)
	return u.transition(ctx, p, entities.ProjectStatusRejected, "reject-quote")
}

func (u *ProjectUseCase) ApproveProject(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
	if err := u.guard.CanAct(actor, ActionApproveProject, ""); err != nil {
		return entities.Project{}, err
	}
	p, err := u.load(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Status != entities.ProjectStatusRequested && p.Status != entities.ProjectStatusPendingAdminReview {
		return entities.Project{}, invalidOperation("project must be in REQUESTED or PENDING_ADMIN_REVIEW status to be approved. Current status: %s", p.Status)
	}

	saved, err := u.transition(ctx, p, entities.ProjectStatusApproved, "approve")
	if err != nil {
		return entities.Project{}, err
	}

	intents := []SideEffectIntent{NotifyIntent(entities.Notification{
		UserID:        saved.CustomerID,
		Kind:          entities.NotificationKindSuccess,
		Title:         "Project Approved",
		Message:       fmt.Sprintf("Your custom project '%s' has been approved! We will proceed with the work as discussed.", saved.ProjectType),
		ReferenceID:   saved.ID,
		ReferenceType: entities.ReferenceTypeProject,
	})}
	if saved.HasAppointment() {
		log.Printf("[project][usecase] confirming linked appointment project_id=%s appointment_id=%s", saved.ID, saved.AppointmentID)
		intents = append(intents, ConfirmAppointmentIntent(saved.AppointmentID, actor.ID))
	}
	u.dispatcher.Dispatch(ctx, intents...)
	return saved, nil
}

func (u *ProjectUseCase) RejectProject(ctx context.Context, actor entities.Actor, projectID string, reason string) (entities.Project, error) {
	if err := u.guard.CanAct(actor, ActionRejectProject, ""); err != nil {
		return entities.Project{}, err
	}
	p, err := u.load(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	switch p.Status {
	case entities.ProjectStatusRequested, entities.ProjectStatusPendingAdminReview, entities.ProjectStatusQuoted:
	default:
		return entities.Project{}, invalidOperation("project must be in REQUESTED, PENDING_ADMIN_REVIEW, or QUOTED status to be rejected. Current status: %s", p.Status)
	}

	saved, err := u.transition(ctx, p, entities.ProjectStatusRejected, "reject")
	if err != nil {
		return entities.Project{}, err
	}

	msg := fmt.Sprintf("Your custom project '%s' has been reviewed and unfortunately cannot be accepted at this time.", saved.ProjectType)
	if reason = strings.TrimSpace(reason); reason != "" {
		msg += " Reason: " + reason
	}
	intents := []SideEffectIntent{NotifyIntent(entities.Notification{
		UserID:        saved.CustomerID,
		Kind:          entities.NotificationKindWarning,
		Title:         "Project Rejected",
		Message:       msg,
		ReferenceID:   saved.ID,
		ReferenceType: entities.ReferenceTypeProject,
	})}
	if saved.HasAppointment() {
		log.Printf("[project][usecase] cancelling linked appointment project_id=%s appointment_id=%s", saved.ID, saved.AppointmentID)
		intents = append(intents, CancelAppointmentIntent(saved.AppointmentID, actor.ID))
	}
	u.dispatcher.Dispatch(ctx, intents...)
	return saved, nil
}

// UpdateProgress applies the progress rule as a first match:
//
//	progress > 0 and status APPROVED -> IN_PROGRESS
//	otherwise progress == 100        -> COMPLETED
//
// so jumping straight to 100 from APPROVED lands in IN_PROGRESS.
func (u *ProjectUseCase) UpdateProgress(ctx context.Context, actor entities.Actor, projectID string, progress int) (entities.Project, error) {
	if err := u.guard.CanAct(actor, ActionUpdateProgress, ""); err != nil {
		return entities.Project{}, err
	}
	if progress < 0 || progress > 100 {
		return entities.Project{}, ErrInvalidProgress
	}
	p, err := u.load(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Status != entities.ProjectStatusApproved && p.Status != entities.ProjectStatusInProgress {
		return entities.Project{}, invalidOperation("can only update progress for APPROVED or IN_PROGRESS projects. Current status: %s", p.Status)
	}

	p.Progress = progress
	if progress > 0 && p.Status == entities.ProjectStatusApproved {
		p.Status = entities.ProjectStatusInProgress
	} else if progress == 100 {
		p.Status = entities.ProjectStatusCompleted
	}
	p.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, u.writeError(p.ID, err)
	}
	log.Printf("[project][usecase] progress updated project_id=%s progress=%d status=%s", p.ID, progress, updated.Status)
	return updated, nil
}

func (u *ProjectUseCase) transition(ctx context.Context, p entities.Project, to entities.ProjectStatus, op string) (entities.Project, error) {
	from := p.Status
	p.Status = to
	p.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		log.Printf("[project][usecase] %s failed project_id=%s err=%v", op, p.ID, err)
		return entities.Project{}, u.writeError(p.ID, err)
	}
	log.Printf("[project][usecase] %s success project_id=%s from=%s to=%s", op, p.ID, from, to)
	return updated, nil
}

func (u *ProjectUseCase) load(ctx context.Context, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.repo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		log.Printf("[project][usecase] project not found project_id=%s", projectID)
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) writeError(projectID string, err error) error {
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return fmt.Errorf("%w: project %s was modified concurrently", ErrConflict, projectID)
	}
	return err
}
