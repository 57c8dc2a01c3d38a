package usecase

import (
	"log"
	"mecanica_projects/internal/domain/entities"
)

// Action names an operation gated by AccessGuard.
type Action string

const (
	ActionRequestProject  Action = "request_project"
	ActionSubmitQuote     Action = "submit_quote"
	ActionAcceptQuote     Action = "accept_quote"
	ActionRejectQuote     Action = "reject_quote"
	ActionApproveProject  Action = "approve_project"
	ActionRejectProject   Action = "reject_project"
	ActionUpdateProgress  Action = "update_progress"
	ActionCreateService   Action = "create_service"
	ActionUpdateService   Action = "update_service"
	ActionCompleteService Action = "complete_service"
	ActionAddNote         Action = "add_note"
	ActionUploadPhotos    Action = "upload_photos"
	ActionPayInvoice      Action = "pay_invoice"
)

type capability struct {
	roles []entities.Role
	// ownerScoped actions are only allowed on entities the caller owns.
	ownerScoped bool
}

var capabilities = map[Action]capability{
	ActionRequestProject:  {roles: []entities.Role{entities.RoleCustomer}},
	ActionSubmitQuote:     {roles: []entities.Role{entities.RoleEmployee, entities.RoleAdmin}},
	ActionAcceptQuote:     {roles: []entities.Role{entities.RoleCustomer}, ownerScoped: true},
	ActionRejectQuote:     {roles: []entities.Role{entities.RoleCustomer}, ownerScoped: true},
	ActionApproveProject:  {roles: []entities.Role{entities.RoleAdmin}},
	ActionRejectProject:   {roles: []entities.Role{entities.RoleAdmin}},
	ActionUpdateProgress:  {roles: []entities.Role{entities.RoleEmployee, entities.RoleAdmin}},
	ActionCreateService:   {roles: []entities.Role{entities.RoleEmployee, entities.RoleAdmin}},
	ActionUpdateService:   {roles: []entities.Role{entities.RoleEmployee, entities.RoleAdmin}},
	ActionCompleteService: {roles: []entities.Role{entities.RoleEmployee, entities.RoleAdmin}},
	ActionAddNote:         {roles: []entities.Role{entities.RoleEmployee, entities.RoleAdmin}},
	ActionUploadPhotos:    {roles: []entities.Role{entities.RoleEmployee, entities.RoleAdmin}},
	ActionPayInvoice:      {roles: []entities.Role{entities.RoleCustomer}, ownerScoped: true},
}

// AccessGuard decides whether an actor may read or mutate an entity.
//
// Reads: staff see everything, customers see what they own, and a customer asking
// for somebody else's entity gets the caller-supplied "not found" error.
// Writes: the action's capability must be in the actor's role set; owner-scoped
// actions additionally require ownership and fail with ErrInvalidOperation.
type AccessGuard struct{}

func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// CanView returns nil when actor may read an entity owned by ownerID, notFound when
// the entity must stay invisible, and ErrUnauthorizedAccess when the actor holds no
// role with read visibility.
func (AccessGuard) CanView(actor entities.Actor, ownerID string, notFound error) error {
	if actor.Roles.IsStaff() {
		return nil
	}
	if actor.Roles.Has(entities.RoleCustomer) {
		if ownerID != "" && ownerID == actor.ID {
			return nil
		}
		log.Printf("[access][guard] hidden entity actor_id=%s roles=%s", actor.ID, actor.Roles)
		return notFound
	}
	log.Printf("[access][guard] no read capability actor_id=%s roles=%s", actor.ID, actor.Roles)
	return ErrUnauthorizedAccess
}

// CanAct checks the capability table for action. ownerID is only consulted for
// owner-scoped actions.
func (AccessGuard) CanAct(actor entities.Actor, action Action, ownerID string) error {
	capab, ok := capabilities[action]
	if !ok || !actor.Roles.HasAny(capab.roles...) {
		log.Printf("[access][guard] action denied action=%s actor_id=%s roles=%s", action, actor.ID, actor.Roles)
		return ErrUnauthorizedAccess
	}
	if capab.ownerScoped && (ownerID == "" || ownerID != actor.ID) {
		log.Printf("[access][guard] ownership denied action=%s actor_id=%s", action, actor.ID)
		return invalidOperation("you don't have permission to %s", humanAction(action))
	}
	return nil
}

func humanAction(a Action) string {
	switch a {
	case ActionAcceptQuote:
		return "accept this quote"
	case ActionRejectQuote:
		return "reject this quote"
	case ActionPayInvoice:
		return "pay this invoice"
	}
	return string(a)
}
