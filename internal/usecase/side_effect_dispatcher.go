package usecase

import (
	"context"
	"errors"
	"log"
	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"
	"time"

	"github.com/juju/clock"
	"github.com/juju/retry"
)

// IntentKind names a post-commit side effect.
type IntentKind string

const (
	IntentNotifyCustomer     IntentKind = "notify_customer"
	IntentConfirmAppointment IntentKind = "confirm_appointment"
	IntentCancelAppointment  IntentKind = "cancel_appointment"
)

const (
	dispatchOutcomeSuccess = "success"
	dispatchOutcomeFailure = "failure"
	dispatchOutcomeSkipped = "skipped"
)

// SideEffectIntent is emitted by a lifecycle after its write is durable.
type SideEffectIntent struct {
	Kind          IntentKind
	AppointmentID string
	ActorID       string
	Notification  entities.Notification
}

func NotifyIntent(n entities.Notification) SideEffectIntent {
	return SideEffectIntent{Kind: IntentNotifyCustomer, Notification: n}
}

func ConfirmAppointmentIntent(appointmentID, actorID string) SideEffectIntent {
	return SideEffectIntent{Kind: IntentConfirmAppointment, AppointmentID: appointmentID, ActorID: actorID}
}

func CancelAppointmentIntent(appointmentID, actorID string) SideEffectIntent {
	return SideEffectIntent{Kind: IntentCancelAppointment, AppointmentID: appointmentID, ActorID: actorID}
}

// DispatcherConfig bounds every outbound call.
type DispatcherConfig struct {
	// Timeout applies to each attempt.
	Timeout time.Duration
	// Attempts is the total number of tries per call, including the first. The
	// default of 1 never repeats a call; higher values are opt-in.
	Attempts int
	Delay    time.Duration
	Clock    clock.Clock
}

func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Timeout:  5 * time.Second,
		Attempts: 1,
		Delay:    200 * time.Millisecond,
		Clock:    clock.WallClock,
	}
}

// ISideEffectDispatcher executes best-effort calls to external collaborators.
// None of its methods report failures: they are logged and counted instead.
type ISideEffectDispatcher interface {
	Dispatch(ctx context.Context, intents ...SideEffectIntent)
	CancelAppointment(ctx context.Context, appointmentID, actorID string)
	ConfirmAppointment(ctx context.Context, appointmentID, actorID string)
	SendNotification(ctx context.Context, userID string, kind entities.NotificationKind, title, body, referenceID, referenceType string)
}

type SideEffectDispatcher struct {
	appointments  interfaces.IAppointmentClient
	notifications interfaces.INotificationClient
	metrics       interfaces.IDispatchMetrics
	cfg           DispatcherConfig
}

var _ ISideEffectDispatcher = (*SideEffectDispatcher)(nil)

func NewSideEffectDispatcher(appointments interfaces.IAppointmentClient, notifications interfaces.INotificationClient, metrics interfaces.IDispatchMetrics, cfg DispatcherConfig) *SideEffectDispatcher {
	def := DefaultDispatcherConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = def.Attempts
	}
	if cfg.Delay <= 0 {
		cfg.Delay = def.Delay
	}
	if cfg.Clock == nil {
		cfg.Clock = def.Clock
	}
	return &SideEffectDispatcher{appointments: appointments, notifications: notifications, metrics: metrics, cfg: cfg}
}

// Dispatch runs the intents in order. It must only be called once the triggering
// transition has been persisted.
func (d *SideEffectDispatcher) Dispatch(ctx context.Context, intents ...SideEffectIntent) {
	for _, in := range intents {
		switch in.Kind {
		case IntentNotifyCustomer:
			n := in.Notification
			d.SendNotification(ctx, n.UserID, n.Kind, n.Title, n.Message, n.ReferenceID, n.ReferenceType)
		case IntentConfirmAppointment:
			d.ConfirmAppointment(ctx, in.AppointmentID, in.ActorID)
		case IntentCancelAppointment:
			d.CancelAppointment(ctx, in.AppointmentID, in.ActorID)
		default:
			log.Printf("[dispatch] unknown intent kind=%s", in.Kind)
		}
	}
}

func (d *SideEffectDispatcher) CancelAppointment(ctx context.Context, appointmentID, actorID string) {
	if d.appointments == nil {
		d.skip(IntentCancelAppointment, "appointment client not configured")
		return
	}
	d.call(ctx, IntentCancelAppointment, "appointment", "cancel", appointmentID, func(ctx context.Context) error {
		return d.appointments.CancelAppointment(ctx, appointmentID, actorID)
	})
}

func (d *SideEffectDispatcher) ConfirmAppointment(ctx context.Context, appointmentID, actorID string) {
	if d.appointments == nil {
		d.skip(IntentConfirmAppointment, "appointment client not configured")
		return
	}
	d.call(ctx, IntentConfirmAppointment, "appointment", "confirm", appointmentID, func(ctx context.Context) error {
		return d.appointments.ConfirmAppointment(ctx, appointmentID, actorID)
	})
}

// SendNotification labels the notification with referenceType, e.g.
// entities.ReferenceTypeProject.
func (d *SideEffectDispatcher) SendNotification(ctx context.Context, userID string, kind entities.NotificationKind, title, body, referenceID, referenceType string) {
	if d.notifications == nil {
		d.skip(IntentNotifyCustomer, "notification client not configured")
		return
	}
	n := entities.Notification{
		UserID:        userID,
		Kind:          kind,
		Title:         title,
		Message:       body,
		ReferenceID:   referenceID,
		ReferenceType: referenceType,
	}
	d.call(ctx, IntentNotifyCustomer, "notification", "send", userID, func(ctx context.Context) error {
		return d.notifications.SendNotification(ctx, n)
	})
}

// call runs fn with a per-attempt timeout on a context detached from the caller's
// cancellation. A failure is logged as an ExternalCallError and swallowed.
func (d *SideEffectDispatcher) call(ctx context.Context, intent IntentKind, collaborator, op, target string, fn func(ctx context.Context) error) {
	start := d.cfg.Clock.Now()
	base := context.WithoutCancel(ctx)

	err := retry.Call(retry.CallArgs{
		Func: func() error {
			callCtx, cancel := context.WithTimeout(base, d.cfg.Timeout)
			defer cancel()
			return fn(callCtx)
		},
		IsFatalError: func(err error) bool {
			return errors.Is(err, interfaces.ErrCollaboratorRejected)
		},
		NotifyFunc: func(err error, attempt int) {
			log.Printf("[dispatch] attempt failed intent=%s target=%s attempt=%d err=%v", intent, target, attempt, err)
		},
		Attempts: d.cfg.Attempts,
		Delay:    d.cfg.Delay,
		Clock:    d.cfg.Clock,
	})
	elapsed := d.cfg.Clock.Now().Sub(start)

	if err != nil {
		callErr := &ExternalCallError{Collaborator: collaborator, Operation: op, Target: target, Err: retry.LastError(err)}
		log.Printf("[dispatch] side effect failed intent=%s elapsed=%s err=%v", intent, elapsed, callErr)
		d.observe(intent, dispatchOutcomeFailure, elapsed)
		return
	}
	log.Printf("[dispatch] side effect done intent=%s target=%s elapsed=%s", intent, target, elapsed)
	d.observe(intent, dispatchOutcomeSuccess, elapsed)
}

func (d *SideEffectDispatcher) skip(intent IntentKind, reason string) {
	log.Printf("[dispatch] side effect skipped intent=%s reason=%q", intent, reason)
	d.observe(intent, dispatchOutcomeSkipped, 0)
}

func (d *SideEffectDispatcher) observe(intent IntentKind, outcome string, elapsed time.Duration) {
	if d.metrics == nil {
		return
	}
	d.metrics.ObserveDispatch(string(intent), outcome, elapsed)
}
