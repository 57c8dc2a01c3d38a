package usecase

import (
	"errors"
	"testing"

	"mecanica_projects/internal/domain/entities"
)

func TestAccessGuard_CanView(t *testing.T) {
	g := NewAccessGuard()

	cases := []struct {
		name  string
		actor entities.Actor
		owner string
		want  error
	}{
		{"admin sees all", entities.NewActor("adm", entities.RoleAdmin), "cust-1", nil},
		{"employee sees all", entities.NewActor("emp", entities.RoleEmployee), "cust-1", nil},
		{"owner", entities.NewActor("cust-1", entities.RoleCustomer), "cust-1", nil},
		{"other customer", entities.NewActor("cust-2", entities.RoleCustomer), "cust-1", ErrProjectNotFound},
		{"no roles", entities.NewActor("x"), "cust-1", ErrUnauthorizedAccess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.CanView(tc.actor, tc.owner, ErrProjectNotFound)
			if tc.want == nil && err != nil {
				t.Fatalf("expected nil, got %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAccessGuard_CanAct(t *testing.T) {
	g := NewAccessGuard()
	admin := entities.NewActor("adm", entities.RoleAdmin)
	employee := entities.NewActor("emp", entities.RoleEmployee)
	owner := entities.NewActor("cust-1", entities.RoleCustomer)
	stranger := entities.NewActor("cust-2", entities.RoleCustomer)

	t.Run("admin only actions", func(t *testing.T) {
		if err := g.CanAct(admin, ActionApproveProject, ""); err != nil {
			t.Fatalf("expected admin allowed, got %v", err)
		}
		if err := g.CanAct(employee, ActionApproveProject, ""); !errors.Is(err, ErrUnauthorizedAccess) {
			t.Fatalf("expected ErrUnauthorizedAccess, got %v", err)
		}
		if err := g.CanAct(employee, ActionRejectProject, ""); !errors.Is(err, ErrUnauthorizedAccess) {
			t.Fatalf("expected ErrUnauthorizedAccess, got %v", err)
		}
	})

	t.Run("staff actions", func(t *testing.T) {
		for _, a := range []Action{ActionSubmitQuote, ActionUpdateProgress, ActionCreateService, ActionUpdateService, ActionCompleteService, ActionAddNote, ActionUploadPhotos} {
			if err := g.CanAct(employee, a, ""); err != nil {
				t.Fatalf("%s: expected employee allowed, got %v", a, err)
			}
			if err := g.CanAct(owner, a, "cust-1"); !errors.Is(err, ErrUnauthorizedAccess) {
				t.Fatalf("%s: expected ErrUnauthorizedAccess for customer, got %v", a, err)
			}
		}
	})

	t.Run("customer scoped actions", func(t *testing.T) {
		if err := g.CanAct(owner, ActionAcceptQuote, "cust-1"); err != nil {
			t.Fatalf("expected owner allowed, got %v", err)
		}
		err := g.CanAct(stranger, ActionAcceptQuote, "cust-1")
		if !errors.Is(err, ErrInvalidOperation) {
			t.Fatalf("expected ErrInvalidOperation, got %v", err)
		}
		if err.Error() != "invalid operation: you don't have permission to accept this quote" {
			t.Fatalf("unexpected message: %v", err)
		}
		if err := g.CanAct(admin, ActionAcceptQuote, "cust-1"); !errors.Is(err, ErrUnauthorizedAccess) {
			t.Fatalf("expected ErrUnauthorizedAccess for admin, got %v", err)
		}
	})

	t.Run("role parsed from header", func(t *testing.T) {
		// "CUSTOMER_ADMIN" must not grant ADMIN.
		actor := entities.Actor{ID: "x", Roles: entities.ParseRoleSet("CUSTOMER_ADMIN")}
		if err := g.CanAct(actor, ActionApproveProject, ""); !errors.Is(err, ErrUnauthorizedAccess) {
			t.Fatalf("expected ErrUnauthorizedAccess, got %v", err)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		if err := g.CanAct(admin, Action("drop_tables"), ""); !errors.Is(err, ErrUnauthorizedAccess) {
			t.Fatalf("expected ErrUnauthorizedAccess, got %v", err)
		}
	})
}
