package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"
	mock_interfaces "mecanica_projects/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	repo     *mock_interfaces.MockIServiceRepository
	notes    *mock_interfaces.MockIServiceNoteRepository
	photos   *mock_interfaces.MockIServicePhotoRepository
	invoices *mock_interfaces.MockIInvoiceRepository
	uc       *ServiceUseCase
}

func newServiceFixture(ctrl *gomock.Controller) *serviceFixture {
	f := &serviceFixture{
		repo:     mock_interfaces.NewMockIServiceRepository(ctrl),
		notes:    mock_interfaces.NewMockIServiceNoteRepository(ctrl),
		photos:   mock_interfaces.NewMockIServicePhotoRepository(ctrl),
		invoices: mock_interfaces.NewMockIInvoiceRepository(ctrl),
	}
	f.uc = NewServiceUseCase(f.repo, f.notes, f.photos, f.invoices)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func newService(status entities.ServiceStatus) entities.StandardService {
	return entities.StandardService{
		ID:                  "svc-1",
		AppointmentID:       "APT-1",
		CustomerID:          "cust-1",
		AssignedEmployeeIDs: []string{"emp-1"},
		Status:              status,
		EstimatedCompletion: fixedNow.Add(2 * time.Hour),
		Version:             1,
	}
}

func TestServiceUseCase_CompleteService(t *testing.T) {
	t.Run("issues invoice with tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusCreated), nil)
		f.repo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.StandardService, notes []entities.ServiceNote, inv entities.Invoice) (entities.StandardService, error) {
				if s.Status != entities.ServiceStatusCompleted || s.Progress != 100 || s.Version != 1 {
					t.Fatalf("unexpected service: %+v", s)
				}
				if len(notes) != 1 || !notes[0].CustomerVisible || notes[0].EmployeeID != "emp-1" || notes[0].ServiceID != "svc-1" {
					t.Fatalf("unexpected notes: %+v", notes)
				}
				if inv.ServiceID != "svc-1" || inv.CustomerID != "cust-1" {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				s.Version++
				return s, nil
			},
		)

		inv, err := f.uc.CompleteService(context.Background(), employeeActor, "svc-1", CompleteServiceCommand{ActualCost: decimal.RequireFromString("150.00")})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !inv.Subtotal.Equal(decimal.RequireFromString("150.00")) ||
			!inv.TaxAmount.Equal(decimal.RequireFromString("22.50")) ||
			!inv.TotalAmount.Equal(decimal.RequireFromString("172.50")) {
			t.Fatalf("unexpected totals: %s %s %s", inv.Subtotal, inv.TaxAmount, inv.TotalAmount)
		}
		if inv.Status != entities.InvoiceStatusPending || inv.InvoiceNumber != "INV-20260301100000" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})

	t.Run("completing twice issues two invoices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		svc := newService(entities.ServiceStatusInProgress)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").DoAndReturn(
			func(context.Context, string) (entities.StandardService, error) { return svc, nil },
		).Times(2)

		var issued []entities.Invoice
		f.repo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.StandardService, _ []entities.ServiceNote, inv entities.Invoice) (entities.StandardService, error) {
				issued = append(issued, inv)
				s.Version++
				svc = s
				return s, nil
			},
		).Times(2)

		cmd := CompleteServiceCommand{ActualCost: decimal.NewFromInt(100)}
		first, err := f.uc.CompleteService(context.Background(), employeeActor, "svc-1", cmd)
		if err != nil {
			t.Fatalf("first completion: %v", err)
		}
		second, err := f.uc.CompleteService(context.Background(), employeeActor, "svc-1", cmd)
		if err != nil {
			t.Fatalf("second completion: %v", err)
		}
		if len(issued) != 2 || first.ID == second.ID {
			t.Fatalf("expected two distinct invoices, got %d", len(issued))
		}
	})

	t.Run("regenerates colliding invoice number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusCreated), nil)
		gomock.InOrder(
			f.repo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.StandardService{}, interfaces.ErrDuplicateInvoiceNumber),
			f.repo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, s entities.StandardService, _ []entities.ServiceNote, inv entities.Invoice) (entities.StandardService, error) {
					return s, nil
				},
			),
		)

		inv, err := f.uc.CompleteService(context.Background(), employeeActor, "svc-1", CompleteServiceCommand{ActualCost: decimal.NewFromInt(10)})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if inv.InvoiceNumber != "INV-20260301100000-2" {
			t.Fatalf("expected regenerated number, got %s", inv.InvoiceNumber)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusCreated), nil)
		f.repo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.StandardService{}, interfaces.ErrDuplicateInvoiceNumber).Times(MaxInvoiceNumberAttempts)

		_, err := f.uc.CompleteService(context.Background(), employeeActor, "svc-1", CompleteServiceCommand{ActualCost: decimal.NewFromInt(10)})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusCreated), nil)
		f.repo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.StandardService{}, interfaces.ErrVersionConflict)

		_, err := f.uc.CompleteService(context.Background(), employeeActor, "svc-1", CompleteServiceCommand{ActualCost: decimal.NewFromInt(10)})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("customer cannot complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)

		_, err := f.uc.CompleteService(context.Background(), ownerActor, "svc-1", CompleteServiceCommand{})
		if !errors.Is(err, ErrUnauthorizedAccess) {
			t.Fatalf("expected ErrUnauthorizedAccess, got %v", err)
		}
	})
}

func TestServiceUseCase_UpdateService(t *testing.T) {
	t.Run("applies present fields and appends note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusCreated), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.StandardService, notes []entities.ServiceNote) (entities.StandardService, error) {
				if s.Status != entities.ServiceStatusCreated || s.Progress != 30 {
					t.Fatalf("unexpected service: %+v", s)
				}
				if !s.EstimatedCompletion.Equal(fixedNow.Add(2 * time.Hour)) {
					t.Fatalf("estimated completion changed: %s", s.EstimatedCompletion)
				}
				if len(notes) != 1 || notes[0].Note != "waiting for parts" || !notes[0].CustomerVisible {
					t.Fatalf("unexpected notes: %+v", notes)
				}
				return s, nil
			},
		)

		progress := 30
		_, err := f.uc.UpdateService(context.Background(), employeeActor, "svc-1", UpdateServiceCommand{Progress: &progress, Note: " waiting for parts "})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("status only writes no note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusCreated), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, s entities.StandardService, _ []entities.ServiceNote) (entities.StandardService, error) {
				return s, nil
			},
		)

		status := entities.ServiceStatusOnHold
		s, err := f.uc.UpdateService(context.Background(), employeeActor, "svc-1", UpdateServiceCommand{Status: &status})
		if err != nil || s.Status != entities.ServiceStatusOnHold {
			t.Fatalf("unexpected result: %+v err=%v", s, err)
		}
	})

	t.Run("invalid progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)

		progress := 120
		_, err := f.uc.UpdateService(context.Background(), employeeActor, "svc-1", UpdateServiceCommand{Progress: &progress})
		if !errors.Is(err, ErrInvalidProgress) {
			t.Fatalf("expected ErrInvalidProgress, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-9").Return(entities.StandardService{}, nil)

		_, err := f.uc.UpdateService(context.Background(), employeeActor, "svc-9", UpdateServiceCommand{})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestServiceUseCase_CreateService(t *testing.T) {
	t.Run("derives estimated completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.StandardService{})).DoAndReturn(
			func(_ context.Context, s entities.StandardService) (entities.StandardService, error) {
				if !s.EstimatedCompletion.Equal(fixedNow.Add(2 * time.Hour)) {
					t.Fatalf("unexpected estimated completion: %s", s.EstimatedCompletion)
				}
				if s.Status != entities.ServiceStatusCreated || s.Version != 1 || len(s.AssignedEmployeeIDs) != 1 || s.AssignedEmployeeIDs[0] != "emp-1" {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		_, err := f.uc.CreateService(context.Background(), employeeActor, NewServiceCommand{AppointmentID: "APT-1", CustomerID: "cust-1", EstimatedHours: 2})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("duplicated appointment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.StandardService{}, interfaces.ErrDuplicateAppointment)

		_, err := f.uc.CreateService(context.Background(), employeeActor, NewServiceCommand{
			AppointmentID: "APT-1", CustomerID: "cust-1", AssignedEmployeeIDs: []string{"emp-2", "emp-2", " "},
		})
		if !errors.Is(err, ErrServiceDuplicated) || !errors.Is(err, ErrInvalidOperation) {
			t.Fatalf("expected ErrServiceDuplicated, got %v", err)
		}
	})

	t.Run("missing appointment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)

		_, err := f.uc.CreateService(context.Background(), adminActor, NewServiceCommand{CustomerID: "cust-1"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestServiceUseCase_Reads(t *testing.T) {
	t.Run("list filters by status and ignores unknown filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		all := []entities.StandardService{
			{ID: "a", Status: entities.ServiceStatusCreated},
			{ID: "b", Status: entities.ServiceStatusCompleted},
		}
		f.repo.EXPECT().ListAll(gomock.Any()).Return(all, nil).Times(2)

		got, err := f.uc.ListServices(context.Background(), adminActor, "completed")
		if err != nil || len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("unexpected filtered list: %+v err=%v", got, err)
		}
		got, err = f.uc.ListServices(context.Background(), adminActor, "BOGUS")
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected unfiltered list: %+v err=%v", got, err)
		}
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusCreated), nil)

		_, err := f.uc.GetService(context.Background(), strangerActor, "svc-1")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("customer only sees visible notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusCreated), nil).Times(2)
		f.notes.EXPECT().ListByServiceID(gomock.Any(), "svc-1", true).Return(nil, nil)
		f.notes.EXPECT().ListByServiceID(gomock.Any(), "svc-1", false).Return(nil, nil)

		if _, err := f.uc.ListNotes(context.Background(), ownerActor, "svc-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, err := f.uc.ListNotes(context.Background(), employeeActor, "svc-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("latest invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusCompleted), nil)
		f.invoices.EXPECT().ListByServiceID(gomock.Any(), "svc-1").Return([]entities.Invoice{
			{ID: "old", CreatedAt: fixedNow.Add(-time.Hour)},
			{ID: "new", CreatedAt: fixedNow},
		}, nil)

		inv, err := f.uc.GetServiceInvoice(context.Background(), ownerActor, "svc-1")
		if err != nil || inv.ID != "new" {
			t.Fatalf("unexpected invoice: %+v err=%v", inv, err)
		}
	})

	t.Run("no invoice yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusCreated), nil)
		f.invoices.EXPECT().ListByServiceID(gomock.Any(), "svc-1").Return(nil, nil)

		_, err := f.uc.GetServiceInvoice(context.Background(), adminActor, "svc-1")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestServiceUseCase_NotesAndPhotos(t *testing.T) {
	t.Run("add internal note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusInProgress), nil)
		f.notes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.ServiceNote) (entities.ServiceNote, error) {
				if n.CustomerVisible || n.Note != "torque check" || n.EmployeeID != "emp-1" {
					t.Fatalf("unexpected note: %+v", n)
				}
				return n, nil
			},
		)

		if _, err := f.uc.AddNote(context.Background(), employeeActor, "svc-1", NewNoteCommand{Note: "torque check"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("empty note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)

		_, err := f.uc.AddNote(context.Background(), employeeActor, "svc-1", NewNoteCommand{Note: "  "})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("upload photos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)
		f.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(newService(entities.ServiceStatusInProgress), nil)
		f.photos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ServicePhoto) (entities.ServicePhoto, error) {
				if p.ServiceID != "svc-1" || !strings.HasPrefix(p.PhotoURL, "s3://") {
					t.Fatalf("unexpected photo: %+v", p)
				}
				return p, nil
			},
		).Times(2)

		out, err := f.uc.UploadPhotos(context.Background(), employeeActor, "svc-1", []PhotoUpload{
			{FileName: "a.jpg", PhotoURL: "s3://bucket/a.jpg"},
			{FileName: "b.jpg", PhotoURL: "s3://bucket/b.jpg", Description: "rear"},
		})
		if err != nil || len(out) != 2 {
			t.Fatalf("unexpected result: %+v err=%v", out, err)
		}
	})

	t.Run("photo without url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServiceFixture(ctrl)

		_, err := f.uc.UploadPhotos(context.Background(), employeeActor, "svc-1", []PhotoUpload{{FileName: "a.jpg"}})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
