package request

import (
	"errors"
	"testing"
	"time"

	"mecanica_projects/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestProjectRequest_ToCommand(t *testing.T) {
	budget := decimal.RequireFromString("5000.00")
	r := ProjectRequest{VehicleID: " veh-1 ", ProjectType: "Body Kit", Description: " Full body kit install ", Budget: &budget}

	cmd := r.ToCommand()
	if cmd.VehicleID != "veh-1" || cmd.Description != "Full body kit install" {
		t.Fatalf("unexpected trimming: %+v", cmd)
	}
	if !cmd.Budget.Equal(budget) {
		t.Fatalf("expected budget 5000, got %s", cmd.Budget)
	}

	if got := (ProjectRequest{}).ToCommand(); !got.Budget.IsZero() {
		t.Fatalf("expected zero budget when absent, got %s", got.Budget)
	}
}

func TestQuoteRequest_ToCommand(t *testing.T) {
	amount := decimal.RequireFromString("2000")
	cmd := QuoteRequest{QuoteAmount: &amount, Notes: " labor heavy "}.ToCommand()
	if !cmd.Amount.Equal(amount) || cmd.Notes != "labor heavy" || cmd.EstimatedDays != 0 {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestUpdateServiceRequest_ToCommand(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		status := "in_progress"
		progress := 40
		eta := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
		cmd, err := UpdateServiceRequest{Status: &status, Progress: &progress, EstimatedCompletion: &eta, Notes: "waiting parts"}.ToCommand()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.Status == nil || *cmd.Status != entities.ServiceStatusInProgress {
			t.Fatalf("unexpected status: %v", cmd.Status)
		}
		if *cmd.Progress != 40 || !cmd.EstimatedCompletion.Equal(eta) || cmd.Note != "waiting parts" {
			t.Fatalf("unexpected command: %+v", cmd)
		}
	})

	t.Run("absent fields stay nil", func(t *testing.T) {
		cmd, err := UpdateServiceRequest{}.ToCommand()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.Status != nil || cmd.Progress != nil || cmd.EstimatedCompletion != nil {
			t.Fatalf("expected empty command, got %+v", cmd)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		status := "done"
		_, err := UpdateServiceRequest{Status: &status}.ToCommand()
		if !errors.Is(err, ErrInvalidServiceStatus) {
			t.Fatalf("expected ErrInvalidServiceStatus, got %v", err)
		}
	})
}

func TestCompletionRequest_ToCommand(t *testing.T) {
	cost := decimal.RequireFromString("100")
	fixed := decimal.RequireFromString("30")
	r := CompletionRequest{
		FinalNotes: " all good ",
		ActualCost: &cost,
		AdditionalCharges: []ChargeRequest{
			{Description: "Oil", Quantity: 2, UnitPrice: decimal.RequireFromString("10")},
			{Description: "Disposal", UnitPrice: decimal.RequireFromString("5"), Amount: &fixed},
		},
	}

	cmd := r.ToCommand()
	if !cmd.ActualCost.Equal(cost) || cmd.CompletionNotes != "all good" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if len(cmd.AdditionalCharges) != 2 {
		t.Fatalf("expected 2 charges, got %d", len(cmd.AdditionalCharges))
	}
	if !cmd.AdditionalCharges[0].Amount.Equal(decimal.RequireFromString("20")) {
		t.Fatalf("expected derived amount 20, got %s", cmd.AdditionalCharges[0].Amount)
	}
	if cmd.AdditionalCharges[1].Quantity != 1 || !cmd.AdditionalCharges[1].Amount.Equal(fixed) {
		t.Fatalf("unexpected second charge: %+v", cmd.AdditionalCharges[1])
	}
}

func TestNoteRequest_ToCommand(t *testing.T) {
	yes, no := true, false
	cases := []struct {
		name string
		req  NoteRequest
		want bool
	}{
		{name: "default internal", req: NoteRequest{Note: "x"}, want: false},
		{name: "customer visible", req: NoteRequest{Note: "x", CustomerVisible: &yes}, want: true},
		{name: "not internal", req: NoteRequest{Note: "x", IsInternal: &no}, want: true},
		{name: "customer_visible wins", req: NoteRequest{Note: "x", CustomerVisible: &no, IsInternal: &no}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.ToCommand().CustomerVisible; got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestUploadedPhotoURL(t *testing.T) {
	if got := UploadedPhotoURL("svc-1", "front bumper.jpg"); got != "/uploads/service-photos/svc-1/front%20bumper.jpg" {
		t.Fatalf("unexpected url %q", got)
	}
}
