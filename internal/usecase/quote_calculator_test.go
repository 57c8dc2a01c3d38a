package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestQuoteCalculator_Calculate(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("default estimated days", func(t *testing.T) {
		q := QuoteCalculator{}.Calculate("p-1", decimal.RequireFromString("5500"), 0, "", "emp-1", now)
		if !q.LaborCost.Equal(decimal.RequireFromString("3300")) {
			t.Fatalf("expected labor 3300, got %s", q.LaborCost)
		}
		if !q.PartsCost.Equal(decimal.RequireFromString("2200")) {
			t.Fatalf("expected parts 2200, got %s", q.PartsCost)
		}
		if !q.TotalCost.Equal(decimal.RequireFromString("5500")) {
			t.Fatalf("expected total 5500, got %s", q.TotalCost)
		}
		if q.EstimatedDays != DefaultEstimatedDays {
			t.Fatalf("expected %d days, got %d", DefaultEstimatedDays, q.EstimatedDays)
		}
		if q.ID == "" || q.ProjectID != "p-1" || q.SubmittedBy != "emp-1" || !q.SubmittedAt.Equal(now) {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("explicit estimated days", func(t *testing.T) {
		q := QuoteCalculator{}.Calculate("p-1", decimal.RequireFromString("100"), 3, "paint", "emp-1", now)
		if q.EstimatedDays != 3 || q.Breakdown != "paint" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("split is exact on cents", func(t *testing.T) {
		q := QuoteCalculator{}.Calculate("p-1", decimal.RequireFromString("0.10"), 0, "", "emp-1", now)
		if !q.LaborCost.Add(q.PartsCost).Equal(q.TotalCost) {
			t.Fatalf("labor %s + parts %s != total %s", q.LaborCost, q.PartsCost, q.TotalCost)
		}
		if !q.LaborCost.Equal(decimal.RequireFromString("0.06")) {
			t.Fatalf("expected labor 0.06, got %s", q.LaborCost)
		}
	})
}
