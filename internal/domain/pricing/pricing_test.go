package pricing

import (
	"errors"
	"testing"
	"time"
)

func TestDeliveredPrice(t *testing.T) {
	t.Run("exact fixed point breakdown", func(t *testing.T) {
		res, err := DeliveredPrice(2.50, 15.0, 0.25)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CostPerLb != 2.5000 || res.MarginAmount != 0.3750 || res.FreightPerLb != 0.2500 || res.Total != 3.1250 {
			t.Fatalf("unexpected breakdown: %+v", res)
		}
	})

	t.Run("margin below zero", func(t *testing.T) {
		for _, cost := range []float64{0, 1.0, 99.99} {
			if _, err := DeliveredPrice(cost, -5, 0.10); !errors.Is(err, ErrInvalidMargin) {
				t.Fatalf("cost=%v: expected ErrInvalidMargin, got %v", cost, err)
			}
		}
	})

	t.Run("margin above hundred", func(t *testing.T) {
		for _, freight := range []float64{0, 0.25, 3.5} {
			if _, err := DeliveredPrice(2.0, 150, freight); !errors.Is(err, ErrInvalidMargin) {
				t.Fatalf("freight=%v: expected ErrInvalidMargin, got %v", freight, err)
			}
		}
	})

	t.Run("margin bounds are inclusive", func(t *testing.T) {
		if _, err := DeliveredPrice(2.0, 0, 0.1); err != nil {
			t.Fatalf("margin 0 should be valid: %v", err)
		}
		if _, err := DeliveredPrice(2.0, 100, 0.1); err != nil {
			t.Fatalf("margin 100 should be valid: %v", err)
		}
	})

	t.Run("rounds every step to four decimals", func(t *testing.T) {
		res, err := DeliveredPrice(1.23456, 10.0, 0.98765)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CostPerLb != 1.2346 || res.MarginAmount != 0.1235 || res.FreightPerLb != 0.9877 {
			t.Fatalf("unexpected rounding: %+v", res)
		}
		if res.Total != Round4(1.2346+0.1235+0.9877) {
			t.Fatalf("total not assembled from rounded parts: %+v", res)
		}
	})
}

func TestEstimateReefer(t *testing.T) {
	jan15 := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	jun15 := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("small quote hits the minimum charge floor", func(t *testing.T) {
		// 50 * 2.25 * 1.0 * 1.0 = 112.50, below the 350 floor.
		est, err := EstimateReefer(50, "GA", jan15)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.Estimate != 350.00 {
			t.Fatalf("expected floor 350.00, got %v", est.Estimate)
		}
		if !est.Factors.FloorApplied {
			t.Fatalf("expected floor flag in factors: %+v", est.Factors)
		}
		if est.RangeLow != 297.50 || est.RangeHigh != 402.50 {
			t.Fatalf("unexpected range: %+v", est)
		}
	})

	t.Run("large quote is unfloored", func(t *testing.T) {
		est, err := EstimateReefer(200, "PA", jun15)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Round2(200 * 2.25 * 1.04 * 1.12)
		if est.Estimate != want {
			t.Fatalf("expected %v, got %v", want, est.Estimate)
		}
		if est.Factors.FloorApplied {
			t.Fatalf("floor should not apply: %+v", est.Factors)
		}
		if est.Factors.OriginModifier != 1.04 || est.Factors.SeasonModifier != 1.12 {
			t.Fatalf("unexpected factors: %+v", est.Factors)
		}
	})

	t.Run("unknown state and off-season month modify by one", func(t *testing.T) {
		est, err := EstimateReefer(400, "ZZ", jan15)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.Factors.OriginModifier != 1.0 || est.Factors.SeasonModifier != 1.0 {
			t.Fatalf("unexpected factors: %+v", est.Factors)
		}
		if est.Estimate != 900.00 {
			t.Fatalf("expected 900.00, got %v", est.Estimate)
		}
	})

	t.Run("non positive dry quote", func(t *testing.T) {
		if _, err := EstimateReefer(0, "GA", jan15); !errors.Is(err, ErrInvalidDryQuote) {
			t.Fatalf("expected ErrInvalidDryQuote, got %v", err)
		}
	})
}

func TestPerPound(t *testing.T) {
	t.Run("divides and rounds", func(t *testing.T) {
		got, err := PerPound(525.50, 7500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0.0701 {
			t.Fatalf("expected 0.0701, got %v", got)
		}
	})

	t.Run("non positive weight", func(t *testing.T) {
		for _, w := range []float64{0, -5} {
			for _, total := range []float64{0, 100, 9999.99} {
				if _, err := PerPound(total, w); !errors.Is(err, ErrInvalidWeight) {
					t.Fatalf("weight=%v total=%v: expected ErrInvalidWeight, got %v", w, total, err)
				}
			}
		}
	})
}
