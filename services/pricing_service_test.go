package services

import (
	"testing"
	"time"

	"github.com/mwangiherbert/travel_marketplace/models"
)

func TestComputePriceBreakdown_PerNight(t *testing.T) {
	svc := models.Service{
		Price:       120,
		PricingUnit: models.PricingPerNight,
		CleaningFee: 30,
	}
	start := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 4, 11, 0, 0, 0, time.UTC)

	b, err := ComputePriceBreakdown(svc, start, end, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.UnitsLabel != "3 nights" {
		t.Fatalf("expected label '3 nights', got %q", b.UnitsLabel)
	}
	if b.Subtotal != 360 {
		t.Fatalf("expected subtotal 360, got %v", b.Subtotal)
	}
	if b.ServiceFee != 36 {
		t.Fatalf("expected service fee 36, got %v", b.ServiceFee)
	}
	if b.Total != 426 {
		t.Fatalf("expected total 426, got %v", b.Total)
	}
}

func TestComputePriceBreakdown_PerNightSameDayFails(t *testing.T) {
	svc := models.Service{Price: 120, PricingUnit: models.PricingPerNight}
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 1, 17, 0, 0, 0, time.UTC)

	if _, err := ComputePriceBreakdown(svc, start, end, 1); err != ErrInvalidBookingSpan {
		t.Fatalf("expected ErrInvalidBookingSpan, got %v", err)
	}
}

func TestComputePriceBreakdown_PerHourRoundsUp(t *testing.T) {
	svc := models.Service{Price: 25, PricingUnit: models.PricingPerHour}
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2*time.Hour + 30*time.Minute)

	b, err := ComputePriceBreakdown(svc, start, end, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.UnitsLabel != "3 hours" {
		t.Fatalf("expected label '3 hours', got %q", b.UnitsLabel)
	}
	if b.Subtotal != 75 {
		t.Fatalf("expected subtotal 75, got %v", b.Subtotal)
	}
}

func TestComputePriceBreakdown_PerPerson(t *testing.T) {
	svc := models.Service{Price: 40, PricingUnit: models.PricingPerPerson}
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	b, err := ComputePriceBreakdown(svc, start, start.Add(time.Hour), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.UnitsLabel != "3 people" {
		t.Fatalf("expected label '3 people', got %q", b.UnitsLabel)
	}
	if b.Subtotal != 120 {
		t.Fatalf("expected subtotal 120, got %v", b.Subtotal)
	}
}

func TestComputePriceBreakdown_GuestCountClamped(t *testing.T) {
	svc := models.Service{Price: 40, PricingUnit: models.PricingPerPerson}
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	b, err := ComputePriceBreakdown(svc, start, start.Add(time.Hour), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Subtotal != 40 {
		t.Fatalf("expected subtotal for one person, got %v", b.Subtotal)
	}
	if b.UnitsLabel != "1 person" {
		t.Fatalf("expected label '1 person', got %q", b.UnitsLabel)
	}
}

func TestComputePriceBreakdown_FixedPrice(t *testing.T) {
	svc := models.Service{Price: 99.99, PricingUnit: models.PricingFixedPrice, CleaningFee: 0}
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	b, err := ComputePriceBreakdown(svc, start, start.Add(time.Hour), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Subtotal != 99.99 {
		t.Fatalf("expected subtotal 99.99, got %v", b.Subtotal)
	}
	if b.ServiceFee != 10 {
		t.Fatalf("expected service fee 10.00, got %v", b.ServiceFee)
	}
	if b.Total != 109.99 {
		t.Fatalf("expected total 109.99, got %v", b.Total)
	}
}
