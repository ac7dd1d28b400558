package services

import (
	"testing"
	"time"

	"github.com/mwangiherbert/travel_marketplace/models"
)

func openWindow(day time.Time, fromHour, toHour int) models.Availability {
	return models.Availability{
		StartDateTime: day.Add(time.Duration(fromHour) * time.Hour),
		EndDateTime:   day.Add(time.Duration(toHour) * time.Hour),
		IsAvailable:   true,
	}
}

func TestNeedsEndDateTime(t *testing.T) {
	cases := []struct {
		serviceType models.ServiceType
		unit        models.PricingUnit
		want        bool
	}{
		{models.ServiceTypeAccommodation, models.PricingFixedPrice, true},
		{models.ServiceTypeCarRental, models.PricingPerPerson, true},
		{models.ServiceTypeTourGuide, models.PricingPerHour, true},
		{models.ServiceTypeActivity, models.PricingPerDay, true},
		{models.ServiceTypeLocalEvent, models.PricingPerPerson, false},
		{models.ServiceTypeFoodExperience, models.PricingFixedPrice, false},
	}
	for _, c := range cases {
		if got := NeedsEndDateTime(c.serviceType, c.unit); got != c.want {
			t.Fatalf("NeedsEndDateTime(%s, %s) = %v, want %v", c.serviceType, c.unit, got, c.want)
		}
	}
}

func TestAvailableStartTimes_BoundariesExcluded(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	windows := []models.Availability{openWindow(day, 9, 17)}

	starts := AvailableStartTimes(day, windows)
	want := []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
	if len(starts) != len(want) {
		t.Fatalf("expected %d start times, got %d: %v", len(want), len(starts), starts)
	}
	for i, slot := range want {
		if starts[i] != slot {
			t.Fatalf("start %d: expected %s, got %s", i, slot, starts[i])
		}
	}
}

func TestAvailableStartTimes_UnavailableWindowIgnored(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	blocked := openWindow(day, 9, 17)
	blocked.IsAvailable = false

	if starts := AvailableStartTimes(day, []models.Availability{blocked}); len(starts) != 0 {
		t.Fatalf("expected no start times, got %v", starts)
	}
}

func TestAvailableEndTimes_SameDayAfterStartOnly(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	windows := []models.Availability{openWindow(day, 9, 17)}

	ends := AvailableEndTimes(day, "14:00", day, windows)
	want := []string{"15:00", "16:00"}
	if len(ends) != len(want) {
		t.Fatalf("expected %d end times, got %d: %v", len(want), len(ends), ends)
	}
	for i, slot := range want {
		if ends[i] != slot {
			t.Fatalf("end %d: expected %s, got %s", i, slot, ends[i])
		}
	}
}

func TestAvailableEndTimes_LaterDayIgnoresStartTime(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)
	windows := []models.Availability{openWindow(nextDay, 9, 12)}

	ends := AvailableEndTimes(day, "14:00", nextDay, windows)
	want := []string{"10:00", "11:00"}
	if len(ends) != len(want) {
		t.Fatalf("expected %d end times, got %d: %v", len(want), len(ends), ends)
	}
}

func TestAvailableEndTimes_MultiDayWindow(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)
	// One window spanning from day 09:00 to the day after at 18:00.
	w := models.Availability{
		StartDateTime: day.Add(9 * time.Hour),
		EndDateTime:   nextDay.Add(18 * time.Hour),
		IsAvailable:   true,
	}

	ends := AvailableEndTimes(day, "14:00", nextDay, []models.Availability{w})
	if len(ends) == 0 {
		t.Fatal("expected end times on the following day")
	}
	if ends[0] != "00:00" {
		t.Fatalf("expected first end 00:00, got %s", ends[0])
	}
	last := ends[len(ends)-1]
	if last != "17:00" {
		t.Fatalf("expected last end 17:00, got %s", last)
	}
}

func TestStartAndEndAllowed(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	windows := []models.Availability{openWindow(day, 9, 17)}

	if StartAllowed(day.Add(9*time.Hour), windows) {
		t.Fatal("window start boundary must not be bookable")
	}
	if !StartAllowed(day.Add(10*time.Hour), windows) {
		t.Fatal("10:00 should be bookable")
	}
	if StartAllowed(day.Add(17*time.Hour), windows) {
		t.Fatal("window end boundary must not be bookable")
	}

	start := day.Add(10 * time.Hour)
	if !EndAllowed(start, day.Add(12*time.Hour), windows) {
		t.Fatal("12:00 should be a legal end")
	}
	if EndAllowed(start, start, windows) {
		t.Fatal("end must be after start")
	}
	if EndAllowed(start, day.Add(17*time.Hour), windows) {
		t.Fatal("window end boundary must not be a legal end")
	}
}

func TestMinEndDate_AccommodationRequiresOneNight(t *testing.T) {
	day := time.Date(2026, 4, 1, 13, 30, 0, 0, time.UTC)

	got := MinEndDate(day, models.ServiceTypeAccommodation)
	want := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	got = MinEndDate(day, models.ServiceTypeCarRental)
	want = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestLookaheadEnd(t *testing.T) {
	day := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	if got := LookaheadEnd(day, true); !got.Equal(time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected seven days out, got %s", got)
	}
	if got := LookaheadEnd(day, false); !got.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected same day, got %s", got)
	}
}

func TestImpliedEnd(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	if got := ImpliedEnd(start); !got.Equal(start.Add(time.Hour)) {
		t.Fatalf("expected one hour after start, got %s", got)
	}
}
