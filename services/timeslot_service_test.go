package services

import (
	"testing"
	"time"

	"github.com/mwangiherbert/travel_marketplace/models"
)

func fullDaySelection(available bool) map[string]bool {
	sel := make(map[string]bool, len(TimeSlots))
	for _, slot := range TimeSlots {
		sel[slot] = available
	}
	return sel
}

func TestCompressDaySelection_AllAvailable(t *testing.T) {
	ranges := CompressDaySelection(fullDaySelection(true))
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	r := ranges[0]
	if r.Start != "00:00" || r.End != "00:00" || !r.IsAvailable {
		t.Fatalf("expected 00:00-00:00 available, got %+v", r)
	}
}

func TestCompressDaySelection_EmptySelectionIsUnavailable(t *testing.T) {
	ranges := CompressDaySelection(map[string]bool{})
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	if ranges[0].IsAvailable {
		t.Fatal("missing slots must compress as unavailable")
	}
}

func TestCompressDaySelection_MixedRuns(t *testing.T) {
	sel := fullDaySelection(false)
	for _, slot := range []string{"09:00", "10:00", "11:00"} {
		sel[slot] = true
	}
	for _, slot := range []string{"14:00", "15:00"} {
		sel[slot] = true
	}

	ranges := CompressDaySelection(sel)
	if len(ranges) != 5 {
		t.Fatalf("expected 5 ranges, got %d: %+v", len(ranges), ranges)
	}

	want := []TimeRange{
		{Start: "00:00", End: "09:00", IsAvailable: false},
		{Start: "09:00", End: "12:00", IsAvailable: true},
		{Start: "12:00", End: "14:00", IsAvailable: false},
		{Start: "14:00", End: "16:00", IsAvailable: true},
		{Start: "16:00", End: "00:00", IsAvailable: false},
	}
	for i, w := range want {
		if ranges[i] != w {
			t.Fatalf("range %d: expected %+v, got %+v", i, w, ranges[i])
		}
	}
}

func TestTimeRangeWindow_MidnightEnd(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	r := TimeRange{Start: "22:00", End: "00:00", IsAvailable: true}

	start, end := r.Window(day)
	if !start.Equal(day.Add(22 * time.Hour)) {
		t.Fatalf("expected start 22:00, got %s", start.Format(time.RFC3339))
	}
	if !end.Equal(day.AddDate(0, 0, 1)) {
		t.Fatalf("expected end at next midnight, got %s", end.Format(time.RFC3339))
	}
}

func TestExpandWindows_DefaultsAvailable(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	grid, notes := ExpandWindows(day, nil)
	if notes != "" {
		t.Fatalf("expected empty notes, got %q", notes)
	}
	for _, slot := range TimeSlots {
		if !grid[slot] {
			t.Fatalf("slot %s should default to available", slot)
		}
	}
}

func TestExpandWindows_OverlaysStoredFlags(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	windows := []models.Availability{
		{
			StartDateTime: day.Add(9 * time.Hour),
			EndDateTime:   day.Add(12 * time.Hour),
			IsAvailable:   true,
		},
		{
			StartDateTime: day.Add(12 * time.Hour),
			EndDateTime:   day.Add(17 * time.Hour),
			IsAvailable:   false,
		},
	}

	grid, _ := ExpandWindows(day, windows)
	for _, slot := range []string{"09:00", "10:00", "11:00"} {
		if !grid[slot] {
			t.Fatalf("slot %s should be available", slot)
		}
	}
	for _, slot := range []string{"12:00", "13:00", "14:00", "15:00", "16:00"} {
		if grid[slot] {
			t.Fatalf("slot %s should be unavailable", slot)
		}
	}
	// 17:00 is the exclusive end of the blocked window.
	if !grid["17:00"] {
		t.Fatal("slot 17:00 should keep the default availability")
	}
}

func TestExpandWindows_MostRecentUpdateWins(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	blocked := models.Availability{
		StartDateTime: day.Add(9 * time.Hour),
		EndDateTime:   day.Add(12 * time.Hour),
		IsAvailable:   false,
		UpdatedAt:     newer,
	}
	open := models.Availability{
		StartDateTime: day.Add(9 * time.Hour),
		EndDateTime:   day.Add(12 * time.Hour),
		IsAvailable:   true,
		UpdatedAt:     older,
	}

	grid, _ := ExpandWindows(day, []models.Availability{blocked, open})
	if grid["10:00"] {
		t.Fatal("newer window should win regardless of input order")
	}

	grid, _ = ExpandWindows(day, []models.Availability{open, blocked})
	if grid["10:00"] {
		t.Fatal("newer window should win regardless of input order")
	}
}

func TestCompressExpandRoundTrip(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	sel := fullDaySelection(true)
	sel["00:00"] = false
	sel["01:00"] = false
	sel["13:00"] = false
	sel["23:00"] = false

	ranges := CompressDaySelection(sel)
	var windows []models.Availability
	for i, r := range ranges {
		start, end := r.Window(day)
		windows = append(windows, models.Availability{
			StartDateTime: start,
			EndDateTime:   end,
			IsAvailable:   r.IsAvailable,
			UpdatedAt:     day.Add(time.Duration(i) * time.Second),
		})
	}

	grid, _ := ExpandWindows(day, windows)
	for _, slot := range TimeSlots {
		if grid[slot] != sel[slot] {
			t.Fatalf("slot %s: expected %v after round trip, got %v", slot, sel[slot], grid[slot])
		}
	}
}
