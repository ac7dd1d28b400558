package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mwangiherbert/travel_marketplace/models"
)

// TimeSlots is the fixed hourly grid a day is edited and displayed against.
var TimeSlots = []string{
	"00:00", "01:00", "02:00", "03:00", "04:00", "05:00",
	"06:00", "07:00", "08:00", "09:00", "10:00", "11:00",
	"12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
	"18:00", "19:00", "20:00", "21:00", "22:00", "23:00",
}

// TimeRange is one maximal run of equally-flagged consecutive slots. End is
// exclusive; a range that reaches the last slot ends at the next day's
// "00:00".
type TimeRange struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	IsAvailable bool   `json:"is_available"`
}

// CompressDaySelection merges consecutive slots sharing the same flag into
// ranges. Slots missing from the selection count as unavailable. The result
// covers the whole day exactly once with the minimal number of ranges.
func CompressDaySelection(selected map[string]bool) []TimeRange {
	var ranges []TimeRange
	var current *TimeRange

	for i, slot := range TimeSlots {
		isAvailable := selected[slot]

		next := "00:00"
		if i < len(TimeSlots)-1 {
			next = TimeSlots[i+1]
		}

		if current == nil || current.IsAvailable != isAvailable {
			if current != nil {
				ranges = append(ranges, *current)
			}
			current = &TimeRange{Start: slot, End: next, IsAvailable: isAvailable}
		} else {
			current.End = next
		}
	}

	if current != nil {
		ranges = append(ranges, *current)
	}
	return ranges
}

// Window converts a range into concrete instants on the given day. An end of
// "00:00" means midnight of the following day.
func (r TimeRange) Window(day time.Time) (time.Time, time.Time) {
	day = StartOfDay(day)
	start := day.Add(time.Duration(slotHour(r.Start)) * time.Hour)

	endHour := slotHour(r.End)
	end := day.Add(time.Duration(endHour) * time.Hour)
	if endHour == 0 {
		end = day.AddDate(0, 0, 1)
	}
	return start, end
}

// RangeWindows turns compressed ranges into availability rows for a service,
// all carrying the day's shared note.
func RangeWindows(serviceID uuid.UUID, day time.Time, ranges []TimeRange, notes string) []models.Availability {
	windows := make([]models.Availability, 0, len(ranges))
	for _, r := range ranges {
		start, end := r.Window(day)
		w := models.Availability{
			ServiceID:     serviceID,
			StartDateTime: start,
			EndDateTime:   end,
			IsAvailable:   r.IsAvailable,
		}
		if notes != "" {
			n := notes
			w.Notes = &n
		}
		windows = append(windows, w)
	}
	return windows
}

// ExpandWindows hydrates the 24-slot grid for one day from stored windows.
// Every slot defaults to available; each window then overlays its flag onto
// the slots whose start falls within [StartDateTime, EndDateTime). Windows
// are applied in ascending updated_at order, so where windows overlap the
// most recently updated one wins. Returns the grid and the day's note, taken
// from the first window of the ordered list.
func ExpandWindows(day time.Time, windows []models.Availability) (map[string]bool, string) {
	day = StartOfDay(day)

	grid := make(map[string]bool, len(TimeSlots))
	for _, slot := range TimeSlots {
		grid[slot] = true
	}

	ordered := make([]models.Availability, len(windows))
	copy(ordered, windows)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].UpdatedAt.Before(ordered[j].UpdatedAt)
	})

	for _, w := range ordered {
		for i, slot := range TimeSlots {
			slotStart := day.Add(time.Duration(i) * time.Hour)
			if !slotStart.Before(w.StartDateTime) && slotStart.Before(w.EndDateTime) {
				grid[slot] = w.IsAvailable
			}
		}
	}

	notes := ""
	if len(ordered) > 0 && ordered[0].Notes != nil {
		notes = *ordered[0].Notes
	}
	return grid, notes
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func slotHour(slot string) int {
	if len(slot) < 2 {
		return 0
	}
	return int(slot[0]-'0')*10 + int(slot[1]-'0')
}
