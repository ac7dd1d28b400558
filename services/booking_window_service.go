package services

import (
	"time"

	"github.com/mwangiherbert/travel_marketplace/models"
)

// NeedsEndDateTime reports whether booking this service collects an explicit
// end date and time. Accommodations and car rentals always do, as does any
// service priced per night, day or hour. Everything else is booked as a
// single start instant with an implied one-hour duration.
func NeedsEndDateTime(serviceType models.ServiceType, unit models.PricingUnit) bool {
	switch serviceType {
	case models.ServiceTypeAccommodation, models.ServiceTypeCarRental:
		return true
	}
	switch unit {
	case models.PricingPerNight, models.PricingPerDay, models.PricingPerHour:
		return true
	}
	return false
}

// LookaheadEnd returns the end of the availability span to fetch for a chosen
// start date: seven days out for date-ranged services, the same day otherwise.
func LookaheadEnd(startDate time.Time, needsEnd bool) time.Time {
	startDate = StartOfDay(startDate)
	if needsEnd {
		return startDate.AddDate(0, 0, 7)
	}
	return startDate
}

// MinEndDate is the earliest selectable end date. Accommodations require at
// least one night regardless of availability data.
func MinEndDate(startDate time.Time, serviceType models.ServiceType) time.Time {
	startDate = StartOfDay(startDate)
	if serviceType == models.ServiceTypeAccommodation {
		return startDate.AddDate(0, 0, 1)
	}
	return startDate
}

// ImpliedEnd is the end instant of a booking that collects no end time.
func ImpliedEnd(start time.Time) time.Time {
	return start.Add(time.Hour)
}

// windowCoversDate mirrors the per-date window filter: a window counts for a
// date when the date is the window's start day, or lies strictly between the
// window's start and end.
func windowCoversDate(date time.Time, w models.Availability) bool {
	if !w.IsAvailable {
		return false
	}
	return sameDay(date, w.StartDateTime) ||
		(date.After(w.StartDateTime) && date.Before(w.EndDateTime))
}

// instantAllowed applies the boundary-exclusive containment rule: the instant
// must fall strictly inside an available window covering its date. Both ends
// are exclusive, so a window's exact start and end instants are never
// offered.
func instantAllowed(date, at time.Time, windows []models.Availability) bool {
	for _, w := range windows {
		if !windowCoversDate(date, w) {
			continue
		}
		if at.After(w.StartDateTime) && at.Before(w.EndDateTime) {
			return true
		}
	}
	return false
}

// AvailableStartTimes returns the slot labels legal as a booking start on the
// given date.
func AvailableStartTimes(startDate time.Time, windows []models.Availability) []string {
	startDate = StartOfDay(startDate)

	var out []string
	for i, slot := range TimeSlots {
		at := startDate.Add(time.Duration(i) * time.Hour)
		if instantAllowed(startDate, at, windows) {
			out = append(out, slot)
		}
	}
	return out
}

// AvailableEndTimes returns the slot labels legal as a booking end on endDate
// for a booking starting at startDate/startTime. For same-day bookings every
// slot at or before the start slot is excluded; the comparison is on the
// zero-padded "HH:mm" labels, which orders the same as the times themselves.
func AvailableEndTimes(startDate time.Time, startTime string, endDate time.Time, windows []models.Availability) []string {
	startDate = StartOfDay(startDate)
	endDate = StartOfDay(endDate)

	var out []string
	for i, slot := range TimeSlots {
		if sameDay(startDate, endDate) && startTime != "" && slot <= startTime {
			continue
		}
		at := endDate.Add(time.Duration(i) * time.Hour)
		if instantAllowed(endDate, at, windows) {
			out = append(out, slot)
		}
	}
	return out
}

// StartAllowed reports whether a concrete start instant is bookable.
func StartAllowed(start time.Time, windows []models.Availability) bool {
	return instantAllowed(StartOfDay(start), start, windows)
}

// EndAllowed reports whether a concrete end instant is bookable for a booking
// beginning at start.
func EndAllowed(start, end time.Time, windows []models.Availability) bool {
	if !end.After(start) {
		return false
	}
	return instantAllowed(StartOfDay(end), end, windows)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
