package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mwangiherbert/travel_marketplace/models"
)

const serviceFeeRate = 0.10

type PriceBreakdown struct {
	UnitsLabel  string  `json:"units_label"`
	Subtotal    float64 `json:"subtotal"`
	CleaningFee float64 `json:"cleaning_fee"`
	ServiceFee  float64 `json:"service_fee"`
	Total       float64 `json:"total"`
}

var ErrInvalidBookingSpan = errors.New("end date must be after start date")

// ComputePriceBreakdown prices a booking window against a service. Nightly
// and daily units bill whole calendar days, hourly units bill elapsed hours
// rounded up, per-person units bill the guest count and fixed price ignores
// the span. A 10% service fee and the listing's cleaning fee are added on
// top of the subtotal.
func ComputePriceBreakdown(svc models.Service, start, end time.Time, guestCount int) (PriceBreakdown, error) {
	if guestCount < 1 {
		guestCount = 1
	}

	days := calendarDays(start, end)

	var subtotal float64
	var label string

	switch svc.PricingUnit {
	case models.PricingPerNight:
		if days < 1 {
			return PriceBreakdown{}, ErrInvalidBookingSpan
		}
		subtotal = svc.Price * float64(days)
		label = pluralize(days, "night")
	case models.PricingPerDay:
		if days < 1 {
			return PriceBreakdown{}, ErrInvalidBookingSpan
		}
		subtotal = svc.Price * float64(days)
		label = pluralize(days, "day")
	case models.PricingPerHour:
		hours := int(math.Ceil(end.Sub(start).Hours()))
		if hours < 1 {
			return PriceBreakdown{}, ErrInvalidBookingSpan
		}
		subtotal = svc.Price * float64(hours)
		label = pluralize(hours, "hour")
	case models.PricingPerPerson:
		subtotal = svc.Price * float64(guestCount)
		label = pluralize(guestCount, "person")
	case models.PricingFixedPrice:
		subtotal = svc.Price
		label = "fixed price"
	default:
		if days < 1 {
			return PriceBreakdown{}, ErrInvalidBookingSpan
		}
		subtotal = svc.Price * float64(days)
		label = pluralize(days, "night")
	}

	serviceFee := round2(subtotal * serviceFeeRate)
	subtotal = round2(subtotal)

	return PriceBreakdown{
		UnitsLabel:  label,
		Subtotal:    subtotal,
		CleaningFee: svc.CleaningFee,
		ServiceFee:  serviceFee,
		Total:       round2(subtotal + svc.CleaningFee + serviceFee),
	}, nil
}

// calendarDays counts whole calendar days between the dates of start and
// end, ignoring the time of day of either.
func calendarDays(start, end time.Time) int {
	s := StartOfDay(start)
	e := StartOfDay(end)
	return int(e.Sub(s).Hours() / 24)
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	if unit == "person" {
		return fmt.Sprintf("%d people", n)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
