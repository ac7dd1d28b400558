package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending             BookingStatus = "PENDING"
	BookingConfirmed           BookingStatus = "CONFIRMED"
	BookingCancelledByUser     BookingStatus = "CANCELLED_BY_USER"
	BookingCancelledByProvider BookingStatus = "CANCELLED_BY_PROVIDER"
	BookingCompleted           BookingStatus = "COMPLETED"
	BookingNoShow              BookingStatus = "NO_SHOW"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelledByUser,
		BookingCancelledByProvider, BookingCompleted, BookingNoShow:
		return true
	}
	return false
}

func (s BookingStatus) IsCancellation() bool {
	return s == BookingCancelledByUser || s == BookingCancelledByProvider
}

// CanTransitionTo encodes the booking lifecycle. Completed, cancelled and
// no-show bookings are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		switch next {
		case BookingConfirmed, BookingCancelledByUser, BookingCancelledByProvider:
			return true
		}
	case BookingConfirmed:
		switch next {
		case BookingCompleted, BookingCancelledByUser, BookingCancelledByProvider, BookingNoShow:
			return true
		}
	}
	return false
}

// CanActorSetStatus encodes who may drive which transition: admins may set
// any status, consumers may only cancel their own bookings, providers handle
// the service-side statuses on bookings of their services.
func CanActorSetStatus(next BookingStatus, isConsumer, isOwner, isAdmin bool) bool {
	switch {
	case isAdmin:
		return true
	case isConsumer && next == BookingCancelledByUser:
		return true
	case isOwner && (next == BookingConfirmed || next == BookingCompleted ||
		next == BookingNoShow || next == BookingCancelledByProvider):
		return true
	}
	return false
}

var ErrCancellationReasonRequired = errors.New("a cancellation reason is required")

// ApplyStatusChange moves the booking to next. Cancellations require a
// non-empty reason and stamp CancelledAt. On error the booking is left
// unchanged.
func (b *Booking) ApplyStatusChange(next BookingStatus, reason string, now time.Time) error {
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("cannot change status from %s to %s", b.Status, next)
	}
	if next.IsCancellation() {
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return ErrCancellationReasonRequired
		}
		b.CancellationReason = &reason
		b.CancelledAt = &now
	}
	b.Status = next
	return nil
}

type Booking struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Reference     string        `gorm:"size:12;not null;unique" json:"reference"`
	UserID        uuid.UUID     `gorm:"not null;index" json:"user_id"`
	ServiceID     uuid.UUID     `gorm:"not null;index" json:"service_id"`
	StartDateTime time.Time     `gorm:"not null" json:"start_date_time"`
	EndDateTime   time.Time     `gorm:"not null" json:"end_date_time"`
	GuestCount    int           `gorm:"not null;default:1" json:"guest_count"`
	Status        BookingStatus `gorm:"size:30;not null;default:'PENDING'" json:"status"`
	TotalPrice    float64       `gorm:"type:numeric(10,2);not null" json:"total_price"`

	SpecialRequests    *string    `gorm:"type:text" json:"special_requests"`
	CancellationReason *string    `gorm:"type:text" json:"cancellation_reason"`
	CancelledAt        *time.Time `json:"cancelled_at"`

	User    User    `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Service Service `gorm:"foreignkey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
