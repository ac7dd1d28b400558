package models

import (
	"testing"
	"time"
)

func TestBookingStatusValid(t *testing.T) {
	valid := []BookingStatus{
		BookingPending, BookingConfirmed, BookingCancelledByUser,
		BookingCancelledByProvider, BookingCompleted, BookingNoShow,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	for _, s := range []BookingStatus{"", "pending", "DONE"} {
		if s.Valid() {
			t.Fatalf("%q should not be valid", s)
		}
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelledByUser, true},
		{BookingPending, BookingCancelledByProvider, true},
		{BookingPending, BookingCompleted, false},
		{BookingPending, BookingNoShow, false},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingNoShow, true},
		{BookingConfirmed, BookingCancelledByUser, true},
		{BookingConfirmed, BookingCancelledByProvider, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCompleted, BookingConfirmed, false},
		{BookingCancelledByUser, BookingConfirmed, false},
		{BookingCancelledByProvider, BookingPending, false},
		{BookingNoShow, BookingCompleted, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Fatalf("%s -> %s: expected %v, got %v", c.from, c.to, c.want, got)
		}
	}
}

func TestCanActorSetStatus(t *testing.T) {
	cases := []struct {
		next                         BookingStatus
		isConsumer, isOwner, isAdmin bool
		want                         bool
	}{
		{BookingCancelledByUser, true, false, false, true},
		{BookingCancelledByProvider, true, false, false, false},
		{BookingConfirmed, true, false, false, false},
		{BookingCompleted, true, false, false, false},
		{BookingNoShow, true, false, false, false},

		{BookingConfirmed, false, true, false, true},
		{BookingCompleted, false, true, false, true},
		{BookingNoShow, false, true, false, true},
		{BookingCancelledByProvider, false, true, false, true},
		{BookingCancelledByUser, false, true, false, false},
		{BookingPending, false, true, false, false},

		{BookingCancelledByUser, false, false, true, true},
		{BookingPending, false, false, true, true},

		{BookingConfirmed, false, false, false, false},
		{BookingCancelledByUser, false, false, false, false},
	}
	for _, c := range cases {
		got := CanActorSetStatus(c.next, c.isConsumer, c.isOwner, c.isAdmin)
		if got != c.want {
			t.Fatalf("CanActorSetStatus(%s, consumer=%v, owner=%v, admin=%v) = %v, want %v",
				c.next, c.isConsumer, c.isOwner, c.isAdmin, got, c.want)
		}
	}
}

func TestApplyStatusChange_CancellationRequiresReason(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, reason := range []string{"", "   "} {
		booking := Booking{Status: BookingPending}
		err := booking.ApplyStatusChange(BookingCancelledByUser, reason, now)
		if err != ErrCancellationReasonRequired {
			t.Fatalf("expected ErrCancellationReasonRequired for reason %q, got %v", reason, err)
		}
		if booking.Status != BookingPending {
			t.Fatalf("status must not change on a rejected cancellation, got %s", booking.Status)
		}
		if booking.CancellationReason != nil || booking.CancelledAt != nil {
			t.Fatal("rejected cancellation must not stamp reason or cancelled_at")
		}
	}
}

func TestApplyStatusChange_CancellationStampsReasonAndTime(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	booking := Booking{Status: BookingConfirmed}
	if err := booking.ApplyStatusChange(BookingCancelledByProvider, "  double booked  ", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != BookingCancelledByProvider {
		t.Fatalf("expected status %s, got %s", BookingCancelledByProvider, booking.Status)
	}
	if booking.CancellationReason == nil || *booking.CancellationReason != "double booked" {
		t.Fatalf("expected trimmed reason, got %v", booking.CancellationReason)
	}
	if booking.CancelledAt == nil || !booking.CancelledAt.Equal(now) {
		t.Fatalf("expected cancelled_at %s, got %v", now, booking.CancelledAt)
	}
}

func TestApplyStatusChange_InvalidTransitionLeavesBookingUntouched(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	booking := Booking{Status: BookingCompleted}
	if err := booking.ApplyStatusChange(BookingConfirmed, "", now); err == nil {
		t.Fatal("expected an error for a transition out of a terminal state")
	}
	if booking.Status != BookingCompleted {
		t.Fatalf("status must not change on a rejected transition, got %s", booking.Status)
	}
}

func TestApplyStatusChange_NonCancellationNeedsNoReason(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	booking := Booking{Status: BookingPending}
	if err := booking.ApplyStatusChange(BookingConfirmed, "", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != BookingConfirmed {
		t.Fatalf("expected status %s, got %s", BookingConfirmed, booking.Status)
	}
	if booking.CancellationReason != nil || booking.CancelledAt != nil {
		t.Fatal("confirmation must not stamp cancellation fields")
	}
}

func TestBookingStatusIsCancellation(t *testing.T) {
	if !BookingCancelledByUser.IsCancellation() || !BookingCancelledByProvider.IsCancellation() {
		t.Fatal("cancelled statuses should report as cancellations")
	}
	if BookingPending.IsCancellation() || BookingCompleted.IsCancellation() {
		t.Fatal("non-cancelled statuses should not report as cancellations")
	}
}
