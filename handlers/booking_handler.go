package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mwangiherbert/travel_marketplace/database"
	"github.com/mwangiherbert/travel_marketplace/models"
	"github.com/mwangiherbert/travel_marketplace/notifications"
	"github.com/mwangiherbert/travel_marketplace/services"
	"github.com/mwangiherbert/travel_marketplace/utils"
	"github.com/mwangiherbert/travel_marketplace/websocket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateBookingRequest struct {
	ServiceID       string  `json:"service_id" validate:"required,uuid"`
	StartDateTime   string  `json:"start_date_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndDateTime     string  `json:"end_date_time" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	GuestCount      int     `json:"guest_count" validate:"omitempty,min=1"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

func CreateBooking(c *fiber.Ctx) error {
	userID := requestUserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var service models.Service
	if err := database.DB.Preload("Provider").First(&service, "id = ? AND is_active = ?", req.ServiceID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	start, _ := time.Parse(time.RFC3339, req.StartDateTime)
	if start.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be in the future"})
	}

	needsEnd := services.NeedsEndDateTime(service.Type, service.PricingUnit)

	var end time.Time
	if needsEnd {
		if req.EndDateTime == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date and time are required for this service"})
		}
		end, _ = time.Parse(time.RFC3339, req.EndDateTime)
		if !end.After(start) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End time must be after start time"})
		}
		if services.StartOfDay(end).Before(services.MinEndDate(start, service.Type)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Accommodation bookings require at least one night"})
		}
	} else {
		end = services.ImpliedEnd(start)
	}

	guestCount := req.GuestCount
	if guestCount < 1 {
		guestCount = 1
	}
	if service.Capacity != nil && guestCount > *service.Capacity {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Guest count exceeds service capacity"})
	}

	windows, err := spanWindows(service.ID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check availability"})
	}
	if !services.StartAllowed(start, windows) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Selected start time is not available"})
	}
	if needsEnd && !services.EndAllowed(start, end, windows) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Selected end time is not available"})
	}

	breakdown, err := services.ComputePriceBreakdown(service, start, end, guestCount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&service, "id = ?", service.ID).Error; err != nil {
			return err
		}

		reference, err := utils.GenerateBookingReference(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			Reference:       reference,
			UserID:          userID,
			ServiceID:       service.ID,
			StartDateTime:   start,
			EndDateTime:     end,
			GuestCount:      guestCount,
			Status:          models.BookingPending,
			TotalPrice:      breakdown.Total,
			SpecialRequests: req.SpecialRequests,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	go notifications.SendEmail(service.Provider.FirstName, service.Provider.Email,
		"You Have a New Booking Request!",
		notifications.BookingEmail("New Booking Request",
			"A new booking is waiting for your confirmation.", booking.Reference))
	websocket.NotifyBooking("booking.created", &booking, service.ProviderID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking":         booking,
		"price_breakdown": breakdown,
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	userID := requestUserID(c)

	query := database.DB.Preload("Service").Preload("Service.Location").
		Where("user_id = ?", userID)

	if statuses := statusFilter(c.Query("status")); len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var bookings []models.Booking
	if err := query.Order("start_date_time desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve bookings"})
	}

	return c.JSON(bookings)
}

func GetBooking(c *fiber.Ctx) error {
	userID := requestUserID(c)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Service").Preload("Service.Provider").Preload("User").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if booking.UserID != userID && booking.Service.ProviderID != userID && !isAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}

	return c.JSON(booking)
}

// GetProviderBookings lists bookings across all of the caller's services,
// optionally filtered by a comma-separated status list (the dashboard's
// cancelled tab sends both cancellation statuses at once).
func GetProviderBookings(c *fiber.Ctx) error {
	providerID := requestUserID(c)

	query := database.DB.Preload("Service").Preload("User").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("services.provider_id = ?", providerID)

	if statuses := statusFilter(c.Query("status")); len(statuses) > 0 {
		query = query.Where("bookings.status IN ?", statuses)
	}

	var bookings []models.Booking
	if err := query.Order("bookings.start_date_time desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve bookings"})
	}

	return c.JSON(bookings)
}

// UpdateBookingStatus drives the booking lifecycle. Status and the optional
// cancellation reason arrive as query parameters. Consumers may only cancel
// their own bookings; providers confirm, complete, cancel or mark no-shows
// on bookings of their services.
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID := requestUserID(c)
	bookingID := c.Params("bookingId")

	next := models.BookingStatus(c.Query("status"))
	if !next.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown booking status"})
	}

	var booking models.Booking
	if err := database.DB.Preload("Service").Preload("Service.Provider").Preload("User").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	isConsumer := booking.UserID == userID
	isOwner := booking.Service.ProviderID == userID

	if !models.CanActorSetStatus(next, isConsumer, isOwner, isAdmin(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not allowed to set this status"})
	}

	if err := booking.ApplyStatusChange(next, c.Query("cancellationReason"), time.Now()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking status"})
	}

	notifyStatusChange(&booking)

	return c.JSON(booking)
}

func notifyStatusChange(booking *models.Booking) {
	var subject, body string

	switch booking.Status {
	case models.BookingConfirmed:
		subject = "Your Booking is Confirmed!"
		body = notifications.BookingEmail("Booking Confirmed",
			"The provider has confirmed your booking.", booking.Reference)
	case models.BookingCompleted:
		subject = "Thanks for Your Stay!"
		body = notifications.BookingEmail("Booking Completed",
			"Your booking has been marked as completed. We hope you enjoyed it!", booking.Reference)
	case models.BookingCancelledByUser, models.BookingCancelledByProvider:
		subject = "Booking Cancelled"
		reason := ""
		if booking.CancellationReason != nil {
			reason = *booking.CancellationReason
		}
		body = notifications.BookingEmail("Booking Cancelled",
			"The booking was cancelled. Reason: "+reason, booking.Reference)
	case models.BookingNoShow:
		subject = "Booking Marked as No-Show"
		body = notifications.BookingEmail("No-Show Recorded",
			"The provider reported that this booking was not attended.", booking.Reference)
	default:
		return
	}

	go notifications.SendEmail(booking.User.FirstName, booking.User.Email, subject, body)
	websocket.NotifyBooking("booking.status_changed", booking, booking.Service.ProviderID)
}

func statusFilter(raw string) []models.BookingStatus {
	if raw == "" {
		return nil
	}
	var statuses []models.BookingStatus
	for _, part := range strings.Split(raw, ",") {
		status := models.BookingStatus(strings.TrimSpace(part))
		if status.Valid() {
			statuses = append(statuses, status)
		}
	}
	return statuses
}

func spanWindows(serviceID uuid.UUID, start, end time.Time) ([]models.Availability, error) {
	spanStart := services.StartOfDay(start)
	spanEnd := services.StartOfDay(end).AddDate(0, 0, 1)

	var windows []models.Availability
	err := database.DB.
		Where("service_id = ? AND start_date_time < ? AND end_date_time > ?", serviceID, spanEnd, spanStart).
		Order("start_date_time asc").
		Find(&windows).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return windows, nil
}
