package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mwangiherbert/travel_marketplace/database"
	"github.com/mwangiherbert/travel_marketplace/models"
	"github.com/mwangiherbert/travel_marketplace/notifications"
)

func SendBookingReminders() {
	log.Println("Running job: SendBookingReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingBookings []models.Booking

	err := database.DB.
		Preload("User").
		Preload("Service.Provider").
		Where("status = ? AND start_date_time BETWEEN ? AND ?", models.BookingConfirmed, lowerBound, upperBound).
		Find(&upcomingBookings).Error

	if err != nil {
		log.Printf("Error checking for upcoming bookings: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending reminder for booking %s", booking.Reference)

		subject := "Reminder: Your Booking Starts in 1 Hour!"
		detail := fmt.Sprintf(
			"This is a friendly reminder that %s is scheduled to start at %s.",
			booking.Service.Title,
			booking.StartDateTime.Format(time.Kitchen),
		)
		body := notifications.BookingEmail("Booking Reminder", detail, booking.Reference)

		go notifications.SendEmail(booking.User.FirstName, booking.User.Email, subject, body)
		go notifications.SendEmail(booking.Service.Provider.FirstName, booking.Service.Provider.Email, subject, body)
	}
}
