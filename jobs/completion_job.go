package jobs

import (
	"log"
	"time"

	"github.com/mwangiherbert/travel_marketplace/database"
	"github.com/mwangiherbert/travel_marketplace/models"
)

func CompleteElapsedBookings() {
	log.Println("Running job: CompleteElapsedBookings...")

	now := time.Now()

	var elapsedBookings []models.Booking

	err := database.DB.
		Where("status = ? AND end_date_time < ?", models.BookingConfirmed, now).
		Find(&elapsedBookings).Error

	if err != nil {
		log.Printf("Error checking for elapsed bookings: %v", err)
		return
	}

	if len(elapsedBookings) == 0 {
		log.Println("No elapsed bookings found.")
		return
	}

	completed := 0
	for _, booking := range elapsedBookings {
		booking.Status = models.BookingCompleted
		if err := database.DB.Save(&booking).Error; err != nil {
			log.Printf("Error completing booking %s: %v", booking.Reference, err)
			continue
		}
		completed++
	}

	log.Printf("Marked %d booking(s) as completed.", completed)
}
