package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mwangiherbert/travel_marketplace/database"
	"github.com/mwangiherbert/travel_marketplace/models"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

func GetServiceReviews(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")

	var reviews []models.Review
	if err := database.DB.Preload("User").
		Where("service_id = ?", serviceID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve reviews"})
	}

	return c.JSON(reviews)
}

// CreateReview accepts a review from the booking's consumer once the booking
// has completed, and refreshes the service's rating aggregate in the same
// transaction.
func CreateReview(c *fiber.Ctx) error {
	userID := requestUserID(c)

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var newReview models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", req.BookingID).Error; err != nil {
			return errors.New("booking not found")
		}
		if booking.UserID != userID {
			return errors.New("you are not the customer for this booking")
		}
		if booking.Status != models.BookingCompleted {
			return errors.New("reviews can only be submitted for completed bookings")
		}

		var existingReview models.Review
		if err := tx.Where("booking_id = ?", booking.ID).First(&existingReview).Error; err == nil {
			return errors.New("a review already exists for this booking")
		}

		newReview = models.Review{
			BookingID: booking.ID,
			UserID:    userID,
			ServiceID: booking.ServiceID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := tx.Create(&newReview).Error; err != nil {
			return err
		}

		type aggregate struct {
			Avg   float32
			Count int
		}
		var agg aggregate
		if err := tx.Model(&models.Review{}).
			Select("AVG(rating) as avg, COUNT(*) as count").
			Where("service_id = ?", booking.ServiceID).
			Scan(&agg).Error; err != nil {
			return err
		}

		return tx.Model(&models.Service{}).
			Where("id = ?", booking.ServiceID).
			Updates(map[string]interface{}{
				"avg_rating":   agg.Avg,
				"review_count": agg.Count,
			}).Error
	})

	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(newReview)
}
