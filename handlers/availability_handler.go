package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mwangiherbert/travel_marketplace/database"
	"github.com/mwangiherbert/travel_marketplace/models"
	"github.com/mwangiherbert/travel_marketplace/services"
	"gorm.io/gorm"
)

var (
	errServiceNotOwned = errors.New("service not found or you do not own it")
	errStartAfterEnd   = errors.New("start time must be before end time")
	errBadDateParam    = errors.New("startDate and endDate must be RFC3339 timestamps")
)

type AvailabilityRequest struct {
	ServiceID     string  `json:"service_id" validate:"required,uuid"`
	StartDateTime string  `json:"start_date_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndDateTime   string  `json:"end_date_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	IsAvailable   *bool   `json:"is_available" validate:"required"`
	Notes         *string `json:"notes,omitempty"`
}

// GetServiceAvailabilities lists a service's windows, optionally limited to
// those overlapping the startDate..endDate span.
func GetServiceAvailabilities(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")

	query := database.DB.Where("service_id = ?", serviceID)

	startDate, endDate, err := parseDateSpan(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !startDate.IsZero() {
		query = query.Where("end_date_time > ?", startDate)
	}
	if !endDate.IsZero() {
		query = query.Where("start_date_time < ?", endDate)
	}

	var windows []models.Availability
	if err := query.Order("start_date_time asc").Find(&windows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve availabilities"})
	}

	return c.JSON(windows)
}

// GetAvailableDates lists the distinct dates within the requested span on
// which at least one available window applies.
func GetAvailableDates(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")

	startDate, endDate, err := parseDateSpan(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if startDate.IsZero() || endDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "startDate and endDate are required"})
	}

	var windows []models.Availability
	if err := database.DB.
		Where("service_id = ? AND is_available = ? AND start_date_time < ? AND end_date_time > ?",
			serviceID, true, endDate, startDate).
		Order("start_date_time asc").
		Find(&windows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve availabilities"})
	}

	var dates []string
	for day := services.StartOfDay(startDate); !day.After(endDate); day = day.AddDate(0, 0, 1) {
		if len(services.AvailableStartTimes(day, windows)) > 0 {
			dates = append(dates, day.Format("2006-01-02"))
		}
	}

	return c.JSON(dates)
}

// GetBookingOptions computes the legal start times for a chosen date and,
// for date-ranged services, the legal end times and minimum end date.
func GetBookingOptions(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")

	var service models.Service
	if err := database.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	needsEnd := services.NeedsEndDateTime(service.Type, service.PricingUnit)
	spanEnd := services.LookaheadEnd(date, needsEnd).AddDate(0, 0, 1)

	var windows []models.Availability
	if err := database.DB.
		Where("service_id = ? AND start_date_time < ? AND end_date_time > ?",
			service.ID, spanEnd, services.StartOfDay(date)).
		Order("start_date_time asc").
		Find(&windows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve availabilities"})
	}

	response := fiber.Map{
		"needs_end_date_time": needsEnd,
		"start_times":         services.AvailableStartTimes(date, windows),
	}

	if needsEnd {
		response["min_end_date"] = services.MinEndDate(date, service.Type).Format("2006-01-02")

		if endDateStr := c.Query("endDate"); endDateStr != "" {
			endDate, err := time.Parse("2006-01-02", endDateStr)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "endDate must be YYYY-MM-DD"})
			}
			response["end_times"] = services.AvailableEndTimes(date, c.Query("startTime"), endDate, windows)
		}
	}

	return c.JSON(response)
}

func CreateAvailability(c *fiber.Ctx) error {
	providerID := requestUserID(c)

	var req AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	window, err := availabilityFromRequest(providerID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.DB.Create(window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create availability"})
	}

	return c.Status(fiber.StatusCreated).JSON(window)
}

// CreateBulkAvailabilities inserts many windows at once. Every window must
// belong to a service the caller owns; the batch is applied atomically.
func CreateBulkAvailabilities(c *fiber.Ctx) error {
	providerID := requestUserID(c)

	var reqs []AvailabilityRequest
	if err := c.BodyParser(&reqs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if len(reqs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No availabilities provided"})
	}

	windows := make([]*models.Availability, 0, len(reqs))
	for _, req := range reqs {
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		window, err := availabilityFromRequest(providerID, req)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		windows = append(windows, window)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, window := range windows {
			if err := tx.Create(window).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create availabilities"})
	}

	return c.Status(fiber.StatusCreated).JSON(windows)
}

func UpdateAvailability(c *fiber.Ctx) error {
	providerID := requestUserID(c)
	availabilityID := c.Params("availabilityId")

	var window models.Availability
	if err := database.DB.Joins("JOIN services ON services.id = availabilities.service_id").
		Where("availabilities.id = ? AND services.provider_id = ?", availabilityID, providerID).
		First(&window).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Availability not found or you do not own it"})
	}

	var req AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := availabilityFromRequest(providerID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	window.ServiceID = updated.ServiceID
	window.StartDateTime = updated.StartDateTime
	window.EndDateTime = updated.EndDateTime
	window.IsAvailable = updated.IsAvailable
	window.Notes = updated.Notes

	if err := database.DB.Save(&window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update availability"})
	}

	return c.JSON(window)
}

func DeleteAvailability(c *fiber.Ctx) error {
	providerID := requestUserID(c)
	availabilityID := c.Params("availabilityId")

	var window models.Availability
	if err := database.DB.Joins("JOIN services ON services.id = availabilities.service_id").
		Where("availabilities.id = ? AND services.provider_id = ?", availabilityID, providerID).
		First(&window).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Availability not found or you do not own it"})
	}

	if err := database.DB.Delete(&window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete availability"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type DayGridRequest struct {
	Date  string          `json:"date" validate:"required,datetime=2006-01-02"`
	Slots map[string]bool `json:"slots" validate:"required"`
	Notes string          `json:"notes"`
}

// GetDayGrid hydrates the 24-slot editor grid for one day from the stored
// windows.
func GetDayGrid(c *fiber.Ctx) error {
	providerID := requestUserID(c)
	serviceID := c.Params("serviceId")

	service, err := ownedService(providerID, serviceID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found or you do not own it"})
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	windows, err := dayWindows(service.ID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve availabilities"})
	}

	slots, notes := services.ExpandWindows(date, windows)

	return c.JSON(fiber.Map{
		"date":  date.Format("2006-01-02"),
		"slots": slots,
		"notes": notes,
	})
}

// ReplaceDayGrid overwrites one day's windows with the compressed form of
// the submitted slot grid. The delete and the re-create run in a single
// transaction so concurrent saves cannot observe a half-applied day.
func ReplaceDayGrid(c *fiber.Ctx) error {
	providerID := requestUserID(c)
	serviceID := c.Params("serviceId")

	service, err := ownedService(providerID, serviceID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found or you do not own it"})
	}

	var req DayGridRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	ranges := services.CompressDaySelection(req.Slots)
	windows := services.RangeWindows(service.ID, date, ranges, req.Notes)

	dayStart := services.StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ? AND start_date_time < ? AND end_date_time > ?",
			service.ID, dayEnd, dayStart).
			Delete(&models.Availability{}).Error; err != nil {
			return err
		}
		for i := range windows {
			if err := tx.Create(&windows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save availability"})
	}

	return c.JSON(windows)
}

func availabilityFromRequest(providerID uuid.UUID, req AvailabilityRequest) (*models.Availability, error) {
	serviceID, _ := uuid.Parse(req.ServiceID)
	if _, err := ownedService(providerID, serviceID.String()); err != nil {
		return nil, errServiceNotOwned
	}

	start, _ := time.Parse(time.RFC3339, req.StartDateTime)
	end, _ := time.Parse(time.RFC3339, req.EndDateTime)
	if !start.Before(end) {
		return nil, errStartAfterEnd
	}

	return &models.Availability{
		ServiceID:     serviceID,
		StartDateTime: start,
		EndDateTime:   end,
		IsAvailable:   *req.IsAvailable,
		Notes:         req.Notes,
	}, nil
}

func ownedService(providerID uuid.UUID, serviceID string) (*models.Service, error) {
	var service models.Service
	if err := database.DB.First(&service, "id = ? AND provider_id = ?", serviceID, providerID).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func dayWindows(serviceID uuid.UUID, date time.Time) ([]models.Availability, error) {
	dayStart := services.StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var windows []models.Availability
	err := database.DB.
		Where("service_id = ? AND start_date_time < ? AND end_date_time > ?", serviceID, dayEnd, dayStart).
		Order("start_date_time asc").
		Find(&windows).Error
	return windows, err
}

// parseDateSpan reads the optional startDate/endDate query parameters as
// RFC3339 instants.
func parseDateSpan(c *fiber.Ctx) (time.Time, time.Time, error) {
	var startDate, endDate time.Time

	if raw := c.Query("startDate"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return startDate, endDate, errBadDateParam
		}
		startDate = parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return startDate, endDate, errBadDateParam
		}
		endDate = parsed
	}
	return startDate, endDate, nil
}

func requestUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	return userID
}

func isAdmin(c *fiber.Ctx) bool {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role, _ := claims["role"].(string)
	return role == "admin"
}
