package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mwangiherbert/travel_marketplace/database"
	"github.com/mwangiherbert/travel_marketplace/models"
)

type ServiceRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=255"`
	Description  string   `json:"description"`
	Type         string   `json:"type" validate:"required"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	PricingUnit  string   `json:"pricing_unit" validate:"required"`
	CleaningFee  float64  `json:"cleaning_fee" validate:"gte=0"`
	Capacity     *int     `json:"capacity"`
	Address      string   `json:"address"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Images       []string `json:"images"`
	Amenities    []string `json:"amenities"`
	Policies     []string `json:"policies"`
	CategoryID   *string  `json:"category_id"`
	LocationID   *string  `json:"location_id"`
}

func ListServices(c *fiber.Ctx) error {
	query := database.DB.Preload("Category").Preload("Location").Preload("Provider").
		Where("is_active = ?", true)

	if serviceType := c.Query("type"); serviceType != "" {
		if !models.ServiceType(serviceType).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown service type"})
		}
		query = query.Where("type = ?", serviceType)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if locationID := c.Query("location_id"); locationID != "" {
		query = query.Where("location_id = ?", locationID)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		query = query.Where("price >= ?", minPrice)
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		query = query.Where("price <= ?", maxPrice)
	}
	if minRating := c.Query("min_rating"); minRating != "" {
		query = query.Where("avg_rating >= ?", minRating)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var services []models.Service
	if err := query.Order("created_at desc").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve services"})
	}

	return c.JSON(services)
}

func ListServicesByType(c *fiber.Ctx) error {
	serviceType := models.ServiceType(c.Params("type"))
	if !serviceType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown service type"})
	}

	var services []models.Service
	if err := database.DB.Preload("Category").Preload("Location").
		Where("type = ? AND is_active = ?", serviceType, true).
		Order("avg_rating desc").
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve services"})
	}

	return c.JSON(services)
}

func SearchServices(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	if keyword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "keyword is required"})
	}

	pattern := "%" + keyword + "%"
	var services []models.Service
	if err := database.DB.Preload("Category").Preload("Location").
		Where("is_active = ? AND (title ILIKE ? OR description ILIKE ? OR address ILIKE ?)",
			true, pattern, pattern, pattern).
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search services"})
	}

	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")

	var service models.Service
	if err := database.DB.Preload("Category").Preload("Location").Preload("Provider").
		First(&service, "id = ?", serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	return c.JSON(service)
}

func GetMyServices(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	providerID := claims["user_id"].(string)

	var services []models.Service
	database.DB.Preload("Category").Preload("Location").
		Where("provider_id = ?", providerID).
		Order("created_at desc").
		Find(&services)

	return c.JSON(services)
}

func CreateService(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	providerID, _ := uuid.Parse(claims["user_id"].(string))

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !models.ServiceType(req.Type).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown service type"})
	}
	if !models.PricingUnit(req.PricingUnit).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown pricing unit"})
	}

	service := models.Service{
		ProviderID:   providerID,
		Title:        req.Title,
		Description:  req.Description,
		Type:         models.ServiceType(req.Type),
		Price:        req.Price,
		PricingUnit:  models.PricingUnit(req.PricingUnit),
		CleaningFee:  req.CleaningFee,
		Capacity:     req.Capacity,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ThumbnailURL: req.ThumbnailURL,
		Images:       req.Images,
		Amenities:    req.Amenities,
		Policies:     req.Policies,
	}
	if req.CategoryID != nil {
		if id, err := uuid.Parse(*req.CategoryID); err == nil {
			service.CategoryID = &id
		}
	}
	if req.LocationID != nil {
		if id, err := uuid.Parse(*req.LocationID); err == nil {
			service.LocationID = &id
		}
	}

	if err := database.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

func UpdateService(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	providerID, _ := uuid.Parse(claims["user_id"].(string))
	serviceID := c.Params("serviceId")

	var service models.Service
	if err := database.DB.First(&service, "id = ? AND provider_id = ?", serviceID, providerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found or you do not own it"})
	}

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !models.ServiceType(req.Type).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown service type"})
	}
	if !models.PricingUnit(req.PricingUnit).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown pricing unit"})
	}

	service.Title = req.Title
	service.Description = req.Description
	service.Type = models.ServiceType(req.Type)
	service.Price = req.Price
	service.PricingUnit = models.PricingUnit(req.PricingUnit)
	service.CleaningFee = req.CleaningFee
	service.Capacity = req.Capacity
	service.Address = req.Address
	service.Latitude = req.Latitude
	service.Longitude = req.Longitude
	service.ThumbnailURL = req.ThumbnailURL
	service.Images = req.Images
	service.Amenities = req.Amenities
	service.Policies = req.Policies

	if err := database.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}

	return c.JSON(service)
}

func DeleteService(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	providerID, _ := uuid.Parse(claims["user_id"].(string))
	serviceID := c.Params("serviceId")

	var service models.Service
	if err := database.DB.First(&service, "id = ? AND provider_id = ?", serviceID, providerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found or you do not own it"})
	}

	var activeBookings int64
	database.DB.Model(&models.Booking{}).
		Where("service_id = ? AND status IN ?", service.ID,
			[]models.BookingStatus{models.BookingPending, models.BookingConfirmed}).
		Count(&activeBookings)
	if activeBookings > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete a service with active bookings"})
	}

	if err := database.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete service"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
