package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiherbert/travel_marketplace/database"
	"github.com/mwangiherbert/travel_marketplace/models"
)

func ListLocations(c *fiber.Ctx) error {
	var locations []models.Location
	if err := database.DB.Where("is_active = ?", true).Order("city asc").Find(&locations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve locations"})
	}
	return c.JSON(locations)
}

func ListPopularLocations(c *fiber.Ctx) error {
	var locations []models.Location
	if err := database.DB.Where("is_active = ? AND is_popular = ?", true, true).
		Order("city asc").Find(&locations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve locations"})
	}
	return c.JSON(locations)
}

func GetLocation(c *fiber.Ctx) error {
	locationID := c.Params("locationId")

	var location models.Location
	if err := database.DB.First(&location, "id = ?", locationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}
	return c.JSON(location)
}
