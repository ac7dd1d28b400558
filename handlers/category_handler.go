package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiherbert/travel_marketplace/database"
	"github.com/mwangiherbert/travel_marketplace/models"
)

func ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.DB.Where("is_active = ?", true).Order("name asc").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve categories"})
	}
	return c.JSON(categories)
}

func GetCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")

	var category models.Category
	if err := database.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	return c.JSON(category)
}
