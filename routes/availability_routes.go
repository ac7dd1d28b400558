package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiherbert/travel_marketplace/handlers"
	"github.com/mwangiherbert/travel_marketplace/middleware"
)

func AvailabilityRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/availabilities/service/:serviceId", handlers.GetServiceAvailabilities)
	api.Get("/availabilities/service/:serviceId/available", handlers.GetAvailableDates)

	manage := api.Group("/availabilities", middleware.Protected(), middleware.ProviderRequired())
	manage.Post("", handlers.CreateAvailability)
	manage.Post("/bulk", handlers.CreateBulkAvailabilities)
	manage.Put("/:availabilityId", handlers.UpdateAvailability)
	manage.Delete("/:availabilityId", handlers.DeleteAvailability)
	manage.Get("/service/:serviceId/day", handlers.GetDayGrid)
	manage.Put("/service/:serviceId/day", handlers.ReplaceDayGrid)
}
