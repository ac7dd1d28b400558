package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiherbert/travel_marketplace/handlers"
	"github.com/mwangiherbert/travel_marketplace/middleware"
)

func ServiceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/services", handlers.ListServices)
	api.Get("/services/search", handlers.SearchServices)
	api.Get("/services/type/:type", handlers.ListServicesByType)
	api.Get("/services/:serviceId", handlers.GetService)
	api.Get("/services/:serviceId/booking-options", handlers.GetBookingOptions)

	provider := api.Group("/provider/services", middleware.Protected(), middleware.ProviderRequired())
	provider.Get("", handlers.GetMyServices)
	provider.Post("", handlers.CreateService)
	provider.Put("/:serviceId", handlers.UpdateService)
	provider.Delete("/:serviceId", handlers.DeleteService)
}
