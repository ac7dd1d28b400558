package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiherbert/travel_marketplace/handlers"
	"github.com/mwangiherbert/travel_marketplace/middleware"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/locations", handlers.ListLocations)
	api.Get("/locations/popular", handlers.ListPopularLocations)
	api.Get("/locations/:locationId", handlers.GetLocation)

	api.Get("/categories", handlers.ListCategories)
	api.Get("/categories/:categoryId", handlers.GetCategory)

	api.Get("/reviews/service/:serviceId", handlers.GetServiceReviews)
	api.Post("/reviews", middleware.Protected(), handlers.CreateReview)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/dashboard", websocket.New(handlers.ServeDashboardWs))
}
