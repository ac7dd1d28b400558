package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiherbert/travel_marketplace/handlers"
	"github.com/mwangiherbert/travel_marketplace/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	users := api.Group("/users", middleware.Protected())
	users.Get("/me", handlers.GetProfile)
	users.Put("/me", handlers.UpdateProfile)
}
