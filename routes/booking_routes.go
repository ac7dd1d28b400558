package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiherbert/travel_marketplace/handlers"
	"github.com/mwangiherbert/travel_marketplace/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Post("", handlers.CreateBooking)
	bookings.Get("", handlers.GetMyBookings)
	bookings.Get("/:bookingId", handlers.GetBooking)
	bookings.Patch("/:bookingId/status", handlers.UpdateBookingStatus)

	provider := api.Group("/provider/bookings", middleware.Protected(), middleware.ProviderRequired())
	provider.Get("", handlers.GetProviderBookings)
}
