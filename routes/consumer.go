package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labourhub/booking-app/controllers/consumer"
	"github.com/labourhub/booking-app/middleware"
)

// SetupConsumerRoutes configures provider discovery, slot lookup,
// booking and review routes for the consumer side.
func SetupConsumerRoutes(app *fiber.App) {
	// Provider discovery is public so consumers can browse before signup.
	providers := app.Group("/providers")
	providers.Get("/", consumer.GetAllProviders)
	providers.Get("/search", consumer.SearchProviders)
	providers.Get("/:id", consumer.GetProviderDetails)
	providers.Get("/:id/slots", consumer.GetProviderSlots)
	providers.Get("/:id/reviews", consumer.GetProviderReviews)

	bookings := app.Group("/bookings", middleware.Protected())
	bookings.Post("/", middleware.RequireRole("consumer"), consumer.CreateBooking)
	bookings.Get("/", consumer.GetMyBookings)
	bookings.Get("/:id", consumer.GetBooking)

	reviews := app.Group("/reviews", middleware.Protected())
	reviews.Post("/", middleware.RequireRole("consumer"), consumer.CreateReview)
}
