package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labourhub/booking-app/controllers/labour"
	"github.com/labourhub/booking-app/middleware"
)

// SetupLabourRoutes configures the provider-facing booking queues,
// status updates and dashboard routes.
func SetupLabourRoutes(app *fiber.App) {
	lab := app.Group("/labour", middleware.Protected())

	lab.Get("/bookings/pending", labour.GetPendingBookings)
	lab.Get("/bookings/upcoming", labour.GetUpcomingBookings)
	lab.Get("/bookings/history", labour.GetBookingHistory)
	lab.Patch("/bookings/:id/status", labour.UpdateBookingStatus)

	lab.Get("/dashboard", labour.GetDashboardOverview)
	lab.Get("/dashboard/today", labour.GetTodaySchedule)
}
