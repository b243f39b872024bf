package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labourhub/booking-app/controllers"
	"github.com/labourhub/booking-app/middleware"
)

// SetupWorkingHourRoutes configures the weekly schedule routes.
// Reads on a provider's schedule are public; writes require the
// labour role and only ever touch the caller's own rows.
func SetupWorkingHourRoutes(app *fiber.App) {
	app.Get("/providers/:id/working-hours", controllers.GetProviderWorkingHours)

	wh := app.Group("/working-hours", middleware.Protected(), middleware.RequireRole("labour", "admin"))
	wh.Get("/", controllers.GetMyWorkingHours)
	wh.Put("/", controllers.UpsertWorkingHour)
	wh.Delete("/:id", controllers.DeleteWorkingHour)
}
