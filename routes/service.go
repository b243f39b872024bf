package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labourhub/booking-app/controllers"
	"github.com/labourhub/booking-app/middleware"
)

// SetupServiceRoutes configures the service catalogue routes.
func SetupServiceRoutes(app *fiber.App) {
	services := app.Group("/services")

	services.Get("/", controllers.GetAllServices)
	services.Get("/:id", controllers.GetService)

	services.Post("/", middleware.Protected(), middleware.RequireRole("labour", "admin"), controllers.CreateService)
	services.Put("/:id", middleware.Protected(), middleware.RequireRole("labour", "admin"), controllers.UpdateService)
	services.Delete("/:id", middleware.Protected(), middleware.RequireRole("labour", "admin"), controllers.DeleteService)
}
