package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labourhub/booking-app/db"
	"github.com/labourhub/booking-app/models"
	"github.com/labourhub/booking-app/scheduling"
)

// validateWorkingHour checks the invariants of a working day before it is
// stored: start must precede end, and any break must sit strictly within the
// working window. Days off skip the checks entirely.
func validateWorkingHour(wh *models.WorkingHours) string {
	if wh.DayOfWeek < models.Sunday || wh.DayOfWeek > models.Saturday {
		return "day_of_week must be between 0 (Sunday) and 6 (Saturday)"
	}
	if !wh.IsWorkDay {
		return ""
	}

	start, err := scheduling.ParseClock(wh.StartTime)
	if err != nil {
		return "start_time must be HH:MM"
	}
	end, err := scheduling.ParseClock(wh.EndTime)
	if err != nil {
		return "end_time must be HH:MM"
	}
	if end <= start {
		return "end_time must be after start_time"
	}

	if (wh.BreakStart == nil) != (wh.BreakEnd == nil) {
		return "break_start and break_end must be set together"
	}
	if wh.BreakStart != nil {
		bs, err := scheduling.ParseClock(*wh.BreakStart)
		if err != nil {
			return "break_start must be HH:MM"
		}
		be, err := scheduling.ParseClock(*wh.BreakEnd)
		if err != nil {
			return "break_end must be HH:MM"
		}
		if be <= bs {
			return "break_end must be after break_start"
		}
		if bs < start || be > end {
			return "break must fall within the working window"
		}
	}
	return ""
}

// GetMyWorkingHours returns the weekly profile of the logged-in provider
func GetMyWorkingHours(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var workingHours []models.WorkingHours
	if err := db.DB.Where("provider_id = ?", userID).
		Order("day_of_week asc").
		Find(&workingHours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get working hours",
		})
	}
	return c.JSON(workingHours)
}

// GetProviderWorkingHours returns a provider's weekly profile
func GetProviderWorkingHours(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	var workingHours []models.WorkingHours
	if err := db.DB.Where("provider_id = ?", id).
		Order("day_of_week asc").
		Find(&workingHours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get working hours",
		})
	}
	return c.JSON(workingHours)
}

// UpsertWorkingHour creates or replaces one weekday of the logged-in
// provider's profile
func UpsertWorkingHour(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	workingHour := new(models.WorkingHours)
	if err := c.BodyParser(workingHour); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	workingHour.ProviderID = userID

	if msg := validateWorkingHour(workingHour); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	// One row per provider per weekday
	var existing models.WorkingHours
	if db.DB.Where("provider_id = ? AND day_of_week = ?", userID, workingHour.DayOfWeek).
		First(&existing).RowsAffected > 0 {
		workingHour.ID = existing.ID
		workingHour.CreatedAt = existing.CreatedAt
	}

	if err := db.DB.Save(workingHour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save working hour",
		})
	}
	return c.JSON(workingHour)
}

// DeleteWorkingHour removes one weekday from the logged-in provider's profile
func DeleteWorkingHour(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var workingHour models.WorkingHours
	if err := db.DB.First(&workingHour, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Working hour not found",
		})
	}
	if workingHour.ProviderID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only delete your own working hours",
		})
	}
	if err := db.DB.Delete(&workingHour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete working hour",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
