package labour

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/labourhub/booking-app/db"
	"github.com/labourhub/booking-app/models"
	"github.com/labourhub/booking-app/scheduling"
)

// GetDashboardOverview returns booking counts per status plus review stats
// for the logged-in provider
func GetDashboardOverview(c *fiber.Ctx) error {
	userID, _, ok := requireProvider(c)
	if !ok {
		return nil
	}

	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		AcceptedCount  int64     `json:"accepted_count"`
		CompletedCount int64     `json:"completed_count"`
		RejectedCount  int64     `json:"rejected_count"`
		TotalServices  int64     `json:"total_services"`
		ReviewCount    int64     `json:"review_count"`
		AverageRating  float64   `json:"average_rating"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	base := func() *gorm.DB {
		return db.DB.Model(&models.Booking{}).Where("provider_id = ?", userID)
	}

	base().Count(&statistics.TotalBookings)
	base().Where("status = ?", scheduling.StatusPending).Count(&statistics.PendingCount)
	base().Where("status = ?", scheduling.StatusAccepted).Count(&statistics.AcceptedCount)
	base().Where("status = ?", scheduling.StatusCompleted).Count(&statistics.CompletedCount)
	base().Where("status = ?", scheduling.StatusRejected).Count(&statistics.RejectedCount)

	db.DB.Model(&models.Service{}).Where("provider_id = ?", userID).Count(&statistics.TotalServices)
	db.DB.Model(&models.Review{}).Where("provider_id = ?", userID).Count(&statistics.ReviewCount)

	type ratingResult struct {
		AverageRating float64
	}
	var rating ratingResult
	db.DB.Model(&models.Review{}).
		Where("provider_id = ?", userID).
		Select("COALESCE(AVG(rating), 0) as average_rating").
		Scan(&rating)
	statistics.AverageRating = rating.AverageRating

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetTodaySchedule returns the provider's accepted bookings for today,
// earliest slot first; untimed bookings sort last
func GetTodaySchedule(c *fiber.Ctx) error {
	userID, _, ok := requireProvider(c)
	if !ok {
		return nil
	}

	today := scheduling.DateOf(time.Now()).Time()

	var bookings []models.Booking
	if err := db.DB.Preload("Customer").
		Where("provider_id = ? AND status = ? AND preferred_date = ?",
			userID, scheduling.StatusAccepted, today).
		Order("preferred_time asc NULLS LAST").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"date":     scheduling.DateOf(time.Now()).String(),
		"bookings": bookings,
		"count":    len(bookings),
	})
}
