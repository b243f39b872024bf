package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labourhub/booking-app/db"
	"github.com/labourhub/booking-app/models"
	"github.com/labourhub/booking-app/scheduling"
)

// CreateReview records a rating for a completed booking. Only the booking's
// customer may review, and only once: completion unlocks exactly one review
// and no other status change revokes it.
func CreateReview(c *fiber.Ctx) error {
	customerID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		BookingID uint    `json:"booking_id"`
		Rating    float64 `json:"rating"`
		Comment   string  `json:"comment"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, input.BookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.CustomerID != customerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only review your own bookings",
		})
	}
	if booking.Status != scheduling.StatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only completed bookings can be reviewed",
		})
	}

	review := models.Review{
		Rating:     input.Rating,
		Comment:    input.Comment,
		BookingID:  booking.ID,
		ProviderID: booking.ProviderID,
		CustomerID: customerID,
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This booking has already been reviewed",
		})
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetProviderReviews lists reviews for a provider, newest first
func GetProviderReviews(c *fiber.Ctx) error {
	id := c.Params("id")

	var reviews []models.Review
	if err := db.DB.Preload("Customer").
		Where("provider_id = ?", id).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	for i := range reviews {
		reviews[i].Customer.Password = ""
	}

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"count":   len(reviews),
	})
}
