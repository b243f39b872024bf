package labour

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/labourhub/booking-app/db"
	"github.com/labourhub/booking-app/models"
	"github.com/labourhub/booking-app/redis"
	"github.com/labourhub/booking-app/scheduling"
	"github.com/labourhub/booking-app/utils"
)

// requireProvider reads the authenticated provider from locals. When it
// returns false the response has already been written.
func requireProvider(c *fiber.Ctx) (uint, string, bool) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
		return 0, "", false
	}
	role, ok := c.Locals("role").(string)
	if !ok {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User role not found in context",
		})
		return 0, "", false
	}
	if role != "labour" && role != "admin" {
		c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied. Only providers can access this endpoint.",
		})
		return 0, "", false
	}
	return userID, role, true
}

// GetPendingBookings returns booking requests awaiting the provider's answer
func GetPendingBookings(c *fiber.Ctx) error {
	userID, _, ok := requireProvider(c)
	if !ok {
		return nil
	}

	var bookings []models.Booking
	if err := db.DB.Preload("Customer").
		Where("provider_id = ? AND status = ?", userID, scheduling.StatusPending).
		Order("preferred_date asc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// GetUpcomingBookings returns accepted bookings from today onwards
func GetUpcomingBookings(c *fiber.Ctx) error {
	userID, _, ok := requireProvider(c)
	if !ok {
		return nil
	}

	limit := 10
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	today := scheduling.DateOf(time.Now()).Time()

	var bookings []models.Booking
	if err := db.DB.Preload("Customer").
		Where("provider_id = ? AND status = ? AND preferred_date >= ?",
			userID, scheduling.StatusAccepted, today).
		Order("preferred_date asc").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// GetBookingHistory returns completed and rejected bookings, paginated
func GetBookingHistory(c *fiber.Ctx) error {
	userID, _, ok := requireProvider(c)
	if !ok {
		return nil
	}

	page := 1
	limit := 10
	if c.Query("page") != "" {
		if parsedPage := c.QueryInt("page"); parsedPage > 0 {
			page = parsedPage
		}
	}
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	offset := (page - 1) * limit

	// Optional status filter; default shows both outcomes
	statuses := []scheduling.BookingStatus{scheduling.StatusCompleted, scheduling.StatusRejected}
	switch c.Query("status") {
	case "completed":
		statuses = []scheduling.BookingStatus{scheduling.StatusCompleted}
	case "rejected":
		statuses = []scheduling.BookingStatus{scheduling.StatusRejected}
	}

	var total int64
	db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND status IN ?", userID, statuses).
		Count(&total)

	var bookings []models.Booking
	if err := db.DB.Preload("Customer").
		Where("provider_id = ? AND status IN ?", userID, statuses).
		Order("preferred_date desc").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"total":    total,
		"page":     page,
		"limit":    limit,
		"pages":    (total + int64(limit) - 1) / int64(limit),
	})
}

// UpdateBookingStatus applies a lifecycle action (accept, reject, complete)
// to one of the provider's bookings. Accept also works on a rejected booking:
// that is the reconsideration path. Terminal and disallowed transitions come
// back as reason codes, not user-facing messages.
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID, role, ok := requireProvider(c)
	if !ok {
		return nil
	}

	bookingID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	var updateData struct {
		Action string `json:"action"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	action := scheduling.Action(updateData.Action)
	if !action.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid action. Must be 'accept', 'reject', or 'complete'.",
		})
	}

	var booking models.Booking
	if err := db.DB.Preload("Customer").First(&booking, bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	// The lifecycle engine doesn't know who is acting; ownership is checked here
	if booking.ProviderID != userID && role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only update your own bookings",
		})
	}

	if err := booking.ApplyAction(db.DB, action); err != nil {
		status := fiber.StatusBadRequest
		if reason := scheduling.ReasonOf(err); reason == scheduling.ReasonTerminalState {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{
			"error":  err.Error(),
			"reason": scheduling.ReasonOf(err),
		})
	}

	redis.InvalidateSlots(booking.ProviderID, booking.Date().String())
	notifyStatusChange(&booking)

	return c.JSON(fiber.Map{
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}

func notifyStatusChange(booking *models.Booking) {
	if booking.Customer.Email == "" {
		return
	}

	var line string
	switch booking.Status {
	case scheduling.StatusAccepted:
		line = "Your booking has been accepted."
	case scheduling.StatusRejected:
		line = "Unfortunately your booking was declined. You can try another provider or date."
	case scheduling.StatusCompleted:
		line = "Your booking is complete. You can now leave a review."
	default:
		return
	}

	when := booking.PreferredDate.Format("2006-01-02")
	if booking.PreferredTime != nil {
		when += " " + *booking.PreferredTime
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Category:</strong> %s</li>
			<li><strong>When:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The LabourHub Team</p>
	`, booking.Customer.Name, line, booking.ServiceCategory, when, booking.Status)

	if err := utils.SendEmail(booking.Customer.Email, "Booking Update", body); err != nil {
		log.Printf("booking %s: status email failed: %v", booking.BookingID, err)
	}
}
