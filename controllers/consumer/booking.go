package consumer

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/labourhub/booking-app/db"
	"github.com/labourhub/booking-app/models"
	"github.com/labourhub/booking-app/redis"
	"github.com/labourhub/booking-app/scheduling"
	"github.com/labourhub/booking-app/utils"
)

// schedulingInputs loads a provider's weekly profile and the already-taken
// times for a date. Rejected bookings don't hold a slot; everything else does.
func schedulingInputs(tx *gorm.DB, providerID uint, date scheduling.Date) (scheduling.WeekProfile, []scheduling.ClockTime, error) {
	var rows []models.WorkingHours
	if err := tx.Where("provider_id = ?", providerID).Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	var bookings []models.Booking
	if err := tx.Where("provider_id = ? AND preferred_date = ? AND status <> ? AND preferred_time IS NOT NULL",
		providerID, date.Time(), scheduling.StatusRejected).
		Find(&bookings).Error; err != nil {
		return nil, nil, err
	}

	var booked []scheduling.ClockTime
	for _, b := range bookings {
		if b.PreferredTime == nil {
			continue
		}
		t, err := scheduling.ParseClock(*b.PreferredTime)
		if err != nil {
			continue
		}
		booked = append(booked, t)
	}

	return models.WeekProfileOf(rows), booked, nil
}

// GetProviderSlots returns the offerable "HH:MM" slots for a provider and
// date. An empty list still allows booking: the request then goes through
// without a time and the provider arranges it directly.
func GetProviderSlots(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider ID",
		})
	}

	date, err := scheduling.ParseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid or missing date",
			Error:   err.Error(),
		})
	}

	var provider models.User
	if err := db.DB.First(&provider, providerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
		})
	}

	if slots, ok := redis.GetSlots(uint(providerID), date.String()); ok {
		return c.JSON(fiber.Map{
			"provider_id": providerID,
			"date":        date.String(),
			"slots":       slots,
			"count":       len(slots),
		})
	}

	profile, booked, err := schedulingInputs(db.DB, uint(providerID), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load provider availability",
			Error:   err.Error(),
		})
	}

	slots := scheduling.FormatSlots(scheduling.GenerateSlots(profile, date, time.Now(), booked))
	redis.SetSlots(uint(providerID), date.String(), slots)

	return c.JSON(fiber.Map{
		"provider_id": providerID,
		"date":        date.String(),
		"slots":       slots,
		"count":       len(slots),
	})
}

// CreateBooking validates the customer's chosen date and slot and creates a
// pending booking. Validation failures come back as reason codes the UI can
// map to messages; none of them are server errors.
func CreateBooking(c *fiber.Ctx) error {
	customerID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		ProviderID      uint                `json:"provider_id"`
		ServiceCategory string              `json:"service_category"`
		PreferredDate   scheduling.Date     `json:"preferred_date"`
		PreferredTime   *string             `json:"preferred_time"`
		WorkDescription string              `json:"work_description"`
		Urgency         models.UrgencyLevel `json:"urgency_level"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Urgency != "" && !input.Urgency.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "urgency_level must be one of low, normal, high, urgent",
		})
	}

	var provider models.User
	if err := db.DB.First(&provider, input.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
		})
	}

	var chosen *scheduling.ClockTime
	if input.PreferredTime != nil {
		t, err := scheduling.ParseClock(*input.PreferredTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "preferred_time must be HH:MM",
				Error:   err.Error(),
			})
		}
		chosen = &t
	}

	booking := models.Booking{
		ProviderID:      input.ProviderID,
		CustomerID:      customerID,
		ServiceCategory: input.ServiceCategory,
		PreferredDate:   input.PreferredDate.Time(),
		WorkDescription: input.WorkDescription,
		Urgency:         input.Urgency,
		Status:          scheduling.StatusPending,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		// Lock same-day bookings so two customers can't take the same slot in
		// parallel. Best effort at this layer; the unique booking ID makes
		// retries safe.
		if chosen != nil {
			var holder models.Booking
			if err := tx.Raw(`
				SELECT *
				FROM bookings
				WHERE provider_id = ? AND preferred_date = ? AND preferred_time = ? AND status <> ?
				FOR UPDATE
				LIMIT 1
			`, input.ProviderID, input.PreferredDate.Time(), chosen.String(), scheduling.StatusRejected).
				Scan(&holder).Error; err != nil {
				return err
			}
			if holder.ID != 0 {
				return fmt.Errorf("time slot not available")
			}
		}

		profile, booked, err := schedulingInputs(tx, input.ProviderID, input.PreferredDate)
		if err != nil {
			return err
		}

		res := scheduling.Validate(profile, input.PreferredDate, chosen, time.Now(), booked)
		if !res.OK {
			return &validationError{reason: res.Reason}
		}

		if chosen != nil {
			s := chosen.String()
			booking.PreferredTime = &s
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if verr, ok := err.(*validationError); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"ok":     false,
				"reason": verr.reason,
			})
		}
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available or failed to create booking",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots(input.ProviderID, input.PreferredDate.String())
	notifyBookingCreated(&booking, &provider)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// validationError carries a scheduling reason code out of the transaction.
type validationError struct {
	reason scheduling.Reason
}

func (e *validationError) Error() string {
	return string(e.reason)
}

// GetMyBookings returns the logged-in customer's bookings, newest first
func GetMyBookings(c *fiber.Ctx) error {
	customerID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Preload("Provider").
		Where("customer_id = ?", customerID).
		Order("preferred_date desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetBooking returns one of the logged-in customer's bookings
func GetBooking(c *fiber.Ctx) error {
	customerID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Provider").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}
	if booking.CustomerID != customerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only view your own bookings",
		})
	}
	return c.JSON(booking)
}

func notifyBookingCreated(booking *models.Booking, provider *models.User) {
	var customer models.User
	if err := db.DB.First(&customer, booking.CustomerID).Error; err != nil {
		log.Printf("booking %s: customer lookup failed: %v", booking.BookingID, err)
		return
	}

	when := booking.PreferredDate.Format("2006-01-02")
	if booking.PreferredTime != nil {
		when += " " + *booking.PreferredTime
	} else {
		when += " (time to be arranged)"
	}

	customerBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking request has been sent.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Category:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>When:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>You will be notified when the provider responds.</p>
		<p>Best regards,</p>
		<p>The LabourHub Team</p>
	`, customer.Name, booking.ServiceCategory, provider.Name, when, booking.Status)
	if err := utils.SendEmail(customer.Email, "Booking Request Sent", customerBody); err != nil {
		log.Printf("booking %s: customer email failed: %v", booking.BookingID, err)
	}

	providerBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new booking request.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Category:</strong> %s</li>
			<li><strong>Customer:</strong> %s</li>
			<li><strong>When:</strong> %s</li>
			<li><strong>Urgency:</strong> %s</li>
		</ul>
		<p>Please accept or decline from your dashboard.</p>
		<p>Best regards,</p>
		<p>The LabourHub Team</p>
	`, provider.Name, booking.ServiceCategory, customer.Name, when, booking.Urgency)
	if err := utils.SendEmail(provider.Email, "New Booking Request", providerBody); err != nil {
		log.Printf("booking %s: provider email failed: %v", booking.BookingID, err)
	}
}
