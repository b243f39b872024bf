package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/labourhub/booking-app/db"
	"github.com/labourhub/booking-app/models"
	"github.com/labourhub/booking-app/scheduling"
	"github.com/labourhub/booking-app/utils"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	// Every evening, remind both sides about tomorrow's accepted bookings
	_, err := c.AddFunc("0 18 * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders finds accepted bookings for tomorrow and emails
// the customer and the provider
func sendBookingReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1)
	date := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)

	var bookings []models.Booking
	err := db.DB.Preload("Customer").Preload("Provider").
		Where("status = ? AND preferred_date = ?", scheduling.StatusAccepted, date).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	log.Printf("Found %d bookings for reminders", len(bookings))

	for _, booking := range bookings {
		if err := sendReminderEmails(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.BookingID, err)
			continue
		}
		log.Printf("Sent reminder for booking %s to %s and %s",
			booking.BookingID, booking.Customer.Email, booking.Provider.Email)
	}
}

// sendReminderEmails constructs and sends the reminder emails for one booking
func sendReminderEmails(booking *models.Booking) error {
	timing := "at a time your provider will confirm with you"
	if booking.PreferredTime != nil {
		timing = "at " + *booking.PreferredTime
	}
	date := booking.PreferredDate.Format("2006-01-02")

	customerBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your booking tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s, %s</li>
		</ul>
		<p>If you need to make changes, contact your provider as soon as possible.</p>
		<p>Best regards,</p>
		<p>The LabourHub Team</p>
	`, booking.Customer.Name, booking.Provider.Name, booking.ServiceCategory, date, timing)

	subject := fmt.Sprintf("Reminder: Booking Tomorrow - %s", booking.ServiceCategory)
	if err := utils.SendEmail(booking.Customer.Email, subject, customerBody); err != nil {
		return err
	}

	providerBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have an accepted booking tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Customer:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s, %s</li>
			<li><strong>Work:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The LabourHub Team</p>
	`, booking.Provider.Name, booking.Customer.Name, booking.ServiceCategory, date, timing, booking.WorkDescription)

	return utils.SendEmail(booking.Provider.Email, subject, providerBody)
}
