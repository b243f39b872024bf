package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/labourhub/booking-app/scheduling"
	"github.com/labourhub/booking-app/utils"
)

// UrgencyLevel is informational only; it never affects slot logic.
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyNormal UrgencyLevel = "normal"
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyUrgent UrgencyLevel = "urgent"
)

func (u UrgencyLevel) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// Booking is a customer's request for a provider's time. PreferredTime is null
// only when no slots were offerable for the date at creation time; the
// provider then contacts the customer to arrange timing. Bookings are never
// deleted and become immutable once completed.
type Booking struct {
	gorm.Model
	BookingID       string                   `json:"booking_id" gorm:"uniqueIndex;size:36"`
	ProviderID      uint                     `json:"provider_id"`
	Provider        User                     `json:"provider" gorm:"foreignKey:ProviderID"`
	CustomerID      uint                     `json:"customer_id"`
	Customer        User                     `json:"customer" gorm:"foreignKey:CustomerID"`
	ServiceCategory string                   `json:"service_category"`
	PreferredDate   time.Time                `json:"preferred_date" gorm:"type:date"`
	PreferredTime   *string                  `json:"preferred_time"` // "HH:MM", null on the degraded path
	WorkDescription string                   `json:"work_description"`
	Urgency         UrgencyLevel             `json:"urgency_level"`
	Status          scheduling.BookingStatus `json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == "" {
		b.BookingID = utils.NewBookingID()
	}
	if b.Status == 0 {
		b.Status = scheduling.StatusPending
	}
	if b.Urgency == "" {
		b.Urgency = UrgencyNormal
	}
	return nil
}

// Date returns the preferred date as a scheduling date.
func (b *Booking) Date() scheduling.Date {
	return scheduling.DateOf(b.PreferredDate)
}

// ApplyAction advances the booking through the lifecycle engine and persists
// the new status. Ownership of the booking must be checked by the caller.
func (b *Booking) ApplyAction(tx *gorm.DB, a scheduling.Action) error {
	next, err := scheduling.Transition(b.Status, a)
	if err != nil {
		return err
	}
	b.Status = next
	return tx.Save(b).Error
}
