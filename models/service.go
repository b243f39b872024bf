package models

import (
	"gorm.io/gorm"
)

// Service is a type of work a provider offers, e.g. "pipe repair" in the
// "plumbing" category. Category feeds Booking.ServiceCategory.
type Service struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	HourlyRate  float64 `json:"hourly_rate"`
	ProviderID  uint    `json:"provider_id"`
	Provider    User    `json:"provider" gorm:"foreignKey:ProviderID"`
}
