package models

import (
	"gorm.io/gorm"
)

// LabourDetails is the public business card of a service provider, shown on
// provider browse and detail pages.
type LabourDetails struct {
	gorm.Model
	ProviderID  uint    `json:"provider_id"`
	DisplayName string  `json:"display_name"`
	Bio         string  `json:"bio"`
	Category    string  `json:"category"` // primary service category
	Skills      string  `json:"skills"`   // comma separated
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	PhoneNumber string  `json:"phone_number"`
	HourlyRate  float64 `json:"hourly_rate"`
	Experience  int     `json:"experience_years"`
}
