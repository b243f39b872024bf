package models

import (
	"gorm.io/gorm"
)

// Review is a customer's rating of a completed booking. A booking becomes
// eligible for exactly one review when it reaches the completed status; no
// other transition unlocks or revokes eligibility.
type Review struct {
	gorm.Model
	Rating     float64 `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment    string  `json:"comment"`
	BookingID  uint    `json:"booking_id" gorm:"uniqueIndex"`
	Booking    Booking `json:"booking" gorm:"foreignKey:BookingID"`
	ProviderID uint    `json:"provider_id"`
	Provider   User    `json:"provider" gorm:"foreignKey:ProviderID"`
	CustomerID uint    `json:"customer_id"`
	Customer   User    `json:"customer" gorm:"foreignKey:CustomerID"`
}

// BeforeCreate hook to clamp the rating into the 1.0-5.0 range
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}
	return nil
}

// HasExistingReview checks whether the booking was already reviewed.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("booking_id = ? AND deleted_at IS NULL", r.BookingID).
		Count(&count).Error
	return count > 0, err
}
