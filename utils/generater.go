package utils

import (
	"github.com/google/uuid"
)

// NewBookingID returns an opaque, server-assigned booking identifier.
func NewBookingID() string {
	return uuid.NewString()
}
