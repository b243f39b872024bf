package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labourhub/booking-app/scheduling"
)

func TestBooking_BeforeCreateDefaults(t *testing.T) {
	b := Booking{
		ProviderID:    1,
		CustomerID:    2,
		PreferredDate: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, b.BeforeCreate(nil))
	assert.NotEmpty(t, b.BookingID)
	assert.Equal(t, scheduling.StatusPending, b.Status)
	assert.Equal(t, UrgencyNormal, b.Urgency)

	// Server-assigned ID is kept once set.
	id := b.BookingID
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, id, b.BookingID)
}

func TestBooking_Date(t *testing.T) {
	b := Booking{PreferredDate: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, scheduling.Date{Year: 2026, Month: time.March, Day: 6}, b.Date())
}

func TestUrgencyLevel_IsValid(t *testing.T) {
	for _, u := range []UrgencyLevel{UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent} {
		assert.True(t, u.IsValid())
	}
	assert.False(t, UrgencyLevel("asap").IsValid())
	assert.False(t, UrgencyLevel("").IsValid())
}
