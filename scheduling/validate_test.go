package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_PastDate(t *testing.T) {
	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	profile := WeekProfile{time.Thursday: workday(t, "09:00", "17:00")}

	res := Validate(profile, Date{2026, time.March, 5}, nil, now, nil)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonPastDate, res.Reason)

	res = Validate(profile, Date{}, nil, now, nil)
	assert.Equal(t, ReasonPastDate, res.Reason)
}

func TestValidate_TimeRequiredWhenSlotsExist(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	profile := WeekProfile{time.Friday: workday(t, "09:00", "17:00")}

	res := Validate(profile, Date{2026, time.March, 6}, nil, now, nil)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonTimeRequired, res.Reason)
}

func TestValidate_DegradedPath(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	date := Date{2026, time.March, 6}

	t.Run("day off", func(t *testing.T) {
		profile := WeekProfile{time.Friday: {Available: false}}
		res := Validate(profile, date, nil, now, nil)
		assert.True(t, res.OK)
	})
	t.Run("no profile configured", func(t *testing.T) {
		res := Validate(nil, date, nil, now, nil)
		assert.True(t, res.OK)
	})
	t.Run("fully booked", func(t *testing.T) {
		profile := WeekProfile{time.Friday: workday(t, "09:00", "10:00")}
		booked := []ClockTime{mustClock(t, "09:00"), mustClock(t, "09:30")}
		res := Validate(profile, date, nil, now, booked)
		assert.True(t, res.OK)
	})
}

func TestValidate_PastTimeToday(t *testing.T) {
	now := time.Date(2026, 3, 6, 14, 10, 0, 0, time.UTC)
	profile := WeekProfile{time.Friday: workday(t, "09:00", "18:00")}
	date := DateOf(now)

	earlier := mustClock(t, "13:00")
	res := Validate(profile, date, &earlier, now, nil)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonPastTime, res.Reason)

	// Equal to the current time of day is also rejected; must be strictly later.
	exact := mustClock(t, "14:10")
	res = Validate(profile, date, &exact, now, nil)
	assert.Equal(t, ReasonPastTime, res.Reason)

	later := mustClock(t, "15:30")
	res = Validate(profile, date, &later, now, nil)
	assert.True(t, res.OK)
}

func TestValidate_FutureDateWithTime(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	profile := WeekProfile{time.Friday: workday(t, "09:00", "17:00")}

	// Any time on a future date passes the clock rules, even an early one.
	chosen := mustClock(t, "09:00")
	res := Validate(profile, Date{2026, time.March, 6}, &chosen, now, nil)
	require.True(t, res.OK)
	assert.Empty(t, res.Reason)
}
