package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) ClockTime {
	t.Helper()
	c, err := ParseClock(s)
	require.NoError(t, err)
	return c
}

func workday(t *testing.T, start, end string) DayHours {
	t.Helper()
	return DayHours{Available: true, Start: mustClock(t, start), End: mustClock(t, end)}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	// Thursday 10:00, requesting Friday 09:00-17:00: all 16 half-hour slots.
	profile := WeekProfile{time.Friday: workday(t, "09:00", "17:00")}
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC) // Thursday
	date := Date{2026, time.March, 6}                   // Friday

	slots := GenerateSlots(profile, date, now, nil)
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "09:30", slots[1].String())
	assert.Equal(t, "16:30", slots[15].String())
}

func TestGenerateSlots_TodayLeadTime(t *testing.T) {
	// 14:10 + 60min = 15:10, rounded up to the 15:30 boundary.
	profile := WeekProfile{time.Friday: workday(t, "09:00", "18:00")}
	now := time.Date(2026, 3, 6, 14, 10, 0, 0, time.UTC) // Friday
	date := DateOf(now)

	slots := GenerateSlots(profile, date, now, nil)
	require.NotEmpty(t, slots)
	assert.Equal(t, "15:30", slots[0].String())
	assert.Equal(t, "17:30", slots[len(slots)-1].String())
}

func TestGenerateSlots_TodayLeadTimeOnBoundary(t *testing.T) {
	// 14:00 + 60min lands exactly on 15:00; no extra rounding.
	profile := WeekProfile{time.Friday: workday(t, "09:00", "18:00")}
	now := time.Date(2026, 3, 6, 14, 0, 0, 0, time.UTC)

	slots := GenerateSlots(profile, DateOf(now), now, nil)
	require.NotEmpty(t, slots)
	assert.Equal(t, "15:00", slots[0].String())
}

func TestGenerateSlots_ExcludesBooked(t *testing.T) {
	profile := WeekProfile{time.Friday: workday(t, "09:00", "11:00")}
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	date := Date{2026, time.March, 6}

	booked := []ClockTime{mustClock(t, "09:30"), mustClock(t, "10:30")}
	slots := GenerateSlots(profile, date, now, booked)

	assert.Equal(t, []string{"09:00", "10:00"}, FormatSlots(slots))
	for _, b := range booked {
		assert.NotContains(t, slots, b)
	}
}

func TestGenerateSlots_Breaks(t *testing.T) {
	day := workday(t, "09:00", "13:00")
	day.Breaks = []Interval{{Start: mustClock(t, "10:00"), End: mustClock(t, "11:00")}}
	profile := WeekProfile{time.Monday: day}

	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC) // Friday
	date := Date{2026, time.March, 9}                   // Monday

	slots := GenerateSlots(profile, date, now, nil)
	// 10:00 and 10:30 fall inside the break; 11:00 is the break end and is offered.
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30", "12:00", "12:30"}, FormatSlots(slots))
}

func TestGenerateSlots_EmptyCases(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	date := Date{2026, time.March, 6}

	t.Run("nil profile", func(t *testing.T) {
		assert.Empty(t, GenerateSlots(nil, date, now, nil))
	})
	t.Run("day not configured", func(t *testing.T) {
		profile := WeekProfile{time.Monday: workday(t, "09:00", "17:00")}
		assert.Empty(t, GenerateSlots(profile, date, now, nil))
	})
	t.Run("day off", func(t *testing.T) {
		profile := WeekProfile{time.Friday: {Available: false}}
		assert.Empty(t, GenerateSlots(profile, date, now, nil))
	})
	t.Run("start equals end", func(t *testing.T) {
		profile := WeekProfile{time.Friday: workday(t, "09:00", "09:00")}
		assert.Empty(t, GenerateSlots(profile, date, now, nil))
	})
	t.Run("end before start", func(t *testing.T) {
		profile := WeekProfile{time.Friday: workday(t, "17:00", "09:00")}
		assert.Empty(t, GenerateSlots(profile, date, now, nil))
	})
	t.Run("past date", func(t *testing.T) {
		profile := WeekProfile{time.Wednesday: workday(t, "09:00", "17:00")}
		assert.Empty(t, GenerateSlots(profile, Date{2026, time.March, 4}, now, nil))
	})
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	profile := WeekProfile{time.Friday: workday(t, "09:00", "17:00")}
	now := time.Date(2026, 3, 6, 11, 40, 0, 0, time.UTC)
	date := DateOf(now)
	booked := []ClockTime{mustClock(t, "14:00")}

	first := GenerateSlots(profile, date, now, booked)
	second := GenerateSlots(profile, date, now, booked)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_Ascending(t *testing.T) {
	profile := WeekProfile{time.Friday: workday(t, "08:15", "12:00")}
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	slots := GenerateSlots(profile, Date{2026, time.March, 6}, now, nil)
	require.NotEmpty(t, slots)
	assert.Equal(t, "08:15", slots[0].String())
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}
