package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestWeekProfileOf(t *testing.T) {
	rows := []WorkingHours{
		{DayOfWeek: Monday, StartTime: "09:00", EndTime: "17:00", IsWorkDay: true,
			BreakStart: strPtr("12:00"), BreakEnd: strPtr("13:00")},
		{DayOfWeek: Tuesday, StartTime: "10:00", EndTime: "16:00", IsWorkDay: false},
	}

	profile := WeekProfileOf(rows)
	require.NotNil(t, profile)

	monday, ok := profile[time.Monday]
	require.True(t, ok)
	assert.True(t, monday.Available)
	assert.Equal(t, "09:00", monday.Start.String())
	assert.Equal(t, "17:00", monday.End.String())
	require.Len(t, monday.Breaks, 1)
	assert.Equal(t, "12:00", monday.Breaks[0].Start.String())

	tuesday, ok := profile[time.Tuesday]
	require.True(t, ok)
	assert.False(t, tuesday.Available)

	_, ok = profile[time.Wednesday]
	assert.False(t, ok)
}

func TestWeekProfileOf_Degrades(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		assert.Nil(t, WeekProfileOf(nil))
	})

	t.Run("malformed times leave the day unavailable", func(t *testing.T) {
		profile := WeekProfileOf([]WorkingHours{
			{DayOfWeek: Friday, StartTime: "9am", EndTime: "17:00", IsWorkDay: true},
		})
		require.NotNil(t, profile)
		assert.False(t, profile[time.Friday].Available)
	})

	t.Run("malformed break is dropped, day kept", func(t *testing.T) {
		profile := WeekProfileOf([]WorkingHours{
			{DayOfWeek: Friday, StartTime: "09:00", EndTime: "17:00", IsWorkDay: true,
				BreakStart: strPtr("noon"), BreakEnd: strPtr("13:00")},
		})
		day := profile[time.Friday]
		assert.True(t, day.Available)
		assert.Empty(t, day.Breaks)
	})

	t.Run("inverted break is dropped", func(t *testing.T) {
		profile := WeekProfileOf([]WorkingHours{
			{DayOfWeek: Friday, StartTime: "09:00", EndTime: "17:00", IsWorkDay: true,
				BreakStart: strPtr("14:00"), BreakEnd: strPtr("12:00")},
		})
		assert.Empty(t, profile[time.Friday].Breaks)
	})
}
