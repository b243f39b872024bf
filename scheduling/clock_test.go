package scheduling

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, ClockTime(9*60+5), c)
	assert.Equal(t, "09:05", c.String())

	for _, bad := range []string{"", "9am", "25:00", "12:60", "12-30"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestClockTime_JSON(t *testing.T) {
	raw, err := json.Marshal(ClockTime(16 * 60))
	require.NoError(t, err)
	assert.Equal(t, `"16:00"`, string(raw))

	var c ClockTime
	require.NoError(t, json.Unmarshal([]byte(`"08:30"`), &c))
	assert.Equal(t, ClockTime(8*60+30), c)

	assert.Error(t, json.Unmarshal([]byte(`"bad"`), &c))
}

func TestClockOf(t *testing.T) {
	at := time.Date(2026, 3, 6, 14, 10, 59, 0, time.UTC)
	assert.Equal(t, ClockTime(14*60+10), ClockOf(at))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-06")
	require.NoError(t, err)
	assert.Equal(t, Date{2026, time.March, 6}, d)
	assert.Equal(t, time.Friday, d.Weekday())
	assert.Equal(t, "2026-03-06", d.String())

	_, err = ParseDate("06/03/2026")
	assert.Error(t, err)
}

func TestDate_Ordering(t *testing.T) {
	a := Date{2026, time.March, 6}
	b := Date{2026, time.March, 7}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, a.Equal(a))
	assert.True(t, Date{}.IsZero())
	assert.True(t, Date{2025, time.December, 31}.Before(a))
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-06"`), &d))
	assert.Equal(t, Date{2026, time.March, 6}, d)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-06"`, string(raw))
}
