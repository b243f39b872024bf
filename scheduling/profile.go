package scheduling

import "time"

// Interval is a half-open [Start, End) window within a working day, used for
// breaks.
type Interval struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

// Contains reports whether c falls inside the interval.
func (i Interval) Contains(c ClockTime) bool {
	return c >= i.Start && c < i.End
}

// DayHours describes a provider's availability for one weekday. Start and End
// are ignored when Available is false.
type DayHours struct {
	Available bool       `json:"available"`
	Start     ClockTime  `json:"start"`
	End       ClockTime  `json:"end"`
	Breaks    []Interval `json:"breaks,omitempty"`
}

// WeekProfile is a provider's weekly working-hours profile. A nil profile or
// a missing day entry yields no offerable slots for that day; bookings can
// still be made without a time.
type WeekProfile map[time.Weekday]DayHours
