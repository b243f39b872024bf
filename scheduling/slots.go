package scheduling

import "time"

const (
	// SlotStep is the spacing between offered slots, in minutes.
	SlotStep = 30
	// LeadTime is the minimum notice before a same-day slot can be offered,
	// in minutes.
	LeadTime = 60
)

// GenerateSlots computes the offerable slots for date from the provider's
// weekly profile, the current wall clock and the times already taken by other
// bookings for the same provider and date. An empty result is not an error:
// the caller may still create a booking without a time and the provider
// arranges timing with the customer directly.
//
// The computation is pure; identical inputs always yield identical output.
func GenerateSlots(profile WeekProfile, date Date, now time.Time, booked []ClockTime) []ClockTime {
	if profile == nil {
		return nil
	}
	day, ok := profile[date.Weekday()]
	if !ok || !day.Available || day.End <= day.Start {
		return nil
	}

	today := DateOf(now)
	if date.Before(today) {
		return nil
	}

	floor := day.Start
	if date.Equal(today) {
		if earliest := ceilStep(ClockOf(now) + LeadTime); earliest > floor {
			floor = earliest
		}
	}

	taken := make(map[ClockTime]bool, len(booked))
	for _, b := range booked {
		taken[b] = true
	}

	var slots []ClockTime
	for m := floor; m < day.End; m += SlotStep {
		if taken[m] || inBreak(day.Breaks, m) {
			continue
		}
		slots = append(slots, m)
	}
	return slots
}

// ceilStep rounds c up to the next SlotStep boundary. Exact multiples are
// left unchanged.
func ceilStep(c ClockTime) ClockTime {
	if rem := c % SlotStep; rem != 0 {
		return c + SlotStep - rem
	}
	return c
}

func inBreak(breaks []Interval, c ClockTime) bool {
	for _, b := range breaks {
		if b.Contains(c) {
			return true
		}
	}
	return false
}

// FormatSlots renders slots as "HH:MM" strings for API responses.
func FormatSlots(slots []ClockTime) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
