package scheduling

import "time"

// Reason identifies why a booking request or status transition was refused.
type Reason string

const (
	ReasonPastDate          Reason = "REASON_PAST_DATE"
	ReasonTimeRequired      Reason = "REASON_TIME_REQUIRED"
	ReasonPastTime          Reason = "REASON_PAST_TIME"
	ReasonTerminalState     Reason = "REASON_TERMINAL_STATE"
	ReasonInvalidTransition Reason = "REASON_INVALID_TRANSITION"
)

// Result is the outcome of validating a booking request. Failures are values,
// never panics, so callers can aggregate them across a whole form.
type Result struct {
	OK     bool   `json:"ok"`
	Reason Reason `json:"reason,omitempty"`
}

func accepted() Result {
	return Result{OK: true}
}

func rejected(r Reason) Result {
	return Result{Reason: r}
}

// Validate checks a customer's chosen date and time against the provider's
// profile and the current clock. Rules run in order; the first failure wins.
//
// A nil t is allowed only when no slots are offerable for the date. That is
// the degraded path: the booking is created without a time and the provider
// contacts the customer to arrange it.
func Validate(profile WeekProfile, date Date, t *ClockTime, now time.Time, booked []ClockTime) Result {
	if date.IsZero() || date.Before(DateOf(now)) {
		return rejected(ReasonPastDate)
	}
	if t == nil {
		if len(GenerateSlots(profile, date, now, booked)) > 0 {
			return rejected(ReasonTimeRequired)
		}
		return accepted()
	}
	if date.Equal(DateOf(now)) && *t <= ClockOf(now) {
		return rejected(ReasonPastTime)
	}
	return accepted()
}
