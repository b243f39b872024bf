package scheduling

import (
	"errors"
	"fmt"
)

// BookingStatus is the lifecycle state of a booking. The numeric codes are the
// wire values exchanged with clients and stored in the database.
type BookingStatus int

const (
	StatusRejected  BookingStatus = -1
	StatusPending   BookingStatus = 1
	StatusAccepted  BookingStatus = 2
	StatusCompleted BookingStatus = 3
)

func (s BookingStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusAccepted:
		return "accepted"
	case StatusCompleted:
		return "completed"
	case StatusRejected:
		return "rejected"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// IsValid reports whether s is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transitions exist out of s. Rejection
// is not terminal: a provider may reconsider a rejected request.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted
}

// Action is a provider-initiated lifecycle action.
type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
)

// IsValid reports whether a is a recognized action.
func (a Action) IsValid() bool {
	switch a {
	case ActionAccept, ActionReject, ActionComplete:
		return true
	}
	return false
}

var (
	// ErrTerminalState is returned for any action on a completed booking.
	ErrTerminalState = errors.New("booking is in a terminal state")
	// ErrInvalidTransition is returned when the action is not allowed from
	// the booking's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ReasonOf maps a lifecycle error to its machine-readable reason code.
func ReasonOf(err error) Reason {
	switch {
	case errors.Is(err, ErrTerminalState):
		return ReasonTerminalState
	case errors.Is(err, ErrInvalidTransition):
		return ReasonInvalidTransition
	}
	return ""
}

// transitions is the allowed status transition table. Completion requires a
// prior accept; rejected requests can be accepted again on reconsideration.
var transitions = map[BookingStatus]map[Action]BookingStatus{
	StatusPending: {
		ActionAccept: StatusAccepted,
		ActionReject: StatusRejected,
	},
	StatusAccepted: {
		ActionComplete: StatusCompleted,
	},
	StatusRejected: {
		ActionAccept: StatusAccepted,
	},
}

// Transition applies a provider action to the current status and returns the
// next status. The engine does not check who is acting; callers must verify
// that the acting party owns the booking before applying a transition.
func Transition(cur BookingStatus, a Action) (BookingStatus, error) {
	if cur.Terminal() {
		return cur, ErrTerminalState
	}
	next, ok := transitions[cur][a]
	if !ok {
		return cur, ErrInvalidTransition
	}
	return next, nil
}
