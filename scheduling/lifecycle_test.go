package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_Table(t *testing.T) {
	cases := []struct {
		name    string
		from    BookingStatus
		action  Action
		want    BookingStatus
		wantErr error
	}{
		{"pending accept", StatusPending, ActionAccept, StatusAccepted, nil},
		{"pending reject", StatusPending, ActionReject, StatusRejected, nil},
		{"pending complete skips accept", StatusPending, ActionComplete, StatusPending, ErrInvalidTransition},
		{"accepted complete", StatusAccepted, ActionComplete, StatusCompleted, nil},
		{"accepted accept", StatusAccepted, ActionAccept, StatusAccepted, ErrInvalidTransition},
		{"accepted reject", StatusAccepted, ActionReject, StatusAccepted, ErrInvalidTransition},
		{"rejected reconsidered", StatusRejected, ActionAccept, StatusAccepted, nil},
		{"rejected reject", StatusRejected, ActionReject, StatusRejected, ErrInvalidTransition},
		{"rejected complete", StatusRejected, ActionComplete, StatusRejected, ErrInvalidTransition},
		{"completed accept", StatusCompleted, ActionAccept, StatusCompleted, ErrTerminalState},
		{"completed reject", StatusCompleted, ActionReject, StatusCompleted, ErrTerminalState},
		{"completed complete", StatusCompleted, ActionComplete, StatusCompleted, ErrTerminalState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Transition(tc.from, tc.action)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTransition_FullLifecycle(t *testing.T) {
	s := StatusPending

	s, err := Transition(s, ActionAccept)
	require.NoError(t, err)
	require.Equal(t, StatusAccepted, s)

	s, err = Transition(s, ActionComplete)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, s)

	_, err = Transition(s, ActionAccept)
	assert.ErrorIs(t, err, ErrTerminalState)
	assert.Equal(t, ReasonTerminalState, ReasonOf(err))
}

func TestReasonOf(t *testing.T) {
	assert.Equal(t, ReasonTerminalState, ReasonOf(ErrTerminalState))
	assert.Equal(t, ReasonInvalidTransition, ReasonOf(ErrInvalidTransition))
	assert.Empty(t, ReasonOf(nil))
}

func TestBookingStatus_Codes(t *testing.T) {
	assert.Equal(t, 1, int(StatusPending))
	assert.Equal(t, 2, int(StatusAccepted))
	assert.Equal(t, 3, int(StatusCompleted))
	assert.Equal(t, -1, int(StatusRejected))

	assert.True(t, StatusCompleted.Terminal())
	assert.False(t, StatusRejected.Terminal())

	assert.True(t, StatusPending.IsValid())
	assert.False(t, BookingStatus(0).IsValid())
	assert.True(t, ActionAccept.IsValid())
	assert.False(t, Action("cancel").IsValid())
}
