package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoncore/BookingSystem/pkg/types"
)

func TestBookingStatusPredicates(t *testing.T) {
	tests := []struct {
		status      BookingStatus
		active      bool
		terminal    bool
		canConfirm  bool
		canComplete bool
		canCancel   bool
	}{
		{StatusPending, true, false, true, false, true},
		{StatusConfirmed, true, false, false, true, true},
		{StatusCompleted, false, true, false, false, false},
		{StatusCancelled, false, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.terminal, b.IsTerminal())
			assert.Equal(t, tt.canConfirm, b.CanBeConfirmed())
			assert.Equal(t, tt.canComplete, b.CanBeCompleted())
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusConfirmed))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}

func TestTransitionActionTargets(t *testing.T) {
	assert.Equal(t, StatusConfirmed, ActionConfirm.TargetStatus())
	assert.Equal(t, StatusCompleted, ActionComplete.TargetStatus())
	assert.Equal(t, StatusCancelled, ActionCancel.TargetStatus())
	assert.Equal(t, BookingStatus(""), TransitionAction("promote").TargetStatus())
}

func TestTransitionSources(t *testing.T) {
	assert.Equal(t, []BookingStatus{StatusPending}, TransitionSources[ActionConfirm])
	assert.Equal(t, []BookingStatus{StatusConfirmed}, TransitionSources[ActionComplete])
	assert.Equal(t, []BookingStatus{StatusPending, StatusConfirmed}, TransitionSources[ActionCancel])
}

func TestValidAction(t *testing.T) {
	assert.True(t, ValidAction(ActionConfirm))
	assert.True(t, ValidAction(ActionComplete))
	assert.True(t, ValidAction(ActionCancel))
	assert.False(t, ValidAction("reopen"))
}

func TestNewBookingCode(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-[0-9A-F]{10}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := NewBookingCode()
		assert.Regexp(t, pattern, code)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, 100, "codes must not repeat")
}

func TestAppointmentAt(t *testing.T) {
	b := &Booking{
		AppointmentDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		AppointmentTime: types.TimeString("14:30"),
	}

	at, err := b.AppointmentAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC), at)
}
