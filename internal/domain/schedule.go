package domain

import (
	"time"

	"github.com/akoncore/BookingSystem/pkg/types"
)

// MasterSchedule is one weekday row of a master's weekly schedule.
// A master has at most one row per weekday; a missing row means "not working".
type MasterSchedule struct {
	ID        int64
	MasterID  int64
	Weekday   int // 0 = Monday .. 6 = Sunday
	StartTime types.TimeString
	EndTime   types.TimeString
	IsWorking bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeekdayNames maps schedule weekdays (Monday=0) to display names.
var WeekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayOf converts a date to the schedule weekday numbering (Monday=0).
// time.Weekday counts from Sunday, so the value is shifted.
func WeekdayOf(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// Covers reports whether t falls inside the working window. Both bounds are
// inclusive: a booking exactly at closing time is allowed.
func (s *MasterSchedule) Covers(t types.TimeString) bool {
	if !s.IsWorking {
		return false
	}
	return !t.IsBefore(s.StartTime) && !t.IsAfter(s.EndTime)
}

// ValidWeekday reports whether d is inside the 0..6 range.
func ValidWeekday(d int) bool {
	return d >= 0 && d <= 6
}
