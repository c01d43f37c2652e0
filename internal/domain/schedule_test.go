package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akoncore/BookingSystem/pkg/types"
)

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), 0}, // Monday
		{time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC), 4}, // Friday
		{time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), 5},
		{time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), 6}, // Sunday
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekdayOf(tt.date), tt.date.Format(DateFormat))
	}
}

func TestScheduleCovers(t *testing.T) {
	working := &MasterSchedule{
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("18:00"),
		IsWorking: true,
	}

	tests := []struct {
		at   string
		want bool
	}{
		{"09:00", true}, // opening bound inclusive
		{"12:30", true},
		{"18:00", true}, // closing bound inclusive
		{"08:59", false},
		{"18:01", false},
		{"00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			assert.Equal(t, tt.want, working.Covers(types.TimeString(tt.at)))
		})
	}
}

func TestScheduleCovers_DayOff(t *testing.T) {
	dayOff := &MasterSchedule{
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("18:00"),
		IsWorking: false,
	}
	assert.False(t, dayOff.Covers(types.TimeString("12:00")))
}

func TestValidWeekday(t *testing.T) {
	assert.True(t, ValidWeekday(0))
	assert.True(t, ValidWeekday(6))
	assert.False(t, ValidWeekday(-1))
	assert.False(t, ValidWeekday(7))
}

func TestWeekdayNames(t *testing.T) {
	assert.Equal(t, "Monday", WeekdayNames[0])
	assert.Equal(t, "Sunday", WeekdayNames[6])
}
