package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoncore/BookingSystem/pkg/types"
)

func toStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		interval int
		want     []string
	}{
		{
			name:     "standard half hour grid",
			start:    "09:00",
			end:      "11:00",
			interval: 30,
			want:     []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:     "end bound excluded",
			start:    "17:00",
			end:      "18:00",
			interval: 30,
			want:     []string{"17:00", "17:30"},
		},
		{
			name:     "interval does not divide window evenly",
			start:    "09:00",
			end:      "10:10",
			interval: 45,
			want:     []string{"09:00", "09:45"},
		},
		{
			name:     "closing near midnight terminates",
			start:    "23:00",
			end:      "23:59",
			interval: 30,
			want:     []string{"23:00", "23:30"},
		},
		{
			name:     "empty window",
			start:    "09:00",
			end:      "09:00",
			interval: 30,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := generateTimeSlots(types.TimeString(tt.start), types.TimeString(tt.end), tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.want, toStrings(slots))
		})
	}
}

func TestSubtractBooked(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}

	assert.Equal(t,
		[]string{"09:00", "10:00", "10:30"},
		subtractBooked(slots, []string{"09:30"}))

	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30"},
		subtractBooked(slots, nil))

	assert.Equal(t,
		[]string{},
		subtractBooked(slots, []string{"09:00", "09:30", "10:00", "10:30"}))

	// занятое время вне сетки слотов ни на что не влияет
	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30"},
		subtractBooked(slots, []string{"09:15"}))
}
