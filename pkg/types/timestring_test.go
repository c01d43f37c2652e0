package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"09:60", true},
		{"0900", true},
		{"", true},
		{"morning", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("14:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringComparison(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("18:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.False(t, a.IsBefore(a))

	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(b))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringAt(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	at, err := TimeString("10:30").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC), at)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	// Postgres TIME columns come back with seconds
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("18:00:00")))
	assert.Equal(t, TimeString("18:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
