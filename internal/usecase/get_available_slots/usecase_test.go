package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoncore/BookingSystem/internal/domain"
	scheduleRepo "github.com/akoncore/BookingSystem/internal/infra/storage/schedule"
	"github.com/akoncore/BookingSystem/pkg/types"
)

type fakeBookingRepo struct {
	booked []string
}

func (f *fakeBookingRepo) BookedTimes(_ context.Context, _ int64, _ time.Time) ([]string, error) {
	return f.booked, nil
}

type fakeScheduleRepo struct {
	schedule *domain.MasterSchedule
}

func (f *fakeScheduleRepo) GetByMasterAndWeekday(_ context.Context, _ int64, _ int) (*domain.MasterSchedule, error) {
	if f.schedule == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return f.schedule, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(schedule *domain.MasterSchedule, booked []string) *UseCase {
	return NewUseCase(&fakeBookingRepo{booked: booked}, &fakeScheduleRepo{schedule: schedule}, nopLogger{})
}

func workingDay(start, end string) *domain.MasterSchedule {
	return &domain.MasterSchedule{
		MasterID:  7,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		IsWorking: true,
	}
}

func TestExecute(t *testing.T) {
	uc := newUseCase(workingDay("09:00", "11:00"), []string{"09:30"})

	resp, err := uc.Execute(context.Background(), &Request{
		MasterID: 7,
		Date:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, resp.Working)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, resp.AvailableSlots)
	assert.Equal(t, []string{"09:30"}, resp.BookedSlots)
}

func TestExecute_CustomInterval(t *testing.T) {
	uc := newUseCase(workingDay("09:00", "12:00"), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		MasterID:        7,
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		IntervalMinutes: 60,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, resp.AvailableSlots)
}

func TestExecute_NoScheduleMeansDayOff(t *testing.T) {
	uc := newUseCase(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		MasterID: 7,
		Date:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.False(t, resp.Working)
	assert.Empty(t, resp.AvailableSlots)
	assert.Empty(t, resp.BookedSlots)
}

func TestExecute_DayOffDistinctFromFullyBooked(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	dayOff := workingDay("09:00", "10:00")
	dayOff.IsWorking = false
	uc := newUseCase(dayOff, nil)

	offResp, err := uc.Execute(context.Background(), &Request{MasterID: 7, Date: date})
	require.NoError(t, err)
	assert.False(t, offResp.Working)
	assert.Empty(t, offResp.AvailableSlots)

	uc = newUseCase(workingDay("09:00", "10:00"), []string{"09:00", "09:30"})
	fullResp, err := uc.Execute(context.Background(), &Request{MasterID: 7, Date: date})
	require.NoError(t, err)
	assert.True(t, fullResp.Working)
	assert.Empty(t, fullResp.AvailableSlots)
	assert.Len(t, fullResp.BookedSlots, 2)
}

func TestExecute_Idempotent(t *testing.T) {
	uc := newUseCase(workingDay("09:00", "11:00"), []string{"10:00"})
	req := &Request{MasterID: 7, Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(workingDay("09:00", "18:00"), nil)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{MasterID: 0, Date: date})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{MasterID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{MasterID: 7, Date: date, IntervalMinutes: 3})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = uc.Execute(context.Background(), &Request{MasterID: 7, Date: date, IntervalMinutes: 241})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
