package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoncore/BookingSystem/internal/config"
	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/pkg/types"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
	err        error
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, f.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultPolicy() config.PolicyConfig {
	return config.PolicyConfig{
		MasterShare:             0.70,
		SalonShare:              0.30,
		CancellationWindowHours: 24,
		EarlyRefundPercent:      1.0,
		LateRefundPercent:       0.0,
	}
}

func newTestService(repo *fakeBookingRepo, now time.Time) *Service {
	svc := NewService(repo, defaultPolicy(), nopLogger{})
	svc.timeProvider = &fixedClock{now: now}
	return svc
}

func TestSplit(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, time.Now())

	tests := []struct {
		total  float64
		master float64
		salon  float64
	}{
		{10000, 7000, 3000},
		{5000, 3500, 1500},
		{99.99, 69.99, 30},
		{0, 0, 0},
	}

	for _, tt := range tests {
		split := svc.Split(tt.total)
		assert.Equal(t, tt.total, split.TotalPrice)
		assert.Equal(t, tt.master, split.MasterAmount)
		assert.Equal(t, tt.salon, split.SalonAmount)
	}
}

func quoteBooking(status domain.BookingStatus, date time.Time, at string, price float64) *domain.Booking {
	return &domain.Booking{
		ID:              1,
		Status:          status,
		AppointmentDate: date,
		AppointmentTime: types.TimeString(at),
		TotalPrice:      price,
	}
}

func TestQuote_EarlyCancellation(t *testing.T) {
	now := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{}, now)

	// ровно за 25 часов до записи
	booking := quoteBooking(domain.StatusConfirmed, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), "11:00", 5000)

	quote, err := svc.Quote(booking)
	require.NoError(t, err)

	assert.True(t, quote.CanCancel)
	assert.Equal(t, 5000.0, quote.RefundAmount)
	assert.Equal(t, 100.0, quote.RefundPercent)
	assert.Equal(t, 0.0, quote.FeeAmount)
	assert.InDelta(t, 25.0, quote.HoursUntil, 1e-9)
	assert.Contains(t, quote.Reason, "more than 24 hours in advance")
}

func TestQuote_ExactWindowBoundary(t *testing.T) {
	// ровно 24 часа до записи трактуются как ранняя отмена
	now := time.Date(2025, 10, 13, 11, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{}, now)

	booking := quoteBooking(domain.StatusPending, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), "11:00", 3000)

	quote, err := svc.Quote(booking)
	require.NoError(t, err)

	assert.True(t, quote.CanCancel)
	assert.Equal(t, 3000.0, quote.RefundAmount)
	assert.Equal(t, 100.0, quote.RefundPercent)
}

func TestQuote_LateCancellation(t *testing.T) {
	now := time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{}, now)

	// за два часа до записи
	booking := quoteBooking(domain.StatusConfirmed, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), "11:00", 5000)

	quote, err := svc.Quote(booking)
	require.NoError(t, err)

	assert.True(t, quote.CanCancel)
	assert.Equal(t, 0.0, quote.RefundAmount)
	assert.Equal(t, 0.0, quote.RefundPercent)
	assert.Equal(t, 5000.0, quote.FeeAmount)
	assert.Contains(t, quote.Reason, "less than 24 hours before appointment")
}

func TestQuote_AppointmentPassed(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{}, now)

	booking := quoteBooking(domain.StatusConfirmed, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), "11:00", 5000)

	quote, err := svc.Quote(booking)
	require.NoError(t, err)

	assert.True(t, quote.CanCancel)
	assert.Equal(t, 0.0, quote.RefundAmount)
	assert.Equal(t, "appointment already passed", quote.Reason)
	assert.Less(t, quote.HoursUntil, 0.0)
}

func TestQuote_TerminalStatus(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC))

	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled} {
		booking := quoteBooking(status, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), "11:00", 5000)

		quote, err := svc.Quote(booking)
		require.NoError(t, err)

		assert.False(t, quote.CanCancel)
		assert.Equal(t, 0.0, quote.RefundAmount)
		assert.Contains(t, quote.Reason, string(status))
	}
}

func TestMasterBalance(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{TotalPrice: 1000, Status: domain.StatusCompleted},
		{TotalPrice: 2500, Status: domain.StatusCompleted},
	}}
	svc := newTestService(repo, time.Now())

	report, err := svc.MasterBalance(context.Background(), 7, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, report.CompletedBookings)
	assert.Equal(t, 3500.0, report.TotalRevenue)
	// 700.00 + 1750.00, доли округляются независимо
	assert.Equal(t, 2450.0, report.Earnings)

	require.NotNil(t, repo.lastFilter.MasterID)
	assert.Equal(t, int64(7), *repo.lastFilter.MasterID)
	assert.True(t, repo.lastFilter.OnlyCompleted)
}

func TestSalonBalance(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{TotalPrice: 1000, Status: domain.StatusCompleted},
	}}
	svc := newTestService(repo, time.Now())

	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)

	report, err := svc.SalonBalance(context.Background(), 3, &from, &to)
	require.NoError(t, err)

	assert.Equal(t, 1, report.CompletedBookings)
	assert.Equal(t, 1000.0, report.TotalRevenue)
	assert.Equal(t, 300.0, report.Earnings)

	require.NotNil(t, repo.lastFilter.SalonID)
	assert.Equal(t, int64(3), *repo.lastFilter.SalonID)
	assert.Equal(t, &from, repo.lastFilter.DateFrom)
	assert.Equal(t, &to, repo.lastFilter.DateTo)
}

func TestMasterBalance_Empty(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, time.Now())

	report, err := svc.MasterBalance(context.Background(), 7, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, report.CompletedBookings)
	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Equal(t, 0.0, report.Earnings)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 69.99, round2(99.99*0.7))
	assert.Equal(t, 30.0, round2(99.99*0.3))
	assert.Equal(t, 1.0, round2(1.0000001))
}
