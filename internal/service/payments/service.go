package payments

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/akoncore/BookingSystem/internal/config"
	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/service/payments/models"
)

// Service финансовый сервис: распределение выручки между мастером и салоном
// и расчёт возврата при отмене
type Service struct {
	bookingRepo  BookingRepository
	policy       config.PolicyConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр финансового сервиса
func NewService(
	bookingRepo BookingRepository,
	policy config.PolicyConfig,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Split распределяет стоимость бронирования между мастером и салоном.
// Каждая доля округляется до копеек независимо, поэтому сумма долей может
// отличаться от исходной цены на величину округления.
func (s *Service) Split(totalPrice float64) models.Split {
	return models.Split{
		TotalPrice:   totalPrice,
		MasterAmount: round2(totalPrice * s.policy.MasterShare),
		SalonAmount:  round2(totalPrice * s.policy.SalonShare),
	}
}

// Quote рассчитывает условия отмены бронирования на текущий момент.
// Сначала проверяется статус: завершённое или уже отменённое бронирование
// отменить нельзя независимо от времени.
func (s *Service) Quote(booking *domain.Booking) (models.RefundQuote, error) {
	if !booking.CanBeCancelled() {
		return models.RefundQuote{
			CanCancel: false,
			Reason:    fmt.Sprintf("booking is already %s", booking.Status),
		}, nil
	}

	appointmentAt, err := booking.AppointmentAt()
	if err != nil {
		return models.RefundQuote{}, fmt.Errorf("%w: Quote - invalid appointment time: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	hoursUntil := appointmentAt.Sub(now).Hours()

	var percent float64
	var reason string

	switch {
	case hoursUntil <= 0:
		percent = 0
		reason = "appointment already passed"
	case hoursUntil >= s.policy.CancellationWindowHours:
		percent = s.policy.EarlyRefundPercent
		reason = fmt.Sprintf("cancelled more than %g hours in advance", s.policy.CancellationWindowHours)
	default:
		percent = s.policy.LateRefundPercent
		reason = fmt.Sprintf("cancelled less than %g hours before appointment", s.policy.CancellationWindowHours)
	}

	refund := round2(booking.TotalPrice * percent)

	return models.RefundQuote{
		CanCancel:     true,
		RefundAmount:  refund,
		RefundPercent: percent * 100,
		FeeAmount:     round2(booking.TotalPrice - refund),
		HoursUntil:    hoursUntil,
		Reason:        reason,
	}, nil
}

// MasterBalance считает заработок мастера по завершённым бронированиям
// за период (границы опциональны)
func (s *Service) MasterBalance(ctx context.Context, masterID int64, from, to *time.Time) (*models.BalanceReport, error) {
	s.logger.Info("MasterBalance: calculating balance for master=%d", masterID)

	bookings, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		MasterID:      &masterID,
		DateFrom:      from,
		DateTo:        to,
		OnlyCompleted: true,
	})
	if err != nil {
		s.logger.Error("MasterBalance: repository error for master=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: MasterBalance - repository error: %v", ErrInternal, err)
	}

	report := &models.BalanceReport{CompletedBookings: len(bookings)}
	for _, b := range bookings {
		report.TotalRevenue += b.TotalPrice
		report.Earnings += round2(b.TotalPrice * s.policy.MasterShare)
	}
	report.TotalRevenue = round2(report.TotalRevenue)
	report.Earnings = round2(report.Earnings)

	s.logger.Info("MasterBalance: master=%d completed=%d earnings=%.2f",
		masterID, report.CompletedBookings, report.Earnings)
	return report, nil
}

// SalonBalance считает заработок салона по завершённым бронированиям
// за период (границы опциональны)
func (s *Service) SalonBalance(ctx context.Context, salonID int64, from, to *time.Time) (*models.BalanceReport, error) {
	s.logger.Info("SalonBalance: calculating balance for salon=%d", salonID)

	bookings, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		SalonID:       &salonID,
		DateFrom:      from,
		DateTo:        to,
		OnlyCompleted: true,
	})
	if err != nil {
		s.logger.Error("SalonBalance: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: SalonBalance - repository error: %v", ErrInternal, err)
	}

	report := &models.BalanceReport{CompletedBookings: len(bookings)}
	for _, b := range bookings {
		report.TotalRevenue += b.TotalPrice
		report.Earnings += round2(b.TotalPrice * s.policy.SalonShare)
	}
	report.TotalRevenue = round2(report.TotalRevenue)
	report.Earnings = round2(report.Earnings)

	s.logger.Info("SalonBalance: salon=%d completed=%d earnings=%.2f",
		salonID, report.CompletedBookings, report.Earnings)
	return report, nil
}

// round2 округляет до двух знаков после запятой
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
