package bookings

import (
	"context"
	"time"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/integrations/notifier"
	"github.com/akoncore/BookingSystem/internal/integrations/payments"
	paymentModels "github.com/akoncore/BookingSystem/internal/service/payments/models"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	TransitionStatus(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) (bool, error)
	CancelWithNotes(ctx context.Context, id int64, from []domain.BookingStatus, notes string, cancelledAt time.Time) (bool, error)
	BulkTransitionStatus(ctx context.Context, ids []int64, from []domain.BookingStatus, to domain.BookingStatus) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// PaymentPolicy интерфейс финансового сервиса (доли и условия отмены)
type PaymentPolicy interface {
	Split(totalPrice float64) paymentModels.Split
	Quote(booking *domain.Booking) (paymentModels.RefundQuote, error)
}

// PaymentClient интерфейс клиента платежного сервиса
type PaymentClient interface {
	SubmitPayout(ctx context.Context, req payments.PayoutRequest) (*payments.PayoutAck, error)
	SubmitRefund(ctx context.Context, req payments.RefundRequest) (*payments.RefundAck, error)
}

// Notifier интерфейс отправки уведомлений (fire-and-forget)
type Notifier interface {
	Notify(ctx context.Context, event notifier.Event)
}

// TimeProvider интерфейс получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
