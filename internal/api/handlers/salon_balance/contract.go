package salon_balance

import (
	"context"
	"time"

	"github.com/akoncore/BookingSystem/internal/service/payments/models"
)

type PaymentService interface {
	SalonBalance(ctx context.Context, salonID int64, from, to *time.Time) (*models.BalanceReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
