package cancellation_preview

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/domain"
	paymentModels "github.com/akoncore/BookingSystem/internal/service/payments/models"
)

type BookingService interface {
	CancellationPreview(ctx context.Context, actor domain.Actor, id int64) (*paymentModels.RefundQuote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
