package complete_booking

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/service/bookings/models"
)

type BookingService interface {
	Complete(ctx context.Context, actor domain.Actor, id int64) (*models.CompleteBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
