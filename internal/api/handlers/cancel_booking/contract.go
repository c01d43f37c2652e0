package cancel_booking

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, actor domain.Actor, id int64, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
