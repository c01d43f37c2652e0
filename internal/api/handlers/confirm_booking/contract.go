package confirm_booking

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/service/bookings/models"
)

type BookingService interface {
	Confirm(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
