package delete_booking

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/domain"
)

type BookingService interface {
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
