package bulk_transition

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/service/bookings/models"
)

type BookingService interface {
	BulkTransition(ctx context.Context, actor domain.Actor, action domain.TransitionAction, req *models.BulkTransitionRequest) (*models.BulkTransitionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
