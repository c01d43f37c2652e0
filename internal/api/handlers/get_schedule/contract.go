package get_schedule

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeeklySchedule(ctx context.Context, masterID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
