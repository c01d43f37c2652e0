package upsert_schedule

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertDay(ctx context.Context, actor domain.Actor, masterID int64, req *models.UpsertDayRequest) (*models.ScheduleDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
