package schedule

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний мастеров
type ScheduleRepository interface {
	GetByMasterAndWeekday(ctx context.Context, masterID int64, weekday int) (*domain.MasterSchedule, error)
	ListByMaster(ctx context.Context, masterID int64) ([]*domain.MasterSchedule, error)
	Upsert(ctx context.Context, s *domain.MasterSchedule) (*domain.MasterSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
