package get_available_slots

import (
	"context"
	"time"

	"github.com/akoncore/BookingSystem/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	BookedTimes(ctx context.Context, masterID int64, date time.Time) ([]string, error)
}

// ScheduleRepository интерфейс репозитория расписаний мастеров
type ScheduleRepository interface {
	GetByMasterAndWeekday(ctx context.Context, masterID int64, weekday int) (*domain.MasterSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
