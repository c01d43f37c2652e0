package create_booking

import (
	"context"
	"time"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/integrations/directory"
	"github.com/akoncore/BookingSystem/internal/integrations/notifier"
	"github.com/akoncore/BookingSystem/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	HasActiveAt(ctx context.Context, masterID int64, date time.Time, at string) (bool, error)
}

// ScheduleService интерфейс проверки рабочего расписания мастера
type ScheduleService interface {
	IsAvailable(ctx context.Context, masterID int64, date time.Time, at types.TimeString) (bool, error)
}

// DirectoryClient интерфейс клиента справочного сервиса
type DirectoryClient interface {
	GetMaster(ctx context.Context, masterID int64) (*directory.Master, error)
	GetServices(ctx context.Context, serviceIDs []int64) ([]directory.Service, error)
}

// Notifier интерфейс отправки уведомлений (fire-and-forget)
type Notifier interface {
	Notify(ctx context.Context, event notifier.Event)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
