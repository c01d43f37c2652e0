package jobrequests

import (
	"context"
	"time"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/integrations/directory"
	"github.com/akoncore/BookingSystem/internal/integrations/notifier"
)

// JobRequestRepository интерфейс репозитория заявок мастеров
type JobRequestRepository interface {
	Create(ctx context.Context, req *domain.MasterJobRequest) (*domain.MasterJobRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.MasterJobRequest, error)
	DeleteRejected(ctx context.Context, masterID, salonID int64) error
	Review(ctx context.Context, id int64, to domain.JobRequestStatus, reviewerID int64, rejectionReason *string, reviewedAt time.Time) (bool, error)
}

// DirectoryClient интерфейс клиента справочного сервиса
type DirectoryClient interface {
	GetSalon(ctx context.Context, salonID int64) (*directory.Salon, error)
}

// Notifier интерфейс отправки уведомлений (fire-and-forget)
type Notifier interface {
	Notify(ctx context.Context, event notifier.Event)
}

// TimeProvider интерфейс получения текущего времени
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
