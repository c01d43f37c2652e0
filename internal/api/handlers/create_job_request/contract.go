package create_job_request

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/service/jobrequests/models"
)

type JobRequestService interface {
	Create(ctx context.Context, actor domain.Actor, req *models.CreateRequest) (*models.JobRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
