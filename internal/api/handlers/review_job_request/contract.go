package review_job_request

import (
	"context"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/service/jobrequests/models"
)

type JobRequestService interface {
	Review(ctx context.Context, actor domain.Actor, id int64, req *models.ReviewRequest) (*models.JobRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
