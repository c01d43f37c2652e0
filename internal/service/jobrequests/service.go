package jobrequests

import (
	"context"
	"errors"
	"fmt"

	"github.com/akoncore/BookingSystem/internal/domain"
	requestRepo "github.com/akoncore/BookingSystem/internal/infra/storage/jobrequest"
	"github.com/akoncore/BookingSystem/internal/integrations/directory"
	"github.com/akoncore/BookingSystem/internal/integrations/notifier"
	"github.com/akoncore/BookingSystem/internal/service/jobrequests/models"
)

// Service сервис заявок мастеров на работу в салонах
type Service struct {
	requestRepo     JobRequestRepository
	directoryClient DirectoryClient
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	requestRepo JobRequestRepository,
	directoryClient DirectoryClient,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:     requestRepo,
		directoryClient: directoryClient,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Create подает заявку мастера в салон. Подать заявку может только мастер,
// от своего имени. Отклоненная ранее заявка в тот же салон заменяется новой,
// активная (pending или approved) блокирует повторную подачу.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *models.CreateRequest) (*models.JobRequestResponse, error) {
	s.logger.Info("Create: job request from master=%d to salon=%d", actor.ID, req.SalonID)

	if !actor.IsMaster() {
		s.logger.Warn("Create: access denied for actor=%d role=%s", actor.ID, actor.Role)
		return nil, ErrAccessDenied
	}
	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salon id is required", ErrInvalidInput)
	}

	if _, err := s.directoryClient.GetSalon(ctx, req.SalonID); err != nil {
		if errors.Is(err, directory.ErrSalonNotFound) {
			s.logger.Warn("Create: salon=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("Create: directory error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: Create - directory error: %v", ErrInternal, err)
	}

	// Освобождаем пару (master, salon) от отклоненной заявки, чтобы
	// уникальный индекс пропустил повторную подачу
	if err := s.requestRepo.DeleteRejected(ctx, actor.ID, req.SalonID); err != nil {
		s.logger.Error("Create: failed to clear rejected request for master=%d salon=%d: %v", actor.ID, req.SalonID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	request := &domain.MasterJobRequest{
		MasterID:        actor.ID,
		SalonID:         req.SalonID,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
		OfferedServices: req.OfferedServices,
		Status:          domain.JobRequestPending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		if errors.Is(err, requestRepo.ErrDuplicateRequest) {
			s.logger.Warn("Create: duplicate request from master=%d to salon=%d", actor.ID, req.SalonID)
			return nil, ErrDuplicateRequest
		}
		s.logger.Error("Create: repository error for master=%d: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.notifier.Notify(ctx, notifier.Event{
		Type:        notifier.EventJobRequestCreated,
		RecipientID: actor.ID,
		Message:     fmt.Sprintf("Your job request to salon %d has been submitted", req.SalonID),
	})

	s.logger.Info("Create: job request id=%d created for master=%d salon=%d", created.ID, actor.ID, req.SalonID)
	return models.FromDomainJobRequest(created), nil
}

// GetByID получает заявку. Доступна мастеру-автору и администраторам.
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.JobRequestResponse, error) {
	request, err := s.fetch(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && !(actor.IsMaster() && actor.ID == request.MasterID) {
		s.logger.Warn("GetByID: access denied for actor=%d to request id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainJobRequest(request), nil
}

// Review рассматривает заявку. Доступно только администраторам; заявка
// рассматривается ровно один раз, при отклонении причина обязательна.
func (s *Service) Review(ctx context.Context, actor domain.Actor, id int64, req *models.ReviewRequest) (*models.JobRequestResponse, error) {
	s.logger.Info("Review: request id=%d approve=%t by actor=%d", id, req.Approve, actor.ID)

	if !actor.IsAdmin() {
		s.logger.Warn("Review: access denied for actor=%d", actor.ID)
		return nil, ErrAccessDenied
	}

	request, err := s.fetch(ctx, "Review", id)
	if err != nil {
		return nil, err
	}
	if request.IsReviewed() {
		s.logger.Warn("Review: request id=%d already reviewed, status=%s", id, request.Status)
		return nil, ErrAlreadyReviewed
	}

	target := domain.JobRequestApproved
	var rejectionReason *string
	if !req.Approve {
		if req.RejectionReason == nil || *req.RejectionReason == "" {
			return nil, fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
		}
		target = domain.JobRequestRejected
		rejectionReason = req.RejectionReason
	}

	now := s.timeProvider.Now()

	ok, err := s.requestRepo.Review(ctx, id, target, actor.ID, rejectionReason, now)
	if err != nil {
		s.logger.Error("Review: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Review - repository error: %v", ErrInternal, err)
	}
	if !ok {
		// Параллельное рассмотрение успело раньше
		s.logger.Warn("Review: request id=%d reviewed concurrently", id)
		return nil, ErrAlreadyReviewed
	}

	request.Status = target
	request.RejectionReason = rejectionReason
	request.ReviewedBy = &actor.ID
	request.ReviewedAt = &now

	verdict := "approved"
	if !req.Approve {
		verdict = "rejected"
	}
	s.notifier.Notify(ctx, notifier.Event{
		Type:        notifier.EventJobRequestReviewed,
		RecipientID: request.MasterID,
		Message:     fmt.Sprintf("Your job request to salon %d has been %s", request.SalonID, verdict),
	})

	s.logger.Info("Review: request id=%d %s by actor=%d", id, verdict, actor.ID)
	return models.FromDomainJobRequest(request), nil
}

func (s *Service) fetch(ctx context.Context, op string, id int64) (*domain.MasterJobRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("%s: request id=%d not found", op, id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("%s: repository error for request id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return request, nil
}
