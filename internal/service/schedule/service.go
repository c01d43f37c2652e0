package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akoncore/BookingSystem/internal/domain"
	scheduleRepo "github.com/akoncore/BookingSystem/internal/infra/storage/schedule"
	"github.com/akoncore/BookingSystem/internal/service/schedule/models"
	"github.com/akoncore/BookingSystem/pkg/types"
)

// Service сервис недельных расписаний мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetWeeklySchedule возвращает недельное расписание мастера.
// Дни без записи отсутствуют в ответе и трактуются как нерабочие.
func (s *Service) GetWeeklySchedule(ctx context.Context, masterID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetWeeklySchedule: fetching schedule for master=%d", masterID)

	list, err := s.scheduleRepo.ListByMaster(ctx, masterID)
	if err != nil {
		s.logger.Error("GetWeeklySchedule: repository error for master=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: GetWeeklySchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainScheduleList(masterID, list), nil
}

// UpsertDay устанавливает расписание мастера на один день недели.
// Менять расписание может сам мастер или администратор.
func (s *Service) UpsertDay(ctx context.Context, actor domain.Actor, masterID int64, req *models.UpsertDayRequest) (*models.ScheduleDayResponse, error) {
	s.logger.Info("UpsertDay: master=%d weekday=%d working=%t by actor=%d",
		masterID, req.Weekday, req.IsWorking, actor.ID)

	if !actor.IsAdmin() && !(actor.IsMaster() && actor.ID == masterID) {
		s.logger.Warn("UpsertDay: access denied for actor=%d to master=%d schedule", actor.ID, masterID)
		return nil, ErrAccessDenied
	}

	entry, err := s.toDomainSchedule(masterID, req)
	if err != nil {
		s.logger.Warn("UpsertDay: invalid input for master=%d: %v", masterID, err)
		return nil, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, entry)
	if err != nil {
		s.logger.Error("UpsertDay: repository error for master=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: UpsertDay - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainSchedule(saved)
	return &resp, nil
}

// IsAvailable проверяет, работает ли мастер в указанный момент.
// Отсутствие записи на день недели означает нерабочий день, а не ошибку.
// Обе границы рабочего окна включительны.
func (s *Service) IsAvailable(ctx context.Context, masterID int64, date time.Time, at types.TimeString) (bool, error) {
	entry, err := s.scheduleRepo.GetByMasterAndWeekday(ctx, masterID, domain.WeekdayOf(date))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: IsAvailable - repository error: %v", ErrInternal, err)
	}

	return entry.Covers(at), nil
}

func (s *Service) toDomainSchedule(masterID int64, req *models.UpsertDayRequest) (*domain.MasterSchedule, error) {
	if !domain.ValidWeekday(req.Weekday) {
		return nil, fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}

	entry := &domain.MasterSchedule{
		MasterID:  masterID,
		Weekday:   req.Weekday,
		IsWorking: req.IsWorking,
	}

	if !req.IsWorking {
		return entry, nil
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, req.StartTime)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time %q", ErrInvalidInput, req.EndTime)
	}
	if !start.IsBefore(end) {
		return nil, ErrInvalidTimeRange
	}

	entry.StartTime = start
	entry.EndTime = end
	return entry, nil
}
