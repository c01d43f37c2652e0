package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/akoncore/BookingSystem/internal/domain"
	scheduleRepo "github.com/akoncore/BookingSystem/internal/infra/storage/schedule"
)

// UseCase use case для получения доступных слотов мастера на дату
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Нерабочий день возвращается с working=false и пустыми слотами, что
// отличимо от рабочего дня, в котором все слоты заняты. Повторный вызов
// при неизменном состоянии дает тот же результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: master=%d, date=%s, interval=%d",
		req.MasterID, req.Date.Format(domain.DateFormat), req.IntervalMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	interval := req.IntervalMinutes
	if interval == 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}

	resp := &Response{
		MasterID:       req.MasterID,
		Date:           req.Date.Format(domain.DateFormat),
		AvailableSlots: []string{},
		BookedSlots:    []string{},
	}

	// 2. Получаем расписание мастера на день недели.
	// Отсутствие записи означает нерабочий день.
	schedule, err := uc.scheduleRepo.GetByMasterAndWeekday(ctx, req.MasterID, domain.WeekdayOf(req.Date))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Info("GetAvailableSlots: master=%d not working on %s", req.MasterID, resp.Date)
			return resp, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !schedule.IsWorking {
		uc.logger.Info("GetAvailableSlots: master=%d has a day off on %s", req.MasterID, resp.Date)
		return resp, nil
	}

	resp.Working = true
	resp.StartTime = schedule.StartTime.String()
	resp.EndTime = schedule.EndTime.String()

	// 3. Генерируем слоты рабочего окна
	slots, err := generateTimeSlots(schedule.StartTime, schedule.EndTime, interval)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 4. Убираем занятые активными бронированиями времена
	booked, err := uc.bookingRepo.BookedTimes(ctx, req.MasterID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	resp.BookedSlots = booked
	resp.AvailableSlots = subtractBooked(slots, booked)

	uc.logger.Info("GetAvailableSlots: master=%d date=%s available=%d booked=%d",
		req.MasterID, resp.Date, len(resp.AvailableSlots), len(resp.BookedSlots))
	return resp, nil
}
