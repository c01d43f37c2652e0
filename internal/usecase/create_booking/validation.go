package create_booking

import (
	"fmt"
	"time"

	"github.com/akoncore/BookingSystem/internal/integrations/directory"
	"github.com/akoncore/BookingSystem/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor.ID <= 0 {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	if req.MasterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateNotInPast проверяет, что момент записи не прошел
func validateNotInPast(date time.Time, startTime types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	if isSameDay(date, now) {
		currentTime := types.NewTimeString(now)
		if startTime.IsBefore(currentTime) {
			return fmt.Errorf("%w: appointment time is in the past", ErrInvalidDate)
		}
	}

	return nil
}

// validateServicesSalon проверяет, что все услуги активны и принадлежат салону мастера
func validateServicesSalon(services []directory.Service, salonID int64) error {
	for _, svc := range services {
		if !svc.IsActive {
			return fmt.Errorf("%w: service %d is not active", ErrServiceNotFound, svc.ID)
		}
		if svc.SalonID != salonID {
			return fmt.Errorf("%w: service %d belongs to salon %d", ErrServiceWrongSalon, svc.ID, svc.SalonID)
		}
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
