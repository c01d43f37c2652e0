package get_available_slots

import (
	"fmt"

	"github.com/akoncore/BookingSystem/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MasterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.IntervalMinutes != 0 {
		if req.IntervalMinutes < domain.MinSlotIntervalMinutes || req.IntervalMinutes > domain.MaxSlotIntervalMinutes {
			return fmt.Errorf("%w: interval must be between %d and %d minutes",
				ErrInvalidInterval, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
		}
	}

	return nil
}
