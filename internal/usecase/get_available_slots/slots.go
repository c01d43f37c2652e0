package get_available_slots

import (
	"fmt"

	"github.com/akoncore/BookingSystem/pkg/types"
)

// generateTimeSlots генерирует слоты рабочего дня с фиксированным шагом.
// Начало окна включается, конец нет: при графике 09:00-18:00 и шаге 30
// последний слот 17:30. Счёт идёт в минутах от полуночи, поэтому шаг,
// перескакивающий через полночь (график 23:00-23:59), окно не зацикливает.
// Генерация детерминированная, от текущего времени не зависит.
func generateTimeSlots(start, end types.TimeString, intervalMinutes int) ([]types.TimeString, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return nil, err
	}
	endMin, err := end.Minutes()
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	for m := startMin; m < endMin; m += intervalMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}

	return slots, nil
}

// subtractBooked убирает из слотов занятые времена
func subtractBooked(slots []types.TimeString, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot.String()]; ok {
			continue
		}
		available = append(available, slot.String())
	}

	return available
}
