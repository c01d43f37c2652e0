package get_available_slots

import "time"

// Request модель запроса доступных слотов мастера на дату
type Request struct {
	MasterID        int64     // ID мастера
	Date            time.Time // Дата (без времени)
	IntervalMinutes int       // Шаг слотов в минутах, 0 = значение по умолчанию
}

// Response модель ответа с доступными слотами
type Response struct {
	MasterID int64  `json:"masterId"`
	Date     string `json:"date"` // "2025-10-15"

	// Working false означает нерабочий день; слоты в этом случае пусты,
	// и это отличимо от рабочего дня, в котором все занято
	Working   bool   `json:"working"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`

	AvailableSlots []string `json:"availableSlots"` // "10:00", по возрастанию
	BookedSlots    []string `json:"bookedSlots"`
}
