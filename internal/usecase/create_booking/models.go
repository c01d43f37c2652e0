package create_booking

import (
	"time"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor      domain.Actor     // Аутентифицированный актор (только клиент)
	MasterID   int64            // ID мастера
	ServiceIDs []int64          // ID услуг (минимум одна)
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время записи (например, "10:00")
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64  // ID созданного бронирования
	BookingCode string // Публичный код вида BK-XXXXXXXXXX
	ClientID    int64  // ID клиента
	MasterID    int64  // ID мастера
	SalonID     int64  // ID салона, определенный по мастеру

	AppointmentDate time.Time        // Дата записи
	AppointmentTime types.TimeString // Время записи

	// Денормализованные данные услуг
	ServiceIDs   []int64  // ID услуг
	ServiceNames []string // Названия услуг на момент создания
	TotalPrice   float64  // Сумма актуальных цен услуг

	Status string  // Статус бронирования
	Notes  *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		BookingCode:     b.BookingCode,
		ClientID:        b.ClientID,
		MasterID:        b.MasterID,
		SalonID:         b.SalonID,
		AppointmentDate: b.AppointmentDate,
		AppointmentTime: b.AppointmentTime,
		ServiceIDs:      b.ServiceIDs,
		ServiceNames:    b.ServiceNames,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
