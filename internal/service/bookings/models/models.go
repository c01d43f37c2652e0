package models

import (
	"time"

	"github.com/akoncore/BookingSystem/internal/domain"
	paymentModels "github.com/akoncore/BookingSystem/internal/service/payments/models"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status   *string    `json:"status,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	DateFrom *time.Time `json:"dateFrom,omitempty"`
	DateTo   *time.Time `json:"dateTo,omitempty"`
}

// BulkTransitionRequest запрос на массовый перевод статусов
type BulkTransitionRequest struct {
	BookingIDs []int64 `json:"bookingIds"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	BookingCode string `json:"bookingCode"`
	ClientID    int64  `json:"clientId"`
	MasterID    int64  `json:"masterId"`
	SalonID     int64  `json:"salonId"`

	AppointmentDate string `json:"appointmentDate"` // "2025-10-15"
	AppointmentTime string `json:"appointmentTime"` // "10:00"

	ServiceIDs   []int64  `json:"serviceIds"`
	ServiceNames []string `json:"serviceNames"`
	TotalPrice   float64  `json:"totalPrice"`

	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CompleteBookingResponse ответ на завершение: бронирование и распределение выручки
type CompleteBookingResponse struct {
	Booking BookingResponse     `json:"booking"`
	Payout  paymentModels.Split `json:"payout"`
}

// CancelBookingResponse ответ на отмену: бронирование и расчёт возврата
type CancelBookingResponse struct {
	Booking BookingResponse           `json:"booking"`
	Refund  paymentModels.RefundQuote `json:"refund"`
}

// BulkTransitionResponse результат массового перевода статусов
type BulkTransitionResponse struct {
	RequestedCount int   `json:"requestedCount"`
	UpdatedCount   int64 `json:"updatedCount"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		BookingCode:     b.BookingCode,
		ClientID:        b.ClientID,
		MasterID:        b.MasterID,
		SalonID:         b.SalonID,
		AppointmentDate: b.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime: b.AppointmentTime.String(),
		ServiceIDs:      b.ServiceIDs,
		ServiceNames:    b.ServiceNames,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, bool) {
	status := domain.BookingStatus(s)
	return status, domain.ValidStatus(status)
}
