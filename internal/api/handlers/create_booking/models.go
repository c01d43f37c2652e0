package create_booking

import (
	"time"

	"github.com/akoncore/BookingSystem/internal/domain"
	createBooking "github.com/akoncore/BookingSystem/internal/usecase/create_booking"
	"github.com/akoncore/BookingSystem/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	MasterID        int64   `json:"masterId"`
	ServiceIDs      []int64 `json:"serviceIds"`
	AppointmentDate string  `json:"appointmentDate"` // "2025-10-15"
	AppointmentTime string  `json:"appointmentTime"` // "10:00"
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	BookingCode     string   `json:"bookingCode"`
	ClientID        int64    `json:"clientId"`
	MasterID        int64    `json:"masterId"`
	SalonID         int64    `json:"salonId"`
	AppointmentDate string   `json:"appointmentDate"`
	AppointmentTime string   `json:"appointmentTime"`
	ServiceIDs      []int64  `json:"serviceIds"`
	ServiceNames    []string `json:"serviceNames"`
	TotalPrice      float64  `json:"totalPrice"`
	Status          string   `json:"status"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.AppointmentTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Actor:      actor,
		MasterID:   r.MasterID,
		ServiceIDs: r.ServiceIDs,
		Date:       date,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		BookingCode:     resp.BookingCode,
		ClientID:        resp.ClientID,
		MasterID:        resp.MasterID,
		SalonID:         resp.SalonID,
		AppointmentDate: resp.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime: resp.AppointmentTime.String(),
		ServiceIDs:      resp.ServiceIDs,
		ServiceNames:    resp.ServiceNames,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
