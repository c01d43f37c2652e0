package models

import (
	"time"

	"github.com/akoncore/BookingSystem/internal/domain"
)

// Request модели

// CreateRequest заявка мастера на работу в салоне
type CreateRequest struct {
	SalonID         int64   `json:"salonId"`
	Specialization  *string `json:"specialization,omitempty"`
	ExperienceYears int     `json:"experienceYears"`
	Bio             *string `json:"bio,omitempty"`
	OfferedServices *string `json:"offeredServices,omitempty"`
}

// ReviewRequest решение администратора по заявке
type ReviewRequest struct {
	Approve         bool    `json:"approve"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

// Response модели

// JobRequestResponse ответ с данными заявки
type JobRequestResponse struct {
	ID       int64 `json:"id"`
	MasterID int64 `json:"masterId"`
	SalonID  int64 `json:"salonId"`

	Specialization  *string `json:"specialization,omitempty"`
	ExperienceYears int     `json:"experienceYears"`
	Bio             *string `json:"bio,omitempty"`
	OfferedServices *string `json:"offeredServices,omitempty"`

	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	ReviewedBy      *int64  `json:"reviewedBy,omitempty"`
	ReviewedAt      *string `json:"reviewedAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainJobRequest конвертирует domain модель в DTO
func FromDomainJobRequest(r *domain.MasterJobRequest) *JobRequestResponse {
	if r == nil {
		return nil
	}

	resp := &JobRequestResponse{
		ID:              r.ID,
		MasterID:        r.MasterID,
		SalonID:         r.SalonID,
		Specialization:  r.Specialization,
		ExperienceYears: r.ExperienceYears,
		Bio:             r.Bio,
		OfferedServices: r.OfferedServices,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		ReviewedBy:      r.ReviewedBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if r.ReviewedAt != nil {
		reviewedAt := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}

	return resp
}
