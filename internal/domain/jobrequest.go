package domain

import "time"

// JobRequestStatus represents the review status of a master's application to a salon
type JobRequestStatus string

const (
	JobRequestPending  JobRequestStatus = "pending"
	JobRequestApproved JobRequestStatus = "approved"
	JobRequestRejected JobRequestStatus = "rejected"
)

// MasterJobRequest is a master's application to join a salon, reviewed by an admin.
// An approved request is final; a rejected one may be re-submitted.
type MasterJobRequest struct {
	ID       int64
	MasterID int64
	SalonID  int64

	Specialization  *string
	ExperienceYears int
	Bio             *string
	OfferedServices *string // comma-separated service names

	Status          JobRequestStatus
	RejectionReason *string
	ReviewedBy      *int64
	ReviewedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReviewed returns true once the request left the pending state
func (r *MasterJobRequest) IsReviewed() bool {
	return r.Status != JobRequestPending
}
