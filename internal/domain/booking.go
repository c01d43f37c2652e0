package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akoncore/BookingSystem/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a client appointment with a master at a salon
type Booking struct {
	ID          int64
	BookingCode string // BK-XXXXXXXXXX, immutable, generated at creation
	ClientID    int64
	MasterID    int64
	SalonID     int64 // resolved from the master's salon at creation, never re-derived

	AppointmentDate time.Time
	AppointmentTime types.TimeString

	ServiceIDs   []int64
	ServiceNames []string
	TotalPrice   float64 // sum of current service prices at the time of computation

	Status      BookingStatus
	Notes       *string
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingCode generates a shareable booking code of the form BK-XXXXXXXXXX.
func NewBookingCode() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "BK-" + hex[:10]
}

// IsActive returns true while the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true once no further transitions are permitted
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeConfirmed returns true if the booking may move to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCompleted returns true if the booking may move to completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking may move to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// AppointmentAt combines the date and wall-clock time into a single local instant.
func (b *Booking) AppointmentAt() (time.Time, error) {
	return b.AppointmentTime.At(b.AppointmentDate)
}

// ValidStatus reports whether s is one of the four lifecycle statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// TransitionAction names a state-machine transition
type TransitionAction string

const (
	ActionConfirm  TransitionAction = "confirm"
	ActionComplete TransitionAction = "complete"
	ActionCancel   TransitionAction = "cancel"
)

// TransitionSources maps a transition action to the statuses it may start from.
// This is the single place the transition table lives; services consult it
// instead of scattering status checks.
var TransitionSources = map[TransitionAction][]BookingStatus{
	ActionConfirm:  {StatusPending},
	ActionComplete: {StatusConfirmed},
	ActionCancel:   {StatusPending, StatusConfirmed},
}

// TargetStatus returns the status an action transitions into.
func (a TransitionAction) TargetStatus() BookingStatus {
	switch a {
	case ActionConfirm:
		return StatusConfirmed
	case ActionComplete:
		return StatusCompleted
	case ActionCancel:
		return StatusCancelled
	default:
		return ""
	}
}

// ValidAction reports whether a is a known transition action.
func ValidAction(a TransitionAction) bool {
	_, ok := TransitionSources[a]
	return ok
}

// BookingsFilter описывает фильтрацию при выборке бронирований
type BookingsFilter struct {
	ClientID      *int64
	MasterID      *int64
	SalonID       *int64
	Date          *time.Time     // конкретная дата (применяется к appointment_date)
	DateFrom      *time.Time     // начало периода (опционально)
	DateTo        *time.Time     // конец периода (опционально)
	Status        *BookingStatus // фильтр по статусу (опционально)
	OnlyActive    bool           // только pending/confirmed
	OnlyCompleted bool           // только completed (для балансовых отчётов)
}
