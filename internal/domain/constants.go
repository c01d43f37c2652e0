package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot generation defaults and limits
const (
	DefaultSlotIntervalMinutes = 30
	MinSlotIntervalMinutes     = 5
	MaxSlotIntervalMinutes     = 240
)

// Bulk transition limits
const (
	MaxBulkBookingIDs = 200
)

// ActiveStatuses список статусов, при которых бронирование занимает слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses список конечных статусов
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
