package notifier

// Event уведомление о событии жизненного цикла бронирования
type Event struct {
	Type        string  `json:"type"`
	RecipientID int64   `json:"recipient_id"`
	BookingID   int64   `json:"booking_id,omitempty"`
	BookingCode string  `json:"booking_code,omitempty"`
	Message     string  `json:"message"`
	Amount      float64 `json:"amount,omitempty"`
}

// Типы событий уведомлений
const (
	EventBookingCreated    = "booking_created"
	EventBookingConfirmed  = "booking_confirmed"
	EventBookingCompleted  = "booking_completed"
	EventBookingCancelled  = "booking_cancelled"
	EventJobRequestCreated = "job_request_created"
	EventJobRequestReviewed = "job_request_reviewed"
)
