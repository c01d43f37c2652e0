package payments

// PayoutRequest запрос на распределение выручки завершенного бронирования
type PayoutRequest struct {
	BookingID    int64   `json:"booking_id"`
	BookingCode  string  `json:"booking_code"`
	MasterID     int64   `json:"master_id"`
	SalonID      int64   `json:"salon_id"`
	TotalAmount  float64 `json:"total_amount"`
	MasterAmount float64 `json:"master_amount"`
	SalonAmount  float64 `json:"salon_amount"`
}

// PayoutAck подтверждение приема запроса платежным сервисом
type PayoutAck struct {
	PayoutID string `json:"payout_id"`
	Status   string `json:"status"`
}

// RefundRequest запрос на возврат средств при отмене бронирования
type RefundRequest struct {
	BookingID    int64   `json:"booking_id"`
	BookingCode  string  `json:"booking_code"`
	ClientID     int64   `json:"client_id"`
	RefundAmount float64 `json:"refund_amount"`
}

// RefundAck подтверждение приема запроса на возврат
type RefundAck struct {
	RefundID string `json:"refund_id"`
	Status   string `json:"status"`
}
