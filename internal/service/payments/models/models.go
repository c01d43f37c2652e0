package models

// Split результат распределения выручки одного бронирования
type Split struct {
	TotalPrice   float64 `json:"totalPrice"`
	MasterAmount float64 `json:"masterAmount"`
	SalonAmount  float64 `json:"salonAmount"`
}

// RefundQuote расчёт возврата при отмене бронирования
type RefundQuote struct {
	CanCancel     bool    `json:"canCancel"`
	RefundAmount  float64 `json:"refundAmount"`
	RefundPercent float64 `json:"refundPercent"`
	FeeAmount     float64 `json:"feeAmount"`
	HoursUntil    float64 `json:"hoursUntil"`
	Reason        string  `json:"reason"`
}

// BalanceReport сводка заработка мастера или салона по завершённым бронированиям
type BalanceReport struct {
	CompletedBookings int     `json:"completedBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
	Earnings          float64 `json:"earnings"`
}
