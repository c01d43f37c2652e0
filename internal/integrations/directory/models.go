package directory

// Master профиль мастера из справочного сервиса
type Master struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"user_id"`
	SalonID        *int64  `json:"salon_id"`
	FullName       string  `json:"full_name"`
	Specialization string  `json:"specialization"`
	IsApproved     bool    `json:"is_approved"`
	Rating         float64 `json:"rating"`
}

// Salon профиль салона из справочного сервиса
type Salon struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Service услуга салона из справочного сервиса
type Service struct {
	ID              int64   `json:"id"`
	SalonID         int64   `json:"salon_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	IsActive        bool    `json:"is_active"`
}

// ErrorResponse модель ошибки справочного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
