package salon_balance

import (
	"net/http"
	"time"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
	"github.com/akoncore/BookingSystem/internal/api/middleware"
	"github.com/akoncore/BookingSystem/internal/domain"
)

const (
	msgInvalidSalonID = "некорректный идентификатор салона"
	msgInvalidPeriod  = "некорректные параметры периода, ожидается YYYY-MM-DD"
	msgAccessDenied   = "баланс салона доступен только администраторам"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/balance?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "не удалось определить пользователя")
		return
	}

	salonID, err := handlers.PathInt64(r, "salonId")
	if err != nil {
		h.logger.Warn("GET /salons/{salonId}/balance - Invalid salonId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	if !actor.IsAdmin() {
		h.logger.Warn("GET /salons/{salonId}/balance - Access denied: salon=%d, actor=%d", salonID, actor.ID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	from, to, err := parsePeriod(r)
	if err != nil {
		h.logger.Warn("GET /salons/{salonId}/balance - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.SalonBalance(r.Context(), salonID, from, to)
	if err != nil {
		h.logger.Error("GET /salons/{salonId}/balance - Failed: salon=%d, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parsePeriod(r *http.Request) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	query := r.URL.Query()

	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, nil, err
		}
		from = &parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, nil, err
		}
		to = &parsed
	}

	return from, to, nil
}
