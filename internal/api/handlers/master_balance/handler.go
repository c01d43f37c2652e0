package master_balance

import (
	"net/http"
	"time"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
	"github.com/akoncore/BookingSystem/internal/api/middleware"
	"github.com/akoncore/BookingSystem/internal/domain"
)

const (
	msgInvalidMasterID = "некорректный идентификатор мастера"
	msgInvalidPeriod   = "некорректные параметры периода, ожидается YYYY-MM-DD"
	msgAccessDenied    = "баланс мастера доступен только ему самому и администраторам"
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

// Handle GET /api/v1/masters/{masterId}/balance?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "не удалось определить пользователя")
		return
	}

	masterID, err := handlers.PathInt64(r, "masterId")
	if err != nil {
		h.logger.Warn("GET /masters/{masterId}/balance - Invalid masterId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	if !actor.IsAdmin() && !(actor.IsMaster() && actor.ID == masterID) {
		h.logger.Warn("GET /masters/{masterId}/balance - Access denied: master=%d, actor=%d", masterID, actor.ID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	from, to, err := parsePeriod(r)
	if err != nil {
		h.logger.Warn("GET /masters/{masterId}/balance - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.MasterBalance(r.Context(), masterID, from, to)
	if err != nil {
		h.logger.Error("GET /masters/{masterId}/balance - Failed: master=%d, error=%v", masterID, err)
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
