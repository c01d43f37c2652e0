package upsert_schedule

import (
	"errors"
	"net/http"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
	"github.com/akoncore/BookingSystem/internal/api/middleware"
	"github.com/akoncore/BookingSystem/internal/service/schedule"
	"github.com/akoncore/BookingSystem/internal/service/schedule/models"
)

const (
	msgInvalidMasterID    = "некорректный идентификатор мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeRange   = "начало рабочего дня должно быть раньше конца"
	msgAccessDenied       = "менять расписание может только сам мастер или администратор"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/masters/{masterId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "не удалось определить пользователя")
		return
	}

	masterID, err := handlers.PathInt64(r, "masterId")
	if err != nil {
		h.logger.Warn("PUT /masters/{masterId}/schedule - Invalid masterId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	var req models.UpsertDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /masters/{masterId}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertDay(r.Context(), actor, masterID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /masters/{masterId}/schedule - Access denied: master=%d, actor=%d", masterID, actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /masters/{masterId}/schedule - Invalid time range: master=%d", masterID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /masters/{masterId}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /masters/{masterId}/schedule - Failed: master=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /masters/{masterId}/schedule - Updated: master=%d weekday=%d by actor=%d",
		masterID, req.Weekday, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
