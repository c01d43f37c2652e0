package get_schedule

import (
	"net/http"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
)

const msgInvalidMasterID = "некорректный идентификатор мастера"

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

// Handle GET /api/v1/masters/{masterId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID, err := handlers.PathInt64(r, "masterId")
	if err != nil {
		h.logger.Warn("GET /masters/{masterId}/schedule - Invalid masterId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	result, err := h.service.GetWeeklySchedule(r.Context(), masterID)
	if err != nil {
		h.logger.Error("GET /masters/{masterId}/schedule - Failed: master=%d, error=%v", masterID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
