package create_job_request

import (
	"errors"
	"net/http"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
	"github.com/akoncore/BookingSystem/internal/api/middleware"
	"github.com/akoncore/BookingSystem/internal/service/jobrequests"
	"github.com/akoncore/BookingSystem/internal/service/jobrequests/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
	msgDuplicateRequest   = "заявка в этот салон уже подана"
	msgAccessDenied       = "подать заявку может только мастер"
)

type Handler struct {
	service JobRequestService
	logger  Logger
}

func NewHandler(service JobRequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/job-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "не удалось определить пользователя")
		return
	}

	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /job-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, jobrequests.ErrSalonNotFound):
			h.logger.Warn("POST /job-requests - Salon not found: salon=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, jobrequests.ErrDuplicateRequest):
			h.logger.Warn("POST /job-requests - Duplicate: master=%d, salon=%d", actor.ID, req.SalonID)
			handlers.RespondConflict(w, msgDuplicateRequest)

		case errors.Is(err, jobrequests.ErrAccessDenied):
			h.logger.Warn("POST /job-requests - Access denied: actor=%d role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, jobrequests.ErrInvalidInput):
			h.logger.Warn("POST /job-requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /job-requests - Failed: master=%d, salon=%d, error=%v", actor.ID, req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /job-requests - Created: id=%d, master=%d, salon=%d", result.ID, actor.ID, req.SalonID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
