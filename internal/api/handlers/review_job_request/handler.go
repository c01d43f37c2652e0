package review_job_request

import (
	"errors"
	"net/http"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
	"github.com/akoncore/BookingSystem/internal/api/middleware"
	"github.com/akoncore/BookingSystem/internal/service/jobrequests"
	"github.com/akoncore/BookingSystem/internal/service/jobrequests/models"
)

const (
	msgInvalidRequestID   = "некорректный идентификатор заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRequestNotFound    = "заявка не найдена"
	msgAlreadyReviewed    = "заявка уже рассмотрена"
	msgAccessDenied       = "рассматривать заявки могут только администраторы"
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

// Handle POST /api/v1/job-requests/{id}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "не удалось определить пользователя")
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("POST /job-requests/{id}/review - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var req models.ReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /job-requests/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Review(r.Context(), actor, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, jobrequests.ErrRequestNotFound):
			h.logger.Warn("POST /job-requests/{id}/review - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, jobrequests.ErrAlreadyReviewed):
			h.logger.Warn("POST /job-requests/{id}/review - Already reviewed: id=%d", id)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		case errors.Is(err, jobrequests.ErrAccessDenied):
			h.logger.Warn("POST /job-requests/{id}/review - Access denied: actor=%d", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, jobrequests.ErrInvalidInput):
			h.logger.Warn("POST /job-requests/{id}/review - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /job-requests/{id}/review - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /job-requests/{id}/review - Reviewed: id=%d, status=%s, by admin=%d",
		id, result.Status, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
