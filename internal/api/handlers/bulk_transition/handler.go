package bulk_transition

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
	"github.com/akoncore/BookingSystem/internal/api/middleware"
	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/service/bookings"
	"github.com/akoncore/BookingSystem/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAction      = "неизвестное действие, ожидается confirm, complete или cancel"
	msgAccessDenied       = "массовые операции доступны только администраторам"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/bulk/{action}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "не удалось определить пользователя")
		return
	}

	action := domain.TransitionAction(mux.Vars(r)["action"])
	if !domain.ValidAction(action) {
		h.logger.Warn("POST /bookings/bulk/{action} - Invalid action: %s", action)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	var req models.BulkTransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/bulk/{action} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BulkTransition(r.Context(), actor, action, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/bulk/{action} - Access denied: actor=%d", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/bulk/{action} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/bulk/{action} - Failed: action=%s, error=%v", action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/bulk/{action} - Done: action=%s requested=%d updated=%d",
		action, result.RequestedCount, result.UpdatedCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
