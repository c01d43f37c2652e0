package get_client_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
	"github.com/akoncore/BookingSystem/internal/api/middleware"
	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/internal/service/bookings"
	"github.com/akoncore/BookingSystem/internal/service/bookings/models"
)

const (
	msgInvalidClientID = "некорректный идентификатор клиента"
	msgInvalidFilter   = "некорректные параметры фильтрации"
	msgAccessDenied    = "нет доступа к истории этого клиента"
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

// Handle GET /api/v1/clients/{clientId}/bookings?status=&date=&from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "не удалось определить пользователя")
		return
	}

	clientID, err := handlers.PathInt64(r, "clientId")
	if err != nil {
		h.logger.Warn("GET /clients/{clientId}/bookings - Invalid clientId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	req, err := parseListRequest(r)
	if err != nil {
		h.logger.Warn("GET /clients/{clientId}/bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.GetClientBookings(r.Context(), actor, clientID, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /clients/{clientId}/bookings - Access denied: client=%d, actor=%d", clientID, actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/{clientId}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /clients/{clientId}/bookings - Failed: client=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseListRequest(r *http.Request) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}
	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}
	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.DateFrom = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.DateTo = &to
	}

	return req, nil
}
