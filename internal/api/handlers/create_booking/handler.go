package create_booking

import (
	"errors"
	"net/http"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
	"github.com/akoncore/BookingSystem/internal/api/middleware"
	createBooking "github.com/akoncore/BookingSystem/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgMasterNotAvailable = "мастер не работает в выбранное время"
	msgMasterNotFound     = "мастер не найден"
	msgMasterNotApproved  = "мастер не прошел модерацию"
	msgMasterHasNoSalon   = "мастер не привязан к салону"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceWrongSalon  = "услуга принадлежит другому салону"
	msgInvalidDate        = "дата записи уже прошла"
	msgAccessDenied       = "бронирование может создать только клиент"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "не удалось определить пользователя")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: client=%d, master=%d", actor.ID, req.MasterID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrMasterNotAvailable):
			h.logger.Warn("POST /bookings - Master not available: client=%d, master=%d", actor.ID, req.MasterID)
			handlers.RespondConflict(w, msgMasterNotAvailable)

		case errors.Is(err, createBooking.ErrMasterNotFound):
			h.logger.Warn("POST /bookings - Master not found: master=%d", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, createBooking.ErrMasterNotApproved):
			h.logger.Warn("POST /bookings - Master not approved: master=%d", req.MasterID)
			handlers.RespondBadRequest(w, msgMasterNotApproved)

		case errors.Is(err, createBooking.ErrMasterHasNoSalon):
			h.logger.Warn("POST /bookings - Master has no salon: master=%d", req.MasterID)
			handlers.RespondBadRequest(w, msgMasterHasNoSalon)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: services=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceWrongSalon):
			h.logger.Warn("POST /bookings - Service from another salon: services=%v, master=%d", req.ServiceIDs, req.MasterID)
			handlers.RespondBadRequest(w, msgServiceWrongSalon)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: client=%d", actor.ID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: actor=%d role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client=%d, master=%d, error=%v",
				actor.ID, req.MasterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, code=%s, client=%d",
		result.ID, result.BookingCode, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
