package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
	"github.com/akoncore/BookingSystem/internal/domain"
	getSlots "github.com/akoncore/BookingSystem/internal/usecase/get_available_slots"
)

const (
	msgInvalidMasterID = "некорректный идентификатор мастера"
	msgInvalidDate     = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgInvalidInterval = "некорректный параметр interval"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/available-slots?date=YYYY-MM-DD&interval=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID, err := handlers.PathInt64(r, "masterId")
	if err != nil {
		h.logger.Warn("GET /masters/{masterId}/available-slots - Invalid masterId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /masters/{masterId}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	interval := 0
	if raw := r.URL.Query().Get("interval"); raw != "" {
		interval, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /masters/{masterId}/available-slots - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		MasterID:        masterID,
		Date:            date,
		IntervalMinutes: interval,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidInterval):
			h.logger.Warn("GET /masters/{masterId}/available-slots - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /masters/{masterId}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /masters/{masterId}/available-slots - Failed: master=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
