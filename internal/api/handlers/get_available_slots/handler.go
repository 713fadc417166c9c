package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/fideslex/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/fideslex/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingProfessionalID = "professionalId es obligatorio"
	msgMissingDate           = "date es obligatorio"
	msgInvalidDate           = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidInput          = "datos de entrada inválidos"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	dates   DateParser
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, dates DateParser, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		dates:   dates,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: professionalId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	professionalID := query.Get("professionalId")
	if professionalID == "" {
		h.logger.Warn("GET /availability - Missing professional ID")
		handlers.RespondBadRequest(w, msgMissingProfessionalID)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := h.dates.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ProfessionalID: professionalID,
		Date:           date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to get available slots: professional_id=%s, date=%s, error=%v",
				professionalID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d slots for professional_id=%s, date=%s", len(result.Slots), professionalID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
